package progress

import "time"

// DateLayout is the ISO date format used for all persisted dates.
const DateLayout = "2006-01-02"

// DateOf formats a time as an ISO date in the local zone.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// EffectiveCounter applies the lazy date rollover: a stored counter from any
// day other than today reads as a fresh zero counter for today. The stored
// value is never rewritten by reads; mutation happens only on MarkSeen.
func EffectiveCounter(stored DailyProgress, today string) DailyProgress {
	if stored.Date != today {
		return DailyProgress{Date: today, Count: 0}
	}
	return stored
}

// EffectiveCount returns today's new-card count after the lazy rollover.
func (p *Progress) EffectiveCount(today string) int {
	return EffectiveCounter(p.DailyProgress, today).Count
}

// statsFor returns the history entry for the given date, appending a fresh
// one if the day has not been touched yet.
func (p *Progress) statsFor(date string) *DailyStats {
	for i := range p.History {
		if p.History[i].Date == date {
			return &p.History[i]
		}
	}
	p.History = append(p.History, DailyStats{Date: date})
	return &p.History[len(p.History)-1]
}

// StatsFor returns a copy of the history entry for the given date, or a zero
// entry if the day has no activity.
func (p *Progress) StatsFor(date string) DailyStats {
	for _, ds := range p.History {
		if ds.Date == date {
			return ds
		}
	}
	return DailyStats{Date: date}
}

// Streak returns the current study streak in days: the number of consecutive
// calendar days with any activity, counting back from today. A streak that
// ended yesterday still counts (today's study may simply not have happened
// yet); a gap of a full day breaks it.
func (p *Progress) Streak(today string) int {
	active := make(map[string]bool, len(p.History))
	for _, ds := range p.History {
		if ds.StudyCount > 0 || ds.QuizTotal > 0 {
			active[ds.Date] = true
		}
	}

	day, err := time.Parse(DateLayout, today)
	if err != nil {
		return 0
	}

	if !active[today] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for active[DateOf(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
