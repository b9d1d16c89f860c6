package progress

import "time"

// BurstGap is the inactivity window that closes a quiz burst. An answer
// landing within the gap of the last burst's end extends that burst.
const BurstGap = 5 * time.Minute

// RecordAnswer logs one quiz answer into today's history entry, updating the
// day's totals and the session bursts.
func (p *Progress) RecordAnswer(correct bool, now time.Time) {
	ds := p.statsFor(DateOf(now))

	ds.QuizTotal++
	if correct {
		ds.QuizCorrect++
	}

	ms := now.UnixMilli()
	n := len(ds.Sessions)
	if n > 0 && ms-ds.Sessions[n-1].EndTime < BurstGap.Milliseconds() {
		b := &ds.Sessions[n-1]
		b.EndTime = ms
		b.Total++
		if correct {
			b.Correct++
		}
		return
	}

	b := Burst{StartTime: ms, EndTime: ms, Total: 1}
	if correct {
		b.Correct = 1
	}
	ds.Sessions = append(ds.Sessions, b)
}
