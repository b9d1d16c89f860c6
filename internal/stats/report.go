// Package stats aggregates progress history for the stats screen and the
// `kanazen stats` command.
package stats

import (
	"sort"
	"time"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/progress"
)

// ScriptProgress counts learned characters within one script.
type ScriptProgress struct {
	Script  catalog.Script
	Learned int
	Total   int
}

// DayLine is one history row, oldest first in Report.Days.
type DayLine struct {
	Date        string
	StudyCount  int
	QuizCorrect int
	QuizTotal   int
	Sessions    int
}

// Report is the aggregated view of one profile's history.
type Report struct {
	LearnedCount  int
	CatalogCount  int
	RevisionCount int
	PerScript     []ScriptProgress

	TotalStudied int
	QuizCorrect  int
	QuizTotal    int

	CurrentStreak int
	BestStreak    int

	Days []DayLine
}

// Accuracy returns the all-time quiz accuracy in [0, 1].
func (r Report) Accuracy() float64 {
	if r.QuizTotal == 0 {
		return 0
	}
	return float64(r.QuizCorrect) / float64(r.QuizTotal)
}

// Build aggregates the progress state as of today (ISO date).
func Build(p *progress.Progress, today string) Report {
	r := Report{
		LearnedCount:  len(catalog.Resolve(p.Learned)),
		CatalogCount:  catalog.Count(),
		RevisionCount: len(catalog.Resolve(p.RevisionList)),
		CurrentStreak: p.Streak(today),
	}

	learned := p.LearnedSet()
	for _, script := range catalog.AllScripts() {
		sp := ScriptProgress{Script: script}
		for _, ch := range catalog.ByScript(script) {
			sp.Total++
			if learned[ch.ID()] {
				sp.Learned++
			}
		}
		r.PerScript = append(r.PerScript, sp)
	}

	days := make([]DayLine, 0, len(p.History))
	for _, ds := range p.History {
		r.TotalStudied += ds.StudyCount
		r.QuizCorrect += ds.QuizCorrect
		r.QuizTotal += ds.QuizTotal
		days = append(days, DayLine{
			Date:        ds.Date,
			StudyCount:  ds.StudyCount,
			QuizCorrect: ds.QuizCorrect,
			QuizTotal:   ds.QuizTotal,
			Sessions:    len(ds.Sessions),
		})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	r.Days = days

	r.BestStreak = bestStreak(days)
	return r
}

// bestStreak finds the longest run of consecutive active calendar days.
func bestStreak(days []DayLine) int {
	best, run := 0, 0
	var prev time.Time

	for _, d := range days {
		if d.StudyCount == 0 && d.QuizTotal == 0 {
			continue
		}
		day, err := time.Parse(progress.DateLayout, d.Date)
		if err != nil {
			continue
		}
		if run > 0 && day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = day
	}
	return best
}
