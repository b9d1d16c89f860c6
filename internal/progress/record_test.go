package progress

import (
	"testing"
	"time"
)

var quizDay = time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

func TestRecordAnswerCreatesTodayEntry(t *testing.T) {
	p := New()
	p.RecordAnswer(true, quizDay)

	ds := p.StatsFor(DateOf(quizDay))
	if ds.QuizTotal != 1 || ds.QuizCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", ds.QuizCorrect, ds.QuizTotal)
	}
	if ds.StudyCount != 0 {
		t.Errorf("StudyCount = %d, want 0", ds.StudyCount)
	}
	if len(ds.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(ds.Sessions))
	}
	if ds.Sessions[0].StartTime != ds.Sessions[0].EndTime {
		t.Error("single-answer burst should have equal start and end")
	}
}

func TestRecordAnswerMergesWithinGap(t *testing.T) {
	p := New()
	p.RecordAnswer(true, quizDay)
	p.RecordAnswer(false, quizDay.Add(2*time.Minute))

	ds := p.StatsFor(DateOf(quizDay))
	if len(ds.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1 merged burst", len(ds.Sessions))
	}
	b := ds.Sessions[0]
	if b.Total != 2 || b.Correct != 1 {
		t.Errorf("burst = %d/%d, want 1/2", b.Correct, b.Total)
	}
	if b.EndTime != quizDay.Add(2*time.Minute).UnixMilli() {
		t.Errorf("burst end not extended: %d", b.EndTime)
	}
}

func TestRecordAnswerSplitsAfterGap(t *testing.T) {
	p := New()
	p.RecordAnswer(true, quizDay)
	p.RecordAnswer(true, quizDay.Add(10*time.Minute))

	ds := p.StatsFor(DateOf(quizDay))
	if len(ds.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2 separate bursts", len(ds.Sessions))
	}
	if ds.Sessions[0].Total != 1 || ds.Sessions[1].Total != 1 {
		t.Errorf("burst totals = %d, %d; want 1, 1", ds.Sessions[0].Total, ds.Sessions[1].Total)
	}
}

func TestRecordAnswerExactGapStartsNewBurst(t *testing.T) {
	p := New()
	p.RecordAnswer(true, quizDay)
	// Exactly five minutes is outside the window (strictly less-than).
	p.RecordAnswer(true, quizDay.Add(BurstGap))

	ds := p.StatsFor(DateOf(quizDay))
	if len(ds.Sessions) != 2 {
		t.Errorf("sessions = %d, want 2", len(ds.Sessions))
	}
}

func TestRecordAnswerInvariants(t *testing.T) {
	p := New()
	times := []time.Duration{0, time.Minute, 3 * time.Minute, 20 * time.Minute, 21 * time.Minute}
	results := []bool{true, false, true, true, false}

	for i, d := range times {
		p.RecordAnswer(results[i], quizDay.Add(d))
	}

	ds := p.StatsFor(DateOf(quizDay))
	if ds.QuizCorrect > ds.QuizTotal {
		t.Errorf("QuizCorrect %d > QuizTotal %d", ds.QuizCorrect, ds.QuizTotal)
	}

	sumCorrect, sumTotal := 0, 0
	for _, b := range ds.Sessions {
		sumCorrect += b.Correct
		sumTotal += b.Total
	}
	if sumCorrect != ds.QuizCorrect || sumTotal != ds.QuizTotal {
		t.Errorf("burst sums %d/%d do not match day totals %d/%d",
			sumCorrect, sumTotal, ds.QuizCorrect, ds.QuizTotal)
	}
}

func TestRecordAnswerSeparateDays(t *testing.T) {
	p := New()
	p.RecordAnswer(true, quizDay)
	p.RecordAnswer(true, quizDay.AddDate(0, 0, 1))

	if len(p.History) != 2 {
		t.Fatalf("history entries = %d, want 2", len(p.History))
	}
	for _, ds := range p.History {
		if ds.QuizTotal != 1 {
			t.Errorf("day %s QuizTotal = %d, want 1", ds.Date, ds.QuizTotal)
		}
	}
}
