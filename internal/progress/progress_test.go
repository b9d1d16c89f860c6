package progress

import (
	"testing"
	"time"
)

func TestDecodeMergesOverDefaults(t *testing.T) {
	// A minimal legacy blob: no history, no settings.
	blob := []byte(`{"learned":["hiragana-a"],"revisionList":[],"dailyProgress":{"date":"2026-08-27","count":2}}`)

	p, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(p.Learned) != 1 || p.Learned[0] != "hiragana-a" {
		t.Errorf("Learned = %v, want [hiragana-a]", p.Learned)
	}
	if p.History == nil && len(p.History) != 0 {
		t.Errorf("History = %v, want empty", p.History)
	}
	if p.Settings.DailyGoal != DefaultDailyGoal {
		t.Errorf("DailyGoal = %d, want default %d", p.Settings.DailyGoal, DefaultDailyGoal)
	}
	if p.DailyProgress.Count != 2 {
		t.Errorf("DailyProgress.Count = %d, want 2", p.DailyProgress.Count)
	}
}

func TestDecodeCorruptBlobYieldsDefaults(t *testing.T) {
	p, err := Decode([]byte(`{not json`))
	if err == nil {
		t.Fatal("Decode() of corrupt blob returned nil error")
	}
	if p == nil {
		t.Fatal("Decode() of corrupt blob returned nil progress")
	}
	if len(p.Learned) != 0 || len(p.RevisionList) != 0 {
		t.Errorf("corrupt blob did not yield empty sets: %v %v", p.Learned, p.RevisionList)
	}
	if p.Settings.DailyGoal != DefaultDailyGoal {
		t.Errorf("DailyGoal = %d, want %d", p.Settings.DailyGoal, DefaultDailyGoal)
	}
}

func TestDecodeRepairsBadGoal(t *testing.T) {
	p, err := Decode([]byte(`{"settings":{"dailyGoal":0}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if p.Settings.DailyGoal != DefaultDailyGoal {
		t.Errorf("DailyGoal = %d, want repaired default %d", p.Settings.DailyGoal, DefaultDailyGoal)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := New()
	p.MarkSeen("hiragana-a", time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	p.AddToRevision("hiragana-shi")

	data, err := p.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.HasLearned("hiragana-a") {
		t.Error("round trip lost learned id")
	}
	if len(got.RevisionList) != 1 || got.RevisionList[0] != "hiragana-shi" {
		t.Errorf("RevisionList = %v, want [hiragana-shi]", got.RevisionList)
	}
}

func TestMarkSeen(t *testing.T) {
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	today := DateOf(now)

	p := New()
	p.AddToRevision("hiragana-ro")

	p.MarkSeen("hiragana-ro", now)

	if !p.HasLearned("hiragana-ro") {
		t.Error("learned set missing marked id")
	}
	if contains(p.RevisionList, "hiragana-ro") {
		t.Error("revision list still contains marked id")
	}
	if got := p.EffectiveCount(today); got != 1 {
		t.Errorf("EffectiveCount = %d, want 1", got)
	}
	if got := p.StatsFor(today).StudyCount; got != 1 {
		t.Errorf("StudyCount = %d, want 1", got)
	}

	// Marking the same id again must not duplicate the learned entry but
	// still counts against the quota (a second card was flipped).
	p.MarkSeen("hiragana-ro", now.Add(time.Minute))
	n := 0
	for _, id := range p.Learned {
		if id == "hiragana-ro" {
			n++
		}
	}
	if n != 1 {
		t.Errorf("learned set has %d copies of id, want 1", n)
	}
}

func TestMarkSeenRollsOverCounter(t *testing.T) {
	p := New()
	p.DailyProgress = DailyProgress{Date: "2026-08-27", Count: 4}

	now := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)
	p.MarkSeen("katakana-no", now)

	if p.DailyProgress.Date != "2026-08-28" {
		t.Errorf("counter date = %q, want 2026-08-28", p.DailyProgress.Date)
	}
	if p.DailyProgress.Count != 1 {
		t.Errorf("counter = %d, want reset-then-1", p.DailyProgress.Count)
	}
}

func TestEffectiveCounter(t *testing.T) {
	tests := []struct {
		name   string
		stored DailyProgress
		today  string
		want   int
	}{
		{"same day", DailyProgress{Date: "2026-08-28", Count: 3}, "2026-08-28", 3},
		{"stale day", DailyProgress{Date: "2026-08-27", Count: 3}, "2026-08-28", 0},
		{"empty stored", DailyProgress{}, "2026-08-28", 0},
	}

	for _, tt := range tests {
		got := EffectiveCounter(tt.stored, tt.today)
		if got.Count != tt.want {
			t.Errorf("%s: count = %d, want %d", tt.name, got.Count, tt.want)
		}
		if got.Date != tt.today {
			t.Errorf("%s: date = %q, want %q", tt.name, got.Date, tt.today)
		}
	}
}

func TestSetDailyGoalClamps(t *testing.T) {
	p := New()
	p.SetDailyGoal(0)
	if p.Settings.DailyGoal != 1 {
		t.Errorf("DailyGoal = %d, want clamp to 1", p.Settings.DailyGoal)
	}
	p.SetDailyGoal(12)
	if p.Settings.DailyGoal != 12 {
		t.Errorf("DailyGoal = %d, want 12", p.Settings.DailyGoal)
	}
}

func TestUnlearn(t *testing.T) {
	p := New()
	p.MarkSeen("kanji-yama", time.Now())
	p.Unlearn("kanji-yama")
	if p.HasLearned("kanji-yama") {
		t.Error("Unlearn left id in learned set")
	}
}

func TestStreak(t *testing.T) {
	p := New()
	p.History = []DailyStats{
		{Date: "2026-08-25", StudyCount: 2},
		{Date: "2026-08-26", QuizTotal: 4, QuizCorrect: 3},
		{Date: "2026-08-27", StudyCount: 1},
	}

	// Today inactive: streak ending yesterday still counts.
	if got := p.Streak("2026-08-28"); got != 3 {
		t.Errorf("Streak = %d, want 3", got)
	}

	// Active today extends it.
	p.History = append(p.History, DailyStats{Date: "2026-08-28", StudyCount: 1})
	if got := p.Streak("2026-08-28"); got != 4 {
		t.Errorf("Streak = %d, want 4", got)
	}

	// A gap breaks it.
	p.History = []DailyStats{
		{Date: "2026-08-20", StudyCount: 5},
		{Date: "2026-08-27", StudyCount: 1},
	}
	if got := p.Streak("2026-08-28"); got != 1 {
		t.Errorf("Streak after gap = %d, want 1", got)
	}

	if got := New().Streak("2026-08-28"); got != 0 {
		t.Errorf("empty Streak = %d, want 0", got)
	}
}
