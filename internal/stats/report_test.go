package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/progress"
)

func day(s string) time.Time {
	t, err := time.Parse(progress.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuild_Totals(t *testing.T) {
	p := progress.New()
	p.MarkSeen("hiragana-a", day("2026-03-12"))
	p.MarkSeen("hiragana-i", day("2026-03-12"))
	p.MarkSeen("katakana-a", day("2026-03-13"))
	p.AddToRevision("hiragana-ka")

	p.RecordAnswer(true, day("2026-03-13").Add(10*time.Hour))
	p.RecordAnswer(false, day("2026-03-13").Add(10*time.Hour).Add(time.Minute))

	r := Build(p, "2026-03-13")

	if r.LearnedCount != 3 {
		t.Errorf("learned = %d, want 3", r.LearnedCount)
	}
	if r.CatalogCount != catalog.Count() {
		t.Errorf("catalog = %d, want %d", r.CatalogCount, catalog.Count())
	}
	if r.RevisionCount != 1 {
		t.Errorf("revision = %d, want 1", r.RevisionCount)
	}
	if r.TotalStudied != 3 {
		t.Errorf("studied = %d, want 3", r.TotalStudied)
	}
	if r.QuizCorrect != 1 || r.QuizTotal != 2 {
		t.Errorf("quiz = %d/%d, want 1/2", r.QuizCorrect, r.QuizTotal)
	}
	if got := r.Accuracy(); got != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", got)
	}
}

func TestBuild_PerScript(t *testing.T) {
	p := progress.New()
	p.MarkSeen("hiragana-a", day("2026-03-12"))
	p.MarkSeen("katakana-a", day("2026-03-12"))
	p.MarkSeen("kanji-yama", day("2026-03-12"))

	r := Build(p, "2026-03-12")

	if len(r.PerScript) != 3 {
		t.Fatalf("expected 3 script rows, got %d", len(r.PerScript))
	}
	for _, sp := range r.PerScript {
		if sp.Learned != 1 {
			t.Errorf("%s learned = %d, want 1", sp.Script, sp.Learned)
		}
		if sp.Total != len(catalog.ByScript(sp.Script)) {
			t.Errorf("%s total = %d, want %d", sp.Script, sp.Total, len(catalog.ByScript(sp.Script)))
		}
	}
}

func TestBuild_Streaks(t *testing.T) {
	p := progress.New()
	// Three consecutive days, a gap, then two more.
	for _, d := range []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-07", "2026-03-08"} {
		p.RecordAnswer(true, day(d).Add(9*time.Hour))
	}

	r := Build(p, "2026-03-08")
	if r.BestStreak != 3 {
		t.Errorf("best streak = %d, want 3", r.BestStreak)
	}
	if r.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", r.CurrentStreak)
	}
}

func TestBuild_DaysSortedOldestFirst(t *testing.T) {
	p := progress.New()
	p.RecordAnswer(true, day("2026-03-05").Add(9*time.Hour))
	p.RecordAnswer(true, day("2026-03-01").Add(9*time.Hour))

	r := Build(p, "2026-03-05")
	if len(r.Days) != 2 || r.Days[0].Date != "2026-03-01" {
		t.Fatalf("days = %v, want oldest first", r.Days)
	}
}

func TestBuild_StaleIDsExcluded(t *testing.T) {
	p := progress.New()
	p.Learned = append(p.Learned, "hiragana-a", "hiragana-gone")

	r := Build(p, "2026-03-05")
	if r.LearnedCount != 1 {
		t.Errorf("learned = %d, want stale id excluded", r.LearnedCount)
	}
}

func TestRender(t *testing.T) {
	p := progress.New()
	p.MarkSeen("hiragana-a", day("2026-03-12"))
	p.RecordAnswer(true, day("2026-03-12").Add(9*time.Hour))

	var b strings.Builder
	if err := Render(&b, Build(p, "2026-03-12")); err != nil {
		t.Fatalf("render: %v", err)
	}

	out := b.String()
	for _, want := range []string{"Summary", "Learned: 1/", "History", "2026-03-12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTable_DoubleWidthGlyphs(t *testing.T) {
	lines := formatTable(
		[]string{"Char", "Reading"},
		[][]string{
			{"し", "shi"},
			{"か", "ka"},
		},
		nil,
	)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	// A kana occupies two cells; both reading columns must start at the same
	// terminal column.
	if idx1, idx2 := strings.Index(lines[1], "shi"), strings.Index(lines[2], "ka"); idx1 != idx2 {
		t.Errorf("misaligned columns:\n%s\n%s", lines[1], lines[2])
	}
}
