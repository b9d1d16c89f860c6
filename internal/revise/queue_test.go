package revise

import (
	"testing"

	"github.com/abhisek/kanazen/internal/progress"
)

func revisionProgress(ids ...string) *progress.Progress {
	prog := progress.New()
	for _, id := range ids {
		prog.AddToRevision(id)
	}
	return prog
}

func TestQueue_Empty(t *testing.T) {
	q := NewQueue(progress.New())
	if _, ok := q.Current(); ok {
		t.Fatal("empty revision list should have no current card")
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}
	// No-ops, must not panic.
	q.Keep()
	q.Mastered()
}

func TestQueue_KeepWraps(t *testing.T) {
	prog := revisionProgress("hiragana-a", "hiragana-ka", "hiragana-sa")
	q := NewQueue(prog)

	var seen []string
	for range 4 {
		ch, ok := q.Current()
		if !ok {
			t.Fatal("expected a current card")
		}
		seen = append(seen, ch.ID())
		q.Keep()
	}

	want := []string{"hiragana-a", "hiragana-ka", "hiragana-sa", "hiragana-a"}
	for i, id := range want {
		if seen[i] != id {
			t.Fatalf("cursor walk = %v, want %v", seen, want)
		}
	}
}

func TestQueue_MasteredRemovesOnly(t *testing.T) {
	prog := revisionProgress("hiragana-a", "hiragana-ka")
	q := NewQueue(prog)

	q.Mastered()

	if len(prog.RevisionList) != 1 || prog.RevisionList[0] != "hiragana-ka" {
		t.Fatalf("expected only hiragana-ka left, got %v", prog.RevisionList)
	}
	if prog.HasLearned("hiragana-a") {
		t.Fatal("mastering must not add to the learned set")
	}
	if ch, ok := q.Current(); !ok || ch.ID() != "hiragana-ka" {
		t.Fatalf("expected next card to slide under the cursor, got %v ok=%t", ch.ID(), ok)
	}
}

func TestQueue_MasteredLastItemWraps(t *testing.T) {
	prog := revisionProgress("hiragana-a", "hiragana-ka")
	q := NewQueue(prog)

	q.Keep() // cursor on hiragana-ka
	q.Mastered()

	if ch, ok := q.Current(); !ok || ch.ID() != "hiragana-a" {
		t.Fatalf("expected cursor to wrap to hiragana-a, got %v ok=%t", ch.ID(), ok)
	}

	q.Mastered()
	if _, ok := q.Current(); ok {
		t.Fatal("expected empty queue after mastering everything")
	}
}

func TestQueue_ExternalRemovalIsVisible(t *testing.T) {
	prog := revisionProgress("hiragana-a", "hiragana-ka", "hiragana-sa")
	q := NewQueue(prog)

	// MarkSeen elsewhere clears the review flag; the queue must not serve a
	// stale card.
	prog.RemoveFromRevision("hiragana-a")

	if ch, ok := q.Current(); !ok || ch.ID() != "hiragana-ka" {
		t.Fatalf("expected live list, got %v ok=%t", ch.ID(), ok)
	}
	if q.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", q.Len())
	}
}

func TestQueue_StaleIDsSkipped(t *testing.T) {
	prog := revisionProgress("hiragana-a", "hiragana-gone")
	q := NewQueue(prog)

	if q.Len() != 1 {
		t.Fatalf("expected unresolvable id dropped from view, got %d", q.Len())
	}
	if ch, _ := q.Current(); ch.ID() != "hiragana-a" {
		t.Fatalf("expected hiragana-a, got %s", ch.ID())
	}
}
