package study

import (
	"testing"
	"time"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/progress"
)

var sessionStart = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestNew_QueueIsCatalogOrderBoundedByQuota(t *testing.T) {
	prog := progress.New()
	c := New(prog, sessionStart, false)

	if done, _ := c.Done(); done {
		t.Fatal("fresh profile should start a session")
	}
	if c.Size() != progress.DefaultDailyGoal {
		t.Fatalf("expected queue of %d, got %d", progress.DefaultDailyGoal, c.Size())
	}

	all := catalog.All()
	for i, ch := range c.Queue() {
		if ch.ID() != all[i].ID() {
			t.Fatalf("queue[%d] = %s, want catalog order %s", i, ch.ID(), all[i].ID())
		}
	}
}

func TestNew_SkipsLearnedCharacters(t *testing.T) {
	all := catalog.All()

	prog := progress.New()
	prog.MarkSeen(all[0].ID(), sessionStart.AddDate(0, 0, -1))
	prog.MarkSeen(all[2].ID(), sessionStart.AddDate(0, 0, -1))

	c := New(prog, sessionStart, false)
	queue := c.Queue()

	want := []string{all[1].ID(), all[3].ID(), all[4].ID(), all[5].ID(), all[6].ID()}
	if len(queue) != len(want) {
		t.Fatalf("expected %d queued, got %d", len(want), len(queue))
	}
	for i, ch := range queue {
		if ch.ID() != want[i] {
			t.Fatalf("queue[%d] = %s, want %s", i, ch.ID(), want[i])
		}
	}
}

func TestNew_InitIsIdempotent(t *testing.T) {
	prog := progress.New()
	prog.MarkSeen(catalog.All()[0].ID(), sessionStart.AddDate(0, 0, -1))

	a := New(prog, sessionStart, false)
	b := New(prog, sessionStart, false)

	if a.Size() != b.Size() {
		t.Fatalf("queue sizes differ: %d vs %d", a.Size(), b.Size())
	}
	for i := range a.Queue() {
		if a.Queue()[i].ID() != b.Queue()[i].ID() {
			t.Fatalf("queues differ at %d", i)
		}
	}
}

func TestNew_QuotaExhaustedToday(t *testing.T) {
	prog := progress.New()
	for _, ch := range catalog.All()[:progress.DefaultDailyGoal] {
		prog.MarkSeen(ch.ID(), sessionStart)
	}

	c := New(prog, sessionStart, false)
	done, reason := c.Done()
	if !done {
		t.Fatal("expected immediate completion")
	}
	if reason != QuotaReached {
		t.Fatalf("expected QuotaReached, got %v", reason)
	}
}

func TestNew_QuotaRollsOverNextDay(t *testing.T) {
	prog := progress.New()
	for _, ch := range catalog.All()[:progress.DefaultDailyGoal] {
		prog.MarkSeen(ch.ID(), sessionStart)
	}

	tomorrow := sessionStart.AddDate(0, 0, 1)
	c := New(prog, tomorrow, false)
	if done, _ := c.Done(); done {
		t.Fatal("quota should reset on a new day")
	}
	if c.Size() != progress.DefaultDailyGoal {
		t.Fatalf("expected full quota of %d, got %d", progress.DefaultDailyGoal, c.Size())
	}
}

func TestNew_AllLearned(t *testing.T) {
	prog := progress.New()
	for _, ch := range catalog.All() {
		prog.Learned = append(prog.Learned, ch.ID())
	}

	c := New(prog, sessionStart, false)
	done, reason := c.Done()
	if !done {
		t.Fatal("expected completion with everything learned")
	}
	if reason != AllLearned {
		t.Fatalf("expected AllLearned, got %v", reason)
	}
}

func TestNew_BonusUnlocksFullCatalog(t *testing.T) {
	prog := progress.New()
	for _, ch := range catalog.All()[:progress.DefaultDailyGoal] {
		prog.MarkSeen(ch.ID(), sessionStart)
	}

	c := New(prog, sessionStart, true)
	if done, _ := c.Done(); done {
		t.Fatal("bonus session should ignore the spent quota")
	}
	if c.Size() != catalog.Count()-progress.DefaultDailyGoal {
		t.Fatalf("expected all %d unlearned queued, got %d",
			catalog.Count()-progress.DefaultDailyGoal, c.Size())
	}
}

func TestMarkSeen_AdvancesAndMutates(t *testing.T) {
	prog := progress.New()
	c := New(prog, sessionStart, false)

	first, ok := c.Current()
	if !ok {
		t.Fatal("expected a current character")
	}
	prog.AddToRevision(first.ID())

	c.MarkSeen(sessionStart)

	if !prog.HasLearned(first.ID()) {
		t.Fatal("MarkSeen should add to learned")
	}
	for _, id := range prog.RevisionList {
		if id == first.ID() {
			t.Fatal("MarkSeen should clear the revision flag")
		}
	}
	if got := prog.EffectiveCount(progress.DateOf(sessionStart)); got != 1 {
		t.Fatalf("expected daily count 1, got %d", got)
	}

	second, ok := c.Current()
	if !ok || second.ID() == first.ID() {
		t.Fatalf("expected cursor to advance, got %v ok=%t", second.ID(), ok)
	}
	if c.Remaining() != c.Size()-1 {
		t.Fatalf("expected %d remaining, got %d", c.Size()-1, c.Remaining())
	}
}

func TestMarkForRevision_NoQuotaConsumed(t *testing.T) {
	prog := progress.New()
	c := New(prog, sessionStart, false)

	first, _ := c.Current()
	c.MarkForRevision()

	if prog.HasLearned(first.ID()) {
		t.Fatal("MarkForRevision must not add to learned")
	}
	found := false
	for _, id := range prog.RevisionList {
		if id == first.ID() {
			found = true
		}
	}
	if !found {
		t.Fatal("expected id in revision list")
	}
	if got := prog.EffectiveCount(progress.DateOf(sessionStart)); got != 0 {
		t.Fatalf("expected daily count 0, got %d", got)
	}
	if second, _ := c.Current(); second.ID() == first.ID() {
		t.Fatal("expected cursor to advance")
	}
}

func TestSession_CompletesAfterQueueConsumed(t *testing.T) {
	prog := progress.New()
	c := New(prog, sessionStart, false)

	for {
		if done, reason := c.Done(); done {
			if reason != QuotaReached {
				t.Fatalf("expected QuotaReached with unlearned remaining, got %v", reason)
			}
			break
		}
		c.MarkSeen(sessionStart)
	}

	if len(prog.Learned) != progress.DefaultDailyGoal {
		t.Fatalf("expected %d learned, got %d", progress.DefaultDailyGoal, len(prog.Learned))
	}

	// Re-entry after completion starts no new session today.
	again := New(prog, sessionStart, false)
	if done, reason := again.Done(); !done || reason != QuotaReached {
		t.Fatalf("expected immediate QuotaReached on re-entry, got done=%t reason=%v", done, reason)
	}
}
