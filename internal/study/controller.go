// Package study drives one flashcard session over the unlearned part of the
// catalog, bounded by the daily new-card quota.
package study

import (
	"time"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/progress"
)

// Reason explains why a session is complete.
type Reason int

const (
	// QuotaReached means today's new-card quota is used up while unlearned
	// characters remain.
	QuotaReached Reason = iota

	// AllLearned means the whole catalog is learned.
	AllLearned
)

// Controller is the state machine for one study session. It is built fresh on
// every session open from the current progress state; there is no resumable
// cursor, which is what makes re-entry idempotent.
type Controller struct {
	prog   *progress.Progress
	queue  []catalog.Character
	cursor int
	reason Reason
}

// New computes the session queue from the progress state at time now. The
// queue holds the first remainingQuota unlearned characters in catalog order.
// bonusUnlocked lifts the quota for the rest of the day.
func New(prog *progress.Progress, now time.Time, bonusUnlocked bool) *Controller {
	c := &Controller{prog: prog}

	learned := prog.LearnedSet()
	var unlearned []catalog.Character
	for _, ch := range catalog.All() {
		if !learned[ch.ID()] {
			unlearned = append(unlearned, ch)
		}
	}

	if len(unlearned) == 0 {
		c.reason = AllLearned
		return c
	}

	quota := prog.Settings.DailyGoal - prog.EffectiveCount(progress.DateOf(now))
	if quota < 0 {
		quota = 0
	}
	if bonusUnlocked {
		quota = len(unlearned)
	}

	if quota == 0 {
		c.reason = QuotaReached
		return c
	}
	if quota > len(unlearned) {
		quota = len(unlearned)
	}

	c.queue = unlearned[:quota]
	return c
}

// Done reports whether the session is complete and why. Reason is only
// meaningful when done.
func (c *Controller) Done() (bool, Reason) {
	if c.cursor >= len(c.queue) {
		return true, c.completionReason()
	}
	return false, 0
}

func (c *Controller) completionReason() Reason {
	if len(c.queue) == 0 {
		return c.reason
	}
	// Queue existed and was consumed. The whole catalog may now be learned.
	learned := c.prog.LearnedSet()
	for _, ch := range catalog.All() {
		if !learned[ch.ID()] {
			return QuotaReached
		}
	}
	return AllLearned
}

// Current returns the character at the head of the queue. ok is false when
// the session is complete.
func (c *Controller) Current() (catalog.Character, bool) {
	if c.cursor >= len(c.queue) {
		return catalog.Character{}, false
	}
	return c.queue[c.cursor], true
}

// Remaining returns the number of characters left in the queue, including the
// current one.
func (c *Controller) Remaining() int {
	if c.cursor >= len(c.queue) {
		return 0
	}
	return len(c.queue) - c.cursor
}

// Size returns the total queue length for this session.
func (c *Controller) Size() int {
	return len(c.queue)
}

// MarkSeen records the current character as learned and advances the queue.
func (c *Controller) MarkSeen(now time.Time) {
	ch, ok := c.Current()
	if !ok {
		return
	}
	c.prog.MarkSeen(ch.ID(), now)
	c.cursor++
}

// MarkForRevision flags the current character for review without counting it
// against the quota, then advances the queue.
func (c *Controller) MarkForRevision() {
	ch, ok := c.Current()
	if !ok {
		return
	}
	c.prog.AddToRevision(ch.ID())
	c.cursor++
}

// Queue returns the session queue in order. The slice is shared; callers
// must not mutate it.
func (c *Controller) Queue() []catalog.Character {
	return c.queue
}
