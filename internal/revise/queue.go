// Package revise presents the revision list as a wrapping queue of cards.
package revise

import (
	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/progress"
)

// Queue is a display cursor over the live revision list. It holds no copy of
// the list; every read resolves the current progress state, so removals made
// elsewhere are picked up immediately.
type Queue struct {
	prog   *progress.Progress
	cursor int
}

// NewQueue creates a queue over the progress state.
func NewQueue(prog *progress.Progress) *Queue {
	return &Queue{prog: prog}
}

// Len returns the number of revision items that resolve in the catalog.
func (q *Queue) Len() int {
	return len(q.items())
}

// Current returns the character under the cursor. ok is false when the
// revision list is empty.
func (q *Queue) Current() (catalog.Character, bool) {
	items := q.items()
	if len(items) == 0 {
		return catalog.Character{}, false
	}
	q.clamp(len(items))
	return items[q.cursor], true
}

// Keep advances the cursor without touching state, wrapping at the end.
func (q *Queue) Keep() {
	n := q.Len()
	if n == 0 {
		return
	}
	q.cursor = (q.cursor + 1) % n
}

// Mastered removes the current character from the revision list. It does not
// add the character to the learned set; clearing the review flag is all that
// mastering means here. The cursor stays put so the next item slides into
// place, wrapping when the last item was removed.
func (q *Queue) Mastered() {
	ch, ok := q.Current()
	if !ok {
		return
	}
	q.prog.RemoveFromRevision(ch.ID())
	if n := q.Len(); n > 0 {
		q.clamp(n)
	} else {
		q.cursor = 0
	}
}

func (q *Queue) items() []catalog.Character {
	return catalog.Resolve(q.prog.RevisionList)
}

func (q *Queue) clamp(n int) {
	if q.cursor >= n {
		q.cursor = 0
	}
}
