package quizgen

import (
	"context"

	"github.com/abhisek/kanazen/internal/catalog"
)

// LocalSource generates questions from the catalog with the distractor
// priority policy. It is stateless; the anti-repeat window travels in Input.
type LocalSource struct{}

// NewLocalSource creates a LocalSource.
func NewLocalSource() *LocalSource {
	return &LocalSource{}
}

var _ Source = (*LocalSource)(nil)

// Next picks a learned character (preferring ones outside the recent window)
// and builds its 4-option question. Distractors are sourced from the full
// catalog under the same-script constraints; they need not be learned.
func (s *LocalSource) Next(_ context.Context, in Input) (*Question, error) {
	pool := catalog.Resolve(in.Learned)
	if len(pool) < MinLearnedForQuiz {
		return nil, ErrNotEnoughLearned
	}

	target := pickTarget(pool, in.Recent)
	if in.Recent != nil {
		in.Recent.Remember(target.ID())
	}

	distractors := SelectDistractors(target, catalog.All())
	if len(distractors) < maxDistractors {
		return nil, ErrNoQuestion
	}

	options := append([]string{target.Romaji}, distractors...)
	shuffle(options)

	return &Question{
		Glyph:   target.Glyph,
		Answer:  target.Romaji,
		Options: options,
	}, nil
}

// pickTarget draws uniformly from the learned pool, preferring characters not
// in the recent window. When everything learned is recent (tiny learned
// sets), the full pool is used so the quiz still makes progress.
func pickTarget(pool []catalog.Character, recent *Recent) catalog.Character {
	if recent == nil {
		return pool[randInt(len(pool))]
	}

	var fresh []catalog.Character
	for _, ch := range pool {
		if !recent.Contains(ch.ID()) {
			fresh = append(fresh, ch)
		}
	}
	if len(fresh) == 0 {
		fresh = pool
	}
	return fresh[randInt(len(fresh))]
}
