package quizgen

import (
	"context"
	"errors"
)

// Fallback serves questions from a primary source and silently falls back to
// a secondary one when the primary fails. The soft states (not enough
// learned, no question from either source) pass through unchanged so the UI
// can render them; everything else is swallowed. The learner never sees an
// AI error.
type Fallback struct {
	primary   Source
	secondary Source
}

// NewFallback composes primary over secondary.
func NewFallback(primary, secondary Source) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

var _ Source = (*Fallback)(nil)

func (f *Fallback) Next(ctx context.Context, in Input) (*Question, error) {
	q, err := f.primary.Next(ctx, in)
	if err == nil {
		return q, nil
	}

	// Cancellation means the caller moved on; do not burn a local question.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	if errors.Is(err, ErrNotEnoughLearned) {
		return nil, err
	}

	return f.secondary.Next(ctx, in)
}
