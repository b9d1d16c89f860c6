package quizgen

import (
	"context"
	"errors"
	"testing"
)

// stubSource returns a fixed question or error.
type stubSource struct {
	q     *Question
	err   error
	calls int
}

func (s *stubSource) Next(_ context.Context, _ Input) (*Question, error) {
	s.calls++
	return s.q, s.err
}

func TestFallback_PrimarySuccess(t *testing.T) {
	primary := &stubSource{q: &Question{Glyph: "あ", Answer: "a", Options: []string{"a", "i", "u", "e"}}}
	secondary := &stubSource{q: &Question{Glyph: "か", Answer: "ka", Options: []string{"ka", "ki", "ku", "ke"}}}
	f := NewFallback(primary, secondary)

	q, err := f.Next(context.Background(), Input{Learned: learnedIDs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Glyph != "あ" {
		t.Fatalf("expected primary question, got %+v", q)
	}
	if secondary.calls != 0 {
		t.Fatal("secondary should not be consulted on primary success")
	}
}

func TestFallback_PrimaryFailureIsSilent(t *testing.T) {
	primary := &stubSource{err: errors.New("batch generation failed")}
	secondary := &stubSource{q: &Question{Glyph: "か", Answer: "ka", Options: []string{"ka", "ki", "ku", "ke"}}}
	f := NewFallback(primary, secondary)

	q, err := f.Next(context.Background(), Input{Learned: learnedIDs})
	if err != nil {
		t.Fatalf("fallback should hide primary errors, got: %v", err)
	}
	if q.Glyph != "か" {
		t.Fatalf("expected secondary question, got %+v", q)
	}
}

func TestFallback_NotEnoughLearnedPassesThrough(t *testing.T) {
	primary := &stubSource{err: ErrNotEnoughLearned}
	secondary := &stubSource{}
	f := NewFallback(primary, secondary)

	_, err := f.Next(context.Background(), Input{})
	if !errors.Is(err, ErrNotEnoughLearned) {
		t.Fatalf("expected ErrNotEnoughLearned, got: %v", err)
	}
	if secondary.calls != 0 {
		t.Fatal("soft state should not trigger fallback")
	}
}

func TestFallback_CancellationPassesThrough(t *testing.T) {
	primary := &stubSource{err: context.Canceled}
	secondary := &stubSource{}
	f := NewFallback(primary, secondary)

	_, err := f.Next(context.Background(), Input{Learned: learnedIDs})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if secondary.calls != 0 {
		t.Fatal("cancellation should not trigger fallback")
	}
}

func TestFallback_SecondaryErrorSurfaces(t *testing.T) {
	primary := &stubSource{err: errors.New("down")}
	secondary := &stubSource{err: ErrNoQuestion}
	f := NewFallback(primary, secondary)

	_, err := f.Next(context.Background(), Input{Learned: learnedIDs})
	if !errors.Is(err, ErrNoQuestion) {
		t.Fatalf("expected ErrNoQuestion, got: %v", err)
	}
}
