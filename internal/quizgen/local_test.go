package quizgen

import (
	"context"
	"errors"
	"testing"
)

func TestLocalSource_NotEnoughLearned(t *testing.T) {
	src := NewLocalSource()
	_, err := src.Next(context.Background(), Input{Learned: []string{"hiragana-a", "hiragana-i", "hiragana-u"}})
	if !errors.Is(err, ErrNotEnoughLearned) {
		t.Fatalf("expected ErrNotEnoughLearned, got: %v", err)
	}
}

func TestLocalSource_StaleIDsDoNotCount(t *testing.T) {
	src := NewLocalSource()
	learned := []string{"hiragana-a", "hiragana-i", "hiragana-u", "hiragana-gone"}
	_, err := src.Next(context.Background(), Input{Learned: learned})
	if !errors.Is(err, ErrNotEnoughLearned) {
		t.Fatalf("expected ErrNotEnoughLearned with a stale id, got: %v", err)
	}
}

func TestLocalSource_QuestionShape(t *testing.T) {
	src := NewLocalSource()

	for range 50 {
		q, err := src.Next(context.Background(), Input{Learned: learnedIDs})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(q.Options) != 4 {
			t.Fatalf("expected 4 options, got %v", q.Options)
		}
		seen := map[string]bool{}
		answerPresent := false
		for _, opt := range q.Options {
			if seen[opt] {
				t.Fatalf("duplicate option in %v", q.Options)
			}
			seen[opt] = true
			if opt == q.Answer {
				answerPresent = true
			}
		}
		if !answerPresent {
			t.Fatalf("answer %q missing from options %v", q.Answer, q.Options)
		}
	}
}

func TestLocalSource_TargetIsLearned(t *testing.T) {
	src := NewLocalSource()
	learnedSet := map[string]bool{}
	for _, id := range learnedIDs {
		learnedSet[id] = true
	}

	for range 50 {
		q, err := src.Next(context.Background(), Input{Learned: learnedIDs})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id := glyphID(q.Glyph)
		if !learnedSet[id] {
			t.Fatalf("target %q (%s) is not learned", q.Glyph, id)
		}
	}
}

func TestLocalSource_AntiRepeatWindow(t *testing.T) {
	src := NewLocalSource()
	recent := NewRecent(RecentWindow)

	// With 10 learned and a window of 7, consecutive draws inside the window
	// are impossible until the pool is exhausted.
	var last string
	for i := range 20 {
		q, err := src.Next(context.Background(), Input{Learned: learnedIDs, Recent: recent})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		id := glyphID(q.Glyph)
		if i > 0 && id == last {
			t.Fatalf("draw %d repeated %q immediately", i, id)
		}
		last = id
	}
}

func TestLocalSource_SaturatedWindowStillServes(t *testing.T) {
	src := NewLocalSource()
	recent := NewRecent(RecentWindow)

	// 4 learned, window 7: after a few draws everything learned is recent.
	// Generation must keep working rather than deadlock.
	small := learnedIDs[:4]
	for range 10 {
		if _, err := src.Next(context.Background(), Input{Learned: small, Recent: recent}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
