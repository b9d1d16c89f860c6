package quizgen

import (
	"fmt"

	"github.com/abhisek/kanazen/internal/catalog"
)

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Glyph   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %q: %s", e.Glyph, e.Message)
}

// validateQuestion checks a single LLM-generated question against the
// catalog and the learner's study list. Failures drop the question; the
// rest of the batch is unaffected.
func validateQuestion(q *Question, learned []catalog.Character) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Glyph: q.Glyph, Message: msg}
	}

	if q.Glyph == "" {
		return fail("empty glyph")
	}
	if len(q.Options) != optionCount {
		return fail(fmt.Sprintf("expected %d options, got %d", optionCount, len(q.Options)))
	}

	seen := make(map[string]bool, len(q.Options))
	answerPresent := false
	for _, opt := range q.Options {
		if opt == "" {
			return fail("empty option")
		}
		if seen[opt] {
			return fail(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[opt] = true
		if opt == q.Answer {
			answerPresent = true
		}
	}
	if !answerPresent {
		return fail("answer not among options")
	}

	// The glyph must be a studied character, and the claimed answer must be
	// its catalog reading. This is what stops a hallucinated reading from
	// ever reaching the quiz screen.
	var target *catalog.Character
	for i := range learned {
		if learned[i].Glyph == q.Glyph {
			target = &learned[i]
			break
		}
	}
	if target == nil {
		return fail("glyph not in study list")
	}
	if target.Romaji != q.Answer {
		return fail(fmt.Sprintf("answer %q does not match catalog reading %q", q.Answer, target.Romaji))
	}

	// Distractors must be readings of studied characters too.
	studied := make(map[string]bool, len(learned))
	for _, ch := range learned {
		studied[ch.Romaji] = true
	}
	for _, opt := range q.Options {
		if !studied[opt] {
			return fail(fmt.Sprintf("option %q is not a studied reading", opt))
		}
	}

	return nil
}
