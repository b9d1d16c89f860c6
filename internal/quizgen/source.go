// Package quizgen produces multiple-choice character recognition questions.
// The local generator picks a learned character and builds distractors by a
// visual-confusion priority policy; an LLM-backed generator can serve the same
// contract with mandatory validation and silent fallback to the local one.
package quizgen

import (
	"context"
	"errors"
)

// MinLearnedForQuiz is the smallest learned set that can produce a 4-option
// question.
const MinLearnedForQuiz = 4

// optionCount is the number of options per question.
const optionCount = 4

// ErrNotEnoughLearned reports that fewer than four characters are learned.
// This is an expected steady state for new learners, not a failure; the UI
// renders it as a prompt to study first.
var ErrNotEnoughLearned = errors.New("fewer than 4 learned characters")

// ErrNoQuestion reports that no valid question could be built for the chosen
// target (distractor shortage). Callers retry with another target or fall
// back to the not-enough-data state; they never crash on it.
var ErrNoQuestion = errors.New("no question available")

// Question is one multiple-choice question. Ephemeral; never persisted.
type Question struct {
	// Glyph is the displayed character.
	Glyph string

	// Answer is the correct romaji reading.
	Answer string

	// Options holds 4 distinct romaji including Answer, in display order.
	// The position of Answer is uniformly random.
	Options []string
}

// Input carries the learner context for one generation call. Recent is
// explicit state owned by the caller so that generators stay free of package
// level mutable state and tests can construct isolated instances.
type Input struct {
	// Learned is the learner's set of known composite ids.
	Learned []string

	// Recent is the anti-repeat window, updated in place by the generator.
	// May be nil, in which case no repeat suppression happens.
	Recent *Recent
}

// Source produces quiz questions. Implementations: LocalSource (deterministic
// policy over the catalog) and LLMSource (remote batch generation), composed
// through Fallback.
type Source interface {
	// Next returns the next question for the learner. It returns
	// ErrNotEnoughLearned or ErrNoQuestion for the expected soft states.
	Next(ctx context.Context, in Input) (*Question, error)
}
