package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/kanazen/internal/catalog"
)

const systemPrompt = `You are a Japanese tutor creating reading quizzes for beginners learning kana and basic kanji.

Rules:
- For each character in the study list, generate one multiple-choice question: show the character, ask for its romaji reading.
- Each question has exactly 4 options. Exactly one is the correct reading.
- Distractors must be real romaji readings drawn from the learner's study list, preferring visually or phonetically confusable characters (e.g. shi/tsu, ro/ru, n/ri).
- Never repeat an option within a question.
- Use only the characters given in the study list. Do not introduce characters the learner has not studied.
- Use lowercase Hepburn romaji exactly as written in the study list.`

// buildBatchMessage constructs the user message asking for count questions
// over the learner's studied characters.
func buildBatchMessage(learned []catalog.Character, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d questions.\n\nStudy list:\n", count)
	for _, ch := range learned {
		fmt.Fprintf(&b, "- %s (%s, %s)\n", ch.Glyph, ch.Romaji, ch.Script)
	}

	return strings.TrimRight(b.String(), "\n")
}
