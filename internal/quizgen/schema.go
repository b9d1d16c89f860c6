package quizgen

import "github.com/abhisek/kanazen/internal/llm"

// BatchSchema defines the JSON schema for LLM quiz batch responses.
var BatchSchema = &llm.Schema{
	Name:        "kana-quiz-batch",
	Description: "A batch of multiple-choice reading questions for Japanese characters",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, one per character",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"glyph": map[string]any{
							"type":        "string",
							"description": "The Japanese character being tested, exactly as given in the study list",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The correct romaji reading of the glyph",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 romaji options including the answer, in display order",
						},
					},
					"required":             []any{"glyph", "answer", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
