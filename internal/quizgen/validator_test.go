package quizgen

import (
	"testing"

	"github.com/abhisek/kanazen/internal/catalog"
)

func studyList(t *testing.T) []catalog.Character {
	t.Helper()
	return catalog.Resolve(learnedIDs)
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			name: "valid",
			q:    Question{Glyph: "あ", Answer: "a", Options: []string{"a", "i", "u", "e"}},
		},
		{
			name:    "wrong option count",
			q:       Question{Glyph: "あ", Answer: "a", Options: []string{"a", "i", "u"}},
			wantErr: true,
		},
		{
			name:    "duplicate option",
			q:       Question{Glyph: "あ", Answer: "a", Options: []string{"a", "a", "i", "u"}},
			wantErr: true,
		},
		{
			name:    "answer missing from options",
			q:       Question{Glyph: "あ", Answer: "a", Options: []string{"i", "u", "e", "o"}},
			wantErr: true,
		},
		{
			name:    "glyph not studied",
			q:       Question{Glyph: "山", Answer: "yama", Options: []string{"yama", "a", "i", "u"}},
			wantErr: true,
		},
		{
			name:    "answer contradicts catalog",
			q:       Question{Glyph: "あ", Answer: "i", Options: []string{"i", "u", "e", "o"}},
			wantErr: true,
		},
		{
			name:    "distractor outside study list",
			q:       Question{Glyph: "あ", Answer: "a", Options: []string{"a", "zz", "i", "u"}},
			wantErr: true,
		},
		{
			name:    "empty option",
			q:       Question{Glyph: "あ", Answer: "a", Options: []string{"a", "", "i", "u"}},
			wantErr: true,
		},
		{
			name:    "empty glyph",
			q:       Question{Glyph: "", Answer: "a", Options: []string{"a", "i", "u", "e"}},
			wantErr: true,
		},
	}

	learned := studyList(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestion(&tt.q, learned)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
