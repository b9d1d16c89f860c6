package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/kanazen/internal/llm"
)

// learnedIDs is a study list large enough for quiz generation: the vowel row
// plus the ka row of hiragana.
var learnedIDs = []string{
	"hiragana-a", "hiragana-i", "hiragana-u", "hiragana-e", "hiragana-o",
	"hiragana-ka", "hiragana-ki", "hiragana-ku", "hiragana-ke", "hiragana-ko",
}

func batchJSON(t *testing.T, questions ...map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"questions": questions})
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return raw
}

func TestLLMSource_ServesValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t,
			map[string]any{"glyph": "あ", "answer": "a", "options": []string{"a", "i", "u", "e"}},
			map[string]any{"glyph": "か", "answer": "ka", "options": []string{"ki", "ka", "ku", "ke"}},
		),
	})
	src := NewLLMSource(mock, DefaultRemoteConfig())

	q, err := src.Next(context.Background(), Input{Learned: learnedIDs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Glyph != "あ" || q.Answer != "a" {
		t.Fatalf("unexpected question: %+v", q)
	}

	// Second call drains the queue without another LLM call.
	q, err = src.Next(context.Background(), Input{Learned: learnedIDs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Glyph != "か" {
		t.Fatalf("expected queued question, got %+v", q)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestLLMSource_DropsInvalidItems(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t,
			// Wrong reading for the glyph.
			map[string]any{"glyph": "あ", "answer": "i", "options": []string{"a", "i", "u", "e"}},
			// Glyph outside the study list.
			map[string]any{"glyph": "山", "answer": "yama", "options": []string{"yama", "a", "i", "u"}},
			// Valid.
			map[string]any{"glyph": "き", "answer": "ki", "options": []string{"ka", "ki", "ku", "ke"}},
		),
	})
	src := NewLLMSource(mock, DefaultRemoteConfig())

	q, err := src.Next(context.Background(), Input{Learned: learnedIDs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Glyph != "き" {
		t.Fatalf("expected the one valid question, got %+v", q)
	}
}

func TestLLMSource_AllInvalidIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t,
			map[string]any{"glyph": "あ", "answer": "a", "options": []string{"a", "a", "i", "u"}},
		),
	})
	src := NewLLMSource(mock, DefaultRemoteConfig())

	_, err := src.Next(context.Background(), Input{Learned: learnedIDs})
	if err == nil {
		t.Fatal("expected error for batch with no valid questions")
	}
}

func TestLLMSource_NotEnoughLearned(t *testing.T) {
	mock := llm.NewMockProvider()
	src := NewLLMSource(mock, DefaultRemoteConfig())

	_, err := src.Next(context.Background(), Input{Learned: []string{"hiragana-a", "hiragana-i"}})
	if !errors.Is(err, ErrNotEnoughLearned) {
		t.Fatalf("expected ErrNotEnoughLearned, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no LLM calls, got %d", mock.CallCount())
	}
}

func TestLLMSource_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	src := NewLLMSource(mock, DefaultRemoteConfig())

	_, err := src.Next(context.Background(), Input{Learned: learnedIDs})
	if err == nil {
		t.Fatal("expected error when provider is down")
	}
}

func TestLLMSource_PrefersNonRecent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(t,
			map[string]any{"glyph": "あ", "answer": "a", "options": []string{"a", "i", "u", "e"}},
			map[string]any{"glyph": "か", "answer": "ka", "options": []string{"ki", "ka", "ku", "ke"}},
		),
	})
	src := NewLLMSource(mock, DefaultRemoteConfig())

	recent := NewRecent(RecentWindow)
	recent.Remember("hiragana-a")

	q, err := src.Next(context.Background(), Input{Learned: learnedIDs, Recent: recent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Glyph != "か" {
		t.Fatalf("expected non-recent question, got %+v", q)
	}
	if !recent.Contains("hiragana-ka") {
		t.Fatal("served question should enter the recent window")
	}
}
