package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/llm"
)

// LLMSource generates questions in batches through an LLM provider. Every
// question is validated against the catalog and the learner's study list
// before it can be served; invalid items are dropped, never repaired.
type LLMSource struct {
	provider llm.Provider
	config   RemoteConfig

	mu    sync.Mutex
	queue []Question
}

// NewLLMSource creates an LLMSource over the given provider.
func NewLLMSource(provider llm.Provider, cfg RemoteConfig) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

var _ Source = (*LLMSource)(nil)

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []struct {
		Glyph   string   `json:"glyph"`
		Answer  string   `json:"answer"`
		Options []string `json:"options"`
	} `json:"questions"`
}

// Next serves the next queued question, fetching a fresh batch when the
// queue is empty. Questions whose character sits in the recent window are
// passed over when a fresher one is queued.
func (s *LLMSource) Next(ctx context.Context, in Input) (*Question, error) {
	learned := catalog.Resolve(in.Learned)
	if len(learned) < MinLearnedForQuiz {
		return nil, ErrNotEnoughLearned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		if err := s.refill(ctx, learned); err != nil {
			return nil, err
		}
	}

	q := s.pop(in.Recent)
	if q == nil {
		return nil, ErrNoQuestion
	}

	if in.Recent != nil {
		if ch, ok := characterForGlyph(learned, q.Glyph); ok {
			in.Recent.Remember(ch.ID())
		}
	}

	return q, nil
}

// refill requests a batch and queues the questions that survive validation.
// Caller holds s.mu.
func (s *LLMSource) refill(ctx context.Context, learned []catalog.Character) error {
	ctx = llm.WithPurpose(ctx, "quiz-batch")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchMessage(learned, s.config.BatchCount)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("quiz batch generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return fmt.Errorf("parse quiz batch: %w", err)
	}

	for _, item := range raw.Questions {
		q := Question{
			Glyph:   item.Glyph,
			Answer:  item.Answer,
			Options: item.Options,
		}
		if verr := validateQuestion(&q, learned); verr != nil {
			continue
		}
		s.queue = append(s.queue, q)
	}

	if len(s.queue) == 0 {
		return fmt.Errorf("quiz batch: no valid questions in response")
	}
	return nil
}

// pop removes and returns the first queued question outside the recent
// window, or the head of the queue when everything queued is recent.
// Caller holds s.mu.
func (s *LLMSource) pop(recent *Recent) *Question {
	if len(s.queue) == 0 {
		return nil
	}

	idx := 0
	if recent != nil {
		for i, q := range s.queue {
			if !recent.Contains(glyphID(q.Glyph)) {
				idx = i
				break
			}
		}
	}

	q := s.queue[idx]
	s.queue = append(s.queue[:idx], s.queue[idx+1:]...)
	return &q
}

// characterForGlyph finds the studied character for a glyph.
func characterForGlyph(learned []catalog.Character, glyph string) (catalog.Character, bool) {
	for _, ch := range learned {
		if ch.Glyph == glyph {
			return ch, true
		}
	}
	return catalog.Character{}, false
}

// glyphID maps a glyph to its composite id via the catalog, falling back to
// the glyph itself for characters the catalog does not know.
func glyphID(glyph string) string {
	for _, ch := range catalog.All() {
		if ch.Glyph == glyph {
			return ch.ID()
		}
	}
	return glyph
}
