// Package session carries the active learner context shared by all screens:
// the selected profile, its in-memory progress, and the quiz question source.
// Screens mutate Progress through its methods and call SaveProgress after
// every mutation; the blob is replaced whole.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/llm"
	"github.com/abhisek/kanazen/internal/progress"
	"github.com/abhisek/kanazen/internal/quizgen"
	"github.com/abhisek/kanazen/internal/store"
)

// Session is the per-profile application state.
type Session struct {
	Store    *store.Store
	Profile  *store.Profile
	Progress *progress.Progress

	// Recent is the shared anti-repeat window for quiz questions. It lives
	// for the lifetime of the session, not one quiz screen.
	Recent *quizgen.Recent

	// Source produces quiz questions. Rebuilt when the AI mode toggles.
	Source quizgen.Source

	// Provider is nil when no LLM provider is configured.
	Provider llm.Provider

	// AIQuiz mirrors the persisted preference.
	AIQuiz bool

	File config.FileConfig
}

// New opens a session for the given profile: loads its progress, applies the
// config-file daily goal to pristine profiles, reads the AI preference, and
// records the profile as last active.
func New(ctx context.Context, st *store.Store, prof *store.Profile, fileCfg config.FileConfig, provider llm.Provider) (*Session, error) {
	p, err := st.ProgressRepo().Load(ctx, prof.ID)
	if errors.Is(err, store.ErrCorruptBlob) {
		// Load already recovered what it could over defaults; the profile
		// still opens.
		fmt.Fprintf(os.Stderr, "warning: progress for %s partially recovered: %v\n", prof.DisplayName, err)
	} else if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	// A profile that has never studied picks up the configured default goal.
	if fileCfg.App.DailyGoal != nil && len(p.Learned) == 0 && len(p.History) == 0 {
		p.SetDailyGoal(*fileCfg.App.DailyGoal)
	}

	s := &Session{
		Store:    st,
		Profile:  prof,
		Progress: p,
		Recent:   quizgen.NewRecent(quizgen.RecentWindow),
		Provider: provider,
		File:     fileCfg,
	}

	s.AIQuiz = s.loadAIQuizPref(ctx)
	s.RebuildSource()

	if err := st.PrefsRepo().Set(ctx, store.PrefLastProfile, prof.ID); err != nil {
		return nil, fmt.Errorf("save last profile: %w", err)
	}
	if err := st.ProfileRepo().Touch(ctx, prof.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("touch profile: %w", err)
	}

	return s, nil
}

func (s *Session) loadAIQuizPref(ctx context.Context) bool {
	v, ok, err := s.Store.PrefsRepo().Get(ctx, store.PrefAIQuiz)
	if err != nil || !ok {
		if s.File.App.AIQuiz != nil {
			return *s.File.App.AIQuiz
		}
		return false
	}
	return v == "on"
}

// RebuildSource wires the quiz source for the current mode. AI mode composes
// the remote source over the local one so generation failures degrade
// silently.
func (s *Session) RebuildSource() {
	local := quizgen.NewLocalSource()
	if s.AIQuiz && s.Provider != nil {
		remote := quizgen.NewLLMSource(s.Provider, quizgen.DefaultRemoteConfig())
		s.Source = quizgen.NewFallback(remote, local)
		return
	}
	s.Source = local
}

// SetAIQuiz toggles the AI mode, persists the preference, and rebuilds the
// source.
func (s *Session) SetAIQuiz(ctx context.Context, on bool) error {
	s.AIQuiz = on
	s.RebuildSource()
	v := "off"
	if on {
		v = "on"
	}
	return s.Store.PrefsRepo().Set(ctx, store.PrefAIQuiz, v)
}

// SaveProgress writes the whole progress blob for the active profile.
func (s *Session) SaveProgress(ctx context.Context) error {
	return s.Store.ProgressRepo().Save(ctx, s.Profile.ID, s.Progress)
}

// Today returns the current date key.
func (s *Session) Today() string {
	return progress.DateOf(time.Now())
}

// QuizInput builds the generation input from the live learner state.
func (s *Session) QuizInput() quizgen.Input {
	return quizgen.Input{
		Learned: s.Progress.Learned,
		Recent:  s.Recent,
	}
}
