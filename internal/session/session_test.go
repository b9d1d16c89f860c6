package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/progress"
	"github.com/abhisek/kanazen/internal/quizgen"
	"github.com/abhisek/kanazen/internal/store"
)

func newTestStore(t *testing.T, name string) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_SetsLastProfileAndDefaults(t *testing.T) {
	st := newTestStore(t, "session_new")
	ctx := context.Background()

	prof, err := st.ProfileRepo().Create(ctx, "Aiko")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	sess, err := New(ctx, st, prof, config.FileConfig{}, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if sess.AIQuiz {
		t.Error("AI quiz should default to off")
	}
	if _, ok := sess.Source.(*quizgen.LocalSource); !ok {
		t.Errorf("source = %T, want local without a provider", sess.Source)
	}

	last, ok, err := st.PrefsRepo().Get(ctx, store.PrefLastProfile)
	if err != nil || !ok {
		t.Fatalf("last profile pref not set (ok=%v, err=%v)", ok, err)
	}
	if last != prof.ID {
		t.Errorf("last profile = %q, want %q", last, prof.ID)
	}
}

func TestNew_AppliesConfiguredGoalToPristineProfile(t *testing.T) {
	st := newTestStore(t, "session_goal")
	ctx := context.Background()

	prof, err := st.ProfileRepo().Create(ctx, "Aiko")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	goal := 9
	cfg := config.FileConfig{}
	cfg.App.DailyGoal = &goal

	sess, err := New(ctx, st, prof, cfg, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if sess.Progress.Settings.DailyGoal != 9 {
		t.Errorf("daily goal = %d, want 9", sess.Progress.Settings.DailyGoal)
	}
}

func TestNew_KeepsGoalOfStudiedProfile(t *testing.T) {
	st := newTestStore(t, "session_goal_kept")
	ctx := context.Background()

	prof, err := st.ProfileRepo().Create(ctx, "Aiko")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	// A profile with history keeps its own goal.
	first, err := New(ctx, st, prof, config.FileConfig{}, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	first.Progress.MarkSeen("hiragana-a", time.Now())
	if err := first.SaveProgress(ctx); err != nil {
		t.Fatalf("save progress: %v", err)
	}

	goal := 9
	cfg := config.FileConfig{}
	cfg.App.DailyGoal = &goal

	sess, err := New(ctx, st, prof, cfg, nil)
	if err != nil {
		t.Fatalf("reopen session: %v", err)
	}
	if sess.Progress.Settings.DailyGoal == 9 {
		t.Error("configured goal must not override a studied profile")
	}
}

func TestNew_OpensProfileWithCorruptBlob(t *testing.T) {
	st := newTestStore(t, "session_corrupt")
	ctx := context.Background()

	prof, err := st.ProfileRepo().Create(ctx, "Aiko")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	err = st.Client().ProgressRecord.Create().
		SetProfileID(prof.ID).
		SetData("{broken").
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	// A blob that fails to decode must not lock the learner out; the
	// session opens on recovered defaults.
	sess, err := New(ctx, st, prof, config.FileConfig{}, nil)
	if err != nil {
		t.Fatalf("new session with corrupt blob: %v", err)
	}
	if len(sess.Progress.Learned) != 0 {
		t.Errorf("learned = %v, want empty recovered defaults", sess.Progress.Learned)
	}
	if sess.Progress.Settings.DailyGoal != progress.DefaultDailyGoal {
		t.Errorf("daily goal = %d, want default", sess.Progress.Settings.DailyGoal)
	}
}

func TestSetAIQuiz_PersistsPreference(t *testing.T) {
	st := newTestStore(t, "session_ai")
	ctx := context.Background()

	prof, err := st.ProfileRepo().Create(ctx, "Aiko")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	sess, err := New(ctx, st, prof, config.FileConfig{}, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := sess.SetAIQuiz(ctx, true); err != nil {
		t.Fatalf("set AI quiz: %v", err)
	}

	v, ok, err := st.PrefsRepo().Get(ctx, store.PrefAIQuiz)
	if err != nil || !ok {
		t.Fatalf("AI pref not set (ok=%v, err=%v)", ok, err)
	}
	if v != "on" {
		t.Errorf("AI pref = %q, want on", v)
	}

	// Without a provider the source stays local even with the mode on.
	if _, ok := sess.Source.(*quizgen.LocalSource); !ok {
		t.Errorf("source = %T, want local without a provider", sess.Source)
	}
}
