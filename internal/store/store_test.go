package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/kanazen/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Create(ctx, "Yuki")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DisplayName != "Yuki" {
		t.Errorf("display name = %q, want Yuki", got.DisplayName)
	}

	if err := repo.Rename(ctx, p.ID, "Yuki S."); err != nil {
		t.Fatalf("rename: %v", err)
	}
	got, _ = repo.Get(ctx, p.ID)
	if got.DisplayName != "Yuki S." {
		t.Errorf("display name after rename = %q", got.DisplayName)
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, p.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestProfileOrderByLastActive(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	a, _ := repo.Create(ctx, "A")
	b, _ := repo.Create(ctx, "B")

	base := time.Now()
	if err := repo.Touch(ctx, a.ID, base.Add(-time.Hour)); err != nil {
		t.Fatalf("touch a: %v", err)
	}
	if err := repo.Touch(ctx, b.ID, base); err != nil {
		t.Fatalf("touch b: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all[0].ID != b.ID {
		t.Fatalf("expected most recently active first, got %v", all)
	}
}

func TestProfileCreateRequiresName(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.ProfileRepo().Create(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty display name")
	}
}

func TestAvatarValidation(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, _ := repo.Create(ctx, "Yuki")

	if err := repo.SetAvatar(ctx, p.ID, "data:image/png;base64,iVBORw0KGgo="); err != nil {
		t.Fatalf("valid avatar rejected: %v", err)
	}

	if err := repo.SetAvatar(ctx, p.ID, "not-a-data-uri"); err == nil {
		t.Fatal("expected rejection of non data URI")
	}

	big := "data:image/png;base64," + strings.Repeat("A", MaxAvatarBytes)
	if err := repo.SetAvatar(ctx, p.ID, big); err == nil {
		t.Fatal("expected rejection of oversized avatar")
	}

	// Rejection must not clobber the stored avatar.
	got, _ := repo.Get(ctx, p.ID)
	if got.Avatar != "data:image/png;base64,iVBORw0KGgo=" {
		t.Fatalf("avatar changed by rejected write: %q", got.Avatar)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	// Missing record loads as pristine defaults.
	p, err := repo.Load(ctx, "profile-1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(p.Learned) != 0 || p.Settings.DailyGoal != progress.DefaultDailyGoal {
		t.Fatalf("expected defaults, got %+v", p)
	}

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	p.MarkSeen("hiragana-a", now)
	p.AddToRevision("hiragana-ka")
	if err := repo.Save(ctx, "profile-1", p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, "profile-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.HasLearned("hiragana-a") {
		t.Error("learned set lost in round trip")
	}
	if len(got.RevisionList) != 1 || got.RevisionList[0] != "hiragana-ka" {
		t.Errorf("revision list = %v", got.RevisionList)
	}

	// Save replaces the whole blob.
	got.Unlearn("hiragana-a")
	if err := repo.Save(ctx, "profile-1", got); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	again, _ := repo.Load(ctx, "profile-1")
	if again.HasLearned("hiragana-a") {
		t.Error("expected whole-blob replace")
	}
}

func TestProgressCorruptBlobRecovers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Client().ProgressRecord.Create().
		SetProfileID("profile-1").
		SetData("{broken").
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	p, decodeErr := s.ProgressRepo().Load(ctx, "profile-1")
	if !errors.Is(decodeErr, ErrCorruptBlob) {
		t.Fatalf("expected ErrCorruptBlob, got %v", decodeErr)
	}
	if p == nil || p.Settings.DailyGoal != progress.DefaultDailyGoal {
		t.Fatalf("expected usable defaults despite corruption, got %+v", p)
	}
}

func TestPrefs(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()
	ctx := context.Background()

	if _, ok, err := repo.Get(ctx, PrefTheme); err != nil || ok {
		t.Fatalf("expected unset key, got ok=%t err=%v", ok, err)
	}

	if err := repo.Set(ctx, PrefTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, PrefTheme, "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := repo.Get(ctx, PrefTheme)
	if err != nil || !ok || v != "light" {
		t.Fatalf("get = %q ok=%t err=%v, want light", v, ok, err)
	}

	if err := repo.Unset(ctx, PrefTheme); err != nil {
		t.Fatalf("unset: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, PrefTheme); ok {
		t.Fatal("expected key gone after unset")
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizAnswer(ctx, QuizEventData{
		ProfileID: "profile-1",
		Glyph:     "し",
		Correct:   true,
		Source:    "local",
	})
	if err != nil {
		t.Fatalf("append quiz event: %v", err)
	}

	for i := range 3 {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Model:     "gemini-2.0-flash",
			Purpose:   "quiz-batch",
			LatencyMs: int64(100 + i),
			Success:   i != 1,
		})
		if err != nil {
			t.Fatalf("append LLM event %d: %v", i, err)
		}
	}

	rows, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Sequence <= rows[1].Sequence {
		t.Fatal("expected newest first")
	}
	if rows[0].LatencyMs != 102 {
		t.Errorf("latency = %d, want 102", rows[0].LatencyMs)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		if expected := int64(i + 1); seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestMigrateLegacy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Seed a pre-profile blob under the legacy key.
	legacy := progress.New()
	legacy.MarkSeen("hiragana-a", time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC))
	blob, _ := legacy.Encode()
	err := s.Client().ProgressRecord.Create().
		SetProfileID(LegacyProgressKey).
		SetData(string(blob)).
		Exec(ctx)
	if err != nil {
		t.Fatalf("seed legacy record: %v", err)
	}

	migrated, err := s.MigrateLegacy(ctx)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !migrated {
		t.Fatal("expected migration to run")
	}

	profiles, err := s.ProfileRepo().All(ctx)
	if err != nil {
		t.Fatalf("all profiles: %v", err)
	}
	if len(profiles) != 1 || profiles[0].DisplayName != DefaultProfileName {
		t.Fatalf("expected one default profile, got %v", profiles)
	}

	p, err := s.ProgressRepo().Load(ctx, profiles[0].ID)
	if err != nil {
		t.Fatalf("load migrated progress: %v", err)
	}
	if !p.HasLearned("hiragana-a") {
		t.Fatal("legacy blob not reachable under the new profile")
	}

	last, ok, _ := s.PrefsRepo().Get(ctx, PrefLastProfile)
	if !ok || last != profiles[0].ID {
		t.Fatalf("last profile pref = %q ok=%t", last, ok)
	}

	// Second run is a no-op.
	migrated, err = s.MigrateLegacy(ctx)
	if err != nil {
		t.Fatalf("re-migrate: %v", err)
	}
	if migrated {
		t.Fatal("migration must run at most once")
	}
}

func TestMigrateLegacy_NoLegacyData(t *testing.T) {
	s := openTestStore(t)

	migrated, err := s.MigrateLegacy(context.Background())
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if migrated {
		t.Fatal("expected no-op without legacy data")
	}
}
