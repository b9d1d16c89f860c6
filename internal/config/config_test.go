package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[app]
daily-goal = 10
theme = "dark"
ai-quiz = true

[llm]
provider = "openai"
model = "gpt-4o"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.DailyGoal == nil || *cfg.App.DailyGoal != 10 {
		t.Errorf("daily-goal = %v, want 10", cfg.App.DailyGoal)
	}
	if cfg.App.Theme == nil || *cfg.App.Theme != "dark" {
		t.Errorf("theme = %v, want dark", cfg.App.Theme)
	}
	if cfg.App.AIQuiz == nil || !*cfg.App.AIQuiz {
		t.Errorf("ai-quiz = %v, want true", cfg.App.AIQuiz)
	}
	if cfg.LLM.Provider == nil || *cfg.LLM.Provider != "openai" {
		t.Errorf("provider = %v, want openai", cfg.LLM.Provider)
	}
}

func TestLoad_PartialFileLeavesUnsetNil(t *testing.T) {
	path := writeConfig(t, `
[app]
theme = "light"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Theme == nil || *cfg.App.Theme != "light" {
		t.Errorf("theme = %v, want light", cfg.App.Theme)
	}
	if cfg.App.DailyGoal != nil {
		t.Errorf("daily-goal should be unset, got %v", *cfg.App.DailyGoal)
	}
	if cfg.LLM.Provider != nil {
		t.Errorf("provider should be unset, got %v", *cfg.LLM.Provider)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.App.DailyGoal != nil || cfg.App.Theme != nil {
		t.Error("expected zero config for missing file")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "[app\nbroken")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
