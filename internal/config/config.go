// Package config provides the optional TOML configuration file and XDG path
// helpers. Everything in the file is an override; the app runs fine without
// it, and environment variables win over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	App AppConfig `toml:"app"`
	LLM LLMConfig `toml:"llm"`
}

// AppConfig maps learner-facing settings. Pointers distinguish "unset" from
// zero values.
type AppConfig struct {
	DailyGoal *int    `toml:"daily-goal"`
	Theme     *string `toml:"theme"` // "light" | "dark"
	AIQuiz    *bool   `toml:"ai-quiz"`
}

// LLMConfig maps provider selection overrides. API keys stay in the
// environment, never in the file.
type LLMConfig struct {
	Provider *string `toml:"provider"`
	Model    *string `toml:"model"`
}

// Load reads a TOML config from the given path. Missing file is not an error.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "kanazen", "config.toml")
}
