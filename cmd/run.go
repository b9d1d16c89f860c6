package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/app"
	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/llm"
	"github.com/abhisek/kanazen/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if migrated, err := st.MigrateLegacy(ctx); err != nil {
		return fmt.Errorf("migrate legacy progress: %w", err)
	} else if migrated {
		fmt.Fprintln(os.Stderr, "Migrated existing progress into profile", store.DefaultProfileName)
	}

	fileCfg := loadFileConfig()

	opts := app.Options{
		Store:      st,
		FileConfig: fileCfg,
	}

	llmCfg, err := resolveLLMConfig(fileCfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI quiz questions will be unavailable.")
	} else {
		provider, perr := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider failed to initialize:", perr)
			fmt.Fprintln(os.Stderr, "AI quiz questions will be unavailable.")
		} else {
			opts.Provider = provider
		}
	}

	return app.Run(opts)
}

// resolveLLMConfig merges the KANAZEN_* environment over the config file.
// When neither selects a usable provider, the standard key env vars
// (GEMINI_API_KEY and friends) are probed as a last resort.
func resolveLLMConfig(fileCfg config.FileConfig) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()

	if os.Getenv("KANAZEN_LLM_PROVIDER") == "" && fileCfg.LLM.Provider != nil {
		cfg.Provider = *fileCfg.LLM.Provider
	}
	if fileCfg.LLM.Model != nil {
		switch cfg.Provider {
		case "gemini":
			if os.Getenv("KANAZEN_GEMINI_MODEL") == "" {
				cfg.Gemini.Model = *fileCfg.LLM.Model
			}
		case "anthropic":
			if os.Getenv("KANAZEN_ANTHROPIC_MODEL") == "" {
				cfg.Anthropic.Model = *fileCfg.LLM.Model
			}
		case "openai":
			if os.Getenv("KANAZEN_OPENAI_MODEL") == "" {
				cfg.OpenAI.Model = *fileCfg.LLM.Model
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			return discovered, nil
		}
		return llm.Config{}, err
	}
	return cfg, nil
}
