package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanazen",
	Short: "Kana and kanji flashcards in the terminal",
	Long:  "Kanazen — a terminal flashcard app for learning hiragana, katakana, and N5 kanji, with daily quotas, a revision queue, and optional AI-generated quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KANAZEN_DB env var)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KANAZEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadFileConfig reads the optional TOML config. A malformed file is reported
// but never fatal.
func loadFileConfig() config.FileConfig {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: config file ignored:", err)
		return config.FileConfig{}
	}
	return cfg
}
