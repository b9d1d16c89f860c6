package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/progress"
	"github.com/abhisek/kanazen/internal/stats"
	"github.com/abhisek/kanazen/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics for a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileArg, _ := cmd.Flags().GetString("profile")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		prof, err := findProfile(ctx, st, profileArg)
		if err != nil {
			return err
		}

		p, err := st.ProgressRepo().Load(ctx, prof.ID)
		if errors.Is(err, store.ErrCorruptBlob) {
			fmt.Fprintln(os.Stderr, "warning: progress partially recovered:", err)
		} else if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("Profile: %s\n\n", prof.DisplayName)
		report := stats.Build(p, progress.DateOf(time.Now()))
		return stats.Render(os.Stdout, report)
	},
}

func init() {
	statsCmd.Flags().StringP("profile", "p", "", "Profile name or id (defaults to the last used profile)")
}
