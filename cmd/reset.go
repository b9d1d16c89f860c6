package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe a profile's progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileArg, _ := cmd.Flags().GetString("profile")
		yes, _ := cmd.Flags().GetBool("yes")

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

		if !yes {
			return fmt.Errorf("this wipes all progress for %q; re-run with --yes to confirm", prof.DisplayName)
		}

		if err := st.ProgressRepo().Delete(ctx, prof.ID); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}
		fmt.Printf("Progress for %q has been reset.\n", prof.DisplayName)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("profile", "p", "", "Profile name or id (defaults to the last used profile)")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
