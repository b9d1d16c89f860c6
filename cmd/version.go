package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/release"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("kanazen", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}
		if version == "(devel)" {
			fmt.Println("Development build; skipping release check.")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		checker := release.NewChecker()
		result, err := checker.Check(ctx, &release.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("release check: %w", err)
		}

		if result.UpdateAvailable {
			fmt.Printf("Update available: %s → %s\n", version, result.LatestVersion)
			fmt.Println(result.ReleaseURL)
		} else {
			fmt.Println("You are on the latest release.")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
