package cmd

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanazen/internal/store"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List learner profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		profiles, err := st.ProfileRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles yet. Run kanazen to create one.")
			return nil
		}

		fmt.Printf("%-20s  %-36s  %s\n", "Name", "ID", "Last active")
		fmt.Println(strings.Repeat("─", 74))
		for _, p := range profiles {
			lastActive := "never"
			if !p.LastActive.IsZero() {
				lastActive = p.LastActive.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-20s  %-36s  %s\n", p.DisplayName, p.ID, lastActive)
		}
		return nil
	},
}

var profilesAvatarCmd = &cobra.Command{
	Use:   "avatar <image-file>",
	Short: "Set a profile's avatar from an image file",
	Args:  cobra.ExactArgs(1),
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

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		mimeType := mime.TypeByExtension(filepath.Ext(args[0]))
		if !strings.HasPrefix(mimeType, "image/") {
			return fmt.Errorf("%s does not look like an image file", args[0])
		}
		dataURI := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)

		if err := st.ProfileRepo().SetAvatar(ctx, prof.ID, dataURI); err != nil {
			return fmt.Errorf("set avatar: %w", err)
		}
		fmt.Printf("Avatar set for %s.\n", prof.DisplayName)
		return nil
	},
}

func init() {
	profilesAvatarCmd.Flags().StringP("profile", "p", "", "Profile name or id (defaults to the last used profile)")
	profilesCmd.AddCommand(profilesAvatarCmd)
}

// findProfile resolves a --profile argument (display name or id) to a
// profile. An empty argument falls back to the last used profile, or to the
// only profile when exactly one exists.
func findProfile(ctx context.Context, st *store.Store, arg string) (*store.Profile, error) {
	profiles, err := st.ProfileRepo().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles exist yet")
	}

	if arg == "" {
		if last, ok, _ := st.PrefsRepo().Get(ctx, store.PrefLastProfile); ok {
			for _, p := range profiles {
				if p.ID == last {
					return p, nil
				}
			}
		}
		if len(profiles) == 1 {
			return profiles[0], nil
		}
		names := make([]string, 0, len(profiles))
		for _, p := range profiles {
			names = append(names, p.DisplayName)
		}
		return nil, fmt.Errorf("multiple profiles; pick one with --profile (%s)", strings.Join(names, ", "))
	}

	for _, p := range profiles {
		if p.ID == arg || strings.EqualFold(p.DisplayName, arg) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no profile named %q", arg)
}
