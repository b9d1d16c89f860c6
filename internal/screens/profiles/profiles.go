// Package profiles implements the profile picker, the first screen shown at
// startup. Profiles can be created, renamed, and deleted here; selecting one
// opens a session and pushes the home screen.
package profiles

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/llm"
	"github.com/abhisek/kanazen/internal/router"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/screens/home"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/store"
	"github.com/abhisek/kanazen/internal/ui/components"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

const maxNameLen = 32

type mode int

const (
	modeList mode = iota
	modeCreate
	modeRename
	modeConfirmDelete
)

// ProfilesScreen lists learner profiles.
type ProfilesScreen struct {
	store    *store.Store
	fileCfg  config.FileConfig
	provider llm.Provider

	profiles []*store.Profile
	selected int
	mode     mode
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*ProfilesScreen)(nil)
var _ screen.KeyHintProvider = (*ProfilesScreen)(nil)

// New creates the profile picker. lastProfileID preselects the profile used
// in the previous run.
func New(st *store.Store, fileCfg config.FileConfig, provider llm.Provider, lastProfileID string) *ProfilesScreen {
	s := &ProfilesScreen{
		store:    st,
		fileCfg:  fileCfg,
		provider: provider,
	}
	s.reload()
	for i, p := range s.profiles {
		if p.ID == lastProfileID {
			s.selected = i
			break
		}
	}
	return s
}

func (s *ProfilesScreen) reload() {
	profiles, err := s.store.ProfileRepo().All(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.profiles = profiles
	if s.selected >= len(s.profiles) {
		s.selected = len(s.profiles) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ProfilesScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfilesScreen) Title() string {
	return "Profiles"
}

func (s *ProfilesScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeCreate, modeRename:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirmDelete:
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "New"},
		{Key: "R", Description: "Rename"},
		{Key: "D", Description: "Delete"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.mode == modeCreate || s.mode == modeRename {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}

	switch s.mode {
	case modeCreate, modeRename:
		return s.handleNameEntry(kmsg)
	case modeConfirmDelete:
		return s.handleConfirmDelete(kmsg)
	}
	return s.handleList(kmsg)
}

func (s *ProfilesScreen) handleList(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.profiles)-1 {
			s.selected++
		}
	case "enter":
		return s.openSelected()
	case "n":
		s.mode = modeCreate
		s.input = components.NewTextInput("Profile name...", false, maxNameLen)
		return s, s.input.Init()
	case "r":
		if len(s.profiles) > 0 {
			s.mode = modeRename
			s.input = components.NewTextInput(s.profiles[s.selected].DisplayName, false, maxNameLen)
			return s, s.input.Init()
		}
	case "d":
		if len(s.profiles) > 0 {
			s.mode = modeConfirmDelete
		}
	case "q":
		return s, tea.Quit
	}
	return s, nil
}

func (s *ProfilesScreen) handleNameEntry(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "esc":
		s.mode = modeList
		return s, nil
	case "enter":
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			return s, nil
		}
		ctx := context.Background()
		if s.mode == modeCreate {
			prof, err := s.store.ProfileRepo().Create(ctx, name)
			if err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			s.mode = modeList
			s.reload()
			for i, p := range s.profiles {
				if p.ID == prof.ID {
					s.selected = i
				}
			}
			return s, nil
		}
		if err := s.store.ProfileRepo().Rename(ctx, s.profiles[s.selected].ID, name); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.mode = modeList
		s.reload()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(kmsg)
	return s, cmd
}

func (s *ProfilesScreen) handleConfirmDelete(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "y", "Y":
		if err := s.store.ProfileRepo().Delete(context.Background(), s.profiles[s.selected].ID); err != nil {
			s.errMsg = err.Error()
		}
		s.mode = modeList
		s.reload()
	case "n", "N", "esc":
		s.mode = modeList
	}
	return s, nil
}

// openSelected builds a session for the highlighted profile and pushes home.
func (s *ProfilesScreen) openSelected() (screen.Screen, tea.Cmd) {
	if len(s.profiles) == 0 {
		return s, nil
	}
	prof := s.profiles[s.selected]

	sess, err := session.New(context.Background(), s.store, prof, s.fileCfg, s.provider)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: home.New(sess)}
	}
}

func (s *ProfilesScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Who is studying?"))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s\n\nPress any key to continue.", s.errMsg)))
		return b.String()
	}

	switch s.mode {
	case modeCreate:
		b.WriteString(s.renderNameEntry(width, "New profile"))
		return b.String()
	case modeRename:
		b.WriteString(s.renderNameEntry(width, "Rename profile"))
		return b.String()
	case modeConfirmDelete:
		prof := s.profiles[s.selected]
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("Delete %q and all its progress?", prof.DisplayName)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("[Y] Yes, delete    [N] No, keep"))
		return b.String()
	}

	if len(s.profiles) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No profiles yet.\n\nPress N to create one."))
		return b.String()
	}

	var list strings.Builder
	for i, prof := range s.profiles {
		line := fmt.Sprintf("%s  %s",
			prof.DisplayName,
			lastActiveLabel(prof))
		if i == s.selected {
			list.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			list.WriteString(theme.Unselected.Render("    " + line))
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	return b.String()
}

func (s *ProfilesScreen) renderNameEntry(width int, caption string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(caption))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func lastActiveLabel(prof *store.Profile) string {
	if prof.LastActive.IsZero() {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("· " + prof.LastActive.Local().Format("Jan 2"))
}
