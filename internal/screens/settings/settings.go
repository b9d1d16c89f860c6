// Package settings implements the settings screen: daily goal, theme, and
// the AI quiz mode. Every change persists immediately.
package settings

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/router"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/store"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

const (
	itemDailyGoal = iota
	itemTheme
	itemAIQuiz
	itemSwitchProfile
	itemCount
)

// SettingsScreen edits session and global preferences in place.
type SettingsScreen struct {
	sess      *session.Session
	selected  int
	themeName string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen for an open session.
func New(sess *session.Session) *SettingsScreen {
	name := theme.Dark
	if v, ok, err := sess.Store.PrefsRepo().Get(context.Background(), store.PrefTheme); err == nil && ok {
		name = v
	} else if sess.File.App.Theme != nil {
		name = *sess.File.App.Theme
	}
	return &SettingsScreen{
		sess:      sess,
		themeName: name,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.selected == itemDailyGoal {
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust goal"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Toggle"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < itemCount-1 {
			s.selected++
		}
	case "left", "h":
		if s.selected == itemDailyGoal {
			s.adjustGoal(-1)
		}
	case "right", "l":
		if s.selected == itemDailyGoal {
			s.adjustGoal(+1)
		}
	case "enter", "space":
		switch s.selected {
		case itemTheme:
			s.toggleTheme()
		case itemAIQuiz:
			s.toggleAIQuiz()
		case itemSwitchProfile:
			// Pop settings and home, back to the picker.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Batch(pop, pop)
		}
	}
	return s, nil
}

func (s *SettingsScreen) adjustGoal(delta int) {
	p := s.sess.Progress
	p.SetDailyGoal(p.Settings.DailyGoal + delta)
	if err := s.sess.SaveProgress(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "warning: save progress:", err)
	}
}

func (s *SettingsScreen) toggleTheme() {
	if s.themeName == theme.Light {
		s.themeName = theme.Dark
	} else {
		s.themeName = theme.Light
	}
	theme.Apply(s.themeName)
	if err := s.sess.Store.PrefsRepo().Set(context.Background(), store.PrefTheme, s.themeName); err != nil {
		fmt.Fprintln(os.Stderr, "warning: save theme:", err)
	}
}

func (s *SettingsScreen) toggleAIQuiz() {
	if s.sess.Provider == nil {
		return
	}
	if err := s.sess.SetAIQuiz(context.Background(), !s.sess.AIQuiz); err != nil {
		fmt.Fprintln(os.Stderr, "warning: save AI quiz preference:", err)
	}
}

func (s *SettingsScreen) View(width, height int) string {
	aiValue := onOff(s.sess.AIQuiz)
	if s.sess.Provider == nil {
		aiValue = "unavailable (no API key)"
	}

	rows := []struct {
		label string
		value string
	}{
		{"Daily goal", fmt.Sprintf("◂ %d ▸", s.sess.Progress.Settings.DailyGoal)},
		{"Theme", s.themeName},
		{"AI quiz questions", aiValue},
		{"Switch profile", ""},
	}

	var list strings.Builder
	for i, row := range rows {
		line := fmt.Sprintf("%-20s %s", row.label, row.value)
		disabled := i == itemAIQuiz && s.sess.Provider == nil
		switch {
		case i == s.selected && !disabled:
			list.WriteString(theme.Selected.Render("  ▸ " + line))
		case disabled:
			list.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + line))
		default:
			list.WriteString(theme.Unselected.Render("    " + line))
		}
		list.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Changes are saved immediately."))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
