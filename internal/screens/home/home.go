// Package home implements the dashboard screen: per-script progress, today's
// quota, streak, and navigation to the study, quiz, revise, stats, and
// settings screens.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/router"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/screens/quiz"
	"github.com/abhisek/kanazen/internal/screens/revise"
	"github.com/abhisek/kanazen/internal/screens/settings"
	statsscreen "github.com/abhisek/kanazen/internal/screens/stats"
	"github.com/abhisek/kanazen/internal/screens/study"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/ui/components"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// HomeScreen is the dashboard shown after picking a profile.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the dashboard for an open session.
func New(sess *session.Session) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			// The quota state is read at selection time so a session that
			// crosses midnight still opens correctly.
			p := sess.Progress
			bonus := p.EffectiveCount(sess.Today()) >= p.Settings.DailyGoal
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(sess, bonus)}
			}
		}},
		{Label: "QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(sess)}
			}
		}},
		{Label: "REVISE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: revise.New(sess)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(sess)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(sess)}
			}
		}},
		{Label: "SWITCH PROFILE", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		sess: sess,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Session exposes the open session; the app header reads totals through it.
func (h *HomeScreen) Session() *session.Session {
	return h.sess
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// View recomputes the dashboard from live progress on every render, so counts
// are current after returning from a child screen.
func (h *HomeScreen) View(width, height int) string {
	p := h.sess.Progress
	today := h.sess.Today()
	learnedSet := p.LearnedSet()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("かな Zen"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(h.sess.Profile.DisplayName))
	b.WriteString("\n\n")

	barWidth := min(width-20, 44)
	var bars strings.Builder
	for _, script := range catalog.AllScripts() {
		chars := catalog.ByScript(script)
		learned := 0
		for _, ch := range chars {
			if learnedSet[ch.ID()] {
				learned++
			}
		}
		bar := components.ProgressBar{
			Label:     fmt.Sprintf("%-9s", script),
			Current:   learned,
			Total:     len(chars),
			ShowCount: true,
			Width:     barWidth,
		}
		bars.WriteString(bar.View())
		bars.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bars.String()))
	b.WriteString("\n")

	quota := fmt.Sprintf("Today %d/%d", p.EffectiveCount(today), p.Settings.DailyGoal)
	if p.EffectiveCount(today) >= p.Settings.DailyGoal {
		quota += lipgloss.NewStyle().Foreground(theme.Accent).Render("  · bonus study unlocked")
	}
	due := len(catalog.Resolve(p.RevisionList))
	statusLine := fmt.Sprintf("%s    Revision due: %d    Streak: %d", quota, due, p.Streak(today))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statusLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
