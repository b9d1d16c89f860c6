// Package stats implements the statistics screen, a scrollable view over the
// aggregated history report.
package stats

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/session"
	statscore "github.com/abhisek/kanazen/internal/stats"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// StatsScreen shows the learner's aggregated history.
type StatsScreen struct {
	sess   *session.Session
	lines  []string
	offset int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New builds the report once on entry; the underlying history only changes
// on other screens.
func New(sess *session.Session) *StatsScreen {
	var b strings.Builder
	report := statscore.Build(sess.Progress, sess.Today())
	if err := statscore.Render(&b, report); err != nil {
		b.Reset()
		b.WriteString("Could not build the report: " + err.Error())
	}
	return &StatsScreen{
		sess:  sess,
		lines: strings.Split(strings.TrimRight(b.String(), "\n"), "\n"),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.lines)-1 {
			s.offset++
		}
	case "g":
		s.offset = 0
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	visible := height - 2
	if visible < 1 {
		visible = 1
	}

	end := s.offset + visible
	if end > len(s.lines) {
		end = len(s.lines)
	}
	window := s.lines[s.offset:end]

	body := theme.Body.Render(strings.Join(window, "\n"))
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
