// Package revise implements the revision queue screen: cycle through the
// characters marked for revision, keeping or mastering each one.
package revise

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	revisecore "github.com/abhisek/kanazen/internal/revise"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/ui/components"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// ReviseScreen cycles over the live revision list.
type ReviseScreen struct {
	sess  *session.Session
	queue *revisecore.Queue
}

var _ screen.Screen = (*ReviseScreen)(nil)
var _ screen.KeyHintProvider = (*ReviseScreen)(nil)

// New creates the revision screen for an open session.
func New(sess *session.Session) *ReviseScreen {
	return &ReviseScreen{
		sess:  sess,
		queue: revisecore.NewQueue(sess.Progress),
	}
}

func (s *ReviseScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviseScreen) Title() string {
	return "Revise"
}

func (s *ReviseScreen) KeyHints() []layout.KeyHint {
	if s.queue.Len() == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "K", Description: "Keep revising"},
		{Key: "M", Description: "Mastered"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.queue.Len() == 0 {
		return s, nil
	}

	switch kmsg.String() {
	case "k", "enter":
		s.queue.Keep()
	case "m":
		s.queue.Mastered()
		if err := s.sess.SaveProgress(context.Background()); err != nil {
			fmt.Fprintln(os.Stderr, "warning: save progress:", err)
		}
	}
	return s, nil
}

func (s *ReviseScreen) View(width, height int) string {
	if s.queue.Len() == 0 {
		var b strings.Builder
		b.WriteString("\n\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Nothing to revise!"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Wrong quiz answers and cards you flag while studying land here."))
		return b.String()
	}

	ch, ok := s.queue.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d in the revision queue", s.queue.Len())))
	b.WriteString("\n\n")

	card := components.Flashcard{
		Glyph:       ch.Glyph,
		Reading:     ch.Romaji,
		Caption:     fmt.Sprintf("%s · %s row", ch.Script, ch.Group),
		ShowReading: true,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[K] Keep revising    [M] Mastered"))

	return b.String()
}
