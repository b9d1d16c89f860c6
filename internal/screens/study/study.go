// Package study implements the flashcard study screen over the session
// controller.
package study

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/session"
	studycore "github.com/abhisek/kanazen/internal/study"
	"github.com/abhisek/kanazen/internal/ui/components"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// StudyScreen walks the learner through today's queue of new characters.
type StudyScreen struct {
	sess       *session.Session
	controller *studycore.Controller
	bonus      bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New builds a fresh session queue. The controller is never resumed from a
// previous visit; re-entering recomputes it from progress.
func New(sess *session.Session, bonus bool) *StudyScreen {
	return &StudyScreen{
		sess:       sess,
		controller: studycore.New(sess.Progress, time.Now(), bonus),
		bonus:      bonus,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	if s.bonus {
		return "Bonus Study"
	}
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if done, _ := s.controller.Done(); done {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Seen it"},
		{Key: "R", Description: "Needs revision"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if done, _ := s.controller.Done(); done {
		return s, nil
	}

	switch kmsg.String() {
	case "s", "enter":
		s.controller.MarkSeen(time.Now())
		s.save()
	case "r":
		s.controller.MarkForRevision()
		s.save()
	}
	return s, nil
}

func (s *StudyScreen) save() {
	if err := s.sess.SaveProgress(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "warning: save progress:", err)
	}
}

func (s *StudyScreen) View(width, height int) string {
	if done, reason := s.controller.Done(); done {
		return renderComplete(width, reason, s.controller.Size())
	}

	ch, _ := s.controller.Current()

	var b strings.Builder
	b.WriteString("\n")

	position := s.controller.Size() - s.controller.Remaining() + 1
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Card %d of %d", position, s.controller.Size())))
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
		Render("[S] Seen it    [R] Needs revision"))

	return b.String()
}

func renderComplete(width int, reason studycore.Reason, studied int) string {
	var headline, detail string
	switch reason {
	case studycore.AllLearned:
		headline = "Catalog complete!"
		detail = "Every character is learned. Keep them sharp with quizzes and revision."
	default:
		headline = "Daily goal reached!"
		detail = fmt.Sprintf("You studied %d new characters today.", studied)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Esc to go back."))
	return b.String()
}
