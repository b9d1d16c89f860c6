// Package quiz implements the multiple-choice recognition quiz screen.
// Question generation runs off the UI goroutine as a Bubble Tea command; a
// sequence number discards results superseded by a newer request, and the
// request context is cancelled when the screen is left.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/quizgen"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/store"
	"github.com/abhisek/kanazen/internal/ui/components"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// questionMsg carries a generated question back to the UI goroutine.
type questionMsg struct {
	seq int
	q   *quizgen.Question
	err error
}

// QuizScreen runs an open-ended quiz loop until the learner leaves.
type QuizScreen struct {
	sess    *session.Session
	spinner spinner.Model

	seq    int
	cancel context.CancelFunc

	loading  bool
	question *quizgen.Question
	mc       components.MultiChoice
	answered int
	correct  int
	softMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates the quiz screen for an open session.
func New(sess *session.Session) *QuizScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &QuizScreen{
		sess:    sess,
		spinner: sp,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.fetch(), s.spinner.Tick)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// Close cancels any in-flight generation request.
func (s *QuizScreen) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.softMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.mc.Submitted:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	case s.loading:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// fetch starts an asynchronous generation request. Any previous request is
// cancelled; its late result is dropped by the sequence check.
func (s *QuizScreen) fetch() tea.Cmd {
	s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.seq++
	seq := s.seq
	s.loading = true
	s.question = nil

	src := s.sess.Source
	in := s.sess.QuizInput()

	return func() tea.Msg {
		q, err := src.Next(ctx, in)
		return questionMsg{seq: seq, q: q, err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		return s.handleQuestion(msg)

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestion(msg questionMsg) (screen.Screen, tea.Cmd) {
	if msg.seq != s.seq {
		// Superseded by a newer request.
		return s, nil
	}
	s.loading = false

	if msg.err != nil {
		switch {
		case errors.Is(msg.err, quizgen.ErrNotEnoughLearned):
			s.softMsg = fmt.Sprintf("Learn at least %d characters to unlock quizzes.", quizgen.MinLearnedForQuiz)
		case errors.Is(msg.err, quizgen.ErrNoQuestion):
			s.softMsg = "Not enough distinct readings for a quiz yet. Keep studying!"
		case errors.Is(msg.err, context.Canceled):
			// Screen is being left; nothing to show.
		default:
			s.softMsg = "Question generation failed. Try again later."
		}
		return s, nil
	}

	s.question = msg.q
	s.mc = components.NewMultiChoice(msg.q.Options, answerIndex(msg.q))
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.softMsg != "" || s.loading || s.question == nil {
		return s, nil
	}

	// Feedback shown; any key fetches the next question.
	if s.mc.Submitted {
		return s, tea.Batch(s.fetch(), s.spinner.Tick)
	}

	wasSubmitted := s.mc.Submitted
	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if !wasSubmitted && s.mc.Submitted {
		s.recordAnswer()
	}
	return s, cmd
}

// recordAnswer persists the outcome of the just-submitted question: history
// counters, revision enqueue on a wrong answer, and the append-only quiz
// event.
func (s *QuizScreen) recordAnswer() {
	correct := s.mc.IsCorrect()
	s.answered++
	if correct {
		s.correct++
	}

	ctx := context.Background()
	now := time.Now()

	s.sess.Progress.RecordAnswer(correct, now)
	if !correct {
		if ch, ok := characterForGlyph(s.question.Glyph); ok {
			s.sess.Progress.AddToRevision(ch.ID())
		}
	}
	if err := s.sess.SaveProgress(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: save progress:", err)
	}

	// "ai" labels the active mode, not the question's actual origin: a
	// silently degraded question still counts as "ai" here. Cross-check the
	// LLM request event log to see whether the remote call succeeded.
	source := "local"
	if s.sess.AIQuiz && s.sess.Provider != nil {
		source = "ai"
	}
	err := s.sess.Store.EventRepo().AppendQuizAnswer(ctx, store.QuizEventData{
		ProfileID: s.sess.Profile.ID,
		Glyph:     s.question.Glyph,
		Correct:   correct,
		Source:    source,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: log quiz answer:", err)
	}
}

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.softMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(s.softMsg))
		return b.String()
	}

	score := fmt.Sprintf("Answered %d · Correct %d", s.answered, s.correct)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(score))
	b.WriteString("\n\n")

	if s.loading || s.question == nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.spinner.View()+" Preparing question..."))
		return b.String()
	}

	card := components.Flashcard{
		Glyph:       s.question.Glyph,
		Reading:     s.question.Answer,
		ShowReading: s.mc.Submitted,
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	if s.mc.Submitted {
		b.WriteString("\n")
		if s.mc.IsCorrect() {
			b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
				Render(fmt.Sprintf("Not quite — it reads %q. Added to revision.", s.question.Answer)))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key for the next question."))
	}

	return b.String()
}

// answerIndex returns the position of the correct option.
func answerIndex(q *quizgen.Question) int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return 0
}

// characterForGlyph resolves a displayed glyph back to its catalog entry.
func characterForGlyph(glyph string) (catalog.Character, bool) {
	for _, ch := range catalog.All() {
		if ch.Glyph == glyph {
			return ch, true
		}
	}
	return catalog.Character{}, false
}
