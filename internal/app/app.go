// Package app wires the Bubble Tea program: root model, screen router, and
// the shared frame (header, footer, minimum-size guard).
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/catalog"
	"github.com/abhisek/kanazen/internal/config"
	"github.com/abhisek/kanazen/internal/llm"
	"github.com/abhisek/kanazen/internal/progress"
	"github.com/abhisek/kanazen/internal/router"
	"github.com/abhisek/kanazen/internal/screen"
	"github.com/abhisek/kanazen/internal/screens/profiles"
	"github.com/abhisek/kanazen/internal/session"
	"github.com/abhisek/kanazen/internal/store"
	"github.com/abhisek/kanazen/internal/ui/layout"
	"github.com/abhisek/kanazen/internal/ui/theme"
)

// Options carries the dependencies for a program run.
type Options struct {
	Store      *store.Store
	FileConfig config.FileConfig

	// Provider is nil when no LLM provider is configured; the app works
	// fully without it.
	Provider llm.Provider
}

// sessionHolder is implemented by screens bound to an open session; the
// header reads the learner totals through it.
type sessionHolder interface {
	Session() *session.Session
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates a new AppModel with the profile picker on the stack.
func newAppModel(opts Options) AppModel {
	lastID, _, _ := opts.Store.PrefsRepo().Get(context.Background(), store.PrefLastProfile)
	picker := profiles.New(opts.Store, opts.FileConfig, opts.Provider, lastID)
	return AppModel{
		router: router.New(picker),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PushScreenMsg:
		if h, ok := msg.Screen.(sessionHolder); ok {
			m.sess = h.Session()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				cmd := m.router.Update(router.PopScreenMsg{})
				if m.router.Depth() == 1 {
					m.sess = nil
				}
				return m, cmd
			}
			// At the stack bottom esc goes to the screen itself, which may
			// use it to cancel an inline mode.
		}
	}

	cmd := m.router.Update(msg)
	if m.router.Depth() == 1 {
		m.sess = nil
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	learned, streak := 0, 0
	hasProfile := m.sess != nil
	if hasProfile {
		p := m.sess.Progress
		learned = len(catalog.Resolve(p.Learned))
		streak = p.Streak(progress.DateOf(time.Now()))
	}
	header := layout.RenderHeader(title, learned, streak, hasProfile, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	applyTheme(opts)

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// applyTheme resolves the palette: preference, then config file, then dark.
func applyTheme(opts Options) {
	if v, ok, err := opts.Store.PrefsRepo().Get(context.Background(), store.PrefTheme); err == nil && ok {
		theme.Apply(v)
		return
	}
	if opts.FileConfig.App.Theme != nil {
		theme.Apply(*opts.FileConfig.App.Theme)
		return
	}
	theme.Apply(theme.Dark)
}
