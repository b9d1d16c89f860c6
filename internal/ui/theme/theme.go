package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme names, persisted in preferences.
const (
	Dark  = "dark"
	Light = "light"
)

// Color palette. The active palette is swapped by Apply; all style vars are
// rebuilt from these.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
)

func init() {
	Apply(Dark)
}

// Apply switches the active palette and rebuilds every style. Unknown names
// fall back to dark. The UI runs on a single goroutine, so reassigning the
// package vars is safe.
func Apply(name string) {
	switch name {
	case Light:
		Primary = lipgloss.Color("#7C3AED")   // Violet
		Secondary = lipgloss.Color("#0D9488") // Teal
		Accent = lipgloss.Color("#EA580C")    // Orange
		Success = lipgloss.Color("#16A34A")   // Green
		Error = lipgloss.Color("#E11D48")     // Rose
		Text = lipgloss.Color("#1E293B")      // Slate
		TextDim = lipgloss.Color("#64748B")   // Slate Dim
		Bg = lipgloss.Color("#F8FAFC")        // Near White
		BgCard = lipgloss.Color("#E2E8F0")    // Light Slate
		Border = lipgloss.Color("#94A3B8")    // Slate
	default:
		Primary = lipgloss.Color("#A78BFA")   // Soft Purple
		Secondary = lipgloss.Color("#2DD4BF") // Teal
		Accent = lipgloss.Color("#FB923C")    // Orange
		Success = lipgloss.Color("#4ADE80")   // Green
		Error = lipgloss.Color("#FB7185")     // Rose
		Text = lipgloss.Color("#F8FAFC")      // White
		TextDim = lipgloss.Color("#94A3B8")   // Slate
		Bg = lipgloss.Color("#0F172A")        // Deep Navy
		BgCard = lipgloss.Color("#1E293B")    // Dark Slate
		Border = lipgloss.Color("#334155")    // Slate
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)
}
