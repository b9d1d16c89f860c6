package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/abhisek/kanazen/internal/ui/theme"
)

// flashcardInnerWidth is the card interior in terminal cells. Kana and kanji
// are double-width, so centering goes through runewidth, not len().
const flashcardInnerWidth = 20

// Flashcard renders one character as a bordered card: the glyph large in the
// middle, the reading underneath when revealed, and a dim caption line.
type Flashcard struct {
	Glyph       string
	Reading     string
	Caption     string
	ShowReading bool
}

// View renders the card.
func (f Flashcard) View() string {
	var b strings.Builder

	b.WriteString(centerCell("", flashcardInnerWidth))
	b.WriteString("\n")

	glyph := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(centerCell(f.Glyph, flashcardInnerWidth))
	b.WriteString(glyph)
	b.WriteString("\n\n")

	if f.ShowReading {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(centerCell(f.Reading, flashcardInnerWidth)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(centerCell("· · ·", flashcardInnerWidth)))
	}
	b.WriteString("\n")

	card := theme.Card.Render(b.String())

	if f.Caption != "" {
		caption := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(centerCell(f.Caption, flashcardInnerWidth+6))
		card += "\n" + caption
	}

	return card
}

// centerCell pads s to width terminal cells, accounting for double-width
// glyphs.
func centerCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
