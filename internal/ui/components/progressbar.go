package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanazen/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional count
// suffix ("12/46").
type ProgressBar struct {
	Label     string
	Current   int
	Total     int
	ShowCount bool
	Width     int
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	countStr := ""
	if p.ShowCount {
		countStr = fmt.Sprintf("  %d/%d", p.Current, p.Total)
	}

	barWidth := p.Width - lipgloss.Width(result) - len(countStr)
	if barWidth < 4 {
		barWidth = 4
	}

	var percent float64
	if p.Total > 0 {
		percent = float64(p.Current) / float64(p.Total)
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowCount {
		result += lipgloss.NewStyle().Foreground(theme.TextDim).Render(countStr)
	}

	return result
}
