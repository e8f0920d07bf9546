package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

// ProgressBar displays a block-character progress bar colored by how far
// along it is.
type ProgressBar struct {
	Percent     float64 // 0-100
	Width       int     // cells used by the bar itself
	ShowPercent bool
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(percent float64, width int, showPercent bool) ProgressBar {
	return ProgressBar{Percent: percent, Width: width, ShowPercent: showPercent}
}

// Cells returns the filled and empty cell counts.
func (p ProgressBar) Cells() (filled, empty int) {
	w := p.Width
	if w < 4 {
		w = 4
	}
	filled = int(float64(w) * p.Percent / 100)
	filled = max(0, min(filled, w))
	return filled, w - filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	filled, empty := p.Cells()
	style := lipgloss.NewStyle().Foreground(theme.ProgressColor(p.Percent))
	s := style.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))
	if p.ShowPercent {
		s += style.Render(fmt.Sprintf(" %3.0f%%", p.Percent))
	}
	return s
}
