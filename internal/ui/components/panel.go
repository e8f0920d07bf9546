package components

import (
	"charm.land/lipgloss/v2"

	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

// Panel wraps content in a rounded border with a bold title line.
// A width of 0 sizes the panel to its content.
func Panel(title, content string, width int) string {
	body := content
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(title), "", content)
	}
	style := theme.Panel
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}

// MilestoneBanner renders one milestone announcement.
func MilestoneBanner(line string) string {
	header := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🎯 MILESTONE")
	return theme.MilestonePanel.Render(lipgloss.JoinVertical(lipgloss.Left, header, theme.Bold.Render(line)))
}
