package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"cloud.google.com/go/civil"

	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

func printBanner(w io.Writer) {
	title := theme.Title.Render("🧠  D S A P R E P")
	sub := theme.Subtitle.Render("Spaced Repetition Engine")
	fmt.Fprintln(w, lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 3).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, sub)))
	fmt.Fprintln(w)
}

// printDailySummary prints the one-line progress bar shown above most
// commands.
func printDailySummary(ctx context.Context, a *app, list string) error {
	d, err := a.svc.Dashboard(ctx, list)
	if err != nil {
		return err
	}
	parts := []string{
		fmt.Sprintf("%s/%d solved", theme.Bold.Render(fmt.Sprint(d.Overall.Started)), d.Overall.Total),
	}
	if d.Overall.DueToday > 0 {
		parts = append(parts, theme.Bad.Render(fmt.Sprintf("%d due", d.Overall.DueToday)))
	} else {
		parts = append(parts, theme.Good.Render("0 due"))
	}
	parts = append(parts, fmt.Sprintf("%s reviews", theme.Bold.Render(fmt.Sprint(d.Overall.TotalReviews))))
	parts = append(parts, streakLabel(d.Streak, d.Tier))

	fmt.Fprintln(a.out, theme.Panel.Render(strings.Join(parts, "  │  ")))
	fmt.Fprintln(a.out)
	return nil
}

func streakLabel(n int, tier progress.StreakTier) string {
	text := fmt.Sprintf("%s %d-day streak", tier.Badge(), n)
	switch tier {
	case progress.TierLegendary:
		return lipgloss.NewStyle().Foreground(theme.Legendary).Bold(true).Render(text)
	case progress.TierHot:
		return theme.Good.Render(text)
	case progress.TierWarm:
		return lipgloss.NewStyle().Foreground(theme.Success).Render(text)
	default:
		return theme.Hint.Render("No streak, solve one today!")
	}
}

// statusLabel is the long status used in panels.
func statusLabel(p problem.Problem, today civil.Date) string {
	switch p.Status(today) {
	case problem.StatusNew:
		return lipgloss.NewStyle().Foreground(theme.Primary).Render("NEW") + " - Never attempted"
	case problem.StatusDueToday:
		return theme.Warn.Render("DUE TODAY")
	case problem.StatusOverdue:
		return theme.Bad.Render("OVERDUE") + fmt.Sprintf(" by %d days", p.OverdueDays(today))
	default:
		return fmt.Sprintf("Due on %s", *p.NextReview)
	}
}

// reviewLabel is the short status used in tables.
func reviewLabel(p problem.Problem, today civil.Date) string {
	switch p.Status(today) {
	case problem.StatusNew:
		return theme.Hint.Render("New")
	case problem.StatusDueToday:
		return theme.Warn.Render("Today")
	case problem.StatusOverdue:
		return theme.Bad.Render(fmt.Sprintf("%dd overdue", p.OverdueDays(today)))
	default:
		return lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("in %dd", p.DaysUntilDue(today)))
	}
}

func problemPanel(title string, p problem.Problem, today civil.Date) string {
	rows := [][2]string{
		{"ID", fmt.Sprint(p.ID)},
		{"Name", theme.Bold.Render(p.Name)},
		{"Pattern", lipgloss.NewStyle().Foreground(theme.Primary).Render(p.Pattern)},
		{"List", p.List},
		{"Difficulty", theme.Difficulty(p.Difficulty).Render(p.Difficulty)},
		{"Status", statusLabel(p, today)},
		{"Times Solved", fmt.Sprint(p.TimesSolved)},
	}
	if p.URL != "" {
		rows = append(rows, [2]string{"URL", theme.Link.Render(p.URL)})
	}
	var lines []string
	for _, r := range rows {
		lines = append(lines, cell(theme.Hint.Render(r[0]), 14)+r[1])
	}
	return components.Panel(title, strings.Join(lines, "\n"), 0)
}

func printMilestones(w io.Writer, ms []progress.Milestone) {
	for _, m := range ms {
		fmt.Fprintln(w, components.MilestoneBanner(m.Title()))
	}
}

// cell pads or truncates s to exactly width terminal cells.
func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
