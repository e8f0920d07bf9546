package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/session"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show pattern-wise progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		list := listFlag(cmd, a)

		d, err := a.svc.Dashboard(cmd.Context(), list)
		if err != nil {
			return err
		}
		if d.Overall.Total == 0 {
			return errNoProblems(list)
		}

		fmt.Fprintln(a.out, theme.Title.Render("📊 DSAPrep Dashboard"))
		if list != "" {
			fmt.Fprintln(a.out, theme.Hint.Render("Showing: "+list))
		} else if lists, err := a.st.Problems().Lists(cmd.Context()); err == nil {
			fmt.Fprintln(a.out, theme.Hint.Render("Showing all lists: "+strings.Join(lists, ", ")))
		}
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, renderDashboard(d))
		fmt.Fprintln(a.out, theme.Hint.Render("Run 'dsaprep stats' for the detailed problem list"))
		fmt.Fprintln(a.out, theme.Hint.Render("Run 'dsaprep next' to get the next problem to solve"))
		return nil
	},
}

func init() {
	dashboardCmd.Flags().StringP("list", "l", "", "Filter by source list")
}

func errNoProblems(list string) error {
	if list != "" {
		return fmt.Errorf("no problems found in list %q", list)
	}
	return fmt.Errorf("no problems in database, run 'dsaprep init' first")
}

func renderDashboard(d session.Dashboard) string {
	var b strings.Builder

	dueStyle := theme.Good
	if d.Overall.DueToday > 0 {
		dueStyle = theme.Bad
	}
	summary := fmt.Sprintf("%s  |  %s  |  %s  |  %s",
		theme.Bold.Render(fmt.Sprintf("Total: %d problems", d.Overall.Total)),
		theme.Good.Render(fmt.Sprintf("Started: %d", d.Overall.Started)),
		dueStyle.Render(fmt.Sprintf("Due: %d", d.Overall.DueToday)),
		streakLabel(d.Streak, d.Tier))
	b.WriteString(components.Panel("", summary+"\n"+components.NewProgressBar(d.Overall.ProgressPercent(), 40, true).View(), 0))
	b.WriteString("\n\n")

	for _, g := range d.Groups {
		due := ""
		if g.Due > 0 {
			due = " " + theme.Bad.Render(fmt.Sprintf("(%d due)", g.Due))
		}
		fmt.Fprintf(&b, "  %s %s (%d/%d)%s\n",
			components.NewProgressBar(g.ProgressPercent, 10, true).View(),
			theme.Bold.Render(g.Label), g.Solved, g.Total, due)
	}

	if len(d.Activity) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render(fmt.Sprintf("Last %d days", len(d.Activity))) + "\n")
		b.WriteString("  " + activityLine(d.Activity) + "\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Reviews: %d total, %d recent, average rating %.1f\n", d.Reviews.Total, d.Reviews.Recent, d.Reviews.AverageQuality)
	if d.NextTier > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Hint.Render(fmt.Sprintf("%d more day(s) to the next streak tier", d.NextTier-d.Streak)))
	}
	if d.NextSolved > 0 {
		fmt.Fprintf(&b, "%s\n", theme.Hint.Render(fmt.Sprintf("Next milestone: %d problems solved (%d to go)", d.NextSolved, d.NextSolved-d.Facts.Solved)))
	}
	return b.String()
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// activityLine renders one spark per day scaled to the busiest day.
func activityLine(days []progress.DayCount) string {
	peak := 0
	for _, d := range days {
		peak = max(peak, d.Count)
	}
	var b strings.Builder
	for _, d := range days {
		switch {
		case d.Count == 0:
			b.WriteString(theme.Hint.Render("·"))
		default:
			i := (d.Count*len(sparks) - 1) / peak
			b.WriteString(theme.Good.Render(string(sparks[min(i, len(sparks)-1)])))
		}
	}
	return b.String()
}
