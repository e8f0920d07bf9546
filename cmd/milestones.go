package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Show reached and upcoming milestones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		d, err := a.svc.Dashboard(cmd.Context(), "")
		if err != nil {
			return err
		}
		thresholds := a.cfg.Milestones

		fmt.Fprintln(a.out, theme.Title.Render("🎯 Milestones"))
		fmt.Fprintln(a.out)
		reached := progress.Reached(d.Facts, thresholds)
		if len(reached) == 0 {
			fmt.Fprintln(a.out, theme.Hint.Render("None yet. Solve your first problem to earn one!"))
		}
		for _, m := range reached {
			fmt.Fprintln(a.out, "  "+m.Title())
		}

		fmt.Fprintln(a.out)
		if d.NextSolved > 0 {
			fmt.Fprintf(a.out, "  Next: %d problems solved (%d/%d)\n", d.NextSolved, d.Facts.Solved, d.NextSolved)
		}
		if d.NextReviews > 0 {
			fmt.Fprintf(a.out, "  Next: %d total reviews (%d/%d)\n", d.NextReviews, d.Facts.Reviews, d.NextReviews)
		}
		fmt.Fprintf(a.out, "  Streak: %s\n", streakLabel(d.Streak, d.Tier))
		return nil
	},
}
