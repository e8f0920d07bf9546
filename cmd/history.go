package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/store"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history [id|title]",
	Short: "Show recorded reviews, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		pool, err := a.st.Problems().FindAll(ctx, "")
		if err != nil {
			return err
		}
		names := make(map[int]string, len(pool))
		for _, p := range pool {
			names[p.ID] = p.Name
		}

		q := store.EventQuery{Limit: n}
		if len(args) == 1 {
			p, err := findProblem(ctx, a, args[0])
			if err != nil {
				return err
			}
			q.ProblemID = p.ID
		}
		events, err := a.st.Events().QueryEvents(ctx, q)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Fprintln(a.out, theme.Hint.Render("No reviews recorded yet."))
			return nil
		}

		for _, ev := range events {
			rating := theme.Good.Render(fmt.Sprint(int(ev.Quality)))
			if !ev.Quality.IsSuccess() {
				rating = theme.Bad.Render(fmt.Sprint(int(ev.Quality)))
			}
			fmt.Fprintf(a.out, "%s %s %s rated %s → next in %dd (EF %.2f)\n",
				cell(theme.Hint.Render(ev.ReviewedOn.String()), 11),
				cell(theme.Hint.Render(humanize.Time(ev.RecordedAt)), 16),
				cell(truncate(names[ev.ProblemID], 40), 41),
				rating, ev.IntervalDays, ev.EaseFactor)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum reviews to show (0 for all)")
}
