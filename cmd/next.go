package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/problem"
	"github.com/nasir-khan01/dsaprep/internal/selector"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next problem to solve",
	Long:  "Shows the most overdue problem, or a new one when nothing is due.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		list := listFlag(cmd, a)

		if err := printDailySummary(cmd.Context(), a, list); err != nil {
			return err
		}
		sel, err := a.svc.Next(cmd.Context(), list)
		if err != nil {
			return err
		}
		if !sel.Found() {
			msg := "No problems due for review."
			if list != "" {
				msg = fmt.Sprintf("No problems due for review in %s.", theme.Bold.Render(list))
			}
			fmt.Fprintln(a.out, components.Panel("Status",
				theme.Good.Render("🎉 All caught up!")+"\n\n"+msg+"\nGreat job staying consistent!", 0))
			return nil
		}

		fmt.Fprintln(a.out, problemPanel("📚 Next Problem", sel.Problem, a.svc.Today()))
		fmt.Fprintln(a.out, theme.Hint.Render(fmt.Sprintf("Run 'dsaprep solve %d' to attempt this problem", sel.Problem.ID)))
		return nil
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List the upcoming review queue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		q, err := a.svc.Queue(cmd.Context(), listFlag(cmd, a), n)
		if err != nil {
			return err
		}
		if len(q) == 0 {
			fmt.Fprintln(a.out, theme.Good.Render("🎉 All caught up!"))
			return nil
		}
		today := a.svc.Today()
		for i, s := range q {
			kind := theme.Warn.Render("due")
			if s.Kind == selector.New {
				kind = theme.Hint.Render("new")
			}
			fmt.Fprintf(a.out, "%3d. %s %s %s %s\n", i+1,
				cell(fmt.Sprintf("#%d", s.Problem.ID), 5),
				cell(kind, 4),
				cell(truncate(s.Problem.Name, 40), 41),
				reviewLabel(s.Problem, today))
		}
		return nil
	},
}

func init() {
	nextCmd.Flags().StringP("list", "l", "", "Filter by source list")
	queueCmd.Flags().StringP("list", "l", "", "Filter by source list")
	queueCmd.Flags().IntP("limit", "n", 10, "Maximum problems to show (0 for all)")
}

// findProblem resolves an id or title to exactly one problem.
func findProblem(ctx context.Context, a *app, ref string) (problem.Problem, error) {
	pool, err := a.st.Problems().FindAll(ctx, "")
	if err != nil {
		return problem.Problem{}, err
	}
	matches := problem.Match(ref, pool)
	switch len(matches) {
	case 0:
		return problem.Problem{}, fmt.Errorf("no problem matches %q", ref)
	case 1:
		return matches[0], nil
	}
	var names []string
	for i, p := range matches {
		if i == 5 {
			names = append(names, "…")
			break
		}
		names = append(names, fmt.Sprintf("#%d %s", p.ID, p.Name))
	}
	return problem.Problem{}, fmt.Errorf("ambiguous problem %q, did you mean: %s", ref, strings.Join(names, ", "))
}
