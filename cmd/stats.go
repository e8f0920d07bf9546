package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/progress"
	"github.com/nasir-khan01/dsaprep/internal/store"
	"github.com/nasir-khan01/dsaprep/internal/ui/components"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics and the problem table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, _ := cmd.Flags().GetString("pattern")
		filterName, _ := cmd.Flags().GetString("filter")
		filter, err := parseFilter(filterName)
		if err != nil {
			return err
		}
		sortName, _ := cmd.Flags().GetString("sort")
		order, err := parseOrder(sortName)
		if err != nil {
			return err
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		list := listFlag(cmd, a)
		today := a.svc.Today()

		pool, err := a.st.Problems().FindAll(cmd.Context(), list)
		if err != nil {
			return err
		}
		if len(pool) == 0 {
			return errNoProblems(list)
		}
		if pattern != "" {
			known, err := a.st.Problems().Patterns(cmd.Context(), list)
			if err != nil {
				return err
			}
			if pattern, err = matchPattern(pattern, known); err != nil {
				return err
			}
		}
		problems, err := a.st.Problems().Find(cmd.Context(), store.Query{
			List:    list,
			Pattern: pattern,
			Filter:  filter,
			Today:   today,
			Order:   order,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(a.out, theme.Title.Render("📊 DSAPrep Statistics"))
		if list != "" {
			fmt.Fprintln(a.out, theme.Hint.Render("Showing: "+list))
		}
		fmt.Fprintln(a.out)

		st := progress.Overall(pool, today)
		due := theme.Good.Render("0")
		if st.DueToday > 0 {
			due = theme.Bad.Render(fmt.Sprint(st.DueToday))
		}
		rows := [][2]string{
			{"Total Problems", fmt.Sprint(st.Total)},
			{"Problems Started", fmt.Sprintf("%d (%.0f%%)", st.Started, st.ProgressPercent())},
			{"New Problems", fmt.Sprint(st.New)},
			{"Due Today", due},
			{"Total Reviews", fmt.Sprint(st.TotalReviews)},
		}
		var lines []string
		for _, r := range rows {
			lines = append(lines, cell(theme.Hint.Render(r[0]), 18)+theme.Bold.Render(r[1]))
		}
		fmt.Fprintln(a.out, components.Panel("Summary", strings.Join(lines, "\n"), 0))
		fmt.Fprintln(a.out)

		if byPattern, _ := cmd.Flags().GetBool("by-pattern"); byPattern {
			var glines []string
			for _, g := range progress.SortedGroups(progress.ByGroup(pool, today)) {
				bar := components.NewProgressBar(g.ProgressPercent, 16, true)
				glines = append(glines, cell(truncate(g.Label, 23), 24)+bar.View()+
					theme.Hint.Render(fmt.Sprintf("  %d/%d", g.Solved, g.Total)))
			}
			fmt.Fprintln(a.out, components.Panel("By Pattern", strings.Join(glines, "\n"), 0))
			fmt.Fprintln(a.out)
		}

		if len(problems) == 0 {
			fmt.Fprintln(a.out, theme.Hint.Render("No problems match."))
			return nil
		}
		header := cell("ID", 5) + cell("Name", 36) + cell("Pattern", 19) + cell("Diff", 8) + cell("Next Review", 13) + "Solved"
		fmt.Fprintln(a.out, theme.Bold.Render(header))
		for _, p := range problems {
			solved := theme.Hint.Render("-")
			if p.TimesSolved > 0 {
				solved = fmt.Sprint(p.TimesSolved)
			}
			fmt.Fprintln(a.out,
				cell(theme.Hint.Render(fmt.Sprint(p.ID)), 5)+
					cell(truncate(p.Name, 35), 36)+
					cell(theme.Selected.Render(truncate(p.Pattern, 18)), 19)+
					cell(theme.Difficulty(p.Difficulty).Render(p.Difficulty), 8)+
					cell(reviewLabel(p, today), 13)+
					solved)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("list", "l", "", "Filter by source list")
	statsCmd.Flags().StringP("pattern", "p", "", "Only show problems of this pattern")
	statsCmd.Flags().String("filter", "all", "all, due, new, overdue or started")
	statsCmd.Flags().String("sort", "id", "id, pattern or next")
	statsCmd.Flags().Bool("by-pattern", false, "Show per-pattern progress, most complete first")
}

func parseFilter(name string) (store.Filter, error) {
	for _, f := range []store.Filter{store.FilterAll, store.FilterDue, store.FilterNew, store.FilterOverdue, store.FilterStarted} {
		if strings.EqualFold(name, f.String()) {
			return f, nil
		}
	}
	return store.FilterAll, fmt.Errorf("unknown filter %q", name)
}

var orderNames = map[string]store.Order{
	"id":      store.OrderID,
	"pattern": store.OrderPattern,
	"next":    store.OrderNextReview,
}

func parseOrder(name string) (store.Order, error) {
	if o, ok := orderNames[strings.ToLower(name)]; ok {
		return o, nil
	}
	return store.OrderID, fmt.Errorf("unknown sort %q (want id, pattern or next)", name)
}

// matchPattern returns the stored spelling of pattern, ignoring case.
func matchPattern(pattern string, known []string) (string, error) {
	for _, k := range known {
		if strings.EqualFold(strings.TrimSpace(pattern), k) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown pattern %q (known: %s)", pattern, strings.Join(known, ", "))
}
