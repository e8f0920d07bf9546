package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/store"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show all problem lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()
		repo := a.st.Problems()
		today := a.svc.Today()

		lists, err := repo.Lists(ctx)
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			return errNoProblems("")
		}

		metas, err := a.st.Lists().All(ctx)
		if err != nil {
			return err
		}
		byName := make(map[string]store.ListMeta, len(metas))
		for _, m := range metas {
			byName[m.Name] = m
		}

		fmt.Fprintln(a.out, theme.Title.Render("📋 Problem Lists"))
		fmt.Fprintln(a.out)
		for _, l := range lists {
			total, err := repo.Count(ctx, store.Query{List: l})
			if err != nil {
				return err
			}
			started, err := repo.Count(ctx, store.Query{List: l, Filter: store.FilterStarted})
			if err != nil {
				return err
			}
			due, err := repo.Count(ctx, store.Query{List: l, Filter: store.FilterDue, Today: today})
			if err != nil {
				return err
			}

			origin := ""
			if meta, ok := byName[l]; ok {
				if meta.Version != "" {
					origin = theme.Hint.Render(fmt.Sprintf(" [%s from %s]", meta.Version, meta.Source))
				} else {
					origin = theme.Hint.Render(fmt.Sprintf(" [from %s]", meta.Source))
				}
			}
			fmt.Fprintf(a.out, "  • %s: %d problems (%d started, %d due)%s\n", theme.Bold.Render(l), total, started, due, origin)
		}
		return nil
	},
}
