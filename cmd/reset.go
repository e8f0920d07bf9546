package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset review progress",
	Long: "Returns problems to NEW and drops their review history. Problems and\n" +
		"lists are kept. Use --list to reset a single list.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetString("list")
		yes, _ := cmd.Flags().GetBool("yes")
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		scope := "ALL lists"
		if list != "" {
			scope = list
		}
		if !yes {
			ok, err := newPrompter(a).confirm(fmt.Sprintf("Reset all progress in %s?", scope))
			if errors.Is(err, errCancelled) || (err == nil && !ok) {
				fmt.Fprintln(a.out, theme.Hint.Render("Nothing changed."))
				return nil
			}
			if err != nil {
				return err
			}
		}

		n, err := a.svc.Reset(cmd.Context(), list)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, theme.Good.Render(fmt.Sprintf("✓ Reset %d problems in %s", n, scope)))
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("list", "l", "", "Only reset this list")
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
