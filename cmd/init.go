package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
	"github.com/nasir-khan01/dsaprep/internal/session"
	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and load the Blind 75 list",
	Long: "Creates the database if needed and loads the bundled Blind 75 list.\n" +
		"Running it again only updates the list when the bundled version is newer;\n" +
		"review progress is always kept.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		l, err := catalog.Bundled()
		if err != nil {
			return err
		}
		out, err := a.svc.Seed(cmd.Context(), l, catalog.BundledSource, force)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, theme.Hint.Render("Database: "+a.cfg.DBPath))
		printSeedOutcome(a, out)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Re-seed even when the stored list is up to date")
}

func printSeedOutcome(a *app, out session.SeedOutcome) {
	if out.Skipped {
		fmt.Fprintf(a.out, "%s is up to date (%s). Use --force to re-seed.\n", out.List, out.Previous)
		return
	}
	version := ""
	if out.Version != "" {
		version = " " + out.Version
	}
	fmt.Fprintln(a.out, theme.Good.Render(fmt.Sprintf("✓ Loaded %s%s: %d new, %d updated", out.List, version, out.Inserted, out.Updated)))
	fmt.Fprintln(a.out, theme.Hint.Render("Run 'dsaprep next' to get your first problem."))
}
