package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/catalog"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a custom problem list from a JSON file",
	Long: "Imports a list file shaped like the bundled one:\n\n" +
		`  {"name": "Grind 169", "version": "v1.0.0",` + "\n" +
		`   "problems": [{"name": "Two Sum", "url": "...", "difficulty": "Easy", "pattern": "Arrays & Hashing"}]}` + "\n\n" +
		"Problems without a pattern get one inferred from their category.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		name, _ := cmd.Flags().GetString("list")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open list file: %w", err)
		}
		defer f.Close()
		l, err := catalog.Load(f)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		if name != "" {
			l.Name = name
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.svc.Seed(cmd.Context(), l, args[0], force)
		if err != nil {
			return err
		}
		printSeedOutcome(a, out)
		return nil
	},
}

func init() {
	importCmd.Flags().StringP("list", "l", "", "Store the problems under this list name")
	importCmd.Flags().Bool("force", false, "Re-import even when the stored list is up to date")
}
