package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasir-khan01/dsaprep/internal/ui/theme"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		source := res.ConfigPath
		if !res.ConfigFound {
			source += " (not found, using defaults)"
		}
		fmt.Fprintln(out, theme.Hint.Render("# config: "+source))
		fmt.Fprintln(out, theme.Hint.Render("# database: "+res.DBPath))

		data, err := res.Config.Marshal()
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}
		_, err = out.Write(data)
		return err
	},
}
