package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dsaprep",
	Short: "🧠 DSA interview prep with spaced repetition",
	Long: "dsaprep schedules coding interview problems with the SM-2 algorithm so you\n" +
		"review each one just before you would forget it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		printBanner(a.out)
		if err := printDailySummary(cmd.Context(), a, a.cfg.DefaultList); err != nil {
			return err
		}
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DSAPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides DSAPREP_CONFIG env var)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(addProblemCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(milestonesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
