package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/kata/internal/formatter"
)

var runCmd = &cobra.Command{
	Use:   "run <exercise> [args...]",
	Short: "Run one exercise and print its result",
	Long: `Run one exercise with the given arguments and print the result in the
configured format. Integer lists may be given as separate arguments or
comma-separated. Everything after the exercise name is passed through
unchanged, so negative numbers need no escaping.

Use "kata list" to see the available exercises.`,
	Example: `  kata run sum 1,2,3,4
  kata run anagram listen silent
  kata --format json run fibonacci 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newRunner().Run(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		return formatter.Format(cmd.OutOrStdout(), cfg.Format, result)
	},
}

func init() {
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}
