package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rail44/kata/exercise"
)

var fizzbuzzCmd = &cobra.Command{
	Use:   "fizzbuzz",
	Short: "Print FizzBuzz for 1 to 100, one line each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exercise.WriteFizzBuzz(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(fizzbuzzCmd)
}
