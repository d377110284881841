package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Width(12)
	usageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available exercises",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ex := range newRunner().Registry().List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n%s\n",
				nameStyle.Render(ex.Name()),
				ex.Description(),
				usageStyle.Render("    kata run "+ex.Usage()),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
