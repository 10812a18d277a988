package cli

import (
	"github.com/spf13/cobra"

	"github.com/tessro/startstream/internal/report"
)

var killCmd = &cobra.Command{
	Use:   "kill <name>",
	Short: "Kill every running process with the given name",
	Long:  "Kill every running process named <name> and wait for each to exit.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := newManager().Kill(cmd.Context(), args[0])
		report.NewPrinter(cmd.OutOrStdout()).Print(r)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(killCmd)
}
