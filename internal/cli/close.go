package cli

import (
	"github.com/spf13/cobra"

	"github.com/tessro/startstream/internal/report"
)

var closeCmd = &cobra.Command{
	Use:     "close",
	Aliases: []string{"stop"},
	Short:   "Close every configured program",
	Long: `Kill the running processes of every program in the program list. The
process name is the marker executable's name when the entry is a directory
containing it, and the entry's file name without extension otherwise.`,
	Args: cobra.NoArgs,
	RunE: runClose,
}

func runClose(cmd *cobra.Command, args []string) error {
	r := newManager().ClosePrograms(cmd.Context())
	report.NewPrinter(cmd.OutOrStdout()).Print(r)
	return pause(cmd)
}

func init() {
	rootCmd.AddCommand(closeCmd)
}
