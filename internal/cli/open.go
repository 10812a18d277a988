package cli

import (
	"github.com/spf13/cobra"

	"github.com/tessro/startstream/internal/report"
)

var openCmd = &cobra.Command{
	Use:     "open",
	Aliases: []string{"start"},
	Short:   "Start every configured program",
	Long: `Start every program listed in the program list, in order. A failure to
start one program is reported and the rest are still started.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	r := newManager().OpenPrograms(cmd.Context())
	report.NewPrinter(cmd.OutOrStdout()).Print(r)
	return pause(cmd)
}

func init() {
	rootCmd.AddCommand(openCmd)
}
