package cli

import (
	"github.com/spf13/cobra"

	"github.com/tessro/startstream/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the configured programs",
	Long:  "Show each configured program, how it would be started, and the process name it would be closed by.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newManager()
		paths, loadErr := mgr.Programs()

		entries := make([]report.Entry, 0, len(paths))
		for _, path := range paths {
			entries = append(entries, report.Entry{
				Path:        path,
				Launch:      mgr.ResolveLaunch(path),
				ProcessName: mgr.DeriveProcessName(path),
			})
		}

		report.NewPrinter(cmd.OutOrStdout()).PrintPrograms(mgr.ListPath(), entries, loadErr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
