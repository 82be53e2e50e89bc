package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "drawplan" command and registers all
// subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "drawplan",
		Short: "Retirement savings drawdown calculator",
		Long: `drawplan simulates how long a retirement balance lasts under monthly
and yearly inflation-adjusted withdrawals, and estimates the initial
savings required to sustain a plan for a target number of years.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCalculateCmd(),
		newExampleCmd(),
		newServeCmd(),
	)

	return root
}
