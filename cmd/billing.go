package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// billingCmd renders the metered usage overview.
var billingCmd = &cobra.Command{
	Use:   "billing [client-id]",
	Short: "Show metered minutes and cost for the selected range.",
	Long: `Aggregate metered usage rows into a billing overview.

Shows total minutes and total cost for the range plus a per-day
breakdown bucketed by each row's recorded timestamp.

Examples:
  # Usage for the last 30 days
  calldeck billing --range 30d

  # One client's usage as JSON
  calldeck billing client-42 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		summary, err := core.ExecuteBilling(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute billing overview", err)
		}
		if err := outwriter.NewOutWriter().WriteBilling(summary, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write billing overview", err)
		}
	},
}
