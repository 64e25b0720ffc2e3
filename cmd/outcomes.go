package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// outcomesCmd renders the call outcome distribution.
var outcomesCmd = &cobra.Command{
	Use:   "outcomes [client-id]",
	Short: "Show how calls ended: outcome counts and percentages.",
	Long: `Group calls by recorded outcome over the selected range.

Calls without an outcome are grouped under "unknown". Percentages are
computed against all calls in the range.

Examples:
  # Outcome split for the last 7 days
  calldeck outcomes

  # One client, last 30 days
  calldeck outcomes client-42 --range 30d`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		outcomes, err := core.ExecuteOutcomes(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute outcome distribution", err)
		}
		if err := outwriter.NewOutWriter().WriteOutcomes(outcomes, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write outcome distribution", err)
		}
	},
}
