package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// callsCmd lists the most recent calls.
var callsCmd = &cobra.Command{
	Use:   "calls [client-id]",
	Short: "List the most recent calls with status and outcome.",
	Long: `List recent calls for the selected range, newest first.

Each row shows when the call started, which agent handled it, how long
it ran, its status, and the recorded outcome if any.

Examples:
  # Last 50 calls across all clients
  calldeck calls

  # Last 20 calls for one client as CSV
  calldeck calls client-42 --limit 20 --output csv --output-file calls.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		calls, total, err := core.ExecuteRecentCalls(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot list recent calls", err)
		}
		if err := outwriter.NewOutWriter().WriteCalls(calls, total, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write call list", err)
		}
	},
}
