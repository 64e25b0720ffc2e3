package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// volumeCmd renders the daily call volume series.
var volumeCmd = &cobra.Command{
	Use:   "volume [client-id]",
	Short: "Show daily call volume with completed/failed splits.",
	Long: `Bucket calls by calendar day over the selected range.

Every day in the range appears, including days with zero calls, so the
series is always contiguous. The peak day is marked.

Examples:
  # Daily volume for the last 7 days
  calldeck volume

  # Last 90 days for one client as JSON
  calldeck volume client-42 --range 90d --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		series, err := core.ExecuteVolume(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute volume trend", err)
		}
		if err := outwriter.NewOutWriter().WriteVolume(series, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write volume trend", err)
		}
	},
}
