package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// metricsCmd renders the dashboard metric bundle.
var metricsCmd = &cobra.Command{
	Use:   "metrics [client-id]",
	Short: "Show call KPIs, sparkline, and period-over-period trends.",
	Long: `Aggregate call rows into the dashboard metric bundle.

Computes for the selected range:
- Total calls and total minutes (seconds rounded to nearest minute)
- Success rate with a quality label
- Average call duration in seconds
- A seven-point sparkline of per-bucket activity
- Trends against the immediately preceding period of equal length

Results are cached per client, agent, and range, and stay cached until
a change event or polling fallback invalidates them.

Examples:
  # KPIs for the last 7 days across all clients
  calldeck metrics

  # One client, last 30 days, as JSON
  calldeck metrics client-42 --range 30d --output json

  # One agent inside a client
  calldeck metrics client-42 --agent agent-7`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		metrics, err := core.ExecuteDashboardMetrics(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute dashboard metrics", err)
		}
		if err := outwriter.NewOutWriter().WriteMetrics(metrics, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write dashboard metrics", err)
		}
	},
}
