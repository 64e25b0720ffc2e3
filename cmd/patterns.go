package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// patternsCmd renders hour-of-day and weekday call patterns.
var patternsCmd = &cobra.Command{
	Use:   "patterns [client-id]",
	Short: "Show when calls happen: busiest hours and weekdays.",
	Long: `Bucket calls by hour of day and by weekday over the selected range.

Use this to spot staffing gaps, e.g. a spike of missed calls at lunch
hours or on Mondays.

Examples:
  # Patterns for the last 7 days
  calldeck patterns

  # Patterns for one agent over the last month
  calldeck patterns client-42 --agent agent-7 --range last-month`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		patterns, err := core.ExecutePatterns(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute call patterns", err)
		}
		if err := outwriter.NewOutWriter().WritePatterns(patterns, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write call patterns", err)
		}
	},
}
