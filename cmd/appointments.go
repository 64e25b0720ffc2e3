package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// appointmentsCmd renders appointment statistics.
var appointmentsCmd = &cobra.Command{
	Use:   "appointments [client-id]",
	Short: "Show appointment stats: show-up rate, lead time, bookings.",
	Long: `Aggregate appointments booked in the selected range.

Computes:
- Total appointments and a per-status split
- Show-up rate over decided appointments (completed vs no-show)
- Average lead time between booking and the appointment day
- A daily booking trend

Subcommands:
  upcoming - List appointments from today onward

Examples:
  # Stats for the last 7 days
  calldeck appointments

  # One client, last month, as CSV
  calldeck appointments client-42 --range last-month --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		stats, err := core.ExecuteAppointments(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot compute appointment stats", err)
		}
		if err := outwriter.NewOutWriter().WriteAppointments(stats, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write appointment stats", err)
		}
	},
}

// appointmentsUpcomingCmd lists appointments from today onward.
var appointmentsUpcomingCmd = &cobra.Command{
	Use:   "upcoming [client-id]",
	Short: "List appointments scheduled from today onward.",
	Long: `List appointments with a date of today or later, soonest first.

Examples:
  # All upcoming appointments
  calldeck appointments upcoming

  # Upcoming appointments for one client
  calldeck appointments upcoming client-42 --limit 10`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		items, err := core.ExecuteUpcomingAppointments(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot list upcoming appointments", err)
		}
		if err := outwriter.NewOutWriter().WriteUpcoming(items, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write upcoming appointments", err)
		}
	},
}
