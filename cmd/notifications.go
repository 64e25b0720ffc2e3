package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/core"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/outwriter"
)

// notificationsCmd lists recent dashboard notifications.
var notificationsCmd = &cobra.Command{
	Use:   "notifications [client-id]",
	Short: "List recent dashboard notifications, newest first.",
	Long: `List stored notifications for the selected range, newest first.

Each row shows when the notification was created, its title and body,
and whether it has been read.

Examples:
  # Recent notifications across all clients
  calldeck notifications

  # Unread-heavy view for one client
  calldeck notifications client-42 --limit 20`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		items, total, err := core.ExecuteNotifications(rootCtx, cfg, rowStore, liveCache())
		if err != nil {
			contract.LogFatal("Cannot list notifications", err)
		}
		if err := outwriter.NewOutWriter().WriteNotifications(items, total, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write notifications", err)
		}
	},
}
