package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calldeck/calldeck/internal/bridge"
	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/store"
)

// watchCmd runs the change feed bridge in the foreground.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the change feed and keep dashboard caches fresh.",
	Long: `Subscribe to the change feed and run the cache bridge until interrupted.

The bridge maps each change event to the dashboard queries it makes
stale, invalidates them, and prints a transient alert for insert
events. If the feed stays disconnected past the staleness threshold,
the bridge falls back to periodic full invalidation until the feed
recovers.

Feed sources:
  postgres - LISTEN on a NOTIFY channel (default)
  kafka    - consume the same JSON envelope from a topic

Examples:
  # Watch the Postgres feed
  calldeck watch --store-dsn "host=db user=calldeck dbname=calldeck"

  # Watch a Kafka CDC topic instead
  calldeck watch --feed-source kafka --kafka-brokers broker1:9092,broker2:9092 --kafka-topic calldeck_changes`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		var feed contract.ChangeFeed
		switch cfg.FeedSource {
		case contract.FeedSourceKafka:
			feed = store.NewKafkaFeed(cfg.KafkaBrokers, cfg.KafkaTopic)
		default:
			feed = store.NewPostgresFeed(cfg.StoreDSN, cfg.FeedChannel)
		}

		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		notifier := &consoleNotifier{useColors: cfg.UseColors}
		session, err := bridge.Start(ctx, feed, liveCache(), notifier)
		if err != nil {
			contract.LogFatal("Cannot start change feed bridge", err)
		}

		fmt.Printf("👂 Watching %s change feed (session %s). Press Ctrl+C to stop.\n", cfg.FeedSource, session.ID())
		<-ctx.Done()

		session.Close()
		fmt.Println("Change feed session closed.")
	},
}
