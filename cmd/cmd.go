// Package cmd defines the command-line interface for calldeck.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/store"
	"github.com/calldeck/calldeck/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(callsCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(outcomesCmd)
	rootCmd.AddCommand(appointmentsCmd)
	rootCmd.AddCommand(billingCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the appointments subcommands to the parent appointments command
	appointmentsCmd.AddCommand(appointmentsUpcomingCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)
	cacheCmd.AddCommand(cacheExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("client", "c", "", "Scope results to one client (tenant)")
	rootCmd.PersistentFlags().StringP("agent", "a", "", "Scope results to one agent")
	rootCmd.PersistentFlags().StringP("range", "r", string(contract.DefaultRangeKey), "Time range: 7d, 30d, 90d, this-month, last-month, or custom")
	rootCmd.PersistentFlags().String("from", "", "Range start for --range custom (ISO8601 date or timestamp)")
	rootCmd.PersistentFlags().String("to", "", "Range end for --range custom (ISO8601 date or timestamp)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-dsn", "", "Postgres connection string for the dashboard row store")
	rootCmd.PersistentFlags().String("feed-source", contract.FeedSourcePostgres, "Change feed source: postgres or kafka")
	rootCmd.PersistentFlags().String("feed-channel", store.DefaultFeedChannel, "Postgres NOTIFY channel (or Kafka topic) carrying change events")
	rootCmd.PersistentFlags().String("kafka-brokers", "", "Comma-separated Kafka broker addresses")
	rootCmd.PersistentFlags().String("kafka-topic", "", "Kafka topic carrying change events")
	rootCmd.PersistentFlags().String("snapshot-backend", string(schema.SQLiteBackend), "Snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for mysql/postgresql snapshot backends")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
