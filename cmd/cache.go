package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/internal/querycache"
	"github.com/calldeck/calldeck/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need snapshot access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the cache substrate with the loaded config
	if err := querycache.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache stores: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by dashboard commands. This avoids opening the
// row store and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached dashboard snapshots (improves responsiveness)",
	Long: `Manage the snapshot store that persists computed dashboard results.

Calldeck persists aggregation snapshots so dashboards open warm after a
restart. The live in-process cache is rebuilt on demand and needs no
management.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status  - Show snapshot store statistics and connection info
  clear   - Remove all persisted snapshots
  migrate - Run snapshot schema migrations
  export  - Export snapshots to Parquet

Examples:
  # Check snapshot store status
  calldeck cache status

  # Clear snapshots after a data backfill
  calldeck cache clear`,
}

// cacheStatusCmd shows snapshot store status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot store statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of persisted snapshots
- Last and oldest snapshot timestamps

Examples:
  # Check snapshot store status
  calldeck cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := querycache.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		querycache.PrintSnapshotStatus(status)
	},
}

// cacheClearCmd clears the snapshot store.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted dashboard snapshots",
	Long: `Delete all persisted snapshots from the configured backend.

Use this when:
- Historical rows were backfilled or corrected
- Snapshots may be stale or corrupted
- Testing dashboard latency without warm snapshots

Examples:
  # Clear SQLite snapshots (default)
  calldeck cache clear

  # Clear MySQL snapshots (set connection string via env variable)
  CALLDECK_SNAPSHOT_BACKEND=mysql CALLDECK_SNAPSHOT_DB_CONNECT="..." calldeck cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := querycache.Manager.GetSnapshotStore().Clear(); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		fmt.Println("Snapshots cleared successfully.")
	},
}

// cacheMigrateCmd runs database migrations for the snapshot store.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run snapshot schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  calldeck cache migrate

  # Migrate to specific version
  calldeck cache migrate --target-version 1

  # Rollback to initial state
  calldeck cache migrate --target-version 0`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := querycache.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run snapshot migrations", err)
		}
		fmt.Println("Snapshot migrations completed successfully.")
	},
}

// cacheExportCmd exports snapshots to Parquet files.
var cacheExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export persisted snapshots to Parquet for BI tools",
	Long: `Export all persisted snapshots to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all snapshots
  calldeck cache export --output-file calldeck-snapshots.parquet`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("Missing output file", fmt.Errorf("cache export requires --output-file"))
		}
		if err := querycache.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}
