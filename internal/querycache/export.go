package querycache

import (
	"errors"
	"fmt"

	"github.com/calldeck/calldeck/internal/parquet"
)

// ExecuteSnapshotExport exports persisted dashboard snapshots to a Parquet file.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalSnapshots == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total snapshots: %d\n", status.TotalSnapshots)

	// Retrieve all snapshot rows
	records, err := store.GetAll()
	if err != nil {
		return fmt.Errorf("failed to retrieve snapshots: %w", err)
	}

	// Convert to Parquet format and write
	snapshots := parquet.ConvertSnapshotRecords(records)
	snapshotFile := outputFile + ".snapshots.parquet"
	if err := parquet.WriteSnapshotsParquet(snapshots, snapshotFile); err != nil {
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	fmt.Printf("Exported %d snapshots to: %s\n", len(snapshots), snapshotFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
