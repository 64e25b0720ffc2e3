package querycache

import (
	"fmt"

	"github.com/calldeck/calldeck/schema"
)

// PrintCacheStatus prints live cache status information.
func PrintCacheStatus(status schema.CacheStatus) {
	fmt.Printf("Live Cache Entries: %d\n", status.TotalEntries)
	fmt.Printf("Stale Entries: %d\n", status.StaleEntries)
	if !status.LastWrite.IsZero() {
		fmt.Printf("Last Write: %s\n", status.LastWrite.Format("2006-01-02 15:04:05"))
	}
	if !status.LastInvalidate.IsZero() {
		fmt.Printf("Last Invalidate: %s\n", status.LastInvalidate.Format("2006-01-02 15:04:05"))
	}
}

// PrintSnapshotStatus prints snapshot store status information.
func PrintSnapshotStatus(status schema.SnapshotStatus) {
	fmt.Printf("Snapshot Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Snapshots: %d\n", status.TotalSnapshots)
	if status.TotalSnapshots > 0 {
		fmt.Printf("Last Write: %s\n", status.LastWriteTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Write: %s\n", status.OldestWriteTime.Format("2006-01-02 15:04:05"))
	}
}
