package querycache

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetSnapshotDBFilePath returns the path to the SQLite DB file for
// snapshot storage.
func GetSnapshotDBFilePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "calldeck")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "snapshots.db")
}

// InitStores initializes the global manager with the live cache and the
// snapshot store. snapshotBackend can be NoneBackend to disable snapshots.
func InitStores(snapshotBackend schema.DatabaseBackend, snapshotConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var snapshots contract.SnapshotStore
		if snapshotBackend != "" {
			var err error
			snapshots, err = NewSnapshotStore(snapshotBackend, snapshotConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
				return
			}
		}

		live := NewLiveCache()
		var cache contract.QueryCache = live
		if snapshots != nil {
			// Write-through: fetched results are persisted as snapshots,
			// and stored snapshots pre-fill the cache before the first fetch.
			durable := NewDurableCache(live, snapshots)
			if err := durable.Warm(); err != nil {
				contract.LogWarn("Cannot warm cache from snapshots", err)
			}
			cache = durable
		}

		Manager.Lock()
		Manager.live = cache
		Manager.snapshots = snapshots
		Manager.Unlock()
	})

	return initErr
}

// CloseStores closes the snapshot store exactly once.
func CloseStores() error {
	var closeErr error
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.snapshots != nil {
			closeErr = Manager.snapshots.Close()
		}
	})
	return closeErr
}
