// Package querycache holds the named result cache and snapshot storage.
package querycache

import (
	"sync"

	"github.com/calldeck/calldeck/internal/contract"
)

// StoreManager manages the live query cache and the snapshot store.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	live         contract.QueryCache
	snapshots    contract.SnapshotStore
}

// GetLiveCache returns the live query cache.
func (mgr *StoreManager) GetLiveCache() contract.QueryCache {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.live
}

// GetSnapshotStore returns the snapshot store.
func (mgr *StoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}
