package querycache

import (
	"time"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// SnapshotSchemaVersion tags every persisted snapshot. Warm skips rows
// written under another version so a changed envelope shape is refetched
// instead of decoded.
const SnapshotSchemaVersion = 1

// DurableCache layers the snapshot store under the live cache. Reads,
// invalidation and status come from the live cache alone; every value
// write is also upserted as a snapshot so the last-known result of each
// named query survives process restarts.
type DurableCache struct {
	live      *LiveCache
	snapshots contract.SnapshotStore
}

var _ contract.QueryCache = &DurableCache{} // Compile-time check

// NewDurableCache wraps live with write-through snapshot persistence.
func NewDurableCache(live *LiveCache, snapshots contract.SnapshotStore) *DurableCache {
	return &DurableCache{live: live, snapshots: snapshots}
}

// Get implements the QueryCache interface.
func (c *DurableCache) Get(name, params string) ([]byte, bool) {
	return c.live.Get(name, params)
}

// Set stores the value in the live cache and upserts it as a snapshot.
// A snapshot failure is contained: the fetch already succeeded and must
// not fail because durable storage is unavailable.
func (c *DurableCache) Set(name, params string, value []byte) {
	c.live.Set(name, params, value)
	if err := c.snapshots.Set(name, params, value, SnapshotSchemaVersion, time.Now().Unix()); err != nil {
		contract.LogWarn("Cannot persist query snapshot", err)
	}
}

// Invalidate implements the QueryCache interface.
func (c *DurableCache) Invalidate(names ...string) {
	c.live.Invalidate(names...)
}

// InvalidatePrefix implements the QueryCache interface.
func (c *DurableCache) InvalidatePrefix(prefix string) {
	c.live.InvalidatePrefix(prefix)
}

// InvalidateAll implements the QueryCache interface.
func (c *DurableCache) InvalidateAll() {
	c.live.InvalidateAll()
}

// Status implements the QueryCache interface.
func (c *DurableCache) Status() schema.CacheStatus {
	return c.live.Status()
}

// Warm seeds the live cache with every stored snapshot at the current
// schema version, so the first dashboard render after startup has
// something to show before its first fetch completes.
func (c *DurableCache) Warm() error {
	records, err := c.snapshots.GetAll()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.Version != SnapshotSchemaVersion {
			continue
		}
		c.live.Set(rec.QueryName, rec.Params, rec.Value)
	}
	return nil
}
