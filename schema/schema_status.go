package schema

import "time"

// CacheStatus represents the status of the live query cache.
type CacheStatus struct {
	TotalEntries   int       `json:"total_entries"`
	StaleEntries   int       `json:"stale_entries"`
	LastWrite      time.Time `json:"last_write"`
	LastInvalidate time.Time `json:"last_invalidate"`
}

// SnapshotStatus represents the status of the durable snapshot store.
type SnapshotStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalSnapshots  int       `json:"total_snapshots"`
	LastWriteTime   time.Time `json:"last_write_time"`
	OldestWriteTime time.Time `json:"oldest_write_time"`
}

// SnapshotRecord represents a row from the calldeck_snapshots table.
type SnapshotRecord struct {
	QueryName string
	Params    string
	Value     []byte
	Version   int
	WrittenAt time.Time
}
