package querycache

import (
	"strings"
	"sync"
	"time"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// liveEntry is one cached query result with its staleness flag.
type liveEntry struct {
	value     []byte
	stale     bool
	writtenAt time.Time
}

// LiveCache is the in-memory named result cache shared by the fetch layer
// and the change feed bridge. Entries are keyed by (query name, params).
// Only the fetch layer writes values; only the bridge flips staleness.
type LiveCache struct {
	mu             sync.RWMutex
	entries        map[string]map[string]*liveEntry // name -> params -> entry
	lastWrite      time.Time
	lastInvalidate time.Time
}

var _ contract.QueryCache = &LiveCache{} // Compile-time check

// NewLiveCache returns an empty live cache.
func NewLiveCache() *LiveCache {
	return &LiveCache{entries: make(map[string]map[string]*liveEntry)}
}

// Get returns the cached value for (name, params) if present and fresh.
func (c *LiveCache) Get(name, params string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name][params]
	if !ok || entry.stale {
		return nil, false
	}
	return entry.value, true
}

// Set stores a query result and clears its staleness.
func (c *LiveCache) Set(name, params string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	byParams, ok := c.entries[name]
	if !ok {
		byParams = make(map[string]*liveEntry)
		c.entries[name] = byParams
	}
	byParams[params] = &liveEntry{value: value, writtenAt: time.Now()}
	c.lastWrite = time.Now()
}

// Invalidate marks every entry under each named query as stale. Values are
// kept so readers that tolerate staleness could still render them; Get
// simply stops returning them.
func (c *LiveCache) Invalidate(names ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, name := range names {
		for _, entry := range c.entries[name] {
			entry.stale = true
		}
	}
	c.lastInvalidate = time.Now()
}

// InvalidatePrefix marks every entry whose query name starts with prefix
// as stale. Used for per-agent analytics entries.
func (c *LiveCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, byParams := range c.entries {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		for _, entry := range byParams {
			entry.stale = true
		}
	}
	c.lastInvalidate = time.Now()
}

// InvalidateAll marks every entry stale.
func (c *LiveCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, byParams := range c.entries {
		for _, entry := range byParams {
			entry.stale = true
		}
	}
	c.lastInvalidate = time.Now()
}

// Status reports entry counts and write/invalidate times.
func (c *LiveCache) Status() schema.CacheStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	status := schema.CacheStatus{
		LastWrite:      c.lastWrite,
		LastInvalidate: c.lastInvalidate,
	}
	for _, byParams := range c.entries {
		for _, entry := range byParams {
			status.TotalEntries++
			if entry.stale {
				status.StaleEntries++
			}
		}
	}
	return status
}
