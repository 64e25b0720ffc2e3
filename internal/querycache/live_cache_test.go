package querycache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/internal/contract"
)

func TestLiveCache_SetAndGet(t *testing.T) {
	cache := NewLiveCache()

	cache.Set(contract.QueryCallKPIs, "from=1;to=2", []byte(`{"total":3}`))

	value, ok := cache.Get(contract.QueryCallKPIs, "from=1;to=2")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"total":3}`), value)

	// Different params are a different entry
	_, ok = cache.Get(contract.QueryCallKPIs, "from=2;to=3")
	assert.False(t, ok)

	// Unknown name is a miss
	_, ok = cache.Get("nonexistent", "from=1;to=2")
	assert.False(t, ok)
}

func TestLiveCache_InvalidateHidesEntries(t *testing.T) {
	cache := NewLiveCache()
	cache.Set(contract.QueryCallKPIs, "a", []byte("1"))
	cache.Set(contract.QueryCallKPIs, "b", []byte("2"))
	cache.Set(contract.QueryVolumeTrend, "a", []byte("3"))

	cache.Invalidate(contract.QueryCallKPIs)

	// Every params variant under the invalidated name goes stale
	_, ok := cache.Get(contract.QueryCallKPIs, "a")
	assert.False(t, ok)
	_, ok = cache.Get(contract.QueryCallKPIs, "b")
	assert.False(t, ok)

	// Other names are untouched
	value, ok := cache.Get(contract.QueryVolumeTrend, "a")
	require.True(t, ok)
	assert.Equal(t, []byte("3"), value)
}

func TestLiveCache_SetClearsStaleness(t *testing.T) {
	cache := NewLiveCache()
	cache.Set(contract.QueryRecentCalls, "a", []byte("old"))
	cache.Invalidate(contract.QueryRecentCalls)

	_, ok := cache.Get(contract.QueryRecentCalls, "a")
	require.False(t, ok)

	// A fresh write revives the entry
	cache.Set(contract.QueryRecentCalls, "a", []byte("new"))
	value, ok := cache.Get(contract.QueryRecentCalls, "a")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestLiveCache_InvalidatePrefix(t *testing.T) {
	cache := NewLiveCache()
	cache.Set(contract.QueryAgentAnalyticsPrefix+"agent-1", "a", []byte("1"))
	cache.Set(contract.QueryAgentAnalyticsPrefix+"agent-2", "a", []byte("2"))
	cache.Set(contract.QueryCallKPIs, "a", []byte("3"))

	cache.InvalidatePrefix(contract.QueryAgentAnalyticsPrefix)

	_, ok := cache.Get(contract.QueryAgentAnalyticsPrefix+"agent-1", "a")
	assert.False(t, ok)
	_, ok = cache.Get(contract.QueryAgentAnalyticsPrefix+"agent-2", "a")
	assert.False(t, ok)
	_, ok = cache.Get(contract.QueryCallKPIs, "a")
	assert.True(t, ok)
}

func TestLiveCache_InvalidateAll(t *testing.T) {
	cache := NewLiveCache()
	for _, name := range contract.DashboardQueryNames {
		cache.Set(name, "a", []byte("x"))
	}

	cache.InvalidateAll()

	for _, name := range contract.DashboardQueryNames {
		_, ok := cache.Get(name, "a")
		assert.False(t, ok, "entry %s should be stale", name)
	}
}

func TestLiveCache_Status(t *testing.T) {
	cache := NewLiveCache()

	status := cache.Status()
	assert.Equal(t, 0, status.TotalEntries)
	assert.True(t, status.LastWrite.IsZero())

	cache.Set(contract.QueryCallKPIs, "a", []byte("1"))
	cache.Set(contract.QueryVolumeTrend, "a", []byte("2"))
	cache.Invalidate(contract.QueryVolumeTrend)

	status = cache.Status()
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, 1, status.StaleEntries)
	assert.False(t, status.LastWrite.IsZero())
	assert.False(t, status.LastInvalidate.IsZero())
}

func TestLiveCache_ConcurrentAccess(t *testing.T) {
	cache := NewLiveCache()
	done := make(chan struct{})

	go func() {
		for i := 0; i < 500; i++ {
			cache.Set(contract.QueryCallKPIs, "a", []byte("v"))
		}
		close(done)
	}()

	for i := 0; i < 500; i++ {
		cache.Get(contract.QueryCallKPIs, "a")
		cache.Invalidate(contract.QueryCallKPIs)
	}
	<-done

	// Last writer may or may not be stale; Status must still be coherent
	status := cache.Status()
	assert.Equal(t, 1, status.TotalEntries)
}
