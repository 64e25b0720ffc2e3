package querycache

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestSnapshotStore_NoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// Get should report not found for NoneBackend
	_, _, _, err = store.Get("call-kpis", "a")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	// Other operations should not error
	err = store.Set("call-kpis", "a", []byte("x"), 1, time.Now().Unix())
	assert.NoError(t, err)

	err = store.Clear()
	assert.NoError(t, err)

	records, err := store.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, records)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)

	err = store.Close()
	assert.NoError(t, err)
}

func TestSnapshotStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	now := time.Now().Unix()

	// Set then Get round trip
	err = store.Set("call-kpis", "from=1;to=2", []byte(`{"total":3}`), 1, now)
	require.NoError(t, err)

	value, version, ts, err := store.Get("call-kpis", "from=1;to=2")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":3}`), value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Upsert replaces the existing row
	err = store.Set("call-kpis", "from=1;to=2", []byte(`{"total":4}`), 2, now+1)
	require.NoError(t, err)

	value, version, _, err = store.Get("call-kpis", "from=1;to=2")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total":4}`), value)
	assert.Equal(t, 2, version)

	// Unknown key is sql.ErrNoRows
	_, _, _, err = store.Get("call-kpis", "from=9;to=9")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSnapshotStore_GetAllAndStatus(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	base := time.Now().Unix()
	require.NoError(t, store.Set("call-kpis", "a", []byte("1"), 1, base))
	require.NoError(t, store.Set("volume-trend", "a", []byte("2"), 1, base+10))

	records, err := store.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	assert.Equal(t, "volume-trend", records[0].QueryName)
	assert.Equal(t, "call-kpis", records[1].QueryName)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalSnapshots)
	assert.Equal(t, time.Unix(base+10, 0), status.LastWriteTime)
	assert.Equal(t, time.Unix(base, 0), status.OldestWriteTime)
}

func TestSnapshotStore_Clear(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Set("call-kpis", "a", []byte("1"), 1, time.Now().Unix()))
	require.NoError(t, store.Clear())

	records, err := store.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSnapshotStore_UnsupportedBackend(t *testing.T) {
	_, err := NewSnapshotStore("oracle", "")
	assert.Error(t, err)
}
