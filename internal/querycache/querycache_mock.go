package querycache

import (
	"github.com/stretchr/testify/mock"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// MockQueryCache is a mock implementation of QueryCache for testing.
type MockQueryCache struct {
	mock.Mock
}

var _ contract.QueryCache = &MockQueryCache{} // Compile-time check

// Get implements the QueryCache interface.
func (m *MockQueryCache) Get(name, params string) ([]byte, bool) {
	args := m.Called(name, params)
	value, _ := args.Get(0).([]byte)
	return value, args.Bool(1)
}

// Set implements the QueryCache interface.
func (m *MockQueryCache) Set(name, params string, value []byte) {
	m.Called(name, params, value)
}

// Invalidate implements the QueryCache interface.
func (m *MockQueryCache) Invalidate(names ...string) {
	m.Called(names)
}

// InvalidatePrefix implements the QueryCache interface.
func (m *MockQueryCache) InvalidatePrefix(prefix string) {
	m.Called(prefix)
}

// InvalidateAll implements the QueryCache interface.
func (m *MockQueryCache) InvalidateAll() {
	m.Called()
}

// Status implements the QueryCache interface.
func (m *MockQueryCache) Status() schema.CacheStatus {
	args := m.Called()
	status, _ := args.Get(0).(schema.CacheStatus)
	return status
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Get implements the SnapshotStore interface.
func (m *MockSnapshotStore) Get(name, params string) ([]byte, int, int64, error) {
	args := m.Called(name, params)
	value, _ := args.Get(0).([]byte)
	return value, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the SnapshotStore interface.
func (m *MockSnapshotStore) Set(name, params string, value []byte, version int, timestamp int64) error {
	args := m.Called(name, params, value, version, timestamp)
	return args.Error(0)
}

// Clear implements the SnapshotStore interface.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// GetAll implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAll() ([]schema.SnapshotRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.SnapshotRecord)
	return records, args.Error(1)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(schema.SnapshotStatus)
	return status, args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
