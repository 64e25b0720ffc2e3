package contract

import (
	"context"

	"github.com/calldeck/calldeck/schema"
	"github.com/stretchr/testify/mock"
)

// MockRowStore is a mock implementation of RowStore for testing.
type MockRowStore struct {
	mock.Mock
}

var _ RowStore = &MockRowStore{} // Compile-time check

// FetchCalls implements the RowStore interface.
func (m *MockRowStore) FetchCalls(ctx context.Context, q CallQuery) ([]schema.CallRecord, int, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]schema.CallRecord)
	return rows, args.Int(1), args.Error(2)
}

// FetchAppointments implements the RowStore interface.
func (m *MockRowStore) FetchAppointments(ctx context.Context, q AppointmentQuery) ([]schema.Appointment, int, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]schema.Appointment)
	return rows, args.Int(1), args.Error(2)
}

// FetchUsage implements the RowStore interface.
func (m *MockRowStore) FetchUsage(ctx context.Context, q UsageQuery) ([]schema.UsageRecord, int, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]schema.UsageRecord)
	return rows, args.Int(1), args.Error(2)
}

// FetchNotifications implements the RowStore interface.
func (m *MockRowStore) FetchNotifications(ctx context.Context, q NotificationQuery) ([]schema.Notification, int, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]schema.Notification)
	return rows, args.Int(1), args.Error(2)
}

// Close implements the RowStore interface.
func (m *MockRowStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockNotifier is a mock implementation of Notifier for testing.
type MockNotifier struct {
	mock.Mock
}

var _ Notifier = &MockNotifier{} // Compile-time check

// Notify implements the Notifier interface.
func (m *MockNotifier) Notify(title, detail string) error {
	args := m.Called(title, detail)
	return args.Error(0)
}
