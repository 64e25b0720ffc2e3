// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/calldeck/calldeck/schema"
)

// ListBounds carries pagination and ordering for row fetches.
type ListBounds struct {
	Limit      int
	Offset     int
	Descending bool
}

// CallQuery filters a call_logs fetch.
type CallQuery struct {
	Range           schema.TimeRange
	AgentID         string
	ClientID        string
	Status          schema.CallStatus
	IncludeArchived bool
	Bounds          ListBounds
}

// AppointmentQuery filters an appointments fetch. The range applies to the
// appointment date, not the booking time.
type AppointmentQuery struct {
	Range    schema.TimeRange
	ClientID string
	Status   schema.AppointmentStatus
	Bounds   ListBounds
}

// UsageQuery filters a usage_records fetch.
type UsageQuery struct {
	Range    schema.TimeRange
	ClientID string
	Bounds   ListBounds
}

// NotificationQuery filters a notifications fetch.
type NotificationQuery struct {
	ClientID   string
	UnreadOnly bool
	Bounds     ListBounds
}

// RowStore defines the read operations against the remote relational store.
// Every fetch returns the matching rows plus the total count before
// pagination, so callers can render paging controls.
// This allows the aggregation logic to be tested without a live database.
type RowStore interface {
	FetchCalls(ctx context.Context, q CallQuery) ([]schema.CallRecord, int, error)
	FetchAppointments(ctx context.Context, q AppointmentQuery) ([]schema.Appointment, int, error)
	FetchUsage(ctx context.Context, q UsageQuery) ([]schema.UsageRecord, int, error)
	FetchNotifications(ctx context.Context, q NotificationQuery) ([]schema.Notification, int, error)
	Close() error
}

// ChangeFeed is a push-based change notification stream. Subscribe
// registers interest filters and two callback slots; it returns an
// unsubscribe function that is idempotent and safe to call multiple times.
// Events are delivered in arrival order on a single goroutine.
type ChangeFeed interface {
	Subscribe(ctx context.Context, interests []schema.EventInterest,
		onEvent func(schema.ChangeEvent),
		onStatus func(schema.FeedState, error)) (func(), error)
}

// QueryCache is the named result cache shared by the fetch layer and the
// change feed bridge. The bridge is the only invalidator; the fetch layer
// is the only value writer. Get only returns fresh (non-stale) entries.
type QueryCache interface {
	Get(name, params string) ([]byte, bool)
	Set(name, params string, value []byte)
	Invalidate(names ...string)
	InvalidatePrefix(prefix string)
	InvalidateAll()
	Status() schema.CacheStatus
}

// SnapshotStore persists last-known query results across sessions.
// This allows mocking the store for testing.
type SnapshotStore interface {
	Get(name, params string) ([]byte, int, int64, error)
	Set(name, params string, value []byte, version int, timestamp int64) error
	Clear() error
	GetAll() ([]schema.SnapshotRecord, error)
	GetStatus() (schema.SnapshotStatus, error)
	Close() error
}

// Notifier surfaces transient, informational alerts to the user.
// Failures are contained by callers; a broken notifier must never take
// down the subscription.
type Notifier interface {
	Notify(title, detail string) error
}
