package schema

// Custom string types for type safety.
type (
	// CallStatus represents the lifecycle status of a call.
	CallStatus string

	// AppointmentStatus represents the status of an appointment.
	AppointmentStatus string

	// RangeKey represents a symbolic dashboard time range.
	RangeKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots.
	DatabaseBackend string

	// FeedState represents the connection state of a change feed channel.
	FeedState string

	// EventType represents the kind of row change reported by a feed.
	EventType string

	// Table identifies a watched remote table.
	Table string
)

// All call statuses supported.
const (
	CallCompleted CallStatus = "completed"
	CallMissed    CallStatus = "missed"
	CallFailed    CallStatus = "failed"
	CallOngoing   CallStatus = "ongoing"
	CallUnknown   CallStatus = "unknown"
)

// All appointment statuses supported.
const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// All symbolic time ranges supported.
const (
	Last7Days  RangeKey = "7d" // default
	Last30Days RangeKey = "30d"
	Last90Days RangeKey = "90d"
	ThisMonth  RangeKey = "this-month"
	LastMonth  RangeKey = "last-month"
	Custom     RangeKey = "custom"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All snapshot backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All feed states observed on a subscription channel.
const (
	FeedConnecting FeedState = "connecting"
	FeedSubscribed FeedState = "subscribed"
	FeedClosed     FeedState = "closed"
	FeedErrored    FeedState = "errored"
)

// All event types a feed reports.
const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
)

// All watched tables.
const (
	TableCalls         Table = "call_logs"
	TableAppointments  Table = "appointments"
	TableUsage         Table = "usage_records"
	TableNotifications Table = "notifications"
)

// WatchedTables lists every table the bridge subscribes to.
var WatchedTables = []Table{TableCalls, TableAppointments, TableUsage, TableNotifications}

// ValidRangeKeys lists all valid symbolic ranges.
var ValidRangeKeys = map[RangeKey]struct{}{
	Last7Days:  {},
	Last30Days: {},
	Last90Days: {},
	ThisMonth:  {},
	LastMonth:  {},
	Custom:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidBackends lists all valid snapshot backends.
var ValidBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
