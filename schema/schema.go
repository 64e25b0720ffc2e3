// Package schema has configs, models and shared types for all parts of calldeck.
package schema

import "time"

// CallRecord represents a single voice-agent call as stored in the remote
// call_logs table. Rows are immutable once created except for status
// transitions (e.g. ongoing -> completed) and soft-archival.
type CallRecord struct {
	ID              string        `json:"id"`
	AgentID         string        `json:"agent_id"`
	ClientID        string        `json:"client_id"`
	StartedAt       time.Time     `json:"started_at"`
	DurationSeconds int           `json:"duration_seconds"`
	Status          CallStatus    `json:"status"`
	Outcome         string        `json:"outcome,omitempty"`
	Cost            *float64      `json:"cost,omitempty"`
	Collected       CollectedData `json:"collected_data"`
	RecordingURL    string        `json:"recording_url,omitempty"`
	Archived        bool          `json:"archived"`
}

// CollectedData is the loosely-typed payload a voice agent gathers during a
// call. Email and Phone are the only fields with contractual meaning (lead
// capture); everything else rides along in Extra.
type CollectedData struct {
	Email string         `json:"email,omitempty"`
	Phone string         `json:"phone,omitempty"`
	Extra map[string]any `json:"extra,omitempty"`
}

// HasLead reports whether the payload captured a contactable lead.
func (c CollectedData) HasLead() bool {
	return c.Email != "" || c.Phone != ""
}

// Appointment represents a booked appointment row. Date and TimeOfDay are
// kept as the store's string encodings ("2006-01-02" and "HH:MM") since
// both are compared and grouped lexically.
type Appointment struct {
	ID        string            `json:"id"`
	ClientID  string            `json:"client_id"`
	Date      string            `json:"date"`
	TimeOfDay string            `json:"time_of_day"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// UsageRecord represents a metered usage row for billing.
type UsageRecord struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	RecordedAt time.Time `json:"recorded_at"`
	Minutes    float64   `json:"minutes"`
	Cost       float64   `json:"cost"`
}

// Notification represents an in-app notification row.
type Notification struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// TimeRange is an inclusive [From, To] window that scopes every aggregation.
type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Duration returns the length of the range.
func (r TimeRange) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
