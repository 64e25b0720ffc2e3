package schema

import "time"

// ChangeEvent is a tagged union describing one row change pushed by a
// change feed. Table and Type select which payload pointer is set; events
// with an unrecognized (table, type) pair are ignored by consumers.
type ChangeEvent struct {
	Table Table     `json:"table"`
	Type  EventType `json:"type"`

	Call         *CallRecord   `json:"call,omitempty"`
	Appointment  *Appointment  `json:"appointment,omitempty"`
	Usage        *UsageRecord  `json:"usage,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// EventInterest is one (table, event type) filter of a feed subscription.
type EventInterest struct {
	Table Table
	Type  EventType
}

// AllDashboardInterests returns the full interest set for a dashboard
// session: inserts and updates on every watched table.
func AllDashboardInterests() []EventInterest {
	var interests []EventInterest
	for _, t := range WatchedTables {
		interests = append(interests,
			EventInterest{Table: t, Type: EventInsert},
			EventInterest{Table: t, Type: EventUpdate},
		)
	}
	return interests
}

// FeedTransition records one observed state change of a feed channel.
type FeedTransition struct {
	State FeedState `json:"state"`
	At    time.Time `json:"at"`
	Err   string    `json:"err,omitempty"`
}
