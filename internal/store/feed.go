package store

import (
	"encoding/json"
	"fmt"

	"github.com/calldeck/calldeck/schema"
)

// DefaultFeedChannel is the Postgres NOTIFY channel (and the conventional
// Kafka topic) carrying dashboard change envelopes.
const DefaultFeedChannel = "calldeck_changes"

// changeEnvelope is the wire format both feeds carry: the table, the event
// type, and a row summary whose shape depends on the table.
type changeEnvelope struct {
	Table schema.Table     `json:"table"`
	Type  schema.EventType `json:"type"`
	Row   json.RawMessage  `json:"row,omitempty"`
}

// decodeChangeEvent parses one envelope payload into a ChangeEvent with
// the table-appropriate row pointer populated. A missing or malformed row
// summary still yields a usable event; the caches get invalidated either
// way, only the notification detail is lost.
func decodeChangeEvent(payload []byte) (schema.ChangeEvent, error) {
	var env changeEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return schema.ChangeEvent{}, fmt.Errorf("malformed change payload: %w", err)
	}
	if env.Table == "" || env.Type == "" {
		return schema.ChangeEvent{}, fmt.Errorf("change payload missing table or type")
	}

	ev := schema.ChangeEvent{Table: env.Table, Type: env.Type}
	if len(env.Row) == 0 {
		return ev, nil
	}

	switch env.Table {
	case schema.TableCalls:
		var row schema.CallRecord
		if err := json.Unmarshal(env.Row, &row); err == nil {
			ev.Call = &row
		}
	case schema.TableAppointments:
		var row schema.Appointment
		if err := json.Unmarshal(env.Row, &row); err == nil {
			ev.Appointment = &row
		}
	case schema.TableUsage:
		var row schema.UsageRecord
		if err := json.Unmarshal(env.Row, &row); err == nil {
			ev.Usage = &row
		}
	case schema.TableNotifications:
		var row schema.Notification
		if err := json.Unmarshal(env.Row, &row); err == nil {
			ev.Notification = &row
		}
	}
	return ev, nil
}

// interestSet answers "does this subscription care about this event".
type interestSet map[schema.EventInterest]struct{}

func newInterestSet(interests []schema.EventInterest) interestSet {
	set := make(interestSet, len(interests))
	for _, interest := range interests {
		set[interest] = struct{}{}
	}
	return set
}

func (s interestSet) wants(ev schema.ChangeEvent) bool {
	_, ok := s[schema.EventInterest{Table: ev.Table, Type: ev.Type}]
	return ok
}
