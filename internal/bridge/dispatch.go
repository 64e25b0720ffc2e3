package bridge

import (
	"fmt"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// dispatch performs the fixed, table-specific invalidation for one event.
// The mapping below is a design contract: which caches go stale per event,
// and which events raise a visible alert versus a silent invalidation.
// Unrecognized (table, type) pairs are ignored.
func (s *Session) dispatch(ev schema.ChangeEvent) {
	switch ev.Table {
	case schema.TableCalls:
		s.dispatchCall(ev)
	case schema.TableAppointments:
		s.dispatchAppointment(ev)
	case schema.TableUsage:
		s.dispatchUsage(ev)
	case schema.TableNotifications:
		s.dispatchNotification(ev)
	}
}

func (s *Session) dispatchCall(ev schema.ChangeEvent) {
	switch ev.Type {
	case schema.EventInsert:
		detail := ""
		if ev.Call != nil {
			detail = fmt.Sprintf("Agent %s handled a call", ev.Call.AgentID)
		}
		s.notify("New call", detail)
		s.cache.Invalidate(contract.QueryRecentCalls, contract.QueryCallKPIs, contract.QueryVolumeTrend)
		s.cache.InvalidatePrefix(contract.QueryAgentAnalyticsPrefix)

	case schema.EventUpdate:
		// Updates are frequent and noisy, so no alert
		s.cache.Invalidate(contract.QueryRecentCalls, contract.QueryCallKPIs)
	}
}

func (s *Session) dispatchAppointment(ev schema.ChangeEvent) {
	switch ev.Type {
	case schema.EventInsert:
		detail := ""
		if ev.Appointment != nil && ev.Appointment.Date != "" {
			detail = fmt.Sprintf("Booked for %s", ev.Appointment.Date)
		}
		s.notify("New appointment", detail)
		s.cache.Invalidate(contract.QueryUpcomingAppointments, contract.QueryAppointments)

	case schema.EventUpdate:
		s.cache.Invalidate(contract.QueryUpcomingAppointments, contract.QueryAppointments)
	}
}

func (s *Session) dispatchUsage(ev schema.ChangeEvent) {
	switch ev.Type {
	case schema.EventInsert, schema.EventUpdate:
		s.cache.Invalidate(contract.QueryBillingOverview, contract.QueryUsageDetail, contract.QueryUsageDaily)
	}
}

func (s *Session) dispatchNotification(ev schema.ChangeEvent) {
	if ev.Type != schema.EventInsert {
		return
	}
	title := "New notification"
	detail := ""
	if ev.Notification != nil {
		title = ev.Notification.Title
		detail = ev.Notification.Body
	}
	s.notify(title, detail)
	s.cache.Invalidate(contract.QueryNotificationsUnread, contract.QueryNotificationsRecent, contract.QueryNotifications)
}

// notify raises a transient alert. A broken notifier must never take down
// the subscription, so failures are logged and dropped.
func (s *Session) notify(title, detail string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(title, detail); err != nil {
		contract.LogWarn("notifier failed", err)
	}
}
