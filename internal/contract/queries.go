package contract

// Logical query names shared by the fetch layer and the change feed bridge.
// The bridge invalidates entries by these names; the fetch layer registers
// results under them. Per-agent analytics entries are registered under
// QueryAgentAnalyticsPrefix + agent id and invalidated by prefix.
const (
	QueryRecentCalls          = "recent-calls"
	QueryCallKPIs             = "call-kpis"
	QueryVolumeTrend          = "volume-trend"
	QueryAgentAnalyticsPrefix = "agent-analytics:"

	QueryUpcomingAppointments = "upcoming-appointments"
	QueryAppointments         = "appointments"

	QueryBillingOverview = "billing-overview"
	QueryUsageDetail     = "usage-detail"
	QueryUsageDaily      = "usage-daily"

	QueryNotificationsUnread = "notifications-unread"
	QueryNotificationsRecent = "notifications-recent"
	QueryNotifications       = "notifications"
)

// DashboardQueryNames lists every named dashboard query. The bridge's
// polling fallback invalidates all of them, plus the per-agent prefix.
var DashboardQueryNames = []string{
	QueryRecentCalls,
	QueryCallKPIs,
	QueryVolumeTrend,
	QueryUpcomingAppointments,
	QueryAppointments,
	QueryBillingOverview,
	QueryUsageDetail,
	QueryUsageDaily,
	QueryNotificationsUnread,
	QueryNotificationsRecent,
	QueryNotifications,
}
