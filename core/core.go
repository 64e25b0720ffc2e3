package core

import (
	"context"
	"time"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// ExecuteDashboardMetrics builds the full metric bundle for the configured
// range: headline KPIs with sparklines, period-over-period trends, volume,
// status and outcome distributions, duration trend, call patterns, and
// appointment statistics.
func ExecuteDashboardMetrics(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.DashboardMetrics, error) {
	return buildDashboard(ctx, cfg, store, cache, time.Now())
}

// buildDashboard is the now-injectable body of ExecuteDashboardMetrics.
func buildDashboard(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache, now time.Time) (*schema.DashboardMetrics, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, now)
	if err != nil {
		return nil, err
	}
	prev := PreviousPeriod(rng)

	rows, err := loadCallRows(ctx, cfg, store, cache, callRowsQueryName(cfg), rng)
	if err != nil {
		return nil, err
	}
	prevRows, err := loadCallRows(ctx, cfg, store, cache, callRowsQueryName(cfg), prev)
	if err != nil {
		return nil, err
	}
	appointments, err := loadAppointmentRows(ctx, cfg, store, cache, contract.QueryAppointments, rng)
	if err != nil {
		return nil, err
	}

	metrics := BuildDashboardMetrics(rng, rows, prevRows, appointments)
	return &metrics, nil
}

// ExecuteRecentCalls returns the most recent calls for list views, plus
// the total row count for paging.
func ExecuteRecentCalls(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) ([]schema.CallRecord, int, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, 0, err
	}
	return cachedFetch(cache, contract.QueryRecentCalls, rangeParams(rng, cfg.ClientID, cfg.AgentID), func() ([]schema.CallRecord, int, error) {
		return store.FetchCalls(ctx, contract.CallQuery{
			Range:    rng,
			ClientID: cfg.ClientID,
			AgentID:  cfg.AgentID,
			Bounds:   contract.ListBounds{Limit: cfg.ResultLimit, Descending: true},
		})
	})
}

// ExecuteVolume computes the daily volume series for the configured range.
func ExecuteVolume(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.VolumeSeries, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := loadCallRows(ctx, cfg, store, cache, contract.QueryVolumeTrend, rng)
	if err != nil {
		return nil, err
	}
	series := VolumeFor(rng, rows)
	return &series, nil
}

// ExecutePatterns computes hour and weekday call patterns for the
// configured range.
func ExecutePatterns(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.CallPatterns, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := loadCallRows(ctx, cfg, store, cache, callRowsQueryName(cfg), rng)
	if err != nil {
		return nil, err
	}
	patterns := PatternsFor(rows)
	return &patterns, nil
}

// ExecuteOutcomes computes the outcome distribution for the configured range.
func ExecuteOutcomes(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.OutcomeDistribution, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := loadCallRows(ctx, cfg, store, cache, callRowsQueryName(cfg), rng)
	if err != nil {
		return nil, err
	}
	outcomes := OutcomesFor(rows)
	return &outcomes, nil
}

// ExecuteAppointments computes appointment statistics for the configured range.
func ExecuteAppointments(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.AppointmentStats, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := loadAppointmentRows(ctx, cfg, store, cache, contract.QueryAppointments, rng)
	if err != nil {
		return nil, err
	}
	stats := AppointmentStatsFor(rows)
	return &stats, nil
}

// ExecuteUpcomingAppointments returns appointments from now through the
// end of the configured range window, soonest first.
func ExecuteUpcomingAppointments(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) ([]schema.Appointment, error) {
	now := time.Now()
	rng := schema.TimeRange{From: now, To: now.AddDate(0, 0, 90)}
	rows, _, err := cachedFetch(cache, contract.QueryUpcomingAppointments, rangeParams(rng, cfg.ClientID), func() ([]schema.Appointment, int, error) {
		return store.FetchAppointments(ctx, contract.AppointmentQuery{
			Range:    rng,
			ClientID: cfg.ClientID,
			Bounds:   contract.ListBounds{Limit: cfg.ResultLimit},
		})
	})
	return rows, err
}

// ExecuteBilling computes the usage/billing overview for the configured range.
func ExecuteBilling(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) (*schema.UsageSummary, error) {
	rng, err := ResolveRange(cfg.Range, cfg.From, cfg.To, time.Now())
	if err != nil {
		return nil, err
	}
	rows, err := loadUsageRows(ctx, cfg, store, cache, contract.QueryBillingOverview, rng)
	if err != nil {
		return nil, err
	}
	summary := UsageSummaryFor(rng, rows)
	return &summary, nil
}

// ExecuteNotifications returns recent notifications plus the unread count.
func ExecuteNotifications(ctx context.Context, cfg *contract.Config, store contract.RowStore, cache contract.QueryCache) ([]schema.Notification, int, error) {
	rows, _, err := cachedFetch(cache, contract.QueryNotificationsRecent, cfg.ClientID, func() ([]schema.Notification, int, error) {
		return store.FetchNotifications(ctx, contract.NotificationQuery{
			ClientID: cfg.ClientID,
			Bounds:   contract.ListBounds{Limit: cfg.ResultLimit, Descending: true},
		})
	})
	if err != nil {
		return nil, 0, err
	}
	_, unread, err := cachedFetch(cache, contract.QueryNotificationsUnread, cfg.ClientID, func() ([]schema.Notification, int, error) {
		return store.FetchNotifications(ctx, contract.NotificationQuery{
			ClientID:   cfg.ClientID,
			UnreadOnly: true,
			Bounds:     contract.ListBounds{Limit: 1},
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return rows, unread, nil
}

// callRowsQueryName picks the cache name for range-wide call fetches:
// agent-scoped analytics get their own prefixed entry so the bridge can
// invalidate them independently of the shared KPI entry.
func callRowsQueryName(cfg *contract.Config) string {
	if cfg.AgentID != "" {
		return contract.QueryAgentAnalyticsPrefix + cfg.AgentID
	}
	return contract.QueryCallKPIs
}
