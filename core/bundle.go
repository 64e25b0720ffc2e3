package core

import "github.com/calldeck/calldeck/schema"

// BuildDashboardMetrics assembles the full derived-metric bundle from rows
// already fetched for the current period, the preceding comparable period,
// and the range's appointments. Pure: calling it twice with the same
// inputs yields identical output.
func BuildDashboardMetrics(rng schema.TimeRange, rows, prevRows []schema.CallRecord, appointments []schema.Appointment) schema.DashboardMetrics {
	top := TopMetricsFor(rng, rows)
	prevTop := headlineMetrics(prevRows)

	metrics := schema.DashboardMetrics{
		Range:    rng,
		Top:      top,
		Trends:   TrendsFor(top, prevTop),
		Volume:   VolumeFor(rng, rows),
		Statuses: StatusDistributionFor(rows),
		Duration: DurationTrendFor(rng, rows),
		Patterns: PatternsFor(rows),
		Outcomes: OutcomesFor(rows),
	}
	if appointments != nil {
		stats := AppointmentStatsFor(appointments)
		metrics.Appointments = &stats
	}
	return metrics
}
