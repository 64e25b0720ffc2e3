package schema

// SparklinePoint is one of the fixed seven points backing a KPI sparkline.
// Each point re-computes the headline metrics over its own sub-range.
type SparklinePoint struct {
	Range        TimeRange `json:"range"`
	TotalCalls   int       `json:"total_calls"`
	TotalMinutes int       `json:"total_minutes"`
	SuccessRate  float64   `json:"success_rate"`
	AvgDuration  int       `json:"avg_duration"`
}

// TopMetrics holds the headline KPI card values for a time range.
type TopMetrics struct {
	TotalCalls   int `json:"total_calls"`
	TotalMinutes int `json:"total_minutes"` // round(sum of seconds / 60)
	// SuccessRate is completed / total * 100, one decimal, 0 when empty.
	SuccessRate float64 `json:"success_rate"`
	// AvgDuration is the mean call duration in whole seconds, 0 when empty.
	AvgDuration int              `json:"avg_duration"`
	Sparkline   []SparklinePoint `json:"sparkline"`
}

// TrendDeltas holds period-over-period changes for the headline KPIs.
// Relative deltas are nil when the previous period had a zero baseline;
// SuccessRate is an absolute percentage-point difference.
type TrendDeltas struct {
	Calls       *float64 `json:"calls"`
	Minutes     *float64 `json:"minutes"`
	SuccessRate *float64 `json:"success_rate"`
	AvgDuration *float64 `json:"avg_duration"`
}

// DashboardMetrics is the full derived-metric bundle for a dashboard view.
// It is ephemeral: always recomputed from rows plus a range, never stored.
type DashboardMetrics struct {
	Range        TimeRange           `json:"range"`
	Top          TopMetrics          `json:"top"`
	Trends       TrendDeltas         `json:"trends"`
	Volume       VolumeSeries        `json:"volume"`
	Statuses     []StatusSlice       `json:"statuses"`
	Duration     DurationTrend       `json:"duration"`
	Patterns     CallPatterns        `json:"patterns"`
	Outcomes     OutcomeDistribution `json:"outcomes"`
	Appointments *AppointmentStats   `json:"appointments,omitempty"`
}
