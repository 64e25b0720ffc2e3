package schema

// AppointmentDay is one calendar day of appointment bookings.
type AppointmentDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// AppointmentStats holds derived appointment metrics for a time range.
type AppointmentStats struct {
	Total int `json:"total"`
	// ShowUpRate is (completed + confirmed) / total * 100, whole percent.
	ShowUpRate int `json:"show_up_rate"`
	// AvgLeadTimeDays is the mean gap between booking and appointment date,
	// in whole days, over rows that have a creation timestamp.
	AvgLeadTimeDays int `json:"avg_lead_time_days"`
	// Statuses only includes buckets with a non-zero count.
	Statuses []StatusSlice `json:"statuses"`
	// DailyTrend is sorted by date ascending.
	DailyTrend []AppointmentDay `json:"daily_trend"`
	// HourlyPopularity counts bookings by the hour parsed from time-of-day.
	HourlyPopularity []HourBucket `json:"hourly_popularity"`
}
