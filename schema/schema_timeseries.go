package schema

// VolumePoint is one calendar day of call volume.
type VolumePoint struct {
	Date      string `json:"date"` // "2006-01-02"
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
}

// VolumeSeries has one point per calendar day in the range plus the peak day.
type VolumeSeries struct {
	Points  []VolumePoint `json:"points"`
	PeakDay string        `json:"peak_day,omitempty"` // first day with the max total
}

// StatusSlice is one bucket of a group-by-status distribution.
type StatusSlice struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DurationPoint is one calendar day of average call duration.
type DurationPoint struct {
	Date       string  `json:"date"`
	AvgMinutes float64 `json:"avg_minutes"` // one decimal
}

// DurationTrend has per-day averages plus a whole-range reference average.
type DurationTrend struct {
	Points     []DurationPoint `json:"points"`
	AvgMinutes float64         `json:"avg_minutes"` // one decimal, whole range
}

// HourBucket counts calls for one fixed hour of day (0-23).
type HourBucket struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// WeekdayBucket counts calls for one fixed day of week (Sunday = 0).
type WeekdayBucket struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// CallPatterns holds hour-of-day and day-of-week activity. All 24 hour
// buckets and all 7 weekday buckets are always present, even at zero.
type CallPatterns struct {
	Hours        []HourBucket    `json:"hours"`
	Weekdays     []WeekdayBucket `json:"weekdays"`
	TopHours     []HourBucket    `json:"top_hours"`     // 3 busiest, stable descending
	SlowestHours []HourBucket    `json:"slowest_hours"` // 3 quietest, stable ascending
}

// OutcomeSlice is one bucket of the outcome distribution.
type OutcomeSlice struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // of total, one decimal
}

// OutcomeDistribution groups calls by outcome tag, sorted by count
// descending. Calls without an outcome land in the "other" bucket.
type OutcomeDistribution struct {
	Slices        []OutcomeSlice `json:"slices"`
	LeadsCaptured int            `json:"leads_captured"`
}
