package schema

// UsagePoint is one calendar day of metered usage.
type UsagePoint struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
	Cost    float64 `json:"cost"`
}

// UsageSummary holds the billing overview for a time range. Daily points
// are bucketed by each row's real recorded-at timestamp.
type UsageSummary struct {
	TotalMinutes float64      `json:"total_minutes"`
	TotalCost    float64      `json:"total_cost"`
	Daily        []UsagePoint `json:"daily"`
}
