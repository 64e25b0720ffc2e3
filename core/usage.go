package core

import "github.com/calldeck/calldeck/schema"

// UsageSummaryFor computes the billing overview: range totals plus a
// per-day chart. Rows are bucketed by their real recorded-at timestamp,
// never by "today", so historical usage lands on the right day.
func UsageSummaryFor(rng schema.TimeRange, rows []schema.UsageRecord) schema.UsageSummary {
	var daily []schema.UsagePoint
	index := make(map[string]int)
	eachDay(rng, func(day string) {
		index[day] = len(daily)
		daily = append(daily, schema.UsagePoint{Date: day})
	})

	summary := schema.UsageSummary{}
	for _, r := range rows {
		if r.RecordedAt.IsZero() {
			continue
		}
		summary.TotalMinutes += r.Minutes
		summary.TotalCost += r.Cost
		if i, ok := index[schema.DayKey(r.RecordedAt)]; ok {
			daily[i].Minutes += r.Minutes
			daily[i].Cost += r.Cost
		}
	}
	summary.Daily = daily
	return summary
}
