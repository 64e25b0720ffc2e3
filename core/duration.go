package core

import "github.com/calldeck/calldeck/schema"

// DurationTrendFor computes the per-day average call duration in minutes
// (one decimal) plus a whole-range average used as a reference line.
// Days without calls show a zero average.
func DurationTrendFor(rng schema.TimeRange, rows []schema.CallRecord) schema.DurationTrend {
	type dayAgg struct {
		seconds int
		count   int
	}

	var points []schema.DurationPoint
	index := make(map[string]int)
	eachDay(rng, func(day string) {
		index[day] = len(points)
		points = append(points, schema.DurationPoint{Date: day})
	})

	perDay := make([]dayAgg, len(points))
	totalSeconds, totalCount := 0, 0
	for _, r := range rows {
		if r.StartedAt.IsZero() {
			continue
		}
		i, ok := index[schema.DayKey(r.StartedAt)]
		if !ok {
			continue
		}
		perDay[i].seconds += r.DurationSeconds
		perDay[i].count++
		totalSeconds += r.DurationSeconds
		totalCount++
	}

	for i := range points {
		if perDay[i].count > 0 {
			points[i].AvgMinutes = round1(float64(perDay[i].seconds) / float64(perDay[i].count) / 60)
		}
	}

	trend := schema.DurationTrend{Points: points}
	if totalCount > 0 {
		trend.AvgMinutes = round1(float64(totalSeconds) / float64(totalCount) / 60)
	}
	return trend
}
