package core

import (
	"sort"

	"github.com/calldeck/calldeck/schema"
)

// rankedHours is how many buckets the top/slowest rankings keep.
const rankedHours = 3

// PatternsFor computes hour-of-day and day-of-week call activity. All 24
// hour buckets and all 7 weekday buckets are present even when zero, so
// chart axes stay fixed. Rows without a timestamp are skipped.
func PatternsFor(rows []schema.CallRecord) schema.CallPatterns {
	hours := make([]schema.HourBucket, 24)
	for h := range hours {
		hours[h] = schema.HourBucket{Hour: h}
	}
	weekdays := make([]schema.WeekdayBucket, 7)
	for d := range weekdays {
		weekdays[d] = schema.WeekdayBucket{Weekday: schema.WeekdayName(d)}
	}

	for _, r := range rows {
		if r.StartedAt.IsZero() {
			continue
		}
		hours[r.StartedAt.Hour()].Count++
		weekdays[int(r.StartedAt.Weekday())].Count++
	}

	return schema.CallPatterns{
		Hours:        hours,
		Weekdays:     weekdays,
		TopHours:     rankHours(hours, true),
		SlowestHours: rankHours(hours, false),
	}
}

// rankHours returns the three highest- or lowest-count hour buckets.
// The sort is stable so equal counts keep hour order.
func rankHours(hours []schema.HourBucket, descending bool) []schema.HourBucket {
	ranked := make([]schema.HourBucket, len(hours))
	copy(ranked, hours)
	sort.SliceStable(ranked, func(i, j int) bool {
		if descending {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Count < ranked[j].Count
	})
	if len(ranked) > rankedHours {
		ranked = ranked[:rankedHours]
	}
	return ranked
}
