package core

import "github.com/calldeck/calldeck/schema"

// VolumeFor computes one point per calendar day in the range with total,
// completed and failed counts. Every day appears, even at zero. The peak
// day is the first day holding the maximum total.
func VolumeFor(rng schema.TimeRange, rows []schema.CallRecord) schema.VolumeSeries {
	// Seed every day first so zero days are present, then fill from rows.
	var points []schema.VolumePoint
	index := make(map[string]int)
	eachDay(rng, func(day string) {
		index[day] = len(points)
		points = append(points, schema.VolumePoint{Date: day})
	})

	for _, r := range rows {
		if r.StartedAt.IsZero() {
			continue
		}
		i, ok := index[schema.DayKey(r.StartedAt)]
		if !ok {
			continue // outside the requested day range
		}
		points[i].Total++
		switch r.Status {
		case schema.CallCompleted:
			points[i].Completed++
		case schema.CallFailed:
			points[i].Failed++
		}
	}

	series := schema.VolumeSeries{Points: points}
	if len(points) > 0 {
		peak := 0
		for i := range points {
			if points[i].Total > points[peak].Total {
				peak = i
			}
		}
		series.PeakDay = points[peak].Date
	}
	return series
}
