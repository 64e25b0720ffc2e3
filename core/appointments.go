package core

import (
	"math"
	"sort"

	"github.com/calldeck/calldeck/schema"
)

// appointmentStatusOrder fixes the display order of status buckets.
var appointmentStatusOrder = []schema.AppointmentStatus{
	schema.AppointmentScheduled,
	schema.AppointmentConfirmed,
	schema.AppointmentCompleted,
	schema.AppointmentCancelled,
	schema.AppointmentNoShow,
}

// AppointmentStatsFor computes the appointment dashboard bundle: show-up
// rate, average booking lead time, non-zero status distribution, daily
// booking trend, and hourly popularity.
func AppointmentStatsFor(rows []schema.Appointment) schema.AppointmentStats {
	stats := schema.AppointmentStats{Total: len(rows)}

	statusCounts := make(map[schema.AppointmentStatus]int)
	dayCounts := make(map[string]int)
	hourCounts := make(map[int]int)
	leadDays, leadSamples := 0, 0

	for _, a := range rows {
		statusCounts[a.Status]++
		if a.Date != "" {
			dayCounts[a.Date]++
		}
		if hour, err := schema.ParseClockHour(a.TimeOfDay); err == nil {
			hourCounts[hour]++
		}
		// Lead time needs both a booking timestamp and a parseable date.
		if a.CreatedAt.IsZero() {
			continue
		}
		day, err := schema.ParseDay(a.Date)
		if err != nil {
			continue
		}
		leadDays += daysBetween(a.CreatedAt, day)
		leadSamples++
	}

	if stats.Total > 0 {
		shown := statusCounts[schema.AppointmentCompleted] + statusCounts[schema.AppointmentConfirmed]
		stats.ShowUpRate = int(math.Round(float64(shown) / float64(stats.Total) * 100))
	}
	if leadSamples > 0 {
		stats.AvgLeadTimeDays = int(math.Round(float64(leadDays) / float64(leadSamples)))
	}

	stats.Statuses = make([]schema.StatusSlice, 0, len(statusCounts))
	for _, status := range appointmentStatusOrder {
		if n := statusCounts[status]; n > 0 {
			stats.Statuses = append(stats.Statuses, schema.StatusSlice{Name: string(status), Count: n})
		}
	}

	stats.DailyTrend = make([]schema.AppointmentDay, 0, len(dayCounts))
	for day, count := range dayCounts {
		stats.DailyTrend = append(stats.DailyTrend, schema.AppointmentDay{Date: day, Count: count})
	}
	sort.Slice(stats.DailyTrend, func(i, j int) bool {
		return stats.DailyTrend[i].Date < stats.DailyTrend[j].Date
	})

	stats.HourlyPopularity = make([]schema.HourBucket, 0, len(hourCounts))
	for hour, count := range hourCounts {
		stats.HourlyPopularity = append(stats.HourlyPopularity, schema.HourBucket{Hour: hour, Count: count})
	}
	sort.Slice(stats.HourlyPopularity, func(i, j int) bool {
		return stats.HourlyPopularity[i].Hour < stats.HourlyPopularity[j].Hour
	})

	return stats
}
