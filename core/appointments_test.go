package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestAppointmentStatsForShowUpAndLeadTime(t *testing.T) {
	rows := []schema.Appointment{
		{Date: "2026-08-20", TimeOfDay: "09:00", Status: schema.AppointmentCompleted, CreatedAt: time.Date(2026, 8, 18, 10, 0, 0, 0, time.UTC)},
		{Date: "2026-08-21", TimeOfDay: "10:30", Status: schema.AppointmentNoShow, CreatedAt: time.Date(2026, 8, 19, 16, 0, 0, 0, time.UTC)},
	}

	stats := AppointmentStatsFor(rows)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 50, stats.ShowUpRate)
	assert.Equal(t, 2, stats.AvgLeadTimeDays)
}

func TestAppointmentLeadTimeComparesCalendarDates(t *testing.T) {
	// Booked late in the evening in a zone behind UTC. The instants are
	// fewer than three 24-hour periods apart, but the civil dates are three
	// days apart and that is what the lead time counts.
	behind := time.FixedZone("UTC-10", -10*3600)
	rows := []schema.Appointment{
		{Date: "2026-08-20", Status: schema.AppointmentScheduled, CreatedAt: time.Date(2026, 8, 17, 22, 0, 0, 0, behind)},
	}

	stats := AppointmentStatsFor(rows)
	assert.Equal(t, 3, stats.AvgLeadTimeDays)
}

func TestAppointmentStatsForStatusSplit(t *testing.T) {
	rows := []schema.Appointment{
		{Date: "2026-08-20", Status: schema.AppointmentNoShow},
		{Date: "2026-08-20", Status: schema.AppointmentScheduled},
		{Date: "2026-08-21", Status: schema.AppointmentConfirmed},
		{Date: "2026-08-21", Status: schema.AppointmentConfirmed},
	}

	stats := AppointmentStatsFor(rows)

	// Confirmed counts toward show-up alongside completed.
	assert.Equal(t, 50, stats.ShowUpRate)

	// Canonical order, zero-count statuses omitted.
	require.Len(t, stats.Statuses, 3)
	assert.Equal(t, "scheduled", stats.Statuses[0].Name)
	assert.Equal(t, "confirmed", stats.Statuses[1].Name)
	assert.Equal(t, 2, stats.Statuses[1].Count)
	assert.Equal(t, "no_show", stats.Statuses[2].Name)
}

func TestAppointmentStatsForTrendAndHours(t *testing.T) {
	rows := []schema.Appointment{
		{Date: "2026-08-21", TimeOfDay: "09:00"},
		{Date: "2026-08-20", TimeOfDay: "09:30"},
		{Date: "2026-08-20", TimeOfDay: "14:00"},
		{Date: "2026-08-20", TimeOfDay: "bogus"},
	}

	stats := AppointmentStatsFor(rows)

	require.Len(t, stats.DailyTrend, 2)
	assert.Equal(t, "2026-08-20", stats.DailyTrend[0].Date, "daily trend sorts by date")
	assert.Equal(t, 3, stats.DailyTrend[0].Count)
	assert.Equal(t, 1, stats.DailyTrend[1].Count)

	require.Len(t, stats.HourlyPopularity, 2, "unparseable times are skipped")
	assert.Equal(t, 9, stats.HourlyPopularity[0].Hour)
	assert.Equal(t, 2, stats.HourlyPopularity[0].Count)
	assert.Equal(t, 14, stats.HourlyPopularity[1].Hour)
}

func TestAppointmentStatsForEmpty(t *testing.T) {
	stats := AppointmentStatsFor(nil)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.ShowUpRate)
	assert.Zero(t, stats.AvgLeadTimeDays)
	assert.Empty(t, stats.Statuses)
}
