package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestDurationTrendForDailyAverages(t *testing.T) {
	rng := dayRange("2026-08-01", "2026-08-03")
	rows := []schema.CallRecord{
		{StartedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), DurationSeconds: 60},
		{StartedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC), DurationSeconds: 120},
		{StartedAt: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC), DurationSeconds: 90},
	}

	trend := DurationTrendFor(rng, rows)
	require.Len(t, trend.Points, 3)

	assert.InDelta(t, 1.5, trend.Points[0].AvgMinutes, 0.001)
	assert.Zero(t, trend.Points[1].AvgMinutes, "days without calls show zero")
	assert.InDelta(t, 1.5, trend.Points[2].AvgMinutes, 0.001)

	// Range average: 270 seconds over 3 calls = 1.5 minutes.
	assert.InDelta(t, 1.5, trend.AvgMinutes, 0.001)
}

func TestDurationTrendForEmpty(t *testing.T) {
	trend := DurationTrendFor(dayRange("2026-08-01", "2026-08-02"), nil)
	require.Len(t, trend.Points, 2)
	assert.Zero(t, trend.AvgMinutes)
}
