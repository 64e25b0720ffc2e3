package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestUsageSummaryForBucketsByRecordedAt(t *testing.T) {
	rng := dayRange("2026-08-01", "2026-08-03")
	rows := []schema.UsageRecord{
		{RecordedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), Minutes: 10.5, Cost: 2.10},
		{RecordedAt: time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC), Minutes: 4.5, Cost: 0.90},
		{RecordedAt: time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC), Minutes: 7.0, Cost: 1.40},
	}

	summary := UsageSummaryFor(rng, rows)
	assert.InDelta(t, 22.0, summary.TotalMinutes, 0.001)
	assert.InDelta(t, 4.40, summary.TotalCost, 0.001)

	require.Len(t, summary.Daily, 3)
	assert.InDelta(t, 15.0, summary.Daily[0].Minutes, 0.001, "same-day rows accumulate on their recorded day")
	assert.Zero(t, summary.Daily[1].Minutes)
	assert.InDelta(t, 7.0, summary.Daily[2].Minutes, 0.001)
}

func TestUsageSummaryForSkipsZeroTimestamps(t *testing.T) {
	rng := dayRange("2026-08-01", "2026-08-02")
	rows := []schema.UsageRecord{
		{Minutes: 99, Cost: 99},
		{RecordedAt: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), Minutes: 1, Cost: 0.2},
	}

	summary := UsageSummaryFor(rng, rows)
	assert.InDelta(t, 1.0, summary.TotalMinutes, 0.001)
	assert.InDelta(t, 0.2, summary.TotalCost, 0.001)
}
