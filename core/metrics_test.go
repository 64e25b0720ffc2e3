package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

// weekRange returns a seven-day window ending at fixedNow.
func weekRange(t *testing.T) schema.TimeRange {
	t.Helper()
	rng, err := ResolveRange(schema.Last7Days, time.Time{}, time.Time{}, fixedNow)
	require.NoError(t, err)
	return rng
}

func callAt(offset time.Duration, seconds int, status schema.CallStatus) schema.CallRecord {
	return schema.CallRecord{
		StartedAt:       fixedNow.Add(offset),
		DurationSeconds: seconds,
		Status:          status,
	}
}

func TestTopMetricsHeadlineValues(t *testing.T) {
	rng := weekRange(t)
	rows := []schema.CallRecord{
		callAt(-time.Hour, 120, schema.CallCompleted),
		callAt(-2*time.Hour, 60, schema.CallMissed),
		callAt(-3*time.Hour, 300, schema.CallCompleted),
	}

	top := TopMetricsFor(rng, rows)
	assert.Equal(t, 3, top.TotalCalls)
	assert.Equal(t, 8, top.TotalMinutes, "480 seconds rounds to 8 minutes")
	assert.InDelta(t, 66.7, top.SuccessRate, 0.001)
	assert.Equal(t, 160, top.AvgDuration)
}

func TestTopMetricsMinutesRounding(t *testing.T) {
	rng := weekRange(t)

	// 90 seconds: round(1.5) = 2, not truncation to 1.
	top := TopMetricsFor(rng, []schema.CallRecord{callAt(-time.Hour, 90, schema.CallCompleted)})
	assert.Equal(t, 2, top.TotalMinutes)

	// 29 seconds rounds down to 0 minutes.
	top = TopMetricsFor(rng, []schema.CallRecord{callAt(-time.Hour, 29, schema.CallCompleted)})
	assert.Equal(t, 0, top.TotalMinutes)
}

func TestTopMetricsEmptyRowsNeverNaN(t *testing.T) {
	top := TopMetricsFor(weekRange(t), nil)
	assert.Equal(t, 0, top.TotalCalls)
	assert.Equal(t, 0, top.TotalMinutes)
	assert.Zero(t, top.SuccessRate)
	assert.Equal(t, 0, top.AvgDuration)
	assert.False(t, math.IsNaN(top.SuccessRate))
	require.Len(t, top.Sparkline, SparklinePoints)
	for _, p := range top.Sparkline {
		assert.False(t, math.IsNaN(p.SuccessRate))
		assert.False(t, math.IsInf(p.SuccessRate, 0))
	}
}

func TestSparklineBucketsPartitionTheRows(t *testing.T) {
	rng := weekRange(t)
	rows := []schema.CallRecord{
		{StartedAt: rng.From.Add(time.Hour), DurationSeconds: 60, Status: schema.CallCompleted},
		{StartedAt: rng.From.Add(25 * time.Hour), DurationSeconds: 60, Status: schema.CallMissed},
		{StartedAt: rng.To.Add(-time.Minute), DurationSeconds: 60, Status: schema.CallCompleted},
		{DurationSeconds: 60, Status: schema.CallCompleted}, // zero timestamp: counted in totals only
	}

	top := TopMetricsFor(rng, rows)
	require.Len(t, top.Sparkline, SparklinePoints)

	bucketTotal := 0
	for _, p := range top.Sparkline {
		bucketTotal += p.TotalCalls
	}
	assert.Equal(t, 3, bucketTotal, "timestamped rows distribute across buckets")
	assert.Equal(t, 4, top.TotalCalls, "headline total includes the zero-timestamp row")
	assert.Equal(t, 1, top.Sparkline[0].TotalCalls)
	assert.Equal(t, 1, top.Sparkline[SparklinePoints-1].TotalCalls, "row at range end lands in the final bucket")
}

func TestSparklineBucketsAreDayAligned(t *testing.T) {
	// The range ends mid-afternoon, so its length is not a whole number of
	// days. Buckets must still follow calendar days: two calls on the first
	// day share a bucket no matter their clock time, and every bucket edge
	// sits at midnight.
	rng := weekRange(t)
	rows := []schema.CallRecord{
		{StartedAt: rng.From.Add(time.Hour), DurationSeconds: 60, Status: schema.CallCompleted},
		{StartedAt: rng.From.Add(23*time.Hour + 30*time.Minute), DurationSeconds: 60, Status: schema.CallCompleted},
	}

	top := TopMetricsFor(rng, rows)
	require.Len(t, top.Sparkline, SparklinePoints)
	assert.Equal(t, 2, top.Sparkline[0].TotalCalls, "same calendar day means same bucket")
	for i, p := range top.Sparkline {
		assert.Equal(t, 0, p.Range.From.Hour(), "bucket %d must start at midnight", i)
		assert.Equal(t, 0, p.Range.From.Minute(), "bucket %d must start at midnight", i)
	}
}

func TestRatePercent(t *testing.T) {
	assert.Zero(t, ratePercent(5, 0), "zero denominator yields 0, not NaN")
	assert.InDelta(t, 66.7, ratePercent(2, 3), 0.001)
	assert.InDelta(t, 100.0, ratePercent(3, 3), 0.001)
	assert.InDelta(t, 33.3, ratePercent(1, 3), 0.001)
}
