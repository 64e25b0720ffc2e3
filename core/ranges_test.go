package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

var fixedNow = time.Date(2026, time.August, 15, 14, 30, 0, 0, time.UTC)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		name         string
		key          schema.RangeKey
		from, to     time.Time
		expectedFrom time.Time
		expectedTo   time.Time
		expectError  bool
	}{
		{
			name:         "last 7 days covers whole start day",
			key:          schema.Last7Days,
			expectedFrom: time.Date(2026, time.August, 9, 0, 0, 0, 0, time.UTC),
			expectedTo:   fixedNow,
		},
		{
			name:         "last 30 days",
			key:          schema.Last30Days,
			expectedFrom: time.Date(2026, time.July, 17, 0, 0, 0, 0, time.UTC),
			expectedTo:   fixedNow,
		},
		{
			name:         "this month starts on the first",
			key:          schema.ThisMonth,
			expectedFrom: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
			expectedTo:   fixedNow,
		},
		{
			name:         "last month is the whole previous month",
			key:          schema.LastMonth,
			expectedFrom: time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			expectedTo:   time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:         "custom range is widened to whole days",
			key:          schema.Custom,
			from:         time.Date(2026, time.May, 3, 11, 0, 0, 0, time.UTC),
			to:           time.Date(2026, time.May, 5, 2, 0, 0, 0, time.UTC),
			expectedFrom: time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC),
			expectedTo:   time.Date(2026, time.May, 6, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		},
		{
			name:        "custom range requires endpoints",
			key:         schema.Custom,
			expectError: true,
		},
		{
			name:        "custom range rejects inverted endpoints",
			key:         schema.Custom,
			from:        time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC),
			to:          time.Date(2026, time.May, 3, 0, 0, 0, 0, time.UTC),
			expectError: true,
		},
		{
			name:        "unknown key",
			key:         schema.RangeKey("fortnight"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ResolveRange(tt.key, tt.from, tt.to, fixedNow)
			if tt.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedFrom, rng.From)
			assert.Equal(t, tt.expectedTo, rng.To)
		})
	}
}

func TestPreviousPeriodIsAdjacentAndEqualLength(t *testing.T) {
	rng, err := ResolveRange(schema.Last7Days, time.Time{}, time.Time{}, fixedNow)
	require.NoError(t, err)

	prev := PreviousPeriod(rng)
	assert.Equal(t, rng.From.Add(-time.Nanosecond), prev.To, "previous period must end one tick before the current one starts")
	assert.Equal(t, rng.From.Add(-rng.To.Sub(rng.From)), prev.From, "previous period must span the same length")
}

func TestPartitionDays(t *testing.T) {
	rng, err := ResolveRange(schema.Last7Days, time.Time{}, time.Time{}, fixedNow)
	require.NoError(t, err)

	buckets := PartitionDays(rng, SparklinePoints)
	require.Len(t, buckets, SparklinePoints)

	assert.Equal(t, rng.From, buckets[0].From)
	assert.Equal(t, rng.To, buckets[len(buckets)-1].To)
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].To, buckets[i].From, "bucket %d must start where bucket %d ends", i, i-1)
	}

	// A 7-day range anchored mid-afternoon yields one calendar day per
	// bucket, every bucket starting at midnight.
	for i, b := range buckets {
		assert.Equal(t, 0, b.From.Hour(), "bucket %d must start at midnight", i)
		assert.Equal(t, 0, b.From.Minute(), "bucket %d must start at midnight", i)
		if i < len(buckets)-1 {
			assert.Equal(t, b.From.AddDate(0, 0, 1), b.To, "bucket %d must span one whole day", i)
		}
	}
	assert.Equal(t, fixedNow, buckets[len(buckets)-1].To, "final bucket is cut at the range end")
}

func TestPartitionDaysLastBucketShorter(t *testing.T) {
	// 90 days split 7 ways: six buckets of 13 days, then a 12-day tail.
	rng, err := ResolveRange(schema.Last90Days, time.Time{}, time.Time{}, fixedNow)
	require.NoError(t, err)

	buckets := PartitionDays(rng, SparklinePoints)
	require.Len(t, buckets, SparklinePoints)
	for i := 0; i < SparklinePoints-1; i++ {
		assert.Equal(t, buckets[i].From.AddDate(0, 0, 13), buckets[i].To, "bucket %d must span 13 days", i)
	}
	last := buckets[SparklinePoints-1]
	assert.Equal(t, 12, daysBetween(last.From, last.To)+1, "tail bucket covers the 12 remaining calendar days")
	assert.Equal(t, rng.To, last.To)
}

func TestPartitionDaysDegenerate(t *testing.T) {
	assert.Nil(t, PartitionDays(schema.TimeRange{From: fixedNow, To: fixedNow}, 0))
	assert.Nil(t, PartitionDays(schema.TimeRange{From: fixedNow, To: fixedNow}, -3))

	// A zero-length range still yields n empty buckets.
	buckets := PartitionDays(schema.TimeRange{From: fixedNow, To: fixedNow}, 4)
	require.Len(t, buckets, 4)
	for _, b := range buckets {
		assert.Equal(t, fixedNow, b.From)
		assert.Equal(t, fixedNow, b.To)
	}
}

func TestDayBucketIndex(t *testing.T) {
	rng := schema.TimeRange{
		From: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.August, 7, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond),
	}

	assert.Equal(t, 0, dayBucketIndex(rng, 7, rng.From))
	assert.Equal(t, 6, dayBucketIndex(rng, 7, rng.To), "range end belongs to the final bucket")
	assert.Equal(t, 3, dayBucketIndex(rng, 7, rng.From.AddDate(0, 0, 3).Add(time.Hour)))
	assert.Equal(t, -1, dayBucketIndex(rng, 7, rng.From.Add(-time.Second)))
	assert.Equal(t, -1, dayBucketIndex(rng, 7, rng.To.Add(time.Second)))

	// Rows on the same calendar day land in the same bucket regardless of
	// their clock time.
	assert.Equal(t,
		dayBucketIndex(rng, 7, time.Date(2026, time.August, 3, 0, 0, 1, 0, time.UTC)),
		dayBucketIndex(rng, 7, time.Date(2026, time.August, 3, 23, 59, 59, 0, time.UTC)))
}

func TestDaysBetweenIsZoneStable(t *testing.T) {
	behind := time.FixedZone("UTC-10", -10*3600)
	a := time.Date(2026, time.August, 17, 22, 0, 0, 0, behind)
	b := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, daysBetween(a, b), "civil dates are three days apart even though the instants are only 1d16h apart")
}

func TestEachDayCoversRangeInclusive(t *testing.T) {
	rng := schema.TimeRange{
		From: time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.September, 2, 1, 0, 0, 0, time.UTC),
	}

	var days []string
	eachDay(rng, func(day string) { days = append(days, day) })
	assert.Equal(t, []string{"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02"}, days)
}
