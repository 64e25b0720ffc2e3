// Package core computes derived dashboard metrics from raw rows.
// Every aggregation here is a pure function over (range, rows): no I/O,
// no mutation of inputs, and identical output for identical input.
package core

import (
	"fmt"
	"time"

	"github.com/calldeck/calldeck/schema"
)

// SparklinePoints is the fixed number of points behind each KPI sparkline.
const SparklinePoints = 7

// ResolveRange translates a symbolic range key into a concrete inclusive
// [from, to] window anchored at now. For the custom key, from/to come from
// the caller and are widened to whole days.
func ResolveRange(key schema.RangeKey, from, to time.Time, now time.Time) (schema.TimeRange, error) {
	switch key {
	case schema.Last7Days:
		return lastNDays(now, 7), nil
	case schema.Last30Days:
		return lastNDays(now, 30), nil
	case schema.Last90Days:
		return lastNDays(now, 90), nil
	case schema.ThisMonth:
		return schema.TimeRange{From: startOfMonth(now), To: now}, nil
	case schema.LastMonth:
		first := startOfMonth(now)
		return schema.TimeRange{
			From: first.AddDate(0, -1, 0),
			To:   first.Add(-time.Nanosecond),
		}, nil
	case schema.Custom:
		if from.IsZero() || to.IsZero() {
			return schema.TimeRange{}, fmt.Errorf("custom range requires from and to")
		}
		if to.Before(from) {
			return schema.TimeRange{}, fmt.Errorf("custom range end %s precedes start %s", to, from)
		}
		return schema.TimeRange{
			From: startOfDay(from),
			To:   startOfDay(to).AddDate(0, 0, 1).Add(-time.Nanosecond),
		}, nil
	default:
		return schema.TimeRange{}, fmt.Errorf("unknown range key %q", key)
	}
}

// PreviousPeriod returns the immediately preceding window of identical
// length: prevTo = from - 1 tick, prevFrom = from - (to - from).
func PreviousPeriod(rng schema.TimeRange) schema.TimeRange {
	return schema.TimeRange{
		From: rng.From.Add(-rng.To.Sub(rng.From)),
		To:   rng.From.Add(-time.Nanosecond),
	}
}

// PartitionDays splits the calendar days of [rng.From, rng.To] into n
// contiguous day-aligned buckets with no gaps and no overlaps. Each of the
// leading buckets spans ceil(days/n) whole days; the last covers whatever
// remains, so it may be shorter when days do not divide evenly. Bucket
// edges sit at midnight except where clamped to the range endpoints.
func PartitionDays(rng schema.TimeRange, n int) []schema.TimeRange {
	if n <= 0 {
		return nil
	}
	first := startOfDay(rng.From)
	days := daysBetween(first, rng.To) + 1
	per := (days + n - 1) / n
	buckets := make([]schema.TimeRange, n)
	for i := 0; i < n; i++ {
		start := clampToRange(first.AddDate(0, 0, i*per), rng)
		end := clampToRange(first.AddDate(0, 0, (i+1)*per), rng)
		buckets[i] = schema.TimeRange{From: start, To: end}
	}
	return buckets
}

// dayBucketIndex returns which of the n day-aligned buckets t falls into,
// or -1 if t is outside the range.
func dayBucketIndex(rng schema.TimeRange, n int, t time.Time) int {
	if n <= 0 || t.Before(rng.From) || t.After(rng.To) {
		return -1
	}
	first := startOfDay(rng.From)
	days := daysBetween(first, rng.To) + 1
	per := (days + n - 1) / n
	idx := daysBetween(first, t) / per
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// daysBetween counts whole calendar days from a's date to b's date, each
// taken in its own location, so the count is stable across time zones.
func daysBetween(a, b time.Time) int {
	return dayOrdinal(b) - dayOrdinal(a)
}

// dayOrdinal maps t's civil date to an absolute day number.
func dayOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func clampToRange(t time.Time, rng schema.TimeRange) time.Time {
	if t.Before(rng.From) {
		return rng.From
	}
	if t.After(rng.To) {
		return rng.To
	}
	return t
}

// eachDay calls fn with the date key of every calendar day in the range,
// in chronological order.
func eachDay(rng schema.TimeRange, fn func(day string)) {
	for d := startOfDay(rng.From); !d.After(rng.To); d = d.AddDate(0, 0, 1) {
		fn(schema.DayKey(d))
	}
}

func lastNDays(now time.Time, n int) schema.TimeRange {
	return schema.TimeRange{
		From: startOfDay(now.AddDate(0, 0, -(n - 1))),
		To:   now,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
