package core

import (
	"math"

	"github.com/calldeck/calldeck/schema"
)

// TopMetricsFor computes the headline KPI values for rows within rng,
// including the fixed seven-point sparkline. Rows with a zero timestamp
// still count toward the totals but are excluded from sparkline buckets.
func TopMetricsFor(rng schema.TimeRange, rows []schema.CallRecord) schema.TopMetrics {
	top := headlineMetrics(rows)
	top.Sparkline = sparklineFor(rng, rows)
	return top
}

// headlineMetrics computes the four KPI scalars over a row set.
func headlineMetrics(rows []schema.CallRecord) schema.TopMetrics {
	total := len(rows)
	sumSeconds := 0
	completed := 0
	for _, r := range rows {
		sumSeconds += r.DurationSeconds
		if r.Status == schema.CallCompleted {
			completed++
		}
	}

	m := schema.TopMetrics{TotalCalls: total}
	m.TotalMinutes = int(math.Round(float64(sumSeconds) / 60))
	m.SuccessRate = ratePercent(completed, total)
	if total > 0 {
		m.AvgDuration = int(math.Round(float64(sumSeconds) / float64(total)))
	}
	return m
}

// sparklineFor recomputes the headline metrics per day-aligned bucket.
func sparklineFor(rng schema.TimeRange, rows []schema.CallRecord) []schema.SparklinePoint {
	buckets := PartitionDays(rng, SparklinePoints)
	grouped := make([][]schema.CallRecord, SparklinePoints)
	for _, r := range rows {
		if r.StartedAt.IsZero() {
			continue
		}
		if idx := dayBucketIndex(rng, SparklinePoints, r.StartedAt); idx >= 0 {
			grouped[idx] = append(grouped[idx], r)
		}
	}

	points := make([]schema.SparklinePoint, SparklinePoints)
	for i, bucket := range buckets {
		m := headlineMetrics(grouped[i])
		points[i] = schema.SparklinePoint{
			Range:        bucket,
			TotalCalls:   m.TotalCalls,
			TotalMinutes: m.TotalMinutes,
			SuccessRate:  m.SuccessRate,
			AvgDuration:  m.AvgDuration,
		}
	}
	return points
}

// ratePercent is part / whole as a percentage with one decimal.
// A zero denominator yields 0, never NaN.
func ratePercent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
