package core

import (
	"math"

	"github.com/calldeck/calldeck/schema"
)

// TrendPct computes the relative percentage change from previous to
// current, rounded to one decimal. A zero (or negative) baseline yields
// nil: a percentage fabricated from nothing would mislead, so the caller
// renders it as "no comparison available" instead.
func TrendPct(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	v := math.Round((current-previous)/previous*1000) / 10
	return &v
}

// TrendsFor compares two periods' headline metrics. Call, minute, and
// duration trends are relative percentages; the success-rate trend is an
// absolute percentage-point difference, because a relative change of a
// percentage reads as noise.
func TrendsFor(current, previous schema.TopMetrics) schema.TrendDeltas {
	deltas := schema.TrendDeltas{
		Calls:       TrendPct(float64(current.TotalCalls), float64(previous.TotalCalls)),
		Minutes:     TrendPct(float64(current.TotalMinutes), float64(previous.TotalMinutes)),
		AvgDuration: TrendPct(float64(current.AvgDuration), float64(previous.AvgDuration)),
	}
	if previous.TotalCalls > 0 {
		diff := round1(current.SuccessRate - previous.SuccessRate)
		deltas.SuccessRate = &diff
	}
	return deltas
}
