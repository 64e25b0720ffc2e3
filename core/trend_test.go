package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestTrendPct(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		previous  float64
		expected  float64
		expectNil bool
	}{
		{name: "growth", current: 150, previous: 100, expected: 50.0},
		{name: "decline", current: 80, previous: 100, expected: -20.0},
		{name: "flat", current: 100, previous: 100, expected: 0.0},
		{name: "rounded to one decimal", current: 1, previous: 3, expected: -66.7},
		{name: "zero baseline yields nil", current: 50, previous: 0, expectNil: true},
		{name: "negative baseline yields nil", current: 50, previous: -1, expectNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrendPct(tt.current, tt.previous)
			if tt.expectNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.expected, *got, 0.001)
		})
	}
}

func TestTrendsForSuccessRateIsAbsolute(t *testing.T) {
	current := schema.TopMetrics{TotalCalls: 10, TotalMinutes: 20, SuccessRate: 80.0, AvgDuration: 120}
	previous := schema.TopMetrics{TotalCalls: 5, TotalMinutes: 10, SuccessRate: 60.0, AvgDuration: 100}

	deltas := TrendsFor(current, previous)
	require.NotNil(t, deltas.Calls)
	assert.InDelta(t, 100.0, *deltas.Calls, 0.001)
	require.NotNil(t, deltas.Minutes)
	assert.InDelta(t, 100.0, *deltas.Minutes, 0.001)
	require.NotNil(t, deltas.AvgDuration)
	assert.InDelta(t, 20.0, *deltas.AvgDuration, 0.001)

	// 80% vs 60% is +20 points, not +33.3%.
	require.NotNil(t, deltas.SuccessRate)
	assert.InDelta(t, 20.0, *deltas.SuccessRate, 0.001)
}

func TestTrendsForEmptyPreviousPeriod(t *testing.T) {
	current := schema.TopMetrics{TotalCalls: 10, TotalMinutes: 20, SuccessRate: 80.0, AvgDuration: 120}

	deltas := TrendsFor(current, schema.TopMetrics{})
	assert.Nil(t, deltas.Calls)
	assert.Nil(t, deltas.Minutes)
	assert.Nil(t, deltas.AvgDuration)
	assert.Nil(t, deltas.SuccessRate)
}
