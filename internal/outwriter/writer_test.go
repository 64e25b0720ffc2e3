package outwriter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func sampleMetrics() *schema.DashboardMetrics {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 7, 23, 59, 59, 0, time.UTC)
	return &schema.DashboardMetrics{
		Range: schema.TimeRange{From: from, To: to},
		Top: schema.TopMetrics{
			TotalCalls:   3,
			TotalMinutes: 8,
			SuccessRate:  66.7,
			AvgDuration:  160,
			Sparkline: []schema.SparklinePoint{
				{Range: schema.TimeRange{From: from, To: from.AddDate(0, 0, 1)}, TotalCalls: 1, TotalMinutes: 2, SuccessRate: 100, AvgDuration: 120},
			},
		},
	}
}

func TestWriteJSONResultsForMetrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONResultsForMetrics(&buf, sampleMetrics()))

	var decoded schema.DashboardMetrics
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded.Top.TotalCalls)
	assert.InDelta(t, 66.7, decoded.Top.SuccessRate, 0.001)
	// Nil trends encode as JSON null, never NaN
	assert.Contains(t, buf.String(), `"calls": null`)
}

func TestWriteCSVResultsForMetrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForMetrics(&buf, sampleMetrics()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// Header + one sparkline point + summary row
	require.Len(t, lines, 3)
	assert.Equal(t, "period_start,period_end,total_calls,total_minutes,success_rate,avg_duration", lines[0])
	assert.Equal(t, "2026-08-01,2026-08-07,3,8,66.7,160", lines[2])
}

func TestWriteCSVResultsForVolume(t *testing.T) {
	series := &schema.VolumeSeries{
		Points: []schema.VolumePoint{
			{Date: "2026-08-01", Total: 5, Completed: 4, Failed: 1},
			{Date: "2026-08-02", Total: 2, Completed: 2},
		},
		PeakDay: "2026-08-01",
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForVolume(&buf, series))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2026-08-01,5,4,1,true", lines[1])
	assert.Equal(t, "2026-08-02,2,2,0,", lines[2])
}

func TestWriteCSVResultsForPatterns(t *testing.T) {
	patterns := &schema.CallPatterns{
		Hours:    []schema.HourBucket{{Hour: 0, Count: 1}, {Hour: 1, Count: 0}},
		Weekdays: []schema.WeekdayBucket{{Weekday: "Sunday", Count: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForPatterns(&buf, patterns))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "hour,0,1", lines[1])
	assert.Equal(t, "weekday,Sunday,1", lines[3])
}

func TestWriteCSVResultsForOutcomes(t *testing.T) {
	outcomes := &schema.OutcomeDistribution{
		Slices: []schema.OutcomeSlice{
			{Name: "booked", Count: 2, Percent: 66.7},
			{Name: "other", Count: 1, Percent: 33.3},
		},
		LeadsCaptured: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForOutcomes(&buf, outcomes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "booked,2,66.7", lines[1])
}

func TestWriteCSVResultsForAppointments(t *testing.T) {
	stats := &schema.AppointmentStats{
		Total:           2,
		ShowUpRate:      50,
		AvgLeadTimeDays: 2,
		DailyTrend: []schema.AppointmentDay{
			{Date: "2026-08-01", Count: 1},
			{Date: "2026-08-03", Count: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForAppointments(&buf, stats))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2026-08-01,1,2,50,2", lines[1])
}

func TestWriteCSVResultsForCalls(t *testing.T) {
	calls := []schema.CallRecord{
		{
			ID:              "c1",
			AgentID:         "agent-1",
			ClientID:        "client-1",
			StartedAt:       time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
			DurationSeconds: 120,
			Status:          schema.CallCompleted,
			Outcome:         "booked",
			Collected:       schema.CollectedData{Phone: "+15551234"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForCalls(&buf, calls))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "c1,agent-1,client-1,")
	assert.True(t, strings.HasSuffix(lines[1], "120,completed,booked,true"))
}
