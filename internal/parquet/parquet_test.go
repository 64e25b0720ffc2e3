package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestSnapshotStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(Snapshot))
	require.NotNil(t, sch)

	// Check that all expected columns exist
	expectedColumns := []string{
		"query_name",
		"params",
		"value",
		"version",
		"written_at",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestCallStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(Call))
	require.NotNil(t, sch)

	// Check that all expected columns exist
	expectedColumns := []string{
		"id",
		"agent_id",
		"client_id",
		"started_at",
		"duration_seconds",
		"status",
		"outcome",
		"cost",
		"lead_email",
		"lead_phone",
	}

	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestWriteSnapshotsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "snapshots.parquet")

	now := time.Now()
	data := []Snapshot{
		{QueryName: "call-kpis", Params: "from=0;to=1", Value: `{"rows":[]}`, Version: 1, WrittenAt: now},
		{QueryName: "recent-calls", Params: "from=0;to=1", Value: `{"rows":[]}`, Version: 1, WrittenAt: now},
	}

	err := WriteSnapshotsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Read back and verify round trip
	rows, err := parquet.ReadFile[Snapshot](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, len(data))
	assert.Equal(t, data[0].QueryName, rows[0].QueryName)
	assert.Equal(t, data[1].Value, rows[1].Value)
}

func TestWriteCallsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "calls.parquet")

	cost := 1.25
	outcome := "booked"
	data := []Call{
		{
			ID:              "c1",
			AgentID:         "agent-1",
			ClientID:        "client-1",
			StartedAt:       time.Now(),
			DurationSeconds: 120,
			Status:          "completed",
			Outcome:         &outcome,
			Cost:            &cost,
		},
		{
			ID:              "c2",
			AgentID:         "agent-1",
			ClientID:        "client-1",
			StartedAt:       time.Now(),
			DurationSeconds: 60,
			Status:          "missed",
		},
	}

	err := WriteCallsParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	rows, err := parquet.ReadFile[Call](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0].ID)
	require.NotNil(t, rows[0].Cost)
	assert.InDelta(t, 1.25, *rows[0].Cost, 0.001)
	assert.Nil(t, rows[1].Outcome, "missing outcome should stay null")
}

func TestConvertSnapshotRecords(t *testing.T) {
	now := time.Now()
	records := []schema.SnapshotRecord{
		{QueryName: "volume-trend", Params: "from=1;to=2", Value: []byte(`{"points":[]}`), Version: 2, WrittenAt: now},
	}

	converted := ConvertSnapshotRecords(records)
	require.Len(t, converted, 1)
	assert.Equal(t, "volume-trend", converted[0].QueryName)
	assert.Equal(t, `{"points":[]}`, converted[0].Value)
	assert.Equal(t, int32(2), converted[0].Version)
	assert.Equal(t, now, converted[0].WrittenAt)
}

func TestConvertCallRecords(t *testing.T) {
	cost := 0.42
	records := []schema.CallRecord{
		{
			ID:              "c1",
			AgentID:         "agent-1",
			ClientID:        "client-1",
			StartedAt:       time.Now(),
			DurationSeconds: 300,
			Status:          schema.CallCompleted,
			Outcome:         "booked",
			Cost:            &cost,
			Collected:       schema.CollectedData{Email: "lead@example.com"},
		},
		{
			ID:              "c2",
			AgentID:         "agent-2",
			ClientID:        "client-1",
			StartedAt:       time.Now(),
			DurationSeconds: 45,
			Status:          schema.CallMissed,
		},
	}

	converted := ConvertCallRecords(records)
	require.Len(t, converted, 2)

	require.NotNil(t, converted[0].Outcome)
	assert.Equal(t, "booked", *converted[0].Outcome)
	require.NotNil(t, converted[0].LeadEmail)
	assert.Equal(t, "lead@example.com", *converted[0].LeadEmail)
	assert.Nil(t, converted[0].LeadPhone)

	assert.Nil(t, converted[1].Outcome)
	assert.Nil(t, converted[1].LeadEmail)
	assert.Equal(t, "missed", converted[1].Status)
}
