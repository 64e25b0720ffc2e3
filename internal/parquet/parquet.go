// Package parquet provides data structures and functions for exporting
// dashboard snapshots and call history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/calldeck/calldeck/schema"
	"github.com/parquet-go/parquet-go"
)

// Snapshot represents a persisted query result row.
// This struct maps to the calldeck_snapshots database table.
type Snapshot struct {
	// QueryName identifies the dashboard query the snapshot belongs to
	QueryName string `parquet:"query_name,snappy"`

	// Params is the serialized parameter key for the query
	Params string `parquet:"params,snappy"`

	// Value is the JSON-encoded query result
	Value string `parquet:"value,snappy"`

	// Version is the snapshot schema version
	Version int32 `parquet:"version,snappy"`

	// WrittenAt is when the snapshot was written (stored as TIMESTAMP with nanosecond precision)
	WrittenAt time.Time `parquet:"written_at,snappy"`
}

// Call represents a single call log row for export.
type Call struct {
	// ID is the unique identifier of the call
	ID string `parquet:"id,snappy"`

	// AgentID is the voice agent that handled the call
	AgentID string `parquet:"agent_id,snappy"`

	// ClientID is the tenant that owns the call
	ClientID string `parquet:"client_id,snappy"`

	// StartedAt is when the call began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// DurationSeconds is the call duration in seconds
	DurationSeconds int32 `parquet:"duration_seconds,snappy"`

	// Status is the terminal call status
	Status string `parquet:"status,snappy"`

	// Outcome is the free-form call outcome (nullable)
	Outcome *string `parquet:"outcome,optional,snappy"`

	// Cost is the per-call cost (nullable)
	Cost *float64 `parquet:"cost,optional,snappy"`

	// LeadEmail is the email collected during the call (nullable)
	LeadEmail *string `parquet:"lead_email,optional,snappy"`

	// LeadPhone is the phone number collected during the call (nullable)
	LeadPhone *string `parquet:"lead_phone,optional,snappy"`
}

// WriteSnapshotsParquet writes a slice of Snapshot structs to a Parquet file.
func WriteSnapshotsParquet(data []Snapshot, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Snapshot struct tags
	writer := parquet.NewGenericWriter[Snapshot](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCallsParquet writes a slice of Call structs to a Parquet file.
func WriteCallsParquet(data []Call, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Call struct tags
	writer := parquet.NewGenericWriter[Call](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertSnapshotRecords converts schema.SnapshotRecord to Snapshot for Parquet export.
func ConvertSnapshotRecords(records []schema.SnapshotRecord) []Snapshot {
	result := make([]Snapshot, len(records))
	for i, record := range records {
		result[i] = Snapshot{
			QueryName: record.QueryName,
			Params:    record.Params,
			Value:     string(record.Value),
			Version:   int32(record.Version),
			WrittenAt: record.WrittenAt,
		}
	}
	return result
}

// ConvertCallRecords converts schema.CallRecord to Call for Parquet export.
func ConvertCallRecords(records []schema.CallRecord) []Call {
	result := make([]Call, len(records))
	for i, record := range records {
		call := Call{
			ID:              record.ID,
			AgentID:         record.AgentID,
			ClientID:        record.ClientID,
			StartedAt:       record.StartedAt,
			DurationSeconds: int32(record.DurationSeconds),
			Status:          string(record.Status),
			Cost:            record.Cost,
		}
		if record.Outcome != "" {
			outcome := record.Outcome
			call.Outcome = &outcome
		}
		if record.Collected.Email != "" {
			email := record.Collected.Email
			call.LeadEmail = &email
		}
		if record.Collected.Phone != "" {
			phone := record.Collected.Phone
			call.LeadPhone = &phone
		}
		result[i] = call
	}
	return result
}
