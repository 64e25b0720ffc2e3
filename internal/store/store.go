// Package store provides the Postgres-backed row store and the change
// feeds (Postgres LISTEN/NOTIFY and Kafka) that drive the dashboard.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
)

// PostgresStore reads dashboard rows from a Postgres database.
type PostgresStore struct {
	db *sql.DB
}

var _ contract.RowStore = &PostgresStore{} // Compile-time check

// NewPostgresStore opens a connection pool against dsn and verifies it.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("store requires a connection string (set --store-dsn or CALLDECK_STORE_DSN)")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to store. Check that the server is running and the DSN is valid: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// FetchCalls returns call rows matching q plus the total count before
// pagination.
func (s *PostgresStore) FetchCalls(ctx context.Context, q contract.CallQuery) ([]schema.CallRecord, int, error) {
	where, args := buildWhere(func(w *whereBuilder) {
		if !q.Range.From.IsZero() {
			w.add("started_at >= %s", q.Range.From)
			w.add("started_at <= %s", q.Range.To)
		}
		if q.AgentID != "" {
			w.add("agent_id = %s", q.AgentID)
		}
		if q.ClientID != "" {
			w.add("client_id = %s", q.ClientID)
		}
		if q.Status != "" {
			w.add("status = %s", string(q.Status))
		}
		if !q.IncludeArchived {
			w.add("archived = %s", false)
		}
	})

	total, err := s.countRows(ctx, "call_logs", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, agent_id, client_id, started_at, duration_seconds, status,
		       COALESCE(outcome, ''), cost, COALESCE(collected_data, '{}'),
		       COALESCE(recording_url, ''), archived
		FROM call_logs%s
		ORDER BY started_at %s%s`,
		where, direction(q.Bounds), limitOffset(q.Bounds))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.CallRecord
	for rows.Next() {
		var rec schema.CallRecord
		var collected []byte
		if err := rows.Scan(&rec.ID, &rec.AgentID, &rec.ClientID, &rec.StartedAt,
			&rec.DurationSeconds, &rec.Status, &rec.Outcome, &rec.Cost,
			&collected, &rec.RecordingURL, &rec.Archived); err != nil {
			return nil, 0, fmt.Errorf("failed to scan call row: %w", err)
		}
		if err := json.Unmarshal(collected, &rec.Collected); err != nil {
			// Malformed payloads lose their lead data but keep the call
			rec.Collected = schema.CollectedData{}
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// FetchAppointments returns appointment rows matching q plus the total
// count. The range filters the appointment date, not the booking time.
func (s *PostgresStore) FetchAppointments(ctx context.Context, q contract.AppointmentQuery) ([]schema.Appointment, int, error) {
	where, args := buildWhere(func(w *whereBuilder) {
		if !q.Range.From.IsZero() {
			w.add("date >= %s", q.Range.From.Format(schema.DayFormat))
			w.add("date <= %s", q.Range.To.Format(schema.DayFormat))
		}
		if q.ClientID != "" {
			w.add("client_id = %s", q.ClientID)
		}
		if q.Status != "" {
			w.add("status = %s", string(q.Status))
		}
	})

	total, err := s.countRows(ctx, "appointments", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, client_id, date, COALESCE(time_of_day, ''), status, created_at
		FROM appointments%s
		ORDER BY date %s, time_of_day%s`,
		where, direction(q.Bounds), limitOffset(q.Bounds))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.Appointment
	for rows.Next() {
		var rec schema.Appointment
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.Date, &rec.TimeOfDay,
			&rec.Status, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// FetchUsage returns usage rows with their real recorded_at timestamps.
func (s *PostgresStore) FetchUsage(ctx context.Context, q contract.UsageQuery) ([]schema.UsageRecord, int, error) {
	where, args := buildWhere(func(w *whereBuilder) {
		if !q.Range.From.IsZero() {
			w.add("recorded_at >= %s", q.Range.From)
			w.add("recorded_at <= %s", q.Range.To)
		}
		if q.ClientID != "" {
			w.add("client_id = %s", q.ClientID)
		}
	})

	total, err := s.countRows(ctx, "usage_records", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, client_id, recorded_at, minutes, cost
		FROM usage_records%s
		ORDER BY recorded_at %s%s`,
		where, direction(q.Bounds), limitOffset(q.Bounds))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch usage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.UsageRecord
	for rows.Next() {
		var rec schema.UsageRecord
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.RecordedAt, &rec.Minutes, &rec.Cost); err != nil {
			return nil, 0, fmt.Errorf("failed to scan usage row: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// FetchNotifications returns notification rows, newest first by default.
func (s *PostgresStore) FetchNotifications(ctx context.Context, q contract.NotificationQuery) ([]schema.Notification, int, error) {
	where, args := buildWhere(func(w *whereBuilder) {
		if q.ClientID != "" {
			w.add("client_id = %s", q.ClientID)
		}
		if q.UnreadOnly {
			w.add("read = %s", false)
		}
	})

	total, err := s.countRows(ctx, "notifications", where, args)
	if err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, client_id, title, COALESCE(body, ''), read, created_at
		FROM notifications%s
		ORDER BY created_at %s%s`,
		where, direction(q.Bounds), limitOffset(q.Bounds))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []schema.Notification
	for rows.Next() {
		var rec schema.Notification
		if err := rows.Scan(&rec.ID, &rec.ClientID, &rec.Title, &rec.Body, &rec.Read, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification row: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) countRows(ctx context.Context, table, where string, args []any) (int, error) {
	var total int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, table, where)
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", table, err)
	}
	return total, nil
}

// whereBuilder accumulates conditions with $n placeholders.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, fmt.Sprintf("$%d", len(w.args))))
}

func buildWhere(fill func(*whereBuilder)) (string, []any) {
	var w whereBuilder
	fill(&w)
	if len(w.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(w.conds, " AND "), w.args
}

func direction(b contract.ListBounds) string {
	if b.Descending {
		return "DESC"
	}
	return "ASC"
}

func limitOffset(b contract.ListBounds) string {
	if b.Limit <= 0 {
		return ""
	}
	clause := fmt.Sprintf(" LIMIT %d", b.Limit)
	if b.Offset > 0 {
		clause += fmt.Sprintf(" OFFSET %d", b.Offset)
	}
	return clause
}
