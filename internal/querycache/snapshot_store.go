package querycache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/calldeck/calldeck/internal/contract"
	"github.com/calldeck/calldeck/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver
)

// snapshotTable is the name of the snapshot table.
const snapshotTable = "calldeck_snapshots"

// SnapshotStoreImpl persists last-known query results using various
// database backends, so a dashboard can render something meaningful before
// its first fetch completes.
type SnapshotStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore initializes and returns a new SnapshotStore based on
// the backend type.
func NewSnapshotStore(backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetSnapshotDBFilePath()
		}
		db, err = sql.Open("sqlite3", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite snapshots at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL snapshots: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=calldeck
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL snapshots: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled snapshots
		return &SnapshotStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", snapshotTable, err)
	}

	return &SnapshotStoreImpl{db: db, backend: backend}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				query_name VARCHAR(128) NOT NULL,
				params VARCHAR(255) NOT NULL,
				value BLOB NOT NULL,
				version INT NOT NULL,
				written_at BIGINT NOT NULL,
				PRIMARY KEY (query_name, params)
			);
		`, snapshotTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				query_name TEXT NOT NULL,
				params TEXT NOT NULL,
				value BYTEA NOT NULL,
				version INTEGER NOT NULL,
				written_at BIGINT NOT NULL,
				PRIMARY KEY (query_name, params)
			);
		`, snapshotTable)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				query_name TEXT NOT NULL,
				params TEXT NOT NULL,
				value BLOB NOT NULL,
				version INTEGER NOT NULL,
				written_at INTEGER NOT NULL,
				PRIMARY KEY (query_name, params)
			);
		`, snapshotTable)
	}
}

// Get retrieves a snapshot by (query name, params).
func (ss *SnapshotStoreImpl) Get(name, params string) ([]byte, int, int64, error) {
	// Return not found error for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, 0, 0, sql.ErrNoRows
	}

	var value []byte
	var version int
	var ts int64

	query := fmt.Sprintf(`SELECT value, version, written_at FROM %s WHERE query_name = %s AND params = %s`,
		snapshotTable, ss.placeholder(1), ss.placeholder(2))
	row := ss.db.QueryRow(query, name, params)

	if err := row.Scan(&value, &version, &ts); err != nil {
		return nil, 0, 0, err
	}
	return value, version, ts, nil
}

// Set inserts or replaces a snapshot.
func (ss *SnapshotStoreImpl) Set(name, params string, value []byte, version int, timestamp int64) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	_, err := ss.db.Exec(ss.upsertQuery(), name, params, value, version, timestamp)
	return err
}

// Clear removes all snapshots.
func (ss *SnapshotStoreImpl) Clear() error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	_, err := ss.db.Exec(fmt.Sprintf(`DELETE FROM %s`, snapshotTable))
	return err
}

// GetAll returns every stored snapshot, newest first.
func (ss *SnapshotStoreImpl) GetAll() ([]schema.SnapshotRecord, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	rows, err := ss.db.Query(fmt.Sprintf(
		`SELECT query_name, params, value, version, written_at FROM %s ORDER BY written_at DESC`, snapshotTable))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []schema.SnapshotRecord
	for rows.Next() {
		var rec schema.SnapshotRecord
		var ts int64
		if err := rows.Scan(&rec.QueryName, &rec.Params, &rec.Value, &rec.Version, &ts); err != nil {
			return nil, err
		}
		rec.WrittenAt = time.Unix(ts, 0)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetStatus returns status information about the snapshot store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.SnapshotStatus, error) {
	status := schema.SnapshotStatus{Backend: string(ss.backend)}
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}
	if err := ss.db.Ping(); err != nil {
		return status, nil
	}
	status.Connected = true

	row := ss.db.QueryRow(fmt.Sprintf(
		`SELECT COUNT(*), COALESCE(MAX(written_at), 0), COALESCE(MIN(written_at), 0) FROM %s`, snapshotTable))
	var count int
	var newest, oldest int64
	if err := row.Scan(&count, &newest, &oldest); err != nil {
		return status, err
	}
	status.TotalSnapshots = count
	if count > 0 {
		status.LastWriteTime = time.Unix(newest, 0)
		status.OldestWriteTime = time.Unix(oldest, 0)
	}
	return status, nil
}

// Close closes the underlying connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db == nil {
		return nil
	}
	return ss.db.Close()
}

// placeholder returns the nth parameter placeholder for the backend.
func (ss *SnapshotStoreImpl) placeholder(n int) string {
	if ss.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?" // SQLite and MySQL
}

// upsertQuery returns the UPSERT query for the backend.
func (ss *SnapshotStoreImpl) upsertQuery() string {
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (query_name, params, value, version, written_at) VALUES (?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE value = new.value, version = new.version, written_at = new.written_at`, snapshotTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (query_name, params, value, version, written_at) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (query_name, params) DO UPDATE SET value = EXCLUDED.value, version = EXCLUDED.version, written_at = EXCLUDED.written_at`, snapshotTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (query_name, params, value, version, written_at) VALUES (?, ?, ?, ?, ?)`, snapshotTable)
	}
}
