package querycache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calldeck/calldeck/schema"
)

func TestMigrateSnapshots_NoneBackend(t *testing.T) {
	err := MigrateSnapshots(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateSnapshots_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version (should go to version 1)
	err := MigrateSnapshots(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Migrate to a specific version (version 1)
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)

	// Rollback to version 0
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// Migrate back up to version 1
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)
}

func TestMigrateSnapshots_UnsupportedBackend(t *testing.T) {
	err := MigrateSnapshots("oracle", "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported snapshot backend")
}
