package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_Embedded(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db, ""))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(db, ""))

	for _, table := range []string{"periods", "bank_movements", "balance_checkpoints", "validations"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestRunMigrations_FileSource(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db, "migrations"))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'uq_validations_current_period'").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCurrentValidationUniqueIndex(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, RunMigrations(db, ""))

	_, err = db.Exec(`INSERT INTO periods (id, year, month, start_date, end_date, created_at) VALUES ('p1', 2024, 'mars', '2024-03-01', '2024-03-31', 'now')`)
	require.NoError(t, err)

	insert := `INSERT INTO validations (id, period_id, is_historical, created_at) VALUES (?, 'p1', ?, 'now')`
	_, err = db.Exec(insert, "v1", 0)
	require.NoError(t, err)
	_, err = db.Exec(insert, "v2", 1)
	require.NoError(t, err)

	_, err = db.Exec(insert, "v3", 0)
	assert.Error(t, err, "a second current validation for the same period must be rejected")
}

func TestRunMigrations_NilDB(t *testing.T) {
	assert.Error(t, RunMigrations(nil, ""))
}
