package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenSQLite_AppliesMigrationsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.db")

	db, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Ping(context.Background()))

	var tables int
	err = db.DB.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'todos'`).Scan(&tables)
	require.NoError(t, err)
	require.Equal(t, 1, tables)
	require.NoError(t, db.Close())

	// reopening must not re-run the migration
	db, err = OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	var applied int
	err = db.DB.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&applied)
	require.NoError(t, err)
	require.Equal(t, 1, applied)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	require.Error(t, err)
}
