package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "postpilot.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='credential'`).Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "credential", name)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "postpilot.db")

	db, err := InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
