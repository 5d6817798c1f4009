package prefs

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/paleite/sidebar/internal/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	require.NoError(t, database.RunMigrations(path, "../database/migrations"))
	db, err := database.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	s := NewSQLiteStore(openTestDB(t))

	_, ok := s.Read()
	require.False(t, ok, "fresh store must be a miss")

	require.NoError(t, s.Write(true))
	v, ok := s.Read()
	require.True(t, ok)
	require.True(t, v)

	require.NoError(t, s.Write(false))
	v, ok = s.Read()
	require.True(t, ok, "an explicit false is present, not a miss")
	require.False(t, v)
}

func TestSQLiteStoreExpiry(t *testing.T) {
	db := openTestDB(t)
	s := NewSQLiteStore(db)

	_, err := db.Exec(
		`INSERT INTO panel_prefs(key, value, expires_at) VALUES (?, 1, ?)`,
		s.key, time.Now().Add(-time.Hour).Unix(),
	)
	require.NoError(t, err)

	_, ok := s.Read()
	require.False(t, ok, "expired rows read as a miss")

	// a fresh write replaces the stale row
	require.NoError(t, s.Write(true))
	v, ok := s.Read()
	require.True(t, ok)
	require.True(t, v)
}

func TestSQLiteStoreClosedDB(t *testing.T) {
	db := openTestDB(t)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, ok := s.Read()
	require.False(t, ok, "a closed database degrades to a miss")
	require.Error(t, s.Write(true))
}
