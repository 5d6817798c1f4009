package prefs

import (
	"context"
	"database/sql"
	"time"
)

// SQLiteStore keeps the preference in a single keyed row. The
// panel_prefs schema is owned by internal/database migrations.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, key: Key}
}

// Read returns the stored value; an absent or expired row is a miss.
func (s *SQLiteStore) Read() (bool, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var value int
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM panel_prefs WHERE key = ?`, s.key,
	).Scan(&value, &expiresAt)
	if err != nil {
		return false, false
	}
	if time.Now().Unix() > expiresAt {
		return false, false
	}
	return value != 0, true
}

// Write upserts the row with a fresh expiry.
func (s *SQLiteStore) Write(v bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	value := 0
	if v {
		value = 1
	}
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO panel_prefs(key, value, expires_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 expires_at=excluded.expires_at;
	`, s.key, value, time.Now().Add(TTL).Unix())
	return err
}
