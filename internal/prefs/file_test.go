package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStoreAt(filepath.Join(t.TempDir(), "panel.json"))

	_, ok := s.Read()
	require.False(t, ok, "fresh store must be a miss")

	require.NoError(t, s.Write(true))
	v, ok := s.Read()
	require.True(t, ok)
	require.True(t, v)
}

func TestFileStoreDistinguishesFalseFromAbsent(t *testing.T) {
	s := NewFileStoreAt(filepath.Join(t.TempDir(), "panel.json"))
	require.NoError(t, s.Write(false))
	v, ok := s.Read()
	require.True(t, ok, "an explicit false is present, not a miss")
	require.False(t, v)
}

func TestFileStoreExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	s := NewFileStoreAt(path)

	stale := fileRecord{Value: true, ExpiresAt: time.Now().Add(-time.Hour)}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, ok := s.Read()
	require.False(t, ok, "expired records read as a miss")
}

func TestFileStoreWriteRefreshesExpiry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	s := NewFileStoreAt(path)
	require.NoError(t, s.Write(true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec fileRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	require.WithinDuration(t, time.Now().Add(TTL), rec.ExpiresAt, time.Minute)
}

func TestFileStoreCorruptFileIsMiss(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, ok := NewFileStoreAt(path).Read()
	require.False(t, ok)
}

func TestFileStoreUnavailableDirectory(t *testing.T) {
	s := NewFileStoreAt(filepath.Join(t.TempDir(), "missing", "panel.json"))
	_, ok := s.Read()
	require.False(t, ok, "read never fails, it misses")
	require.Error(t, s.Write(true), "write reports the failure for the diagnostic hook")
}
