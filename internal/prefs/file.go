package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const prefsFile = "panel.json"

type fileRecord struct {
	Value     bool      `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore keeps the preference in a small JSON file under the user
// config directory.
type FileStore struct {
	path string
}

// NewFileStore resolves the default path, creating the config
// directory if needed.
func NewFileStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "sidebar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, prefsFile)}, nil
}

// NewFileStoreAt uses an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Read returns the stored value. An absent, expired or unreadable file
// is a miss, never an error.
func (s *FileStore) Read() (bool, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, false
	}
	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return false, false
	}
	if time.Now().After(rec.ExpiresAt) {
		return false, false
	}
	return rec.Value, true
}

// Write records the value with a fresh expiry, atomically via
// tmp+rename.
func (s *FileStore) Write(v bool) error {
	rec := fileRecord{Value: v, ExpiresAt: time.Now().Add(TTL)}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
