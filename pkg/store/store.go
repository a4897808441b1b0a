package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// ContentKey holds the autosaved document record.
	ContentKey = "opensphere-editor-content"
	// ThemeKey holds the persisted theme preference.
	ThemeKey = "opensphere-theme"

	// SaveVersion is the format version written into every save record.
	SaveVersion = "1.0"

	appDirName = "opensphere"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("store: key not found")

// SaveRecord is the persisted document envelope.
type SaveRecord struct {
	Content   json.RawMessage `json:"content"`
	Timestamp int64           `json:"timestamp"`
	Version   string          `json:"version"`
}

// Store is a local key-value store backed by one file per key.
type Store struct {
	dir string
}

// DefaultDir returns the per-user data directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Get reads the value stored under key.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set writes value under key, overwriting any previous value.
func (s *Store) Set(key string, value []byte) error {
	if err := os.WriteFile(s.keyPath(key), value, 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting a missing key is not
// an error.
func (s *Store) Delete(key string) error {
	if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// Has reports whether key has a stored value.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.keyPath(key))
	return err == nil
}

// SaveContent wraps the engine-native document JSON in a versioned record
// and stores it under ContentKey.
func (s *Store) SaveContent(content json.RawMessage) error {
	record := SaveRecord{
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		Version:   SaveVersion,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize save record: %w", err)
	}
	return s.Set(ContentKey, data)
}

// LoadContent reads the save record under ContentKey and returns it.
func (s *Store) LoadContent() (*SaveRecord, error) {
	data, err := s.Get(ContentKey)
	if err != nil {
		return nil, err
	}
	var record SaveRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse save record: %w", err)
	}
	if len(record.Content) == 0 {
		return nil, fmt.Errorf("save record has no content")
	}
	return &record, nil
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key)
}
