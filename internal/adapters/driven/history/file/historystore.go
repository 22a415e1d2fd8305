// Package file provides a JSON-file-backed implementation of the
// history store port, the CLI analogue of the dashboard's durable
// client-side storage.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/lumenboard/lumen-cli/internal/core/ports/driven"
)

// historyFile is the fixed file name under the Lumen config directory.
const historyFile = "history.json"

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore persists the recent-query list as a JSON array of
// strings, most recent first.
type HistoryStore struct {
	mu       sync.Mutex
	filePath string
}

// NewHistoryStore creates a history store under configDir.
// If configDir is empty, defaults to ~/.lumen.
func NewHistoryStore(configDir string) (*HistoryStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".lumen")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &HistoryStore{
		filePath: filepath.Join(configDir, historyFile),
	}, nil
}

// Load returns the persisted queries. A missing file is an empty list,
// not an error.
func (s *HistoryStore) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var queries []string
	if err := json.Unmarshal(data, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

// Save replaces the persisted queries.
func (s *HistoryStore) Save(queries []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if queries == nil {
		queries = []string{}
	}
	data, err := json.Marshal(queries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the history file path.
func (s *HistoryStore) Path() string {
	return s.filePath
}
