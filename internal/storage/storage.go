package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akozyreva/lyceum-calendar/internal/calendar"
	"github.com/akozyreva/lyceum-calendar/internal/logger"
)

// Store persists the day-keyed event cache as a single JSON file.
type Store struct {
	path string
}

// New creates a Store and ensures the cache file's directory exists.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Path returns the location of the cache file.
func (s *Store) Path() string { return s.path }

// Load reads the cached calendar from disk. A missing file is created
// empty; a file that cannot be decoded is treated as an empty cache so a
// corrupt cache never fails the cycle.
func (s *Store) Load() (calendar.Events, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(s.path, []byte("{}\n"), 0644); err != nil {
				return nil, fmt.Errorf("creating cache file: %w", err)
			}
			return calendar.Events{}, nil
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	var events calendar.Events
	if err := json.Unmarshal(data, &events); err != nil {
		logger.Warn("cache file is not valid JSON, starting from an empty cache", logger.Fields{
			"path": s.path,
		})
		return calendar.Events{}, nil
	}
	if events == nil {
		events = calendar.Events{}
	}
	return events, nil
}

// Save overwrites the cache file with the full mapping. Marshaling a map
// sorts its keys, so the file is deterministic for a given cache state.
func (s *Store) Save(events calendar.Events) error {
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
