// Package folders persists the ordered list of note folders.
package folders

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"invisinote/internal/errors"
	"invisinote/internal/log"
)

// Store loads and saves the folder list.
type Store interface {
	Load() ([]string, error)
	Save(paths []string) error
}

// FileStore keeps the folder list as a JSON array of paths.
type FileStore struct {
	path          string
	defaultFolder string
}

// NewFileStore returns a store backed by the JSON file at path. defaultFolder
// is used whenever the file is missing, empty or unreadable.
func NewFileStore(path, defaultFolder string) *FileStore {
	return &FileStore{path: path, defaultFolder: defaultFolder}
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// DefaultFolder returns the fallback folder.
func (s *FileStore) DefaultFolder() string {
	return s.defaultFolder
}

// Load reads the folder list. A missing file yields the default folder with no
// error. A corrupt file yields the default folder and an InvalidConfig error
// the caller should surface as a warning.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return s.fallback(), nil
	}
	if err != nil {
		return s.fallback(), errors.NewConfigError("could not read folder list", s.path, errors.ConfigNotFound, err)
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		return s.fallback(), errors.NewConfigError("folder list is not a JSON array of paths", s.path, errors.InvalidConfig, err)
	}
	if len(paths) == 0 {
		return s.fallback(), nil
	}
	return paths, nil
}

// Save writes paths, creating the parent directory if needed.
func (s *FileStore) Save(paths []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create folder list directory: %w", err)
	}
	if paths == nil {
		paths = []string{}
	}
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal folder list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write folder list: %w", err)
	}
	return nil
}

func (s *FileStore) fallback() []string {
	if s.defaultFolder == "" {
		return []string{}
	}
	if err := os.MkdirAll(s.defaultFolder, 0755); err != nil {
		log.LogWithError(err).Warnf("could not create default notes folder %s", s.defaultFolder)
	}
	return []string{s.defaultFolder}
}

// MemoryStore is an in-process Store used by tests and --no-persist runs.
type MemoryStore struct {
	mu      sync.Mutex
	paths   []string
	saves   int
	SaveErr error
}

// NewMemoryStore returns a store preloaded with paths.
func NewMemoryStore(paths ...string) *MemoryStore {
	return &MemoryStore{paths: append([]string(nil), paths...)}
}

func (m *MemoryStore) Load() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.paths...), nil
}

func (m *MemoryStore) Save(paths []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.paths = append([]string(nil), paths...)
	return nil
}

// Saves reports how many times Save was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
