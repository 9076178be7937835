package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"turf-booking/pkg/utils"
)

// Store abstracts the embedded persistence layer: named collections of
// JSON-serializable values, the server-side counterpart of the browser
// local-storage keys the app was built around.
type Store interface {
	Get(name string, out any) (bool, error)
	Put(name string, v any) error
	Delete(name string) error
	Close() error
}

// FileStore keeps every collection in a single JSON file. Mutations are
// flushed atomically (write temp file, rename over the old one).
type FileStore struct {
	mu          sync.Mutex
	path        string
	collections map[string]json.RawMessage
}

// InitStore loads the data file when present, otherwise starts empty.
func InitStore(config utils.StoreConfig) (Store, error) {
	store := &FileStore{
		path:        config.Path,
		collections: make(map[string]json.RawMessage),
	}

	if config.Path == "" {
		return store, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	raw, err := os.ReadFile(config.Path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file %s: %w", config.Path, err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &store.collections); err != nil {
			return nil, fmt.Errorf("parse data file %s: %w", config.Path, err)
		}
	}

	return store, nil
}

// Get implements Store
func (s *FileStore) Get(name string, out any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.collections[name]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode collection %s: %w", name, err)
	}

	return true, nil
}

// Put implements Store
func (s *FileStore) Put(name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[name] = raw
	return s.flushLocked()
}

// Delete implements Store
func (s *FileStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, name)
	return s.flushLocked()
}

// Close implements Store
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(s.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}
