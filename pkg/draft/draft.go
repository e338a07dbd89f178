// Package draft provides the form-draft persistence used by editing clients:
// a scoped key-value store plus a timer-driven autosaver. The store is an
// explicit interface so tests run without a real storage backend and the
// mechanism stays swappable.
package draft

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound reports a missing draft key.
var ErrNotFound = errors.New("draft: not found")

// Store persists unsaved form values under per-entity keys.
type Store interface {
	Save(key string, value []byte) error
	Load(key string) ([]byte, error)
	Clear(key string) error
}

// MemoryStore is an in-memory Store, used in tests and as the default.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryStore) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// FileStore persists drafts as one JSON file per key under a directory.
type FileStore struct {
	dir string
}

// NewFileStore builds a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Keys are caller-controlled identifiers like "draft-company-new";
	// flatten any separator rather than trusting them as paths.
	safe := filepath.Base(key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileStore) Save(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileStore) Load(key string) ([]byte, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *FileStore) Clear(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SaveJSON marshals v and stores it under key.
func SaveJSON(s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Save(key, b)
}

// LoadJSON loads key and unmarshals into v. Returns ErrNotFound when no
// draft exists.
func LoadJSON(s Store, key string, v any) error {
	b, err := s.Load(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
