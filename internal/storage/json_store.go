package storage

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

type document struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

// JSONStore keeps every key in one JSON file, rewritten in full on each write.
type JSONStore struct {
	mu   sync.Mutex
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("%w at %s", ErrAlreadyInitialized, s.path)
	}

	s.doc = &document{Version: 1, Values: make(map[string]string)}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w at %s", ErrNotInitialized, s.path)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes to a temp file and renames it over the store so a crash
// mid-write never leaves a truncated file behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return "", false, ErrNotLoaded
	}
	v, ok := s.doc.Values[key]
	return v, ok, nil
}

func (s *JSONStore) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

func (s *JSONStore) SetMany(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNotLoaded
	}
	previous := maps.Clone(s.doc.Values)
	maps.Copy(s.doc.Values, values)
	if err := s.save(); err != nil {
		s.doc.Values = previous
		return err
	}
	return nil
}

func (s *JSONStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	return slices.Sorted(maps.Keys(s.doc.Values)), nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
