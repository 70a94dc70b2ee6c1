package storage

import (
	"errors"
	"maps"
	"slices"
	"sync"
)

// ErrInjected is the failure returned by a MemoryStore with FailReads or FailWrites set
var ErrInjected = errors.New("injected storage failure")

// MemoryStore keeps values in a map. It backs tests and serves as the
// fallback when no durable store can be opened.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int

	// FailReads and FailWrites make every Get or Set/SetMany fail
	FailReads  bool
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Init() error           { return nil }
func (s *MemoryStore) Load() error           { return nil }
func (s *MemoryStore) Close() error          { return nil }
func (s *MemoryStore) GetConfigPath() string { return ":memory:" }

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailReads {
		return "", false, ErrInjected
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

func (s *MemoryStore) SetMany(values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return ErrInjected
	}
	maps.Copy(s.values, values)
	s.writes++
	return nil
}

func (s *MemoryStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.values)), nil
}

// Writes reports how many successful Set/SetMany calls were made
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
