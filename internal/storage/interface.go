package storage

import (
	"errors"
	"strings"
)

var (
	// ErrNotInitialized is returned by Load when no store exists at the path
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrAlreadyInitialized is returned by Init when a store already exists
	ErrAlreadyInitialized = errors.New("storage already initialized")
	// ErrNotLoaded is returned by reads and writes before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
)

// KV is the durable key-value contract the progress model depends on.
// Values are opaque strings; callers serialize their own documents.
type KV interface {
	// Get returns the value for key and whether it was present
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// SetMany writes every pair in a single atomic step
	SetMany(values map[string]string) error
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	KV

	// Keys lists every stored key in sorted order
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}

// NewProvider picks the store implementation from the path: a .json file
// gets the JSON store, anything else the SQLite store.
func NewProvider(path string) Provider {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
