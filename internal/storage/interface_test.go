package storage

import (
	"errors"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"json extension", "/tmp/progress.json", "json"},
		{"upper case json", "/tmp/PROGRESS.JSON", "json"},
		{"db extension", "/tmp/flipdeck.db", "sqlite"},
		{"no extension", "/tmp/flipdeck", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			switch NewProvider(tt.path).(type) {
			case *JSONStore:
				got = "json"
			case *SQLiteStore:
				got = "sqlite"
			}
			if got != tt.want {
				t.Errorf("NewProvider(%q) = %s store, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	if err := store.SetMany(map[string]string{"x": "1", "y": "2"}); err != nil {
		t.Fatalf("SetMany() failed: %v", err)
	}
	if got, ok, _ := store.Get("x"); !ok || got != "1" {
		t.Errorf("Get(x) = (%q, %v), want (\"1\", true)", got, ok)
	}
	if store.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", store.Writes())
	}

	store.FailReads = true
	if _, _, err := store.Get("x"); !errors.Is(err, ErrInjected) {
		t.Errorf("Get() with FailReads error = %v, want ErrInjected", err)
	}

	store.FailWrites = true
	if err := store.Set("z", "3"); !errors.Is(err, ErrInjected) {
		t.Errorf("Set() with FailWrites error = %v, want ErrInjected", err)
	}
	if store.Writes() != 1 {
		t.Errorf("failed write was counted")
	}
}
