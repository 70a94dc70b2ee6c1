package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/flipdeck/internal/migration"
	"github.com/julianstephens/flipdeck/migrations"
)

const kvTable = "kv"

// SQLiteStore keeps key-value pairs in a single SQLite table
type SQLiteStore struct {
	path string
	db   *sqlx.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) open() error {
	db, err := sqlx.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer; one connection keeps transactions simple
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return fmt.Errorf("failed to configure database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

// Init creates the database file if needed and applies pending migrations.
// It is safe to call on an existing database.
func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	if _, err := runner.Apply(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("%w at %s", ErrNotInitialized, s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrNotLoaded
	}

	query, args, err := sq.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, err
	}

	var value string
	if err := s.db.Get(&value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

// SetMany upserts all pairs inside one transaction
func (s *SQLiteStore) SetMany(values map[string]string) error {
	if s.db == nil {
		return ErrNotLoaded
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		query, args, err := sq.Insert(kvTable).
			Columns("key", "value", "updated_at").
			Values(key, values[key], now).
			Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}

	query, args, err := sq.Select("key").From(kvTable).OrderBy("key").ToSql()
	if err != nil {
		return nil, err
	}
	keys := []string{}
	if err := s.db.Select(&keys, query, args...); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load
func (s *SQLiteStore) GetDB() *sqlx.DB {
	return s.db
}

// SchemaVersion reports the applied and the newest available migration
func (s *SQLiteStore) SchemaVersion() (current, latest int, err error) {
	if s.db == nil {
		return 0, 0, ErrNotLoaded
	}
	runner, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = runner.LatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}
