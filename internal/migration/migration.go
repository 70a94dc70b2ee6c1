package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/julianstephens/flipdeck/internal/logger"
)

// Migration is one numbered schema change, parsed from NNN_name.sql
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Runner applies migrations from an fs.FS to a database
type Runner struct {
	db *sqlx.DB
	fs fs.FS
}

func NewRunner(db *sqlx.DB, migrationFS fs.FS) *Runner {
	return &Runner{
		db: db,
		fs: migrationFS,
	}
}

func (r *Runner) ensureVersionTable() error {
	_, err := r.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	return err
}

// CurrentVersion returns the applied schema version, 0 for a fresh database
func (r *Runner) CurrentVersion() (int, error) {
	if err := r.ensureVersionTable(); err != nil {
		return 0, fmt.Errorf("failed to ensure schema_version table: %w", err)
	}

	var versions []int
	if err := r.db.Select(&versions, "SELECT version FROM schema_version"); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if len(versions) == 0 {
		return 0, nil
	}
	if len(versions) > 1 {
		return 0, errors.New("schema_version holds more than one row")
	}
	return versions[0], nil
}

// Migrations reads and parses every migration file, sorted by version
func (r *Runner) Migrations() ([]Migration, error) {
	files, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var migrations []Migration
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		prefix, name, ok := strings.Cut(file.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("invalid migration filename format: %s (expected NNN_name.sql)", file.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("invalid version number in filename %s: %w", file.Name(), err)
		}
		if version < 1 {
			return nil, fmt.Errorf("invalid version number in filename %s: version must be at least 1", file.Name())
		}

		content, err := fs.ReadFile(r.fs, file.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", file.Name(), err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// LatestVersion returns the highest migration version available
func (r *Runner) LatestVersion() (int, error) {
	migrations, err := r.Migrations()
	if err != nil {
		return 0, err
	}
	if len(migrations) == 0 {
		return 0, nil
	}
	return migrations[len(migrations)-1].Version, nil
}

// Apply runs every pending migration, each in its own transaction together
// with the version bump. It returns the number applied.
func (r *Runner) Apply() (int, error) {
	current, err := r.CurrentVersion()
	if err != nil {
		return 0, err
	}

	migrations, err := r.Migrations()
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations: %w", err)
	}
	if len(migrations) == 0 {
		return 0, nil
	}

	latest := migrations[len(migrations)-1].Version
	if current > latest {
		return 0, fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade flipdeck", current, latest)
	}

	start := time.Now()
	applied := 0
	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		logger.Debug("applying migration", "version", m.Version, "name", m.Name)

		tx, err := r.db.Beginx()
		if err != nil {
			return applied, fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec(m.SQL); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to clear version in migration %d: %w", m.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("failed to set version in migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
		applied++
	}

	if applied > 0 {
		logger.Info("migrations applied", "count", applied, "version", latest, "took", time.Since(start))
	}
	return applied, nil
}

// ValidateVersion fails when the database was written by a newer release
func (r *Runner) ValidateVersion() error {
	current, err := r.CurrentVersion()
	if err != nil {
		return err
	}
	latest, err := r.LatestVersion()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d) - please upgrade flipdeck", current, latest)
	}
	return nil
}
