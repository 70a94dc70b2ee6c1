// Package backup copies the SQLite progress store into timestamped files
// and restores from them.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/logger"
)

const stampLayout = "20060102-150405"

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager creates, lists and restores backups of one database file
type Manager struct {
	dbPath    string
	backupDir string
	keep      int
	now       func() time.Time
}

type Option func(*Manager)

// WithClock replaces time.Now when naming backups
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithRetention sets how many backups rotation keeps
func WithRetention(n int) Option {
	return func(m *Manager) {
		m.keep = n
	}
}

// NewManager keeps backups in a directory beside the database
func NewManager(dbPath string, opts ...Option) *Manager {
	m := &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a new backup and rotates old ones
func (m *Manager) Create() (string, error) {
	path, err := m.create()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("database does not exist: %s", m.dbPath)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := m.vacuumInto(path); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}

	logger.Info("Created backup", "path", path)
	return path, nil
}

// nextPath names the backup after the current second, adding a counter
// when that name is taken.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(stampLayout)
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, constants.BackupFileSuffix)
		path = filepath.Join(m.backupDir, name)
	}
}

func (m *Manager) vacuumInto(dest string) error {
	db, err := sqlx.Open("sqlite", m.dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := checkDatabase(db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		logger.Debug("VACUUM INTO failed, copying file instead", "error", err)
		db.Close()
		return copyFile(m.dbPath, dest)
	}
	return nil
}

// List returns backups newest first
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Info{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, seq, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
			seq:       seq,
		})
	}

	slices.SortStableFunc(backups, func(a, b Info) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return b.seq - a.seq
	})
	return backups, nil
}

// parseName reads the timestamp and counter out of flipdeck-<stamp>[-N].db
func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, 0, false
	}
	rest := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if len(rest) < len(stampLayout) {
		return time.Time{}, 0, false
	}
	ts, err := time.ParseInLocation(stampLayout, rest[:len(stampLayout)], time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}

	seq := 0
	if suffix := rest[len(stampLayout):]; suffix != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(suffix, "-"))
		if err != nil || !strings.HasPrefix(suffix, "-") || n < 1 {
			return time.Time{}, 0, false
		}
		seq = n
	}
	return ts, seq, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, b := range backups[min(m.keep, len(backups)):] {
		if err := os.Remove(b.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", b.Path, err)
		}
		logger.Debug("Removed old backup", "path", b.Path)
	}
	return nil
}

// Restore replaces the database with the backup at path. The current
// database, if any, is backed up first; that path is returned.
func (m *Manager) Restore(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := Verify(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var previous string
	if _, err := os.Stat(m.dbPath); err == nil {
		previous, err = m.create()
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return "", fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", removeErr)
		}
		return "", fmt.Errorf("failed to restore database: %w", err)
	}

	logger.Info("Restored backup", "from", path)
	return previous, nil
}

// Verify checks that path is a readable SQLite database
func Verify(path string) error {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()
	return checkDatabase(db)
}

func checkDatabase(db *sqlx.DB) error {
	var count int
	return db.Get(&count, "SELECT COUNT(*) FROM sqlite_master")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
