package backups

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/flipdeck/internal/backup"
	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/storage"
)

var errNotSQLite = errors.New("backups are only supported for the SQLite store")

func manager(ctx *cli.Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*storage.SQLiteStore); !ok {
		return nil, errNotSQLite
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backupPath, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	ctx.Printf("✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.BackupDir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		ctx.Printf("  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.BackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `help:"Restore without asking for confirmation." short:"y"`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backupPath, err := c.resolve(mgr)
	if err != nil {
		return err
	}

	if !c.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title("Restore " + filepath.Base(backupPath) + "?").
			Description("This replaces your current progress. A backup of it is taken first.\nStop any running flipdeck sessions before restoring.").
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the current store connection before restoring
	if err := ctx.Store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	previous, err := mgr.Restore(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	ctx.Println("✓ Database restored successfully!")
	if previous != "" {
		ctx.Printf("  Previous database saved as %s\n", filepath.Base(previous))
	}
	return nil
}

// resolve finds the backup as given, then relative to the backup directory
func (c *BackupRestoreCmd) resolve(mgr *backup.Manager) (string, error) {
	if filepath.IsAbs(c.BackupFile) {
		if _, err := os.Stat(c.BackupFile); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", c.BackupFile)
		}
		return c.BackupFile, nil
	}

	if _, err := os.Stat(c.BackupFile); err == nil {
		absPath, err := filepath.Abs(c.BackupFile)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(mgr.BackupDir(), c.BackupFile)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.BackupDir())
}
