package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing progress database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// close first to release the file lock
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		if errors.Is(err, storage.ErrAlreadyInitialized) {
			ctx.Printf("Storage already initialized at: %s\n", ctx.Store.GetConfigPath())
			return nil
		}
		return err
	}
	ctx.Printf("Initialized flipdeck storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
