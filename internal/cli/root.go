package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/flipdeck/internal/backup"
	"github.com/julianstephens/flipdeck/internal/config"
	"github.com/julianstephens/flipdeck/internal/content"
	"github.com/julianstephens/flipdeck/internal/history"
	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
	"github.com/julianstephens/flipdeck/internal/storage"
)

// ErrNoDeck is returned by commands that need items when no deck is configured
var ErrNoDeck = errors.New("no deck configured (set --deck, FLIPDECK_DECK or 'deck' in config.yaml)")

type Context struct {
	Store  storage.Provider
	Config config.Config
	// Out receives command output; nil means stdout
	Out io.Writer
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted command output
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Print(args ...any) {
	fmt.Fprint(c.Stdout(), args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// LoadDeck reads the configured deck and its catalog. Without a catalog
// file the deck is split into sets of Config.SetSize.
func (c *Context) LoadDeck() ([]models.Item, models.Catalog, error) {
	if c.Config.Deck == "" {
		return nil, models.Catalog{}, ErrNoDeck
	}

	var opts []content.Option
	if c.Config.Sheet != "" {
		opts = append(opts, content.WithSheet(c.Config.Sheet))
	}
	items, err := content.LoadItems(c.Config.Deck, opts...)
	if err != nil {
		return nil, models.Catalog{}, fmt.Errorf("failed to load deck: %w", err)
	}
	logger.Debug("Loaded deck", "path", c.Config.Deck, "items", len(items))

	if c.Config.Catalog == "" {
		return items, content.DefaultCatalog(items, c.Config.SetSize), nil
	}
	catalog, err := content.LoadCatalog(c.Config.Catalog)
	if err != nil {
		return nil, models.Catalog{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return items, catalog, nil
}

// Progress opens the progress model over the loaded store
func (c *Context) Progress() *progress.Store {
	return progress.New(c.Store)
}

func (c *Context) History() *history.Log {
	return history.New(c.Store)
}
