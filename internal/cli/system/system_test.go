package system

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/config"
	"github.com/julianstephens/flipdeck/internal/storage"
)

const testDeck = "1\tTaika Reform\t大化の改新\t645\n" +
	"2\tHeian-kyo\t平安京\n" +
	"3\tKamakura shogunate\t鎌倉幕府\n" +
	"4\tMuromachi shogunate\t室町幕府\n"

// setupTestContext returns a context over an initialized SQLite store and
// a four-item deck split into sets of two.
func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	t.Helper()
	tempDir := t.TempDir()

	deckPath := filepath.Join(tempDir, "deck.tsv")
	if err := os.WriteFile(deckPath, []byte(testDeck), 0644); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}

	store := storage.NewSQLiteStore(filepath.Join(tempDir, "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	cfg := config.Default()
	cfg.DBPath = store.GetConfigPath()
	cfg.Deck = deckPath
	cfg.SetSize = 2

	var out bytes.Buffer
	ctx := &cli.Context{
		Store:  store,
		Config: cfg,
		Out:    &out,
	}

	cleanup := func() {
		store.Close()
	}
	return ctx, &out, cleanup
}

// storageAt returns an unopened SQLite store in a fresh temp dir
func storageAt(t *testing.T, name string) *storage.SQLiteStore {
	t.Helper()
	return storage.NewSQLiteStore(filepath.Join(t.TempDir(), name))
}
