package study

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/config"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/storage"
)

const testDeck = "1\tTaika Reform\t大化の改新\n" +
	"2\tHeian-kyo\t平安京\n" +
	"3\tKamakura shogunate\t鎌倉幕府\n" +
	"4\tMuromachi shogunate\t室町幕府\n"

const testCatalog = `chapters:
  - id: early
    title: Early Japan
    sections:
      - id: classical
        title: Classical
        sets:
          - id: ancient
            title: Ancient
            range: [1, 2]
          - id: medieval
            title: Medieval
            range: [3, 4]
`

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer, func()) {
	t.Helper()
	tempDir := t.TempDir()

	deckPath := filepath.Join(tempDir, "deck.tsv")
	catalogPath := filepath.Join(tempDir, "catalog.yaml")
	if err := os.WriteFile(deckPath, []byte(testDeck), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(catalogPath, []byte(testCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	store := storage.NewMemoryStore()
	cfg := config.Default()
	cfg.Deck = deckPath
	cfg.Catalog = catalogPath

	var out bytes.Buffer
	ctx := &cli.Context{Store: store, Config: cfg, Out: &out}
	return ctx, &out, func() { store.Close() }
}

func TestStatsCmd(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	p := ctx.Progress()
	for range 3 {
		p.RecordVerdict(1, true)
	}
	p.RecordVerdict(2, true)
	p.RecordVerdict(3, false)

	if err := (&StatsCmd{Details: true}).Run(ctx); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Statistics for all items",
		"Mastered:      1  (25%)",
		"Untouched:     1",
		"Weak (1):",
		"#3     Kamakura shogunate",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestStatsCmd_Set(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&StatsCmd{Set: "medieval"}).Run(ctx); err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out.String(), "Statistics for Medieval (3-4)") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out.String(), "Total:         2") {
		t.Errorf("set total missing:\n%s", out)
	}

	if err := (&StatsCmd{Set: "modern"}).Run(ctx); err == nil {
		t.Error("expected error for unknown set")
	}
}

func TestSetsCmd(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	p := ctx.Progress()
	for range 3 {
		p.RecordVerdict(1, true)
		p.RecordVerdict(2, true)
	}

	if err := (&SetsCmd{}).Run(ctx); err != nil {
		t.Fatalf("sets failed: %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	var ancient, medieval string
	for _, l := range lines {
		switch {
		case strings.Contains(l, "Ancient (1-2)"):
			ancient = l
		case strings.Contains(l, "Medieval (3-4)"):
			medieval = l
		}
	}
	if !strings.Contains(ancient, "100% mastered") || !strings.Contains(ancient, "✓ complete") {
		t.Errorf("ancient line = %q", ancient)
	}
	if !strings.Contains(medieval, "0% mastered") || strings.Contains(medieval, "complete") {
		t.Errorf("medieval line = %q", medieval)
	}
}

func TestHistoryCmd(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&HistoryCmd{Limit: 10}).Run(ctx); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out.String(), "No sessions recorded yet.") {
		t.Errorf("output = %q", out)
	}

	log := ctx.History()
	if _, err := log.Append("Ancient (1-2)", models.ModeNormal, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := log.Append("Medieval (3-4)", models.ModeWeak, 2, 2); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	if err := (&HistoryCmd{Limit: 1}).Run(ctx); err != nil {
		t.Fatalf("history failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Medieval (3-4)") || !strings.Contains(got, "2/2") || !strings.Contains(got, "100%") {
		t.Errorf("newest session missing:\n%s", got)
	}
	if strings.Contains(got, "Ancient") {
		t.Errorf("limit ignored:\n%s", got)
	}
}
