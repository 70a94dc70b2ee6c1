package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/flipdeck/internal/progress"
	"github.com/julianstephens/flipdeck/internal/storage"
)

const (
	testDeck = "1\tTaika Reform\t大化の改新\n" +
		"2\tHeian-kyo\t平安京\n" +
		"3\tKamakura shogunate\t鎌倉幕府\n" +
		"4\tMuromachi shogunate\t室町幕府\n"

	testCatalog = `chapters:
  - id: early
    title: Early Japan
    sections:
      - id: classical
        title: Classical
        sets:
          - {id: ancient, title: Ancient, range: [1, 2]}
          - {id: medieval, title: Medieval, range: [3, 4]}
`
)

type testEnv struct {
	dir     string
	db      string
	deck    string
	catalog string
}

// setupTestEnv isolates HOME and the FLIPDECK_* variables and writes a
// small deck and catalog.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, key := range []string{"FLIPDECK_CONFIG", "FLIPDECK_DB", "FLIPDECK_DECK", "FLIPDECK_CATALOG", "FLIPDECK_DEBUG"} {
		t.Setenv(key, "")
	}

	env := testEnv{
		dir:     dir,
		db:      filepath.Join(dir, "progress", "flipdeck.db"),
		deck:    filepath.Join(dir, "deck.tsv"),
		catalog: filepath.Join(dir, "catalog.yaml"),
	}
	if err := os.WriteFile(env.deck, []byte(testDeck), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.catalog, []byte(testCatalog), 0644); err != nil {
		t.Fatal(err)
	}
	return env
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	full := append([]string{"--config", e.db, "--deck", e.deck, "--catalog", e.catalog}, args...)
	err := run(full, &out)
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("flipdeck %s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestEndToEndWorkflow(t *testing.T) {
	env := setupTestEnv(t)

	out := env.mustRun(t, "init")
	if !strings.Contains(out, "Initialized flipdeck storage at: "+env.db) {
		t.Errorf("init output = %q", out)
	}

	out = env.mustRun(t, "stats")
	if !strings.Contains(out, "Untouched:     4") {
		t.Errorf("fresh stats output:\n%s", out)
	}

	// record some reviews straight into the database
	store := storage.NewSQLiteStore(env.db)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	p := progress.New(store)
	for range 3 {
		p.RecordVerdict(1, true)
		p.RecordVerdict(2, true)
	}
	p.RecordVerdict(3, false)
	store.Close()

	out = env.mustRun(t, "sets")
	if !strings.Contains(out, "Ancient (1-2)") || !strings.Contains(out, "✓ complete") {
		t.Errorf("sets output:\n%s", out)
	}

	out = env.mustRun(t, "stats", "--set", "medieval", "--details")
	if !strings.Contains(out, "Weak (1):") {
		t.Errorf("set stats output:\n%s", out)
	}

	out = env.mustRun(t, "debug", "dump-progress", "3")
	var dump []map[string]any
	if err := json.Unmarshal([]byte(out), &dump); err != nil {
		t.Fatalf("dump-progress is not JSON: %v\n%s", err, out)
	}
	if len(dump) != 1 || dump[0]["score"] != float64(-1) {
		t.Errorf("dump-progress = %v", dump)
	}

	out = env.mustRun(t, "backup", "create")
	if !strings.Contains(out, "✓ Backup created: flipdeck-") {
		t.Errorf("backup create output = %q", out)
	}
	out = env.mustRun(t, "backup", "list")
	if !strings.Contains(out, "Available backups (1 total") {
		t.Errorf("backup list output:\n%s", out)
	}

	out = env.mustRun(t, "validate")
	if !strings.Contains(out, "No conflicts detected.") {
		t.Errorf("validate output:\n%s", out)
	}

	out = env.mustRun(t, "history")
	if !strings.Contains(out, "No sessions recorded yet.") {
		t.Errorf("history output = %q", out)
	}

	out = env.mustRun(t, "doctor")
	if !strings.Contains(out, "All diagnostics passed!") {
		t.Errorf("doctor output:\n%s", out)
	}

	if _, err := os.Stat(filepath.Join(env.dir, "progress", "logs", "flipdeck.log")); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestRun_RequiresInit(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.run(t, "stats")
	if !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("stats before init error = %v, want ErrNotInitialized", err)
	}
}

func TestRun_JSONStore(t *testing.T) {
	env := setupTestEnv(t)
	env.db = filepath.Join(env.dir, "progress.json")

	env.mustRun(t, "init")
	out := env.mustRun(t, "stats")
	if !strings.Contains(out, "Total:         4") {
		t.Errorf("stats output:\n%s", out)
	}

	if _, err := env.run(t, "backup", "create"); err == nil {
		t.Error("backup create succeeded on the JSON store")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	env := setupTestEnv(t)
	cfgPath := filepath.Join(env.dir, "config.yaml")
	cfg := "db: " + env.db + "\ndeck: " + env.deck + "\nsetSize: 3\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"--config-file", cfgPath, "init"}, &out); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	out.Reset()
	if err := run([]string{"--config-file", cfgPath, "sets"}, &out); err != nil {
		t.Fatalf("sets failed: %v", err)
	}
	if !strings.Contains(out.String(), "Set 1 (1-3)") || !strings.Contains(out.String(), "Set 2 (4-4)") {
		t.Errorf("sets from config file:\n%s", out.String())
	}
}
