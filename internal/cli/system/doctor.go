package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/flipdeck/internal/backup"
	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/progress"
	"github.com/julianstephens/flipdeck/internal/storage"
	"github.com/julianstephens/flipdeck/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name string
	// needsDB checks are skipped when the database is not reachable
	needsDB bool
	// warnOnly failures are reported but do not fail the run
	warnOnly bool
	run      func(ctx *cli.Context) error
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	checks := []check{
		{name: "Schema version", needsDB: true, run: checkSchemaVersion},
		{name: "Progress data", needsDB: true, run: checkProgressData},
		{name: "Deck", run: checkDeck},
		{name: "Backups present", warnOnly: true, run: checkBackupsPresent},
		{name: "Clock", run: func(*cli.Context) error { return checkClock() }},
	}

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		ctx.Printf("❌ Database reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
		dbReachable = false
	} else {
		ctx.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store doesn't have schema version
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d (run 'flipdeck init' to migrate)", current, latest)
	}
	return nil
}

func checkProgressData(ctx *cli.Context) error {
	if err := progress.Check(ctx.Store); err != nil {
		return fmt.Errorf("progress data is unreadable and will be treated as empty: %w", err)
	}
	return nil
}

func checkDeck(ctx *cli.Context) error {
	items, catalog, err := ctx.LoadDeck()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("deck %s has no items", ctx.Config.Deck)
	}

	result := validation.New().ValidateAll(items, catalog, ctx.Progress().Load())
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found (run 'flipdeck validate' for details)", len(result.Conflicts))
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*storage.SQLiteStore); !ok {
		return nil
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.BackupDir())
	}

	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

// checkClock catches a clock far enough off to break weekly decay
func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reads %s", now.Format(time.RFC3339))
	}
	return nil
}
