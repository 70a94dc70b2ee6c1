package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/flipdeck/internal/constants"
)

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	// one fresh backup keeps the backup check quiet
	ctx.PerformAutomaticBackup()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed on a healthy setup: %v\n%s", err, out)
	}
	for _, want := range []string{"✓ Database reachable: OK", "✓ Schema version: OK", "✓ Deck: OK", "✓ Backups present: OK", "All diagnostics passed!"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDoctorCmd_MissingBackupsOnlyWarns(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out.String(), "⚠ Backups present: WARNING") {
		t.Errorf("expected backup warning:\n%s", out)
	}
}

func TestDoctorCmd_CorruptProgress(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()

	if err := ctx.Store.Set(constants.ProgressScoresKey, "{oops"); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor passed with corrupt progress")
	}
	if !strings.Contains(out.String(), "❌ Progress data: FAIL") {
		t.Errorf("expected progress failure:\n%s", out)
	}
}

func TestDoctorCmd_UnreachableDatabaseSkipsChecks(t *testing.T) {
	ctx, out, cleanup := setupTestContext(t)
	defer cleanup()
	ctx.Store.Close()
	ctx.Store = storageAt(t, "missing.db")

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Fatal("doctor passed without a database")
	}
	if !strings.Contains(out.String(), "⊘ Schema version: SKIPPED") {
		t.Errorf("expected skipped schema check:\n%s", out)
	}
}
