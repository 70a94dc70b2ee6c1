package system

import (
	"fmt"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	items, catalog, err := ctx.LoadDeck()
	if err != nil {
		return err
	}

	result := validation.New().ValidateAll(items, catalog, ctx.Progress().Load())
	ctx.Printf("Checked %d items in %d sets.\n", len(items), len(catalog.Sets()))
	ctx.Print(result.FormatReport())
	if !result.HasConflicts() {
		ctx.Println()
		return nil
	}
	return fmt.Errorf("validation found %d conflict(s)", len(result.Conflicts))
}
