package study

import (
	"fmt"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/content"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/progress"
)

type StatsCmd struct {
	Set     string `help:"Limit statistics to one study set."`
	Details bool   `help:"List the items in each category." short:"d"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	items, catalog, err := ctx.LoadDeck()
	if err != nil {
		return err
	}

	scope := "all items"
	if c.Set != "" {
		set, ok := catalog.FindSet(c.Set)
		if !ok {
			return fmt.Errorf("unknown study set %q", c.Set)
		}
		items = content.ItemsInRange(items, set.Range[0], set.Range[1])
		scope = set.Label()
	}

	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	scores := ctx.Progress().Load()
	sum := progress.Summarize(ids, scores)

	ctx.Printf("Statistics for %s\n\n", scope)
	ctx.Printf("  Mastered:   %4d  (%d%%)\n", sum.Mastered, sum.MasteredPct())
	ctx.Printf("  Learning:   %4d\n", sum.Learning)
	ctx.Printf("  Weak:       %4d\n", sum.Weak)
	ctx.Printf("  Untouched:  %4d\n", sum.Untouched)
	ctx.Printf("  Total:      %4d\n", sum.Total)

	if !c.Details {
		return nil
	}

	cats := progress.Categorize(items, scores)
	printCategory(ctx, "Weak", cats.Weak)
	printCategory(ctx, "Learning", cats.Learning)
	printCategory(ctx, "Mastered", cats.Mastered)
	return nil
}

func printCategory(ctx *cli.Context, title string, items []models.ScoredItem) {
	ctx.Printf("\n%s (%d):\n", title, len(items))
	if len(items) == 0 {
		ctx.Println("  none")
		return
	}
	for _, it := range items {
		ctx.Printf("  %+3d  #%-5d %s = %s\n", it.Score, it.ID, it.Prompt, it.Answer)
	}
}
