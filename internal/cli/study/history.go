package study

import (
	"fmt"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/review"
)

type HistoryCmd struct {
	Limit int `help:"Number of sessions to show." default:"10" short:"n"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	records, err := ctx.History().Recent(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to load session history: %w", err)
	}

	if len(records) == 0 {
		ctx.Println("No sessions recorded yet.")
		return nil
	}

	ctx.Printf("Recent sessions (newest first):\n\n")
	for _, r := range records {
		result := review.Result{Tally: r.Tally, Total: r.Total}
		ctx.Printf("  %s  %-10s %-32s %6s  %3d%%\n",
			r.FinishedAt.Local().Format(constants.DefaultDateFormat),
			r.Mode, r.Label, result, result.Percent())
	}
	return nil
}
