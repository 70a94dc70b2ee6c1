package study

import (
	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/progress"
)

type SetsCmd struct{}

func (c *SetsCmd) Run(ctx *cli.Context) error {
	_, catalog, err := ctx.LoadDeck()
	if err != nil {
		return err
	}

	scores := ctx.Progress().Load()
	for _, ch := range catalog.Chapters {
		ctx.Printf("%s\n", ch.Title)
		for _, sec := range ch.Sections {
			ctx.Printf("  %s\n", sec.Title)
			for _, set := range sec.Sets {
				sum := progress.Summarize(set.IDs(), scores)
				mark := ""
				if sum.Complete() {
					mark = "  ✓ complete"
				}
				ctx.Printf("    %-12s %-36s %3d%% mastered  (%d learning, %d weak)%s\n",
					set.ID, set.Label(), sum.MasteredPct(), sum.Learning, sum.Weak, mark)
			}
		}
	}
	return nil
}
