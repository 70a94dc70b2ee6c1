package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/models"
	"github.com/julianstephens/flipdeck/internal/review"
	"github.com/julianstephens/flipdeck/internal/tui"
)

type ReviewCmd struct {
	Set  string      `help:"Skip the menu and review this study set."`
	Mode models.Mode `help:"Mode used with --set: normal, weak or intensive." default:"normal"`
}

// Model builds the TUI model for the configured deck
func (c *ReviewCmd) Model(ctx *cli.Context) (tui.Model, error) {
	items, catalog, err := ctx.LoadDeck()
	if err != nil {
		return tui.Model{}, err
	}

	reviewer := review.NewReviewer(items, ctx.Progress())
	model := tui.NewModel(reviewer, ctx.History(), catalog)

	if c.Set == "" {
		return model, nil
	}
	set, ok := catalog.FindSet(c.Set)
	if !ok {
		return tui.Model{}, fmt.Errorf("unknown study set %q (see 'flipdeck sets')", c.Set)
	}
	return model.StartWith(set, c.Mode), nil
}

func (c *ReviewCmd) Run(ctx *cli.Context) error {
	model, err := c.Model(ctx)
	if err != nil {
		return err
	}

	// Perform automatic backup on startup (after successful load)
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("review session failed: %w", err)
	}
	return nil
}
