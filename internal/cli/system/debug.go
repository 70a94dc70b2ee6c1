package system

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/progress"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpProgress *DebugDumpProgressCmd `cmd:"" help:"Dump stored progress as JSON."`
	DumpKeys     *DebugDumpKeysCmd     `cmd:"" help:"List every stored key."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpProgressCmd struct {
	IDs []int `arg:"" optional:"" help:"Item ids to dump (default: all)."`
}

type progressDump struct {
	ID          int    `json:"id"`
	Score       int    `json:"score"`
	Mastery     string `json:"mastery"`
	LastUpdated string `json:"last_updated"`
}

func (cmd *DebugDumpProgressCmd) Run(ctx *cli.Context) error {
	snapshot := ctx.Progress().Snapshot()

	ids := cmd.IDs
	if len(ids) == 0 {
		ids = sortedIDs(snapshot)
	}

	out := make([]progressDump, 0, len(ids))
	for _, id := range ids {
		entry, ok := snapshot[id]
		if !ok {
			return fmt.Errorf("no progress recorded for item %d", id)
		}
		out = append(out, progressDump{
			ID:          id,
			Score:       entry.Score,
			Mastery:     progress.Classify(entry.Score).String(),
			LastUpdated: entry.LastUpdated.Format(time.RFC3339),
		})
	}
	return printJSON(ctx, out)
}

type DebugDumpKeysCmd struct{}

func (cmd *DebugDumpKeysCmd) Run(ctx *cli.Context) error {
	keys, err := ctx.Store.Keys()
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return printJSON(ctx, keys)
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}

func sortedIDs(snapshot map[int]progress.Entry) []int {
	ids := make([]int, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
