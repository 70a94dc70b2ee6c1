package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/flipdeck/internal/cli"
	"github.com/julianstephens/flipdeck/internal/cli/backups"
	"github.com/julianstephens/flipdeck/internal/cli/study"
	"github.com/julianstephens/flipdeck/internal/cli/system"
	"github.com/julianstephens/flipdeck/internal/config"
	"github.com/julianstephens/flipdeck/internal/constants"
	apperrors "github.com/julianstephens/flipdeck/internal/errors"
	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/storage"
)

type CLI struct {
	Version    kong.VersionFlag
	Config     string `help:"Progress database path. A .json path selects the JSON store." type:"path"`
	ConfigFile string `help:"YAML settings file." type:"path" name:"config-file"`
	Deck       string `help:"Deck file (.tsv, .csv, .xlsx or .html)." type:"path"`
	Catalog    string `help:"Study-set catalog (YAML)." type:"path"`
	DebugLog   bool   `help:"Enable debug logging." name:"debug"`

	Init     system.InitCmd     `cmd:"" help:"Initialize flipdeck storage."`
	Review   system.ReviewCmd   `cmd:"" help:"Review flashcards in the interactive TUI." default:"withargs"`
	Stats    study.StatsCmd     `cmd:"" help:"Show mastery statistics."`
	Sets     study.SetsCmd      `cmd:"" help:"List study sets and their progress."`
	History  study.HistoryCmd   `cmd:"" help:"Show recent review sessions."`
	Doctor   system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate system.ValidateCmd `cmd:"" help:"Check the deck, catalog and progress for conflicts."`
	Debug    system.DebugCmd    `cmd:"" help:"Debug commands for troubleshooting."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

// commands that open the store themselves, or never need it
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"db-path": true,
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		apperrors.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	var flags CLI
	parser, err := kong.New(&flags,
		kong.Name(constants.AppName),
		kong.Description("Spaced-repetition flashcard reviewer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		parser.FatalIfErrorf(err)
	}

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}
	flags.apply(&cfg)

	command := ctx.Selected().Name
	interactive := command == "review"

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: cfg.Dir(),
		Quiet:     interactive,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store := storage.NewProvider(cfg.DBPath)
	if !skipLoad[command] {
		if err := store.Load(); err != nil {
			// a review can still run on unsaved in-memory progress
			if !interactive || errors.Is(err, storage.ErrNotInitialized) {
				return err
			}
			logger.Warn("Progress storage unavailable, using memory", "path", cfg.DBPath, "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %v\nProgress from this session will not be saved.\n", err)
			store = storage.NewMemoryStore()
		}
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close storage", "error", err)
		}
	}()

	return ctx.Run(&cli.Context{
		Store:  store,
		Config: cfg,
		Out:    out,
	})
}

// apply lets explicit flags win over the config file and environment
func (c *CLI) apply(cfg *config.Config) {
	if c.Config != "" {
		cfg.DBPath = c.Config
	}
	if c.Deck != "" {
		cfg.Deck = c.Deck
	}
	if c.Catalog != "" {
		cfg.Catalog = c.Catalog
	}
	if c.DebugLog {
		cfg.Debug = true
	}
}
