// Package config resolves flipdeck settings from a YAML file, a .env file
// and the environment. Command-line flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/flipdeck/internal/constants"
)

const (
	configPathEnv = "FLIPDECK_CONFIG"
	dbPathEnv     = "FLIPDECK_DB"
	deckEnv       = "FLIPDECK_DECK"
	catalogEnv    = "FLIPDECK_CATALOG"
	debugEnv      = "FLIPDECK_DEBUG"
)

// Config holds the resolved settings
type Config struct {
	// DBPath is the progress store; a .json path selects the JSON store
	DBPath  string `yaml:"db"`
	Deck    string `yaml:"deck"`
	Catalog string `yaml:"catalog"`
	// Sheet names the worksheet read from .xlsx decks
	Sheet   string `yaml:"sheet"`
	SetSize int    `yaml:"setSize"`
	Debug   bool   `yaml:"debug"`
}

func Default() Config {
	return Config{
		DBPath:  constants.DefaultConfigPath,
		SetSize: constants.DefaultSetSize,
	}
}

// Load builds the config from defaults, then the YAML file, then the
// environment (after loading .env from the working directory). path picks
// the YAML file; when empty FLIPDECK_CONFIG or the default location is
// used, and a missing file there is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(configPathEnv)
		explicit = path != ""
	}
	if path == "" {
		path = constants.DefaultConfigFile
	}

	fileCfg, err := readFile(ExpandHome(path))
	switch {
	case err == nil:
		cfg = merge(cfg, fileCfg)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return cfg, err
	}
	cfg.expandPaths()
	return cfg, nil
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
	}
	return fileCfg, nil
}

func merge(base, override Config) Config {
	if override.DBPath != "" {
		base.DBPath = override.DBPath
	}
	if override.Deck != "" {
		base.Deck = override.Deck
	}
	if override.Catalog != "" {
		base.Catalog = override.Catalog
	}
	if override.Sheet != "" {
		base.Sheet = override.Sheet
	}
	if override.SetSize > 0 {
		base.SetSize = override.SetSize
	}
	if override.Debug {
		base.Debug = true
	}
	return base
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(dbPathEnv); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(deckEnv); v != "" {
		c.Deck = v
	}
	if v := os.Getenv(catalogEnv); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv(debugEnv); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", debugEnv, v, err)
		}
		c.Debug = debug
	}
	return nil
}

func (c *Config) expandPaths() {
	c.DBPath = ExpandHome(c.DBPath)
	c.Deck = ExpandHome(c.Deck)
	c.Catalog = ExpandHome(c.Catalog)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Dir is the directory holding the progress store; logs and backups live
// beside it.
func (c Config) Dir() string {
	return filepath.Dir(c.DBPath)
}
