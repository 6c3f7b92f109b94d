// Package config loads the optional TOML config file. Flags override config
// values, config overrides built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences for the CLI.
type Config struct {
	Player     string `toml:"player"`      // default viewpoint player name
	Currency   string `toml:"currency"`    // display symbol, e.g. "$" or "₹"
	MinSamples int    `toml:"min_samples"` // opponent ranking sample threshold
	RankLimit  int    `toml:"rank_limit"`  // entries per best/worst list
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Currency:   "$",
		MinSamples: 3,
		RankLimit:  2,
	}
}

// DefaultPath is ~/.shuttlestats/config.toml, next to the default database.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".shuttlestats", "config.toml")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error — you just get the defaults back.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if cfg.MinSamples <= 0 {
		cfg.MinSamples = Default().MinSamples
	}
	if cfg.RankLimit <= 0 {
		cfg.RankLimit = Default().RankLimit
	}
	if cfg.Currency == "" {
		cfg.Currency = Default().Currency
	}
	return cfg, nil
}
