package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("want defaults, got %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
player = "Ana"
currency = "₹"
min_samples = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player != "Ana" {
		t.Errorf("player: want Ana, got %q", cfg.Player)
	}
	if cfg.Currency != "₹" {
		t.Errorf("currency: want ₹, got %q", cfg.Currency)
	}
	if cfg.MinSamples != 5 {
		t.Errorf("min_samples: want 5, got %d", cfg.MinSamples)
	}
	// Unset values keep their defaults.
	if cfg.RankLimit != Default().RankLimit {
		t.Errorf("rank_limit: want default %d, got %d", Default().RankLimit, cfg.RankLimit)
	}
}

func TestLoad_BadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("player = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
