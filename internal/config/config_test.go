// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Baseline != "BC" {
		t.Errorf("baseline = %q, want BC", cfg.Baseline)
	}
	if cfg.Server.Port != 8087 {
		t.Errorf("port = %d, want 8087", cfg.Server.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
source = "/data/results.json"
baseline = "bouncy"

[server]
host = "0.0.0.0"
port = 9000
rate_rps = 5.0
rate_burst = 10

[history]
retention = 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "/data/results.json" {
		t.Errorf("source = %q", cfg.Source)
	}
	if cfg.Baseline != "bouncy" {
		t.Errorf("baseline = %q", cfg.Baseline)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.History.Retention != 5 {
		t.Errorf("retention = %d", cfg.History.Retention)
	}
	// Fields the file omits keep their defaults.
	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("debounce = %d, want default 500", cfg.Watch.DebounceMS)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("source = [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"SOURCE", "http://bench-host/results.json")
	t.Setenv(EnvPrefix+"SERVER_PORT", "9100")
	t.Setenv(EnvPrefix+"RATE_RPS", "2.5")
	t.Setenv(EnvPrefix+"SERVER_HOST", "")          // empty string ignored
	t.Setenv(EnvPrefix+"HISTORY_RETENTION", "abc") // unparsable ignored

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source != "http://bench-host/results.json" {
		t.Errorf("source = %q", cfg.Source)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Server.RateRPS != 2.5 {
		t.Errorf("rate_rps = %v", cfg.Server.RateRPS)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("empty env host should keep default, got %q", cfg.Server.Host)
	}
	if cfg.History.Retention != 50 {
		t.Errorf("unparsable retention should keep default, got %d", cfg.History.Retention)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"zero rps", func(c *Config) { c.Server.RateRPS = 0 }},
		{"zero burst", func(c *Config) { c.Server.RateBurst = 0 }},
		{"negative retention", func(c *Config) { c.History.Retention = -1 }},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }},
		{"empty baseline", func(c *Config) { c.Baseline = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Source = "/srv/bench/results.json"
	cfg.UI.Theme = "light"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Source != cfg.Source {
		t.Errorf("source = %q, want %q", got.Source, cfg.Source)
	}
	if got.UI.Theme != "light" {
		t.Errorf("theme = %q, want light", got.UI.Theme)
	}
}
