// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/ngkore/jostle-bc-crypto-benchmarking/internal/util"
)

// =============================================================================
// CONFIGURATION TYPES
// =============================================================================

// Config is the full jostle-bench configuration.
type Config struct {
	// Source is the default results document: a path to results.json (or
	// a directory containing one) or an http(s) URL.
	Source string `toml:"source" json:"source"`

	// Baseline overrides the provider marker treated as the baseline
	// side of every comparison. Matching is case-insensitive.
	Baseline string `toml:"baseline" json:"baseline"`

	Server  ServerConfig  `toml:"server" json:"server"`
	History HistoryConfig `toml:"history" json:"history"`
	Export  ExportConfig  `toml:"export" json:"export"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Watch   WatchConfig   `toml:"watch" json:"watch"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Host string `toml:"host" json:"host"`
	Port int    `toml:"port" json:"port"`

	// RateRPS and RateBurst shape the per-client token bucket.
	RateRPS   float64 `toml:"rate_rps" json:"rate_rps"`
	RateBurst int     `toml:"rate_burst" json:"rate_burst"`
}

// HistoryConfig configures the run-history store.
type HistoryConfig struct {
	// Path to the SQLite database file.
	Path string `toml:"path" json:"path"`

	// Retention is how many runs PruneRuns keeps. Zero disables pruning.
	Retention int `toml:"retention" json:"retention"`
}

// ExportConfig configures report exports.
type ExportConfig struct {
	Dir string `toml:"dir" json:"dir"`
}

// UIConfig configures the TUI.
type UIConfig struct {
	Theme string `toml:"theme" json:"theme"`
}

// WatchConfig configures live reloading.
type WatchConfig struct {
	DebounceMS int `toml:"debounce_ms" json:"debounce_ms"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

const (
	// EnvPrefix namespaces every environment override.
	EnvPrefix = "JOSTLE_BENCH_"

	configFileName = "config.toml"
	appDirName     = ".jostle-bench"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:   "results.json",
		Baseline: "BC",
		Server: ServerConfig{
			Host:      "127.0.0.1",
			Port:      8087,
			RateRPS:   10,
			RateBurst: 20,
		},
		History: HistoryConfig{
			Path:      filepath.Join(Dir(), "history.db"),
			Retention: 50,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		UI: UIConfig{
			Theme: "dark",
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// Dir returns the jostle-bench home directory (~/.jostle-bench),
// falling back to a relative directory when the home dir is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

// Path returns the location of the config file.
func Path() string {
	return filepath.Join(Dir(), configFileName)
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load builds the effective configuration: defaults, then the config
// file when present, then environment overrides. A missing file is not
// an error; a malformed one is.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit file location, for tests.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the default location atomically.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo is Save with an explicit file location.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnv overlays JOSTLE_BENCH_* variables on the configuration.
// Unparsable numeric values are ignored rather than fatal, so a stray
// variable cannot brick the tool.
func (c *Config) applyEnv() {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	setString("SOURCE", &c.Source)
	setString("BASELINE", &c.Baseline)
	setString("SERVER_HOST", &c.Server.Host)
	setInt("SERVER_PORT", &c.Server.Port)
	setFloat("RATE_RPS", &c.Server.RateRPS)
	setInt("RATE_BURST", &c.Server.RateBurst)
	setString("HISTORY_PATH", &c.History.Path)
	setInt("HISTORY_RETENTION", &c.History.Retention)
	setString("EXPORT_DIR", &c.Export.Dir)
	setString("THEME", &c.UI.Theme)
	setInt("DEBOUNCE_MS", &c.Watch.DebounceMS)
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks ranges the rest of the program assumes.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d: must be 1-65535", c.Server.Port)
	}
	if c.Server.RateRPS <= 0 {
		return fmt.Errorf("invalid rate_rps %v: must be positive", c.Server.RateRPS)
	}
	if c.Server.RateBurst < 1 {
		return fmt.Errorf("invalid rate_burst %d: must be at least 1", c.Server.RateBurst)
	}
	if c.History.Retention < 0 {
		return fmt.Errorf("invalid history retention %d: must not be negative", c.History.Retention)
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("invalid debounce %dms: must not be negative", c.Watch.DebounceMS)
	}
	if c.Baseline == "" {
		return fmt.Errorf("baseline marker must not be empty")
	}
	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalMu  sync.Mutex
	globalCfg *Config
)

// Global returns the process-wide configuration, loading it on first
// use. A load failure falls back to defaults; callers needing the error
// use Load directly.
func Global() *Config {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide configuration, for tests and for
// CLI flags that override file settings.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}
