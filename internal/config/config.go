// Package config loads harness settings from defaults, an optional TOML
// file, and environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvAccept is the switch that turns failing expectations into rewrites.
const EnvAccept = "ACCEPTTEST_ACCEPT"

// DefaultFile is the config file name searched in the working directory
// when no explicit path is given.
const DefaultFile = ".accepttest.toml"

// ReportPaths are gjson paths into each report line.
type ReportPaths struct {
	File   string `toml:"file"`
	Line   string `toml:"line"`
	Actual string `toml:"actual"`
}

// Config holds every knob the harness and CLI read.
type Config struct {
	// Accept rewrites expectation literals in place instead of reporting
	// mismatches.
	Accept bool `toml:"accept"`

	// BackupSuffix is appended to a file's path for its one-time backup.
	BackupSuffix string `toml:"backup_suffix"`

	// Journal is the path of the JSON-lines edit journal. Empty disables
	// journaling.
	Journal string `toml:"journal"`

	// Color enables colored console output.
	Color bool `toml:"color"`

	// DebounceMS is the watch-mode debounce window in milliseconds.
	DebounceMS int `toml:"debounce_ms"`

	// Report configures how runner output lines are read.
	Report ReportPaths `toml:"report"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BackupSuffix: ".bak",
		Color:        true,
		DebounceMS:   250,
		Report: ReportPaths{
			File:   "file",
			Line:   "line",
			Actual: "actual",
		},
	}
}

// Debounce returns the watch debounce window as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// Load builds a Config from defaults, the TOML file at path (a missing
// file is not an error), and environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers environment variables over the loaded values.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvAccept); ok {
		c.Accept = parseBool(v)
	}
	if v, ok := os.LookupEnv("ACCEPTTEST_BACKUP_SUFFIX"); ok && v != "" {
		c.BackupSuffix = v
	}
	if v, ok := os.LookupEnv("ACCEPTTEST_JOURNAL"); ok {
		c.Journal = v
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.Color = false
	}
}

// parseBool treats any value a shell user would consider truthy as true.
func parseBool(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v != ""
}
