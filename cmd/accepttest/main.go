// Package main is the entry point for the accepttest command.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/accepttest/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	flagConfig       string
	flagBackupSuffix string
	flagJournal      string
	flagNoColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "accepttest",
	Short: "Rewrite expectation literals in test sources from runner output",
	Long: `accepttest reads a test runner's JSON-lines report of failed
expectations and rewrites each triple-quoted expectation literal in place
to hold the actual output, keeping line numbers consistent across edits
and leaving a one-time backup per touched file.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagBackupSuffix, "backup-suffix", "", "override the backup file suffix")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "", "append applied edits to this JSON-lines file")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file and environment
// first, then command-line overrides.
func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flagBackupSuffix != "" {
		cfg.BackupSuffix = flagBackupSuffix
	}
	if flagJournal != "" {
		cfg.Journal = flagJournal
	}
	if flagNoColor {
		cfg.Color = false
	}
	return cfg, nil
}

// openReport opens the report argument, with "-" or no argument meaning
// stdin.
func openReport(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	return f, nil
}
