package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/accepttest/internal/console"
	"github.com/dshills/accepttest/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <report>",
	Short: "Re-apply the report whenever the runner rewrites it",
	Long: `watch monitors the report file and runs an apply pass after each
change settles. Every pass uses a fresh session, so reports must be
written whole (original line numbers) on each run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := console.New(os.Stderr, cfg.Color)
		reportPath := args[0]

		run := func(path string) {
			f, err := os.Open(path)
			if err != nil {
				p.Error("opening report: %v", err)
				return
			}
			defer f.Close()
			applied, failed, err := applyReport(cfg, f, p)
			if err != nil {
				p.Error("%v", err)
				return
			}
			p.Info("applied %d edit(s), %d failure(s)", applied, failed)
		}

		w, err := watch.New(reportPath, cfg.Debounce(), run, func(err error) {
			p.Error("watch: %v", err)
		})
		if err != nil {
			return fmt.Errorf("watching %s: %w", reportPath, err)
		}
		defer w.Close()

		p.Info("watching %s (ctrl-c to stop)", reportPath)
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
		<-signals
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
