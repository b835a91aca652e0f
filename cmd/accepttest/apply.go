package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/accepttest/internal/config"
	"github.com/dshills/accepttest/internal/console"
	"github.com/dshills/accepttest/internal/report"
	"github.com/dshills/accepttest/internal/session"
)

var applyCmd = &cobra.Command{
	Use:   "apply [report]",
	Short: "Rewrite expectation literals listed in a runner report",
	Long: `apply reads failed-expectation records from the report file (or
stdin) and rewrites each referenced literal to hold the actual output.
Line numbers in the report refer to the files as they were before the
run; apply shifts them across its own edits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := console.New(os.Stderr, cfg.Color)

		rc, err := openReport(args)
		if err != nil {
			return err
		}
		defer rc.Close()

		applied, failed, err := applyReport(cfg, rc, p)
		if err != nil {
			return err
		}
		p.Info("applied %d edit(s), %d failure(s)", applied, failed)
		if failed > 0 {
			return fmt.Errorf("%d edit(s) failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

// applyReport runs one accept session over every edit in the report.
func applyReport(cfg config.Config, r io.Reader, p *console.Printer) (applied, failed int, err error) {
	edits, err := report.Parse(r, cfg.Report)
	if err != nil {
		return 0, 0, err
	}
	if len(edits) == 0 {
		p.Warning("report contains no expectation records")
		return 0, 0, nil
	}

	s := session.New(cfg)
	for _, e := range edits {
		res, err := s.Accept(e.File, e.Line, e.Actual)
		switch {
		case errors.Is(err, session.ErrNoChange):
			p.Warning("%s:%d already matches, skipping", e.File, e.Line)
		case err != nil:
			p.Error("%v", err)
			failed++
		default:
			p.Success("rewrote %s:%d (%+d line(s))", res.Path, res.AdjustedLine, res.Delta)
			applied++
		}
	}
	return applied, failed, nil
}
