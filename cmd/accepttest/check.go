package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/accepttest/internal/config"
	"github.com/dshills/accepttest/internal/console"
	"github.com/dshills/accepttest/internal/report"
	"github.com/dshills/accepttest/internal/session"
)

var checkCmd = &cobra.Command{
	Use:   "check [report]",
	Short: "Diff recorded expectations against actual output without editing",
	Long: `check performs a dry run: for every record in the report it
decodes the current expectation literal and prints a unified diff against
the actual output. The exit status is non-zero when any expectation
differs.

With accept = true in the config, or ` + config.EnvAccept + `=1 in the
environment, check rewrites the differing literals instead, like apply.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := console.New(os.Stdout, cfg.Color)

		rc, err := openReport(args)
		if err != nil {
			return err
		}
		defer rc.Close()

		if cfg.Accept {
			applied, failed, err := applyReport(cfg, rc, p)
			if err != nil {
				return err
			}
			p.Info("applied %d edit(s), %d failure(s)", applied, failed)
			if failed > 0 {
				return fmt.Errorf("%d edit(s) failed", failed)
			}
			return nil
		}

		edits, err := report.Parse(rc, cfg.Report)
		if err != nil {
			return err
		}

		s := session.New(cfg)
		var differing int
		for _, e := range edits {
			m, err := s.Check(e.File, e.Line, e.Actual)
			if err != nil {
				p.Error("%v", err)
				differing++
				continue
			}
			if m.Equal {
				continue
			}
			differing++
			p.Warning("%s:%d differs:", m.Path, m.Line)
			label := fmt.Sprintf("%s:%d (expected)", m.Path, m.Line)
			if err := p.Diff(label, "actual", m.Expected, m.Actual); err != nil {
				return err
			}
		}

		if differing > 0 {
			return fmt.Errorf("%d expectation(s) differ", differing)
		}
		p.Success("all %d expectation(s) match", len(edits))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
