package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/accepttest/internal/console"
	"github.com/dshills/accepttest/internal/session"
)

var revertCmd = &cobra.Command{
	Use:   "revert [dir]",
	Short: "Restore files from the backups a previous apply left behind",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := console.New(os.Stderr, cfg.Color)

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		restored, err := session.Revert(root, cfg.BackupSuffix)
		if err != nil {
			return err
		}
		if len(restored) == 0 {
			p.Info("no backups found under %s", root)
			return nil
		}
		for _, path := range restored {
			p.Success("restored %s", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(revertCmd)
}
