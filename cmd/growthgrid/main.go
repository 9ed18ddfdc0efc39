// SPDX-License-Identifier: MIT

// Command growthgrid prints growth-status matrices for trays.
//
//	growthgrid generate --rows 12 --cols 21 --occupied 170 --alert 75
//	growthgrid trays --config trays.yaml --format json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// app carries the state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "growthgrid",
		Short: "Growth-status matrices for vertical-farm trays",
		Long: `growthgrid lays out the slots of a tray as healthy, alert and empty cells.

Cells are filled in row-major order: healthy crops first, then crops in
alert, then empty slots. The alert count is floor(filled × percent / 100).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newGenerateCmd(a), newTraysCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
