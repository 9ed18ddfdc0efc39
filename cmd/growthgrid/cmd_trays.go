// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/growthgrid/tray"
)

func newTraysCmd(a *app) *cobra.Command {
	var (
		configPath string
		workers    int
		format     string
	)
	cmd := &cobra.Command{
		Use:   "trays",
		Short: "Print the growth matrix of every tray in a YAML file",
		Example: `  growthgrid trays --config trays.yaml
  growthgrid trays --config trays.yaml --workers 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return errors.New("--config is required")
			}
			if err := checkFormat(format); err != nil {
				return err
			}

			cfg, err := tray.Load(configPath)
			if err != nil {
				return err
			}
			trays, err := cfg.Resolve()
			if err != nil {
				return err
			}
			a.logger.Info("Loaded trays",
				zap.String("config", configPath),
				zap.Int("layouts", len(cfg.Layouts)),
				zap.Int("trays", len(trays)))

			results, err := tray.GenerateAll(cmd.Context(), trays, workers)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range results {
				a.logger.Debug("Tray generated",
					zap.String("id", r.Tray.ID),
					zap.String("container", r.Tray.Container),
					zap.String("layout", r.Tray.Layout.Name),
					zap.Int("occupied", r.Tray.Occupied),
					zap.Int("filled", r.Allocation.Filled),
					zap.Int("alert", r.Allocation.Alert))
				if r.Tray.Occupied > r.Tray.Layout.Capacity() {
					a.logger.Warn("Occupied count exceeds tray capacity",
						zap.String("id", r.Tray.ID),
						zap.Int("occupied", r.Tray.Occupied),
						zap.Int("capacity", r.Tray.Layout.Capacity()))
				}
				if err := writeMatrix(out, format, r.Tray.ID, r.Matrix); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the trays YAML file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent generators (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text or json")
	return cmd
}
