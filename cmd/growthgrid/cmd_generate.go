// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/growthgrid/growth"
)

type generateFlags struct {
	rows, cols, occupied int
	alert                float64
	format               string
}

func newGenerateCmd(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print one growth matrix",
		Long: `Generate a rows×cols matrix with the given number of occupied slots.

An occupied count above rows×cols fills the whole grid. Negative values
count as zero.`,
		Example: `  growthgrid generate --rows 4 --cols 4 --occupied 16
  growthgrid generate --rows 12 --cols 21 --occupied 170 --alert 75 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(f.format); err != nil {
				return err
			}
			alloc := growth.Allocate(f.rows, f.cols, f.occupied, f.alert)
			a.logger.Debug("Generating matrix",
				zap.Int("rows", f.rows),
				zap.Int("cols", f.cols),
				zap.Int("occupied", f.occupied),
				zap.Float64("alert_percent", f.alert),
				zap.Int("healthy", alloc.Healthy),
				zap.Int("alert", alloc.Alert),
				zap.Int("empty", alloc.Empty))

			m := growth.Generate(f.rows, f.cols, f.occupied, growth.WithAlertPercent(f.alert))
			return writeMatrix(cmd.OutOrStdout(), f.format, "", m)
		},
	}
	cmd.Flags().IntVar(&f.rows, "rows", 0, "Number of rows")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "Number of columns")
	cmd.Flags().IntVar(&f.occupied, "occupied", 0, "Number of occupied slots")
	cmd.Flags().Float64Var(&f.alert, "alert", growth.DefaultAlertPercent, "Percentage of occupied slots in alert")
	cmd.Flags().StringVar(&f.format, "format", formatText, "Output format: text or json")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")
	return cmd
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

type matrixOutput struct {
	ID     string         `json:"id,omitempty"`
	Counts growth.Counts  `json:"counts"`
	Matrix *growth.Matrix `json:"matrix"`
}

// writeMatrix prints m as glyph rows (with an optional title line) or as a
// single JSON object per call.
func writeMatrix(w io.Writer, format, title string, m *growth.Matrix) error {
	if format == formatJSON {
		data, err := json.Marshal(matrixOutput{ID: title, Counts: m.Counts(), Matrix: m})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	c := m.Counts()
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s ", title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%dx%d healthy=%d alert=%d empty=%d\n", m.Rows(), m.Cols(), c.Healthy, c.Alert, c.Empty); err != nil {
		return err
	}
	if m.Rows() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s\n", m)
	return err
}
