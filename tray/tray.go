// SPDX-License-Identifier: MIT

package tray

import "github.com/katalvlaran/growthgrid/growth"

// Layout is a named grid size shared by trays.
type Layout struct {
	Name string `yaml:"name" json:"name"`
	Rows int    `yaml:"rows" json:"rows"`
	Cols int    `yaml:"cols" json:"cols"`
}

// Capacity returns Rows×Cols.
func (l Layout) Capacity() int { return l.Rows * l.Cols }

// Tray is one growing surface bound to its layout.
// Occupied is the crop count passed to the generator; it may exceed the
// layout capacity. A nil AlertPercent means growth.DefaultAlertPercent.
type Tray struct {
	ID           string
	Name         string
	Container    string
	Layout       Layout
	Occupied     int
	AlertPercent *float64
}

// Percent returns the alert percentage the tray is generated with.
func (t Tray) Percent() float64 {
	if t.AlertPercent == nil {
		return growth.DefaultAlertPercent
	}
	return *t.AlertPercent
}

// Allocation returns the healthy/alert/empty partition of the tray.
func (t Tray) Allocation() growth.Allocation {
	return growth.Allocate(t.Layout.Rows, t.Layout.Cols, t.Occupied, t.Percent())
}

// Matrix generates the tray's growth matrix.
func (t Tray) Matrix() *growth.Matrix {
	return growth.Generate(t.Layout.Rows, t.Layout.Cols, t.Occupied, growth.WithAlertPercent(t.Percent()))
}
