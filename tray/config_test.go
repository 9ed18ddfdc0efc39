package tray_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/growthgrid/growth"
	"github.com/katalvlaran/growthgrid/tray"
)

const sampleConfig = `
default_alert_percent: 20
layouts:
  - name: standard
    rows: 12
    cols: 21
  - name: nursery
    rows: 4
    cols: 4
trays:
  - id: c1-t01
    name: Basil
    container: c1
    layout: standard
    occupied: 170
    alert_percent: 75
  - id: c1-t02
    container: c1
    layout: nursery
    occupied: 16
`

func TestParseAndResolve(t *testing.T) {
	cfg, err := tray.Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Layouts, 2)
	require.Len(t, cfg.Trays, 2)

	trays, err := cfg.Resolve()
	require.NoError(t, err)
	require.Len(t, trays, 2)

	basil := trays[0]
	assert.Equal(t, "c1-t01", basil.ID)
	assert.Equal(t, "Basil", basil.Name)
	assert.Equal(t, tray.Layout{Name: "standard", Rows: 12, Cols: 21}, basil.Layout)
	assert.Equal(t, 252, basil.Layout.Capacity())
	assert.Equal(t, 75.0, basil.Percent())
	assert.Equal(t, growth.Allocation{Total: 252, Filled: 170, Alert: 127, Healthy: 43, Empty: 82}, basil.Allocation())

	nursery := trays[1]
	assert.Equal(t, 20.0, nursery.Percent(), "default_alert_percent applies")
	assert.Equal(t, 3, nursery.Matrix().Counts().Alert)
}

func TestResolve_NoDefaultPercent(t *testing.T) {
	cfg := &tray.Config{
		Layouts: []tray.Layout{{Name: "sq", Rows: 4, Cols: 4}},
		Trays:   []tray.TrayConfig{{ID: "a", Layout: "sq", Occupied: 16}},
	}
	trays, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Nil(t, trays[0].AlertPercent)
	assert.Equal(t, growth.DefaultAlertPercent, trays[0].Percent())
	assert.Equal(t, 2, trays[0].Matrix().Counts().Alert)
}

func TestResolve_PercentNotShared(t *testing.T) {
	def := 10.0
	cfg := &tray.Config{
		DefaultAlertPercent: &def,
		Layouts:             []tray.Layout{{Name: "sq", Rows: 2, Cols: 2}},
		Trays:               []tray.TrayConfig{{ID: "a", Layout: "sq"}, {ID: "b", Layout: "sq"}},
	}
	trays, err := cfg.Resolve()
	require.NoError(t, err)
	*trays[0].AlertPercent = 90
	assert.Equal(t, 10.0, trays[1].Percent())
	assert.Equal(t, 10.0, def)
}

func TestResolve_Errors(t *testing.T) {
	sq := tray.Layout{Name: "sq", Rows: 2, Cols: 2}
	cases := []struct {
		name string
		cfg  tray.Config
		err  error
	}{
		{"EmptyLayoutName", tray.Config{Layouts: []tray.Layout{{Rows: 1, Cols: 1}}}, tray.ErrEmptyID},
		{"DuplicateLayout", tray.Config{Layouts: []tray.Layout{sq, sq}}, tray.ErrDuplicateLayout},
		{"NegativeRows", tray.Config{Layouts: []tray.Layout{{Name: "x", Rows: -1, Cols: 2}}}, tray.ErrBadLayout},
		{"EmptyTrayID", tray.Config{Layouts: []tray.Layout{sq}, Trays: []tray.TrayConfig{{Layout: "sq"}}}, tray.ErrEmptyID},
		{"DuplicateTray", tray.Config{
			Layouts: []tray.Layout{sq},
			Trays:   []tray.TrayConfig{{ID: "a", Layout: "sq"}, {ID: "a", Layout: "sq"}},
		}, tray.ErrDuplicateTray},
		{"UnknownLayout", tray.Config{Layouts: []tray.Layout{sq}, Trays: []tray.TrayConfig{{ID: "a", Layout: "big"}}}, tray.ErrUnknownLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Resolve()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := tray.Parse([]byte("layouts: [oops"))
	assert.Error(t, err)

	_, err = tray.Parse([]byte("trays:\n  - id: a\n    colour: green\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := tray.Parse(nil)
	require.NoError(t, err)
	trays, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Empty(t, trays)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trays.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := tray.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Trays, 2)

	_, err = tray.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
