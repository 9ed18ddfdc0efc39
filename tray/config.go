// SPDX-License-Identifier: MIT

package tray

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML document describing layouts and trays.
type Config struct {
	// DefaultAlertPercent applies to trays without their own alert_percent.
	// When nil, growth.DefaultAlertPercent is used.
	DefaultAlertPercent *float64     `yaml:"default_alert_percent"`
	Layouts             []Layout     `yaml:"layouts"`
	Trays               []TrayConfig `yaml:"trays"`
}

// TrayConfig is a tray as written in the configuration file.
type TrayConfig struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Container    string   `yaml:"container"`
	Layout       string   `yaml:"layout"`
	Occupied     int      `yaml:"occupied"`
	AlertPercent *float64 `yaml:"alert_percent"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Resolve validates the configuration and binds each tray to its layout.
// Trays are returned in file order.
func (c *Config) Resolve() ([]Tray, error) {
	layouts := make(map[string]Layout, len(c.Layouts))
	for i, l := range c.Layouts {
		if l.Name == "" {
			return nil, fmt.Errorf("layout #%d: %w", i, ErrEmptyID)
		}
		if _, dup := layouts[l.Name]; dup {
			return nil, fmt.Errorf("layout %q: %w", l.Name, ErrDuplicateLayout)
		}
		if l.Rows < 0 || l.Cols < 0 {
			return nil, fmt.Errorf("layout %q (%dx%d): %w", l.Name, l.Rows, l.Cols, ErrBadLayout)
		}
		layouts[l.Name] = l
	}

	trays := make([]Tray, 0, len(c.Trays))
	seen := make(map[string]struct{}, len(c.Trays))
	for i, tc := range c.Trays {
		if tc.ID == "" {
			return nil, fmt.Errorf("tray #%d: %w", i, ErrEmptyID)
		}
		if _, dup := seen[tc.ID]; dup {
			return nil, fmt.Errorf("tray %q: %w", tc.ID, ErrDuplicateTray)
		}
		seen[tc.ID] = struct{}{}

		l, ok := layouts[tc.Layout]
		if !ok {
			return nil, fmt.Errorf("tray %q layout %q: %w", tc.ID, tc.Layout, ErrUnknownLayout)
		}
		var percent *float64
		switch {
		case tc.AlertPercent != nil:
			p := *tc.AlertPercent
			percent = &p
		case c.DefaultAlertPercent != nil:
			p := *c.DefaultAlertPercent
			percent = &p
		}
		trays = append(trays, Tray{
			ID:           tc.ID,
			Name:         tc.Name,
			Container:    tc.Container,
			Layout:       l,
			Occupied:     tc.Occupied,
			AlertPercent: percent,
		})
	}
	return trays, nil
}
