// SPDX-License-Identifier: MIT

package growth

import (
	"fmt"
	"strings"
)

// CellStatus is the rendering state of one tray slot.
// The zero value is Empty.
type CellStatus uint8

const (
	// Empty marks a slot without a crop.
	Empty CellStatus = iota
	// Healthy marks an occupied slot with no open alert.
	Healthy
	// Alert marks an occupied slot that needs attention.
	Alert
)

// DefaultAlertPercent is the share of filled cells flagged Alert when no
// WithAlertPercent option is given.
const DefaultAlertPercent = 15.0

var statusNames = [...]string{
	Empty:   "empty",
	Healthy: "healthy",
	Alert:   "alert",
}

var statusGlyphs = [...]byte{
	Empty:   '.',
	Healthy: '#',
	Alert:   '!',
}

// Valid reports whether s is one of Empty, Healthy or Alert.
func (s CellStatus) Valid() bool {
	return int(s) < len(statusNames)
}

// String returns the lowercase status name.
func (s CellStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("CellStatus(%d)", uint8(s))
	}
	return statusNames[s]
}

// Glyph returns the single-byte symbol used by Matrix.String.
// Unknown statuses map to '?'.
func (s CellStatus) Glyph() byte {
	if !s.Valid() {
		return '?'
	}
	return statusGlyphs[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s CellStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CellStatus) UnmarshalText(text []byte) error {
	v, err := ParseCellStatus(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseCellStatus parses a status name, ignoring case and surrounding space.
func ParseCellStatus(name string) (CellStatus, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range statusNames {
		if n == key {
			return CellStatus(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// Counts tallies the cells of a Matrix by status.
type Counts struct {
	Healthy int `json:"healthy"`
	Alert   int `json:"alert"`
	Empty   int `json:"empty"`
}

// Filled returns Healthy+Alert.
func (c Counts) Filled() int { return c.Healthy + c.Alert }

// Total returns the number of cells counted.
func (c Counts) Total() int { return c.Healthy + c.Alert + c.Empty }

// Allocation is the partition Generate computes before walking the grid.
//
//	Total   = rows × cols
//	Filled  = min(occupied, Total)
//	Alert   = floor(Filled × percent / 100), clamped to [0, Filled]
//	Healthy = Filled − Alert
//	Empty   = Total − Filled
type Allocation struct {
	Total   int `json:"total"`
	Filled  int `json:"filled"`
	Alert   int `json:"alert"`
	Healthy int `json:"healthy"`
	Empty   int `json:"empty"`
}

// StatusAt returns the status of the i-th cell in row-major order.
// Indices outside [0, Total) are Empty.
func (a Allocation) StatusAt(i int) CellStatus {
	switch {
	case i < 0:
		return Empty
	case i < a.Healthy:
		return Healthy
	case i < a.Filled:
		return Alert
	default:
		return Empty
	}
}

// Counts converts the allocation into the tallies a generated Matrix has.
func (a Allocation) Counts() Counts {
	return Counts{Healthy: a.Healthy, Alert: a.Alert, Empty: a.Empty}
}
