// SPDX-License-Identifier: MIT

package growth

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Matrix is an immutable rows×cols grid of CellStatus values stored
// row-major in a flat buffer with stride cols.
// Every accessor returning a slice returns a copy.
type Matrix struct {
	rows, cols int
	cells      []CellStatus
}

// FromCells builds a Matrix from nested rows, deep-copying the input.
// Returns ErrNonRectangular if row lengths differ and ErrUnknownStatus if
// any value is not a valid CellStatus. An empty input yields a 0×0 matrix.
// Complexity: O(R×C).
func FromCells(values [][]CellStatus) (*Matrix, error) {
	rows := len(values)
	if rows == 0 {
		return &Matrix{}, nil
	}
	cols := len(values[0])
	cells := make([]CellStatus, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("%w at (%d,%d): %d", ErrUnknownStatus, r, c, uint8(s))
			}
		}
		cells = append(cells, row...)
	}

	return &Matrix{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of cells per row.
func (m *Matrix) Cols() int { return m.cols }

// Len returns Rows()×Cols().
func (m *Matrix) Len() int { return len(m.cells) }

// InBounds reports whether (r,c) lies within the grid.
func (m *Matrix) InBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// Index maps (r,c) to its row-major position r*Cols()+c.
// It does not check bounds.
func (m *Matrix) Index(r, c int) int {
	return r*m.cols + c
}

// Coordinate converts a row-major position back to (r,c).
// Calling it on a matrix with zero columns returns (0,0).
func (m *Matrix) Coordinate(i int) (r, c int) {
	if m.cols == 0 {
		return 0, 0
	}
	return i / m.cols, i % m.cols
}

// At returns the status at (r,c) or ErrOutOfRange.
func (m *Matrix) At(r, c int) (CellStatus, error) {
	if !m.InBounds(r, c) {
		return Empty, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, r, c, m.rows, m.cols)
	}
	return m.cells[m.Index(r, c)], nil
}

// Row returns a copy of row r or ErrOutOfRange.
func (m *Matrix) Row(r int) ([]CellStatus, error) {
	if r < 0 || r >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, r, m.rows)
	}
	out := make([]CellStatus, m.cols)
	copy(out, m.cells[r*m.cols:(r+1)*m.cols])
	return out, nil
}

// Cells returns a row-major copy of every cell.
func (m *Matrix) Cells() []CellStatus {
	out := make([]CellStatus, len(m.cells))
	copy(out, m.cells)
	return out
}

// Slices returns a nested copy: Rows() slices of length Cols().
func (m *Matrix) Slices() [][]CellStatus {
	out := make([][]CellStatus, m.rows)
	for r := range out {
		out[r] = make([]CellStatus, m.cols)
		copy(out[r], m.cells[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Counts tallies the cells by status.
// Complexity: O(R×C).
func (m *Matrix) Counts() Counts {
	var c Counts
	for _, s := range m.cells {
		switch s {
		case Healthy:
			c.Healthy++
		case Alert:
			c.Alert++
		default:
			c.Empty++
		}
	}
	return c
}

// Equal reports whether m and other have the same shape and cells.
// Two nil matrices are equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, s := range m.cells {
		if other.cells[i] != s {
			return false
		}
	}
	return true
}

// String renders one line per row using CellStatus.Glyph, rows joined by
// '\n' with no trailing newline.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, s := range m.cells[r*m.cols : (r+1)*m.cols] {
			sb.WriteByte(s.Glyph())
		}
	}
	return sb.String()
}

type matrixJSON struct {
	Rows  int            `json:"rows"`
	Cols  int            `json:"cols"`
	Cells [][]CellStatus `json:"cells"`
}

// MarshalJSON encodes the matrix as {"rows":R,"cols":C,"cells":[[...]]}
// with status names as strings.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(matrixJSON{Rows: m.rows, Cols: m.cols, Cells: m.Slices()})
}

// UnmarshalJSON decodes the form written by MarshalJSON.
// The declared shape must agree with the cells.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var raw matrixJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Rows != len(raw.Cells) {
		return fmt.Errorf("%w: declared %d rows, got %d", ErrNonRectangular, raw.Rows, len(raw.Cells))
	}
	for r, row := range raw.Cells {
		if len(row) != raw.Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), raw.Cols)
		}
	}
	cells := make([]CellStatus, 0, raw.Rows*raw.Cols)
	for _, row := range raw.Cells {
		cells = append(cells, row...)
	}
	*m = Matrix{rows: raw.Rows, cols: raw.Cols, cells: cells}
	return nil
}
