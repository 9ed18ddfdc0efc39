// SPDX-License-Identifier: MIT

package growth

import "math"

// Allocate computes how many of rows×cols cells are healthy, alert and
// empty for the given occupied count and alert percentage.
//
// Steps:
//  1. total = rows × cols (negative dimensions count as zero).
//  2. filled = min(occupied, total); negative occupied counts as zero.
//  3. alert = floor(filled × percent / 100), clamped to [0, filled].
//  4. healthy = filled − alert.
//
// Complexity: O(1).
func Allocate(rows, cols, occupied int, alertPercent float64) Allocation {
	rows, cols, occupied = nonNegative(rows), nonNegative(cols), nonNegative(occupied)

	total := rows * cols
	filled := min(occupied, total)
	alert := alertCount(filled, alertPercent)

	return Allocation{
		Total:   total,
		Filled:  filled,
		Alert:   alert,
		Healthy: filled - alert,
		Empty:   total - filled,
	}
}

// Generate returns a fresh rows×cols Matrix with the cells of Allocate laid
// out in row-major order: healthy first, then alert, then empty.
// It never fails; see the package documentation for input handling.
//
// Example:
//
//	m := Generate(4, 4, 16)                         // 14 healthy, 2 alert
//	m = Generate(12, 21, 170, WithAlertPercent(75)) // 43 healthy, 127 alert, 82 empty
//
// Complexity: O(R×C) time and memory.
func Generate(rows, cols, occupied int, opts ...Option) *Matrix {
	cfg := newConfig(opts)
	rows, cols = nonNegative(rows), nonNegative(cols)
	alloc := Allocate(rows, cols, occupied, cfg.alertPercent)

	cells := make([]CellStatus, alloc.Total)
	for i := range cells {
		cells[i] = alloc.StatusAt(i)
	}

	return &Matrix{rows: rows, cols: cols, cells: cells}
}

// alertCount evaluates floor(filled*p/100) in float64, matching the
// left-to-right evaluation order, then clamps into [0, filled].
func alertCount(filled int, p float64) int {
	if filled == 0 || math.IsNaN(p) {
		return 0
	}
	v := math.Floor(float64(filled) * p / 100)
	if v <= 0 {
		return 0
	}
	if v >= float64(filled) {
		return filled
	}
	return int(v)
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
