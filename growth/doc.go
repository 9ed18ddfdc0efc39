// SPDX-License-Identifier: MIT

// Package growth builds the growth-status matrix of a tray: a dense,
// rectangular grid whose cells are healthy, alert or empty.
//
// What:
//
//   - Generate partitions rows×cols cells from an occupied-cell count and an
//     alert percentage of the occupied cells (default 15).
//   - Matrix is an immutable row-major grid with bounds-checked accessors.
//   - Allocate exposes the same partition as plain counts.
//
// Layout:
//
// Cells are assigned in row-major order: every healthy cell precedes every
// alert cell, which precedes every empty cell.
//
//	rows=2 cols=5 occupied=7 alert=30%  → filled=7 alert=2 healthy=5
//
//	# # # # #
//	! ! . . .
//
// Inputs:
//
//   - occupied above rows×cols is clamped to rows×cols.
//   - Negative rows, cols or occupied count as zero.
//   - The alert percentage is never rejected; the resulting alert count is
//     clamped to [0, filled] and NaN counts as 0.
//
// Complexity:
//
//   - Generate: O(R×C) time and memory.
//   - Allocate: O(1).
//
// Errors:
//
//   - ErrOutOfRange: At/Row called outside the grid.
//   - ErrUnknownStatus: text does not name a CellStatus.
//   - ErrNonRectangular: FromCells given rows of differing lengths.
//
// Generate itself never fails and keeps no state between calls, so it is
// safe for concurrent use.
package growth
