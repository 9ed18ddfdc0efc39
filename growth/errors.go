// SPDX-License-Identifier: MIT

package growth

import "errors"

// Sentinel errors for growth operations. Generate never returns an error;
// these cover accessors and decoding only.
var (
	// ErrOutOfRange indicates a row or column outside the matrix bounds.
	ErrOutOfRange = errors.New("growth: index out of range")
	// ErrUnknownStatus indicates text that does not name a CellStatus.
	ErrUnknownStatus = errors.New("growth: unknown cell status")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("growth: all rows must have the same length")
)
