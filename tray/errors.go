// SPDX-License-Identifier: MIT

package tray

import "errors"

var (
	// ErrEmptyID indicates a layout or tray without a name/id.
	ErrEmptyID = errors.New("tray: empty identifier")
	// ErrDuplicateLayout indicates two layouts share a name.
	ErrDuplicateLayout = errors.New("tray: duplicate layout")
	// ErrDuplicateTray indicates two trays share an id.
	ErrDuplicateTray = errors.New("tray: duplicate tray")
	// ErrUnknownLayout indicates a tray references an undeclared layout.
	ErrUnknownLayout = errors.New("tray: unknown layout")
	// ErrBadLayout indicates a layout with a negative dimension.
	ErrBadLayout = errors.New("tray: layout dimensions must be >= 0")
)
