// SPDX-License-Identifier: MIT

// Package tray models the growing trays of a farm container and feeds them
// to the growth generator.
//
// A tray is a grid of slots (a Layout) with a crop count and an optional
// alert percentage. Layouts and trays are declared in YAML:
//
//	default_alert_percent: 15
//	layouts:
//	  - name: standard
//	    rows: 12
//	    cols: 21
//	trays:
//	  - id: c1-t01
//	    container: c1
//	    layout: standard
//	    occupied: 170
//	    alert_percent: 75
//
// Config.Resolve binds every tray to its layout; GenerateAll turns a slice
// of trays into growth matrices on a bounded worker pool.
//
// Errors:
//
//   - ErrEmptyID: a layout or tray has no identifier.
//   - ErrDuplicateLayout, ErrDuplicateTray: identifiers are reused.
//   - ErrUnknownLayout: a tray names a layout that is not declared.
//   - ErrBadLayout: a layout has a negative dimension.
package tray
