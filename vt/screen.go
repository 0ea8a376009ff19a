// Package vt holds the cell-model screen the session core draws into.
//
// The render engine never parses escape sequences on the output path; it
// consumes a Screen: an ordered sequence of rows, each carrying a dirty
// flag and a run of cells. Grid is the in-repo implementation; any
// terminal emulator exposing the same snapshot can stand in for it.
package vt

import (
	"github.com/lixenwraith/tuikit/terminal"
)

// Screen is the contract between the session core and the
// terminal-emulation layer.
type Screen interface {
	// Size returns the screen dimensions in cells.
	Size() (cols, rows int)

	// Resize reallocates to the new dimensions, preserving the
	// overlapping region and marking every row dirty.
	Resize(cols, rows int) error

	// MoveTo positions the write cursor, clamped to the screen.
	MoveTo(col, row int)

	// Write feeds raw bytes through the screen's cursor: printable
	// runes land at the cursor and wrap, NL/CR/TAB move it, writing
	// past the bottom row scrolls. Unknown control bytes are dropped.
	Write(p []byte) (int, error)

	// SetCell writes a single cell. Out-of-bounds coordinates are
	// ignored.
	SetCell(col, row int, r rune, fg, bg terminal.RGB, attrs terminal.Attr)

	// CellAt returns the cell at the coordinates, or a blank cell when
	// out of bounds.
	CellAt(col, row int) terminal.Cell

	// Line returns the backing cells of one row. Callers must not
	// mutate the returned slice.
	Line(row int) []terminal.Cell

	// Dirty reports whether the row changed since the last Clean.
	Dirty(row int) bool

	// Clean clears every dirty flag.
	Clean()

	// Clear blanks all cells, homes the cursor, and marks every row
	// dirty.
	Clear()
}
