package vt

import (
	"errors"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/terminal"
)

// blankCell is the resting state of a grid cell: a space with default
// colors and no attributes.
var blankCell = terminal.Cell{Rune: ' '}

// Grid implements Screen as a row-major cell matrix with per-row dirty
// tracking. Storage is cells[row*cols+col]; mutation marks only the
// touched rows dirty, and nothing on the write path allocates per cell.
type Grid struct {
	cols, rows int
	cells      []terminal.Cell
	dirty      []bool

	curX, curY int
	brush      terminal.Style

	// Partial UTF-8 sequence carried between Write calls
	pending []byte
}

// NewGrid creates a grid with every cell blank and every row dirty.
// Dimensions below 1 are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]terminal.Cell, cols*rows),
		dirty: make([]bool, rows),
	}
	for i := range g.cells {
		g.cells[i] = blankCell
	}
	for i := range g.dirty {
		g.dirty[i] = true
	}
	return g
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.cols, g.rows
}

// Resize reallocates the grid, preserving the overlapping region,
// clamping the cursor, and marking every row dirty.
func (g *Grid) Resize(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return errors.New("grid dimensions must be at least 1x1")
	}
	if cols == g.cols && rows == g.rows {
		for i := range g.dirty {
			g.dirty[i] = true
		}
		return nil
	}

	cells := make([]terminal.Cell, cols*rows)
	for i := range cells {
		cells[i] = blankCell
	}
	copyCols := min(cols, g.cols)
	copyRows := min(rows, g.rows)
	for y := 0; y < copyRows; y++ {
		copy(cells[y*cols:y*cols+copyCols], g.cells[y*g.cols:y*g.cols+copyCols])
	}

	g.cells = cells
	g.cols = cols
	g.rows = rows
	g.dirty = make([]bool, rows)
	for i := range g.dirty {
		g.dirty[i] = true
	}
	if g.curX >= cols {
		g.curX = cols - 1
	}
	if g.curY >= rows {
		g.curY = rows - 1
	}
	return nil
}

// MoveTo positions the write cursor, clamped to the grid.
func (g *Grid) MoveTo(col, row int) {
	if col < 0 {
		col = 0
	}
	if col >= g.cols {
		col = g.cols - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.rows {
		row = g.rows - 1
	}
	g.curX, g.curY = col, row
}

// SetBrush sets the style applied to runes placed through Write.
func (g *Grid) SetBrush(fg, bg terminal.RGB, attrs terminal.Attr) {
	g.brush = terminal.Style{Fg: fg, Bg: bg, Attrs: attrs}
}

// Write feeds bytes through the cursor. Printable runes land at the
// cursor with the current brush and wrap at the right edge; NL moves to
// column 0 of the next row, CR to column 0, TAB to the next 8-column
// stop. Writing past the last row scrolls the grid up one row. The grid
// does not interpret CSI/OSC; other control bytes are dropped. A
// trailing partial UTF-8 sequence is held for the next call.
func (g *Grid) Write(p []byte) (int, error) {
	data := p
	if len(g.pending) > 0 {
		data = append(g.pending, p...)
		g.pending = nil
	}

	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == '\n':
			g.curX = 0
			g.lineFeed()
			i++
		case b == '\r':
			g.curX = 0
			i++
		case b == '\t':
			g.tab()
			i++
		case b < 0x20 || b == 0x7f:
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				g.pending = append(g.pending[:0], data[i:]...)
				return len(p), nil
			}
			r, size := utf8.DecodeRune(data[i:])
			g.put(r)
			i += size
		}
	}
	return len(p), nil
}

// put places one rune at the cursor and advances it, wrapping first if
// the rune does not fit on the current row.
func (g *Grid) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w <= 0 || w > g.cols {
		return
	}
	if g.curX+w > g.cols {
		g.curX = 0
		g.lineFeed()
	}
	g.setCell(g.curX, g.curY, r, g.brush)
	g.curX += w
}

// lineFeed advances the cursor one row, scrolling at the bottom.
func (g *Grid) lineFeed() {
	g.curY++
	if g.curY >= g.rows {
		g.scroll()
		g.curY = g.rows - 1
	}
}

// scroll discards the top row, shifts everything up, and blanks the new
// bottom row. Every row is dirty afterwards.
func (g *Grid) scroll() {
	copy(g.cells, g.cells[g.cols:])
	last := (g.rows - 1) * g.cols
	for i := last; i < len(g.cells); i++ {
		g.cells[i] = blankCell
	}
	for i := range g.dirty {
		g.dirty[i] = true
	}
}

// tab advances the cursor to the next 8-column stop, clamped to the row.
func (g *Grid) tab() {
	g.curX = (g.curX/8 + 1) * 8
	if g.curX >= g.cols {
		g.curX = g.cols - 1
	}
}

// SetCell writes a single cell. Out-of-bounds coordinates are ignored.
func (g *Grid) SetCell(col, row int, r rune, fg, bg terminal.RGB, attrs terminal.Attr) {
	g.setCell(col, row, r, terminal.Style{Fg: fg, Bg: bg, Attrs: attrs})
}

// setCell writes one cell, maintaining the wide-rune pairing invariant:
// a width-2 rune occupies its column plus a zero-rune placeholder to its
// right, and overwriting either half blanks the other.
func (g *Grid) setCell(col, row int, r rune, st terminal.Style) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.clearPair(col, row)
	if runewidth.RuneWidth(r) == 2 && col+1 < g.cols {
		g.clearPair(col+1, row)
		g.cells[row*g.cols+col+1] = terminal.Cell{}
	}
	g.cells[row*g.cols+col] = terminal.Cell{Rune: r, Fg: st.Fg, Bg: st.Bg, Attrs: st.Attrs}
	g.dirty[row] = true
}

// clearPair blanks the partner cell when (col, row) holds half of a
// wide-rune pair.
func (g *Grid) clearPair(col, row int) {
	idx := row*g.cols + col
	c := g.cells[idx]
	if c.Rune == 0 && col > 0 {
		if runewidth.RuneWidth(g.cells[idx-1].Rune) == 2 {
			g.cells[idx-1] = blankCell
		}
		return
	}
	if runewidth.RuneWidth(c.Rune) == 2 && col+1 < g.cols {
		g.cells[idx+1] = blankCell
	}
}

// CellAt returns the cell at the coordinates, or a blank cell when out
// of bounds. A zero-rune result is a wide-rune placeholder.
func (g *Grid) CellAt(col, row int) terminal.Cell {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return blankCell
	}
	return g.cells[row*g.cols+col]
}

// Line returns the backing cells of one row, or nil when out of range.
func (g *Grid) Line(row int) []terminal.Cell {
	if row < 0 || row >= g.rows {
		return nil
	}
	return g.cells[row*g.cols : (row+1)*g.cols]
}

// Dirty reports whether the row changed since the last Clean.
func (g *Grid) Dirty(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	return g.dirty[row]
}

// Clean clears every dirty flag.
func (g *Grid) Clean() {
	for i := range g.dirty {
		g.dirty[i] = false
	}
}

// Clear blanks all cells, homes the cursor, and marks every row dirty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blankCell
	}
	for i := range g.dirty {
		g.dirty[i] = true
	}
	g.curX, g.curY = 0, 0
}
