package vt

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tuikit/terminal"
)

// Region is a clipped rectangular window over a Screen. All coordinates
// are relative to the region's origin; writes outside the region are
// dropped. Regions are values and cheap to derive.
type Region struct {
	scr  Screen
	X, Y int // Absolute position on the screen
	W, H int // Region dimensions
}

// NewRegion creates a region over the screen, clipped to its bounds.
func NewRegion(s Screen, x, y, w, h int) Region {
	cols, rows := s.Size()
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > cols {
		w = cols - x
	}
	if y+h > rows {
		h = rows - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{scr: s, X: x, Y: y, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to the parent,
// clipped to the parent's bounds.
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{scr: r.scr, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Inset returns the region shrunk by n cells on all sides.
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Width returns the region width.
func (r Region) Width() int {
	return r.W
}

// Height returns the region height.
func (r Region) Height() int {
	return r.H
}

// Bounds returns the absolute position and dimensions.
func (r Region) Bounds() (x, y, w, h int) {
	return r.X, r.Y, r.W, r.H
}

// SetCell sets a single cell with bounds checking.
func (r Region) SetCell(x, y int, ch rune, fg, bg terminal.RGB, attrs terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.scr.SetCell(r.X+x, r.Y+y, ch, fg, bg, attrs)
}

// Fill fills the entire region with spaces on the background color.
func (r Region) Fill(bg terminal.RGB) {
	attrs := terminal.AttrNone
	if bg != (terminal.RGB{}) {
		attrs = terminal.AttrBgSet
	}
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.SetCell(x, y, ' ', terminal.RGB{}, bg, attrs)
		}
	}
}

// Clear fills the region with blank default-colored cells.
func (r Region) Clear() {
	r.Fill(terminal.RGB{})
}

// WriteString renders text starting at (x, y), advancing by rune width
// and truncating at the region edge. Returns the columns advanced.
func (r Region) WriteString(x, y int, s string, fg, bg terminal.RGB, attrs terminal.Attr) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w <= 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.SetCell(col, y, ch, fg, bg, attrs)
		}
		col += w
	}
	return col - x
}

// WriteCentered renders text centered on the row.
func (r Region) WriteCentered(y int, s string, fg, bg terminal.RGB, attrs terminal.Attr) {
	r.WriteString((r.W-runewidth.StringWidth(s))/2, y, s, fg, bg, attrs)
}

// WriteRight renders text right-aligned on the row.
func (r Region) WriteRight(y int, s string, fg, bg terminal.RGB, attrs terminal.Attr) {
	r.WriteString(r.W-runewidth.StringWidth(s), y, s, fg, bg, attrs)
}

// LineType specifies the box-drawing character style for Frame.
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
)

// Box drawing character sets indexed by LineType
var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
	LineHeavy:   {'┏', '━', '┓', '┃', '┗', '┛'},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Frame draws a border around the region edge with an optional centered
// title on the top edge, and returns the inner content region.
func (r Region) Frame(line LineType, title string, fg terminal.RGB) Region {
	if r.W < 2 || r.H < 2 {
		return r.Inset(1)
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]
	bg := terminal.RGB{}

	r.SetCell(0, 0, chars[boxTL], fg, bg, terminal.AttrFgSet)
	r.SetCell(r.W-1, 0, chars[boxTR], fg, bg, terminal.AttrFgSet)
	r.SetCell(0, r.H-1, chars[boxBL], fg, bg, terminal.AttrFgSet)
	r.SetCell(r.W-1, r.H-1, chars[boxBR], fg, bg, terminal.AttrFgSet)

	for x := 1; x < r.W-1; x++ {
		r.SetCell(x, 0, chars[boxH], fg, bg, terminal.AttrFgSet)
		r.SetCell(x, r.H-1, chars[boxH], fg, bg, terminal.AttrFgSet)
	}
	for y := 1; y < r.H-1; y++ {
		r.SetCell(0, y, chars[boxV], fg, bg, terminal.AttrFgSet)
		r.SetCell(r.W-1, y, chars[boxV], fg, bg, terminal.AttrFgSet)
	}

	if title != "" && r.W > 4 {
		display := title
		if runewidth.StringWidth(display) > r.W-4 {
			display = runewidth.Truncate(display, r.W-4, "…")
		}
		x := (r.W - runewidth.StringWidth(display) - 2) / 2
		r.WriteString(x, 0, " "+display+" ", fg, bg, terminal.AttrFgSet|terminal.AttrBold)
	}

	return r.Inset(1)
}
