package vt

import (
	"testing"

	"github.com/lixenwraith/tuikit/terminal"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantC      int
		wantR      int
	}{
		{"Standard terminal", 80, 24, 80, 24},
		{"Single cell", 1, 1, 1, 1},
		{"Zero clamped", 0, 0, 1, 1},
		{"Negative clamped", -5, -3, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.cols, tt.rows)
			cols, rows := g.Size()
			if cols != tt.wantC {
				t.Errorf("Expected cols to be %d, got %d", tt.wantC, cols)
			}
			if rows != tt.wantR {
				t.Errorf("Expected rows to be %d, got %d", tt.wantR, rows)
			}
		})
	}
}

func TestNewGridInitialState(t *testing.T) {
	g := NewGrid(4, 3)
	for row := 0; row < 3; row++ {
		if !g.Dirty(row) {
			t.Errorf("Expected row %d to start dirty", row)
		}
		for col := 0; col < 4; col++ {
			c := g.CellAt(col, row)
			if c.Rune != ' ' {
				t.Errorf("Expected blank rune at (%d,%d), got %q", col, row, c.Rune)
			}
			if c.Attrs != terminal.AttrNone {
				t.Errorf("Expected no attrs at (%d,%d), got %v", col, row, c.Attrs)
			}
		}
	}
}

func TestGridWrite(t *testing.T) {
	g := NewGrid(10, 3)
	n, err := g.Write([]byte("Hi"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 bytes consumed, got %d", n)
	}
	if g.CellAt(0, 0).Rune != 'H' {
		t.Errorf("Expected 'H' at (0,0), got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(1, 0).Rune != 'i' {
		t.Errorf("Expected 'i' at (1,0), got %q", g.CellAt(1, 0).Rune)
	}

	// Cursor advanced past the text
	g.Write([]byte("!"))
	if g.CellAt(2, 0).Rune != '!' {
		t.Errorf("Expected '!' at (2,0), got %q", g.CellAt(2, 0).Rune)
	}
}

func TestGridWriteControls(t *testing.T) {
	g := NewGrid(10, 3)

	// Newline moves to column 0 of the next row
	g.Write([]byte("ab\ncd"))
	if g.CellAt(0, 1).Rune != 'c' {
		t.Errorf("Expected 'c' at (0,1) after newline, got %q", g.CellAt(0, 1).Rune)
	}

	// Carriage return rewinds to column 0 on the same row
	g.Clear()
	g.Write([]byte("abc\rX"))
	if g.CellAt(0, 0).Rune != 'X' {
		t.Errorf("Expected 'X' at (0,0) after CR overwrite, got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(1, 0).Rune != 'b' {
		t.Errorf("Expected 'b' untouched at (1,0), got %q", g.CellAt(1, 0).Rune)
	}

	// Other control bytes are dropped without moving the cursor
	g.Clear()
	g.Write([]byte{'a', 0x07, 0x01, 'b'})
	if g.CellAt(1, 0).Rune != 'b' {
		t.Errorf("Expected 'b' at (1,0) with controls dropped, got %q", g.CellAt(1, 0).Rune)
	}
}

func TestGridWriteTab(t *testing.T) {
	g := NewGrid(20, 2)
	g.Write([]byte("ab\tX"))
	if g.CellAt(8, 0).Rune != 'X' {
		t.Errorf("Expected 'X' at tab stop column 8, got %q", g.CellAt(8, 0).Rune)
	}

	// Tab at a stop advances to the next stop
	g.Clear()
	g.MoveTo(8, 0)
	g.Write([]byte("\tY"))
	if g.CellAt(16, 0).Rune != 'Y' {
		t.Errorf("Expected 'Y' at tab stop column 16, got %q", g.CellAt(16, 0).Rune)
	}

	// Tab near the right edge clamps to the last column
	h := NewGrid(10, 2)
	h.MoveTo(8, 0)
	h.Write([]byte("\tZ"))
	if h.CellAt(9, 0).Rune != 'Z' {
		t.Errorf("Expected 'Z' clamped to column 9, got %q", h.CellAt(9, 0).Rune)
	}
}

func TestGridWriteWrap(t *testing.T) {
	g := NewGrid(5, 3)
	g.Write([]byte("abcdef"))
	if g.CellAt(4, 0).Rune != 'e' {
		t.Errorf("Expected 'e' at (4,0), got %q", g.CellAt(4, 0).Rune)
	}
	if g.CellAt(0, 1).Rune != 'f' {
		t.Errorf("Expected 'f' wrapped to (0,1), got %q", g.CellAt(0, 1).Rune)
	}
}

func TestGridWriteScroll(t *testing.T) {
	g := NewGrid(5, 3)
	g.Write([]byte("A\nB\nC"))
	g.Clean()
	g.Write([]byte("\nD"))

	if g.CellAt(0, 0).Rune != 'B' {
		t.Errorf("Expected 'B' scrolled to (0,0), got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(0, 1).Rune != 'C' {
		t.Errorf("Expected 'C' scrolled to (0,1), got %q", g.CellAt(0, 1).Rune)
	}
	if g.CellAt(0, 2).Rune != 'D' {
		t.Errorf("Expected 'D' on the new bottom row, got %q", g.CellAt(0, 2).Rune)
	}
	for row := 0; row < 3; row++ {
		if !g.Dirty(row) {
			t.Errorf("Expected row %d dirty after scroll", row)
		}
	}
}

func TestGridWritePartialUTF8(t *testing.T) {
	g := NewGrid(10, 2)
	seq := []byte("世") // 3 bytes

	n, err := g.Write(seq[:2])
	if err != nil {
		t.Fatalf("Expected no error on partial sequence, got %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 bytes consumed, got %d", n)
	}
	if g.CellAt(0, 0).Rune != ' ' {
		t.Errorf("Expected nothing placed before sequence completes, got %q", g.CellAt(0, 0).Rune)
	}

	g.Write(seq[2:])
	if g.CellAt(0, 0).Rune != '世' {
		t.Errorf("Expected completed rune at (0,0), got %q", g.CellAt(0, 0).Rune)
	}
}

func TestGridWideRunePlaceholder(t *testing.T) {
	g := NewGrid(10, 2)
	g.Write([]byte("世x"))

	if g.CellAt(0, 0).Rune != '世' {
		t.Errorf("Expected wide rune at (0,0), got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(1, 0).Rune != 0 {
		t.Errorf("Expected zero-rune placeholder at (1,0), got %q", g.CellAt(1, 0).Rune)
	}
	if g.CellAt(2, 0).Rune != 'x' {
		t.Errorf("Expected 'x' after the wide pair, got %q", g.CellAt(2, 0).Rune)
	}
}

func TestGridWideRuneOverwrite(t *testing.T) {
	// Overwriting the placeholder half blanks the wide rune
	g := NewGrid(10, 2)
	g.SetCell(0, 0, '世', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	g.SetCell(1, 0, 'x', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if g.CellAt(0, 0).Rune != ' ' {
		t.Errorf("Expected wide rune blanked by placeholder overwrite, got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(1, 0).Rune != 'x' {
		t.Errorf("Expected 'x' at (1,0), got %q", g.CellAt(1, 0).Rune)
	}

	// Overwriting the wide half blanks the placeholder
	g.SetCell(3, 0, '界', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	g.SetCell(3, 0, 'y', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if g.CellAt(3, 0).Rune != 'y' {
		t.Errorf("Expected 'y' at (3,0), got %q", g.CellAt(3, 0).Rune)
	}
	if g.CellAt(4, 0).Rune != ' ' {
		t.Errorf("Expected placeholder blanked with its wide rune, got %q", g.CellAt(4, 0).Rune)
	}
}

func TestGridWideRuneWrap(t *testing.T) {
	g := NewGrid(5, 3)
	g.Write([]byte("abcd世"))
	if g.CellAt(4, 0).Rune != ' ' {
		t.Errorf("Expected (4,0) blank, wide rune should wrap, got %q", g.CellAt(4, 0).Rune)
	}
	if g.CellAt(0, 1).Rune != '世' {
		t.Errorf("Expected wide rune wrapped to (0,1), got %q", g.CellAt(0, 1).Rune)
	}
	if g.CellAt(1, 1).Rune != 0 {
		t.Errorf("Expected placeholder at (1,1), got %q", g.CellAt(1, 1).Rune)
	}
}

func TestGridSetCellBounds(t *testing.T) {
	g := NewGrid(4, 3)
	g.Clean()

	tests := []struct {
		name     string
		col, row int
	}{
		{"Negative col", -1, 0},
		{"Negative row", 0, -1},
		{"Col past edge", 4, 0},
		{"Row past edge", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.SetCell(tt.col, tt.row, 'X', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
			for row := 0; row < 3; row++ {
				if g.Dirty(row) {
					t.Errorf("Expected no row dirtied by out-of-bounds write")
				}
			}
		})
	}
}

func TestGridDirtyTracking(t *testing.T) {
	g := NewGrid(4, 3)
	g.Clean()
	for row := 0; row < 3; row++ {
		if g.Dirty(row) {
			t.Errorf("Expected row %d clean after Clean", row)
		}
	}

	g.SetCell(2, 1, 'X', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	if g.Dirty(0) || g.Dirty(2) {
		t.Errorf("Expected only the touched row dirty")
	}
	if !g.Dirty(1) {
		t.Errorf("Expected row 1 dirty after SetCell")
	}

	if g.Dirty(-1) || g.Dirty(3) {
		t.Errorf("Expected out-of-range rows to report clean")
	}
}

func TestGridResize(t *testing.T) {
	g := NewGrid(4, 3)
	if err := g.Resize(0, 5); err == nil {
		t.Errorf("Expected error for zero cols")
	}
	if err := g.Resize(5, -1); err == nil {
		t.Errorf("Expected error for negative rows")
	}

	g.SetCell(0, 0, 'A', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	g.SetCell(3, 2, 'Z', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)

	if err := g.Resize(6, 4); err != nil {
		t.Fatalf("Expected grow to succeed, got %v", err)
	}
	if g.CellAt(0, 0).Rune != 'A' {
		t.Errorf("Expected 'A' preserved after grow, got %q", g.CellAt(0, 0).Rune)
	}
	if g.CellAt(3, 2).Rune != 'Z' {
		t.Errorf("Expected 'Z' preserved after grow, got %q", g.CellAt(3, 2).Rune)
	}
	if g.CellAt(5, 3).Rune != ' ' {
		t.Errorf("Expected new area blank, got %q", g.CellAt(5, 3).Rune)
	}

	if err := g.Resize(2, 2); err != nil {
		t.Fatalf("Expected shrink to succeed, got %v", err)
	}
	if g.CellAt(0, 0).Rune != 'A' {
		t.Errorf("Expected 'A' preserved after shrink, got %q", g.CellAt(0, 0).Rune)
	}
	for row := 0; row < 2; row++ {
		if !g.Dirty(row) {
			t.Errorf("Expected row %d dirty after resize", row)
		}
	}
}

func TestGridResizeSameSize(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetCell(1, 1, 'K', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)
	g.Clean()

	if err := g.Resize(4, 3); err != nil {
		t.Fatalf("Expected same-size resize to succeed, got %v", err)
	}
	if g.CellAt(1, 1).Rune != 'K' {
		t.Errorf("Expected content untouched by same-size resize")
	}
	for row := 0; row < 3; row++ {
		if !g.Dirty(row) {
			t.Errorf("Expected row %d re-marked dirty for a full repaint", row)
		}
	}
}

func TestGridResizeClampsCursor(t *testing.T) {
	g := NewGrid(10, 5)
	g.MoveTo(9, 4)
	if err := g.Resize(4, 2); err != nil {
		t.Fatalf("Expected shrink to succeed, got %v", err)
	}
	g.Write([]byte("Q"))
	if g.CellAt(3, 1).Rune != 'Q' {
		t.Errorf("Expected cursor clamped to (3,1), got rune %q there", g.CellAt(3, 1).Rune)
	}
}

func TestGridMoveTo(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		wantCol  int
		wantRow  int
	}{
		{"In bounds", 3, 1, 3, 1},
		{"Negative clamped", -2, -7, 0, 0},
		{"Past edge clamped", 99, 99, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(5, 3)
			g.MoveTo(tt.col, tt.row)
			g.Write([]byte("M"))
			if g.CellAt(tt.wantCol, tt.wantRow).Rune != 'M' {
				t.Errorf("Expected write at (%d,%d)", tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestGridBrush(t *testing.T) {
	g := NewGrid(5, 2)
	fg := terminal.RGB{R: 255, G: 0, B: 0}
	bg := terminal.RGB{R: 0, G: 0, B: 128}
	g.SetBrush(fg, bg, terminal.AttrBold|terminal.AttrFgSet|terminal.AttrBgSet)
	g.Write([]byte("x"))

	c := g.CellAt(0, 0)
	if c.Fg != fg {
		t.Errorf("Expected brush fg %v, got %v", fg, c.Fg)
	}
	if c.Bg != bg {
		t.Errorf("Expected brush bg %v, got %v", bg, c.Bg)
	}
	if c.Attrs&terminal.AttrBold == 0 {
		t.Errorf("Expected bold attribute from brush")
	}
}

func TestGridCellAtBounds(t *testing.T) {
	g := NewGrid(3, 2)
	c := g.CellAt(-1, 0)
	if c.Rune != ' ' {
		t.Errorf("Expected blank cell out of bounds, got %q", c.Rune)
	}
	c = g.CellAt(0, 5)
	if c.Rune != ' ' {
		t.Errorf("Expected blank cell out of bounds, got %q", c.Rune)
	}
}

func TestGridLine(t *testing.T) {
	g := NewGrid(4, 2)
	g.SetCell(2, 1, 'L', terminal.RGB{}, terminal.RGB{}, terminal.AttrNone)

	line := g.Line(1)
	if len(line) != 4 {
		t.Fatalf("Expected 4 cells, got %d", len(line))
	}
	if line[2].Rune != 'L' {
		t.Errorf("Expected 'L' in line slice, got %q", line[2].Rune)
	}

	if g.Line(-1) != nil || g.Line(2) != nil {
		t.Errorf("Expected nil for out-of-range rows")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(4, 3)
	g.Write([]byte("junk\nmore"))
	g.Clean()
	g.Clear()

	for row := 0; row < 3; row++ {
		if !g.Dirty(row) {
			t.Errorf("Expected row %d dirty after Clear", row)
		}
		for col := 0; col < 4; col++ {
			if g.CellAt(col, row).Rune != ' ' {
				t.Errorf("Expected blank at (%d,%d) after Clear", col, row)
			}
		}
	}

	// Cursor is homed
	g.Write([]byte("h"))
	if g.CellAt(0, 0).Rune != 'h' {
		t.Errorf("Expected cursor homed by Clear")
	}
}
