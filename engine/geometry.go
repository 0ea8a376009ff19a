package engine

import "fmt"

// maxDim is the largest coordinate the wire protocol and Rect carry.
const maxDim = 1<<16 - 1

// Rect is a component's screen-space box in 0-based cells. uint16
// matches the dimension range of the terminal protocol.
type Rect struct {
	X, Y, W, H uint16
}

// RectOf builds a Rect from int coordinates, rejecting values outside
// the uint16 range with KindGeometry.
func RectOf(x, y, w, h int) (Rect, error) {
	const op Op = "engine.RectOf"
	for _, v := range [4]int{x, y, w, h} {
		if v < 0 || v > maxDim {
			return Rect{}, E(op, KindGeometry, fmt.Sprintf("value %d outside uint16 range", v))
		}
	}
	return Rect{X: uint16(x), Y: uint16(y), W: uint16(w), H: uint16(h)}, nil
}

// Contains reports whether the point lies in the rect, inclusive on all
// four edges: X..X+W and Y..Y+H. Arithmetic widens to uint32 so X+W
// cannot wrap at the uint16 boundary.
func (r Rect) Contains(x, y uint16) bool {
	px, py := uint32(x), uint32(y)
	return px >= uint32(r.X) && px <= uint32(r.X)+uint32(r.W) &&
		py >= uint32(r.Y) && py <= uint32(r.Y)+uint32(r.H)
}

// dims16 narrows queried terminal dimensions to uint16, rejecting
// overflow with KindGeometry.
func dims16(op Op, cols, rows int) (uint16, uint16, error) {
	if cols < 0 || cols > maxDim || rows < 0 || rows > maxDim {
		return 0, 0, E(op, KindGeometry, fmt.Sprintf("terminal size %dx%d outside uint16 range", cols, rows))
	}
	return uint16(cols), uint16(rows), nil
}

// clamp16 pins an input coordinate into the uint16 range.
func clamp16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > maxDim {
		return maxDim
	}
	return uint16(v)
}
