// @focus: #terminal { style }
package terminal

import (
	"bufio"
)

// SGR parameter fragments (no CSI prefix, no terminator)
var (
	sgrFg256      = []byte("38;5;")
	sgrBg256      = []byte("48;5;")
	sgrFgRGB      = []byte("38;2;")
	sgrBgRGB      = []byte("48;2;")
	sgrFgDefault  = []byte("39")
	sgrBgDefault  = []byte("49")
)

// sgrBits maps style attribute bits to their SGR enable codes
var sgrBits = [...]struct {
	bit  Attr
	code byte
}{
	{AttrBold, '1'},
	{AttrDim, '2'},
	{AttrItalic, '3'},
	{AttrUnderline, '4'},
	{AttrBlink, '5'},
	{AttrReverse, '7'},
	{AttrInvisible, '8'},
}

// StyleEqual reports whether two styles produce identical terminal state.
// Colors only participate when their set flag is present
func StyleEqual(a, b Style) bool {
	if a.Attrs&AttrStyle != b.Attrs&AttrStyle {
		return false
	}
	return fgEqual(a, b) && bgEqual(a, b)
}

func fgEqual(a, b Style) bool {
	if a.Attrs&AttrFgSet != b.Attrs&AttrFgSet {
		return false
	}
	if a.Attrs&AttrFgSet == 0 {
		return true
	}
	if a.Attrs&AttrFg256 != b.Attrs&AttrFg256 {
		return false
	}
	return a.Fg == b.Fg
}

func bgEqual(a, b Style) bool {
	if a.Attrs&AttrBgSet != b.Attrs&AttrBgSet {
		return false
	}
	if a.Attrs&AttrBgSet == 0 {
		return true
	}
	if a.Attrs&AttrBg256 != b.Attrs&AttrBg256 {
		return false
	}
	return a.Bg == b.Bg
}

// WriteStyle emits the minimal SGR transition from cur to next and returns
// next as the new running state.
//
// Transition rule:
//   - equal styles emit nothing;
//   - any style bit turning off forces a full reset, then every bit set in
//     next, then fg/bg when set (a reset reverts colors to default, so set
//     colors are re-emitted even when unchanged);
//   - otherwise only newly-set bits and changed colors are emitted.
//
// One combined CSI sequence is written per transition.
func WriteStyle(w *bufio.Writer, cur, next Style, mode ColorMode) Style {
	if StyleEqual(cur, next) {
		return next
	}

	curStyle := cur.Attrs & AttrStyle
	nextStyle := next.Attrs & AttrStyle

	if curStyle&^nextStyle != 0 {
		// At least one bit turns off; SGR has no per-bit disable that is
		// portable, so reset and rebuild
		w.Write(csi)
		w.WriteByte('0')
		for _, s := range sgrBits {
			if nextStyle&s.bit != 0 {
				w.WriteByte(';')
				w.WriteByte(s.code)
			}
		}
		if next.Attrs&AttrFgSet != 0 {
			w.WriteByte(';')
			writeFgParams(w, next, mode)
		}
		if next.Attrs&AttrBgSet != 0 {
			w.WriteByte(';')
			writeBgParams(w, next, mode)
		}
		w.WriteByte('m')
		return next
	}

	added := nextStyle &^ curStyle
	fgChanged := !fgEqual(cur, next)
	bgChanged := !bgEqual(cur, next)
	if added == 0 && !fgChanged && !bgChanged {
		return next
	}

	w.Write(csi)
	first := true
	for _, s := range sgrBits {
		if added&s.bit != 0 {
			if !first {
				w.WriteByte(';')
			}
			w.WriteByte(s.code)
			first = false
		}
	}
	if fgChanged {
		if !first {
			w.WriteByte(';')
		}
		first = false
		if next.Attrs&AttrFgSet != 0 {
			writeFgParams(w, next, mode)
		} else {
			w.Write(sgrFgDefault)
		}
	}
	if bgChanged {
		if !first {
			w.WriteByte(';')
		}
		if next.Attrs&AttrBgSet != 0 {
			writeBgParams(w, next, mode)
		} else {
			w.Write(sgrBgDefault)
		}
	}
	w.WriteByte('m')
	return next
}

// writeFgParams writes fg color parameters (no separator, no terminator)
func writeFgParams(w *bufio.Writer, st Style, mode ColorMode) {
	if st.Attrs&AttrFg256 != 0 {
		// 256-color: 38;5;N
		w.Write(sgrFg256)
		writeInt(w, int(st.Fg.R))
	} else if mode == ColorModeTrueColor {
		// True color: 38;2;R;G;B
		w.Write(sgrFgRGB)
		writeInt(w, int(st.Fg.R))
		w.WriteByte(';')
		writeInt(w, int(st.Fg.G))
		w.WriteByte(';')
		writeInt(w, int(st.Fg.B))
	} else {
		// Quantized 256: 38;5;N
		w.Write(sgrFg256)
		writeInt(w, int(RGBTo256(st.Fg)))
	}
}

// writeBgParams writes bg color parameters (no separator, no terminator)
func writeBgParams(w *bufio.Writer, st Style, mode ColorMode) {
	if st.Attrs&AttrBg256 != 0 {
		// 256-color: 48;5;N
		w.Write(sgrBg256)
		writeInt(w, int(st.Bg.R))
	} else if mode == ColorModeTrueColor {
		// True color: 48;2;R;G;B
		w.Write(sgrBgRGB)
		writeInt(w, int(st.Bg.R))
		w.WriteByte(';')
		writeInt(w, int(st.Bg.G))
		w.WriteByte(';')
		writeInt(w, int(st.Bg.B))
	} else {
		// Quantized 256: 48;5;N
		w.Write(sgrBg256)
		writeInt(w, int(RGBTo256(st.Bg)))
	}
}
