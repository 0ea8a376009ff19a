package terminal

import (
	"bufio"
	"bytes"
	"testing"
)

// sgr renders one WriteStyle transition to a string
func sgr(cur, next Style, mode ColorMode) string {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	WriteStyle(w, cur, next, mode)
	w.Flush()
	return buf.String()
}

func TestStyleEqual(t *testing.T) {
	red := RGB{R: 255}
	blue := RGB{B: 255}

	tests := []struct {
		name string
		a, b Style
		want bool
	}{
		{"Zero styles", Style{}, Style{}, true},
		{"Differing style bits", Style{Attrs: AttrBold}, Style{}, false},
		{"Same bits same colors", Style{Fg: red, Attrs: AttrBold | AttrFgSet}, Style{Fg: red, Attrs: AttrBold | AttrFgSet}, true},
		{"Set fg differs", Style{Fg: red, Attrs: AttrFgSet}, Style{Fg: blue, Attrs: AttrFgSet}, false},
		{"Unset fg ignored", Style{Fg: red}, Style{Fg: blue}, true},
		{"Set flag asymmetry", Style{Fg: red, Attrs: AttrFgSet}, Style{Fg: red}, false},
		{"Palette flag differs", Style{Fg: RGB{R: 21}, Attrs: AttrFgSet | AttrFg256}, Style{Fg: RGB{R: 21}, Attrs: AttrFgSet}, false},
		{"Unset bg ignored", Style{Bg: red}, Style{Bg: blue}, true},
		{"Set bg differs", Style{Bg: red, Attrs: AttrBgSet}, Style{Bg: blue, Attrs: AttrBgSet}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StyleEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestWriteStyleNoChange(t *testing.T) {
	st := Style{Fg: RGB{R: 10, G: 20, B: 30}, Attrs: AttrBold | AttrFgSet}
	if out := sgr(st, st, ColorModeTrueColor); out != "" {
		t.Errorf("Expected no output for equal styles, got %q", out)
	}
}

func TestWriteStyleAddsBits(t *testing.T) {
	tests := []struct {
		name string
		cur  Style
		next Style
		want string
	}{
		{"Bold from default", Style{}, Style{Attrs: AttrBold}, "\x1b[1m"},
		{"Underline on top of bold", Style{Attrs: AttrBold}, Style{Attrs: AttrBold | AttrUnderline}, "\x1b[4m"},
		{"Two bits at once", Style{}, Style{Attrs: AttrDim | AttrReverse}, "\x1b[2;7m"},
		{"Invisible", Style{}, Style{Attrs: AttrInvisible}, "\x1b[8m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := sgr(tt.cur, tt.next, ColorModeTrueColor); out != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestWriteStyleResetOnBitRemoval(t *testing.T) {
	red := RGB{R: 255}

	tests := []struct {
		name string
		cur  Style
		next Style
		want string
	}{
		{
			"Dropped bit keeps survivor",
			Style{Attrs: AttrBold | AttrUnderline},
			Style{Attrs: AttrBold},
			"\x1b[0;1m",
		},
		{
			"Reset re-emits set color",
			Style{Fg: red, Attrs: AttrBold | AttrFgSet},
			Style{Fg: red, Attrs: AttrFgSet},
			"\x1b[0;38;2;255;0;0m",
		},
		{
			"All bits off",
			Style{Attrs: AttrBold | AttrItalic},
			Style{},
			"\x1b[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := sgr(tt.cur, tt.next, ColorModeTrueColor); out != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestWriteStyleColors(t *testing.T) {
	red := RGB{R: 255}
	green := RGB{G: 255}
	blue := RGB{B: 255}

	tests := []struct {
		name string
		cur  Style
		next Style
		mode ColorMode
		want string
	}{
		{"Truecolor fg", Style{}, Style{Fg: red, Attrs: AttrFgSet}, ColorModeTrueColor, "\x1b[38;2;255;0;0m"},
		{"Truecolor bg", Style{}, Style{Bg: blue, Attrs: AttrBgSet}, ColorModeTrueColor, "\x1b[48;2;0;0;255m"},
		{"Truecolor both", Style{}, Style{Fg: red, Bg: blue, Attrs: AttrFgSet | AttrBgSet}, ColorModeTrueColor, "\x1b[38;2;255;0;0;48;2;0;0;255m"},
		{"Fg change only", Style{Fg: red, Attrs: AttrFgSet}, Style{Fg: green, Attrs: AttrFgSet}, ColorModeTrueColor, "\x1b[38;2;0;255;0m"},
		{"Quantized fg in 256 mode", Style{}, Style{Fg: red, Attrs: AttrFgSet}, ColorMode256, "\x1b[38;5;196m"},
		{"Palette index via Fg256", Style{}, Style{Fg: RGB{R: 42}, Attrs: AttrFgSet | AttrFg256}, ColorModeTrueColor, "\x1b[38;5;42m"},
		{"Palette index via Bg256", Style{}, Style{Bg: RGB{R: 205}, Attrs: AttrBgSet | AttrBg256}, ColorMode256, "\x1b[48;5;205m"},
		{"Fg back to default", Style{Fg: red, Attrs: AttrFgSet}, Style{}, ColorModeTrueColor, "\x1b[39m"},
		{"Bg back to default", Style{Bg: blue, Attrs: AttrBgSet}, Style{}, ColorModeTrueColor, "\x1b[49m"},
		{"Bits and color combined", Style{}, Style{Fg: red, Attrs: AttrBold | AttrFgSet}, ColorModeTrueColor, "\x1b[1;38;2;255;0;0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := sgr(tt.cur, tt.next, tt.mode); out != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestWriteStyleReturnsNext(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	next := Style{Fg: RGB{R: 1, G: 2, B: 3}, Attrs: AttrBold | AttrFgSet}
	got := WriteStyle(w, Style{}, next, ColorModeTrueColor)
	if !StyleEqual(got, next) {
		t.Errorf("Expected returned style to equal next, got %+v", got)
	}
}
