package terminal

// Attr represents text attributes (bitmask)
type Attr uint16

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrInvisible Attr = 1 << 6
	AttrFg256     Attr = 1 << 7 // Fg.R is a 256-color palette index
	AttrBg256     Attr = 1 << 8 // Bg.R is a 256-color palette index
	AttrFgSet     Attr = 1 << 9  // foreground set; unset emits default (SGR 39)
	AttrBgSet     Attr = 1 << 10 // background set; unset emits default (SGR 49)
)

// AttrStyle masks only the style bits (excludes color mode and set flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse | AttrInvisible

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Style is the attribute record of a cell without its rune
type Style struct {
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// DefaultStyle is the terminal's default attribute state: no style bits,
// default foreground and background
var DefaultStyle = Style{}

// StyleOf extracts the style portion of a cell
func StyleOf(c Cell) Style {
	return Style{Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
}
