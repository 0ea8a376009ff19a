package terminal

import "strings"

// Named TrueColor palette. Standard color names where RGB closely
// matches (CSS, X11), descriptive compound names otherwise.
// Ordered dark-to-light within each hue group.

var (
	// --- Achromatic ---
	Black     = RGB{0, 0, 0}
	Charcoal  = RGB{5, 5, 5}
	Gunmetal  = RGB{26, 27, 38} // Blue-tinted near-black
	DimGray   = RGB{55, 55, 55}
	DarkGray  = RGB{60, 60, 60}
	SlateGray = RGB{80, 80, 90} // Cool-tinted
	Gray      = RGB{120, 120, 120}
	Silver    = RGB{180, 180, 180}
	LightGray = RGB{200, 200, 200}
	White     = RGB{255, 255, 255}

	// --- Red ---
	Oxblood    = RGB{100, 20, 20}
	Brick      = RGB{180, 40, 40}
	Vermilion  = RGB{227, 66, 82}
	Red        = RGB{255, 0, 0}
	Coral      = RGB{255, 80, 80}
	Salmon     = RGB{255, 100, 100}
	MistyRose  = RGB{255, 200, 200}

	// --- Orange / Yellow ---
	Rust        = RGB{180, 60, 20}
	Amber       = RGB{180, 120, 0}
	OrangeRed   = RGB{255, 69, 0}
	TigerOrange = RGB{255, 140, 0}
	Orange      = RGB{255, 165, 0}
	DarkGold    = RGB{200, 150, 0}
	Gold        = RGB{255, 215, 0}
	Yellow      = RGB{255, 255, 0}
	Cream       = RGB{255, 255, 200}

	// --- Green ---
	DeepForest  = RGB{25, 80, 35}
	DarkGreen   = RGB{15, 130, 15}
	ForestGreen = RGB{34, 139, 34}
	SeaGreen    = RGB{60, 180, 80}
	LimeGreen   = RGB{50, 205, 50}
	Lime        = RGB{0, 255, 0}
	LightGreen  = RGB{144, 238, 144}
	MintGreen   = RGB{100, 220, 130}

	// --- Cyan / Teal ---
	Teal          = RGB{0, 139, 139}
	DarkTurquoise = RGB{0, 206, 209}
	Cyan          = RGB{0, 255, 255}
	PaleCyan      = RGB{200, 255, 255}

	// --- Blue ---
	DeepNavy     = RGB{15, 25, 50}
	NavyBlue     = RGB{30, 60, 120}
	SteelBlue    = RGB{60, 100, 180}
	RoyalBlue    = RGB{65, 105, 225}
	Cornflower   = RGB{80, 130, 255}
	DodgerBlue   = RGB{40, 180, 255}
	LightSkyBlue = RGB{135, 206, 250}
	Blue         = RGB{0, 0, 255}

	// --- Purple / Pink ---
	DeepPurple   = RGB{60, 20, 80}
	DarkViolet   = RGB{120, 40, 180}
	MediumPurple = RGB{170, 100, 210}
	Orchid       = RGB{200, 120, 220}
	HotPink      = RGB{255, 140, 200}
	Pink         = RGB{255, 192, 203}
	Magenta      = RGB{255, 0, 255}
)

// colorNames maps lowercase names to palette entries for config lookup
var colorNames = map[string]RGB{
	"black":     Black,
	"charcoal":  Charcoal,
	"gunmetal":  Gunmetal,
	"dimgray":   DimGray,
	"darkgray":  DarkGray,
	"slategray": SlateGray,
	"gray":      Gray,
	"silver":    Silver,
	"lightgray": LightGray,
	"white":     White,

	"oxblood":   Oxblood,
	"brick":     Brick,
	"vermilion": Vermilion,
	"red":       Red,
	"coral":     Coral,
	"salmon":    Salmon,
	"mistyrose": MistyRose,

	"rust":        Rust,
	"amber":       Amber,
	"orangered":   OrangeRed,
	"tigerorange": TigerOrange,
	"orange":      Orange,
	"darkgold":    DarkGold,
	"gold":        Gold,
	"yellow":      Yellow,
	"cream":       Cream,

	"deepforest":  DeepForest,
	"darkgreen":   DarkGreen,
	"forestgreen": ForestGreen,
	"seagreen":    SeaGreen,
	"limegreen":   LimeGreen,
	"lime":        Lime,
	"lightgreen":  LightGreen,
	"mintgreen":   MintGreen,

	"teal":          Teal,
	"darkturquoise": DarkTurquoise,
	"cyan":          Cyan,
	"palecyan":      PaleCyan,

	"deepnavy":     DeepNavy,
	"navyblue":     NavyBlue,
	"steelblue":    SteelBlue,
	"royalblue":    RoyalBlue,
	"cornflower":   Cornflower,
	"dodgerblue":   DodgerBlue,
	"lightskyblue": LightSkyBlue,
	"blue":         Blue,

	"deeppurple":   DeepPurple,
	"darkviolet":   DarkViolet,
	"mediumpurple": MediumPurple,
	"orchid":       Orchid,
	"hotpink":      HotPink,
	"pink":         Pink,
	"magenta":      Magenta,
}

// ColorByName returns the palette color for a name, case-insensitive.
// Returns false for unknown names.
func ColorByName(name string) (RGB, bool) {
	c, ok := colorNames[strings.ToLower(name)]
	return c, ok
}

// Cube256 returns the xterm 256-palette index for an RGB cube coordinate.
// r, g, b must be in [0,5]. Values outside that range are clamped.
func Cube256(r, g, b uint8) uint8 {
	if r > 5 {
		r = 5
	}
	if g > 5 {
		g = 5
	}
	if b > 5 {
		b = 5
	}
	return 16 + 36*r + 6*g + b
}

// CubeRGB256 returns the (r, g, b) cube coordinates for a 256-palette color cube index.
// Index must be in [16,231]. Returns (0,0,0) for out-of-range indices.
func CubeRGB256(index uint8) (r, g, b uint8) {
	if index < 16 || index > 231 {
		return 0, 0, 0
	}
	n := index - 16
	r = n / 36
	g = (n % 36) / 6
	b = n % 6
	return r, g, b
}

// Gray256 returns the xterm 256-palette index for a grayscale step.
// step must be in [0,23] (maps to indices 232-255, levels 8-238).
func Gray256(step uint8) uint8 {
	if step > 23 {
		step = 23
	}
	return 232 + step
}
