package core

// Color is a terminal foreground colour for a screen cell. The platform maps
// each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the games and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// dimmed pairs each bright colour with its normal counterpart.
var dimmed = map[Color]Color{
	ColorBrightRed:     ColorRed,
	ColorBrightGreen:   ColorGreen,
	ColorBrightYellow:  ColorYellow,
	ColorBrightBlue:    ColorBlue,
	ColorBrightMagenta: ColorMagenta,
	ColorBrightCyan:    ColorCyan,
	ColorBrightWhite:   ColorWhite,
}

// Shade returns c for objects nearer than far and a dimmer colour beyond it.
// Colours without a dim variant fade to gray.
func Shade(c Color, depth, far float64) Color {
	if depth <= far {
		return c
	}
	if d, ok := dimmed[c]; ok {
		return d
	}
	return ColorGray
}
