package core

import "strings"

// Color represents a named palette colour.
// Backends map it to whatever their surface understands (ANSI codes, RGBA).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorPink
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorPink:    "pink",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lowercase palette name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// RGB returns the 8-bit channel values used by pixel backends.
// The values follow the classic arcade palette.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack, ColorDefault:
		return 0, 0, 0
	case ColorRed:
		return 255, 0, 0
	case ColorGreen:
		return 0, 200, 0
	case ColorYellow:
		return 255, 255, 0
	case ColorBlue:
		return 0, 0, 255
	case ColorMagenta:
		return 255, 0, 255
	case ColorCyan:
		return 0, 255, 255
	case ColorWhite:
		return 255, 255, 255
	case ColorPink:
		return 255, 192, 203
	case ColorOrange:
		return 255, 165, 0
	case ColorGray:
		return 128, 128, 128
	default:
		return 255, 255, 255
	}
}

// ParseColor resolves a palette name (case-insensitive, "grey" accepted).
func ParseColor(name string) (Color, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "grey" {
		n = "gray"
	}
	for c, cn := range colorNames {
		if cn == n {
			return c, true
		}
	}
	return ColorDefault, false
}
