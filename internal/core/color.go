package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette shared by both games.
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
	ColorBone   // skeleton blocks
	ColorPurple // stone walls, night sky accents

	colorCount
)

// ansiCodes holds the 256-color code of every palette entry. The first
// sixteen entries follow the terminal's own palette.
var ansiCodes = [colorCount]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorBone:          "187",
	ColorPurple:        "97",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
// Unknown colors render as the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Palette returns every color in palette order.
func Palette() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// TrollPalette holds the skin tones a troll can be drawn with.
var TrollPalette = []Color{ColorGreen, ColorBrightGreen, ColorOrange, ColorMagenta}
