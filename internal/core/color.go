package core

// Color is the foreground of a screen cell. The platform maps each value to
// an ANSI 256-color code; ColorDefault keeps the terminal's own color.
type Color uint8

// The palette the field is drawn with.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorMagenta
	ColorOrange
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorMagenta:      "magenta",
	ColorOrange:       "orange",
	ColorBrightYellow: "bright-yellow",
	ColorBrightWhite:  "bright-white",
	ColorGray:         "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
