package core

// Color is a logical foreground color for a screen cell.
// The platform layer maps it to an ANSI color.
type Color uint8

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
	ColorBrightBlue
	ColorBrightMagenta
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorHighlight // cursor / hint background
)
