package core

// Color is a foreground color for a screen cell. The platform layer maps
// these to concrete terminal styles; games only pick from the palette.
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
	ColorGray
)
