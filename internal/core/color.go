package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the renderer. The alien theme leans on greens and purples.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorPurple
)

// Fade returns a dimmer variant used for decaying platforms.
func (c Color) Fade() Color {
	switch c {
	case ColorOrange, ColorYellow, ColorBrightYellow:
		return ColorGray
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	default:
		return c
	}
}
