package core

// Color is the foreground color of a screen cell. The simulation picks from
// this fixed palette; the platform renderer decides what each value means on
// the actual terminal.
type Color uint8

// Palette used by the swing renderer: player and pickups on the bright end,
// rope and chrome on the dim end.
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
