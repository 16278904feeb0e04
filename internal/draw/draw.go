// Package draw renders logical board coordinates to an ANSI terminal using
// colored half-block characters.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is an entry of the 256-color terminal palette.
// The zero value means the terminal's default color.
type Color uint16

// Color256 returns the palette entry with index i.
func Color256(i uint8) Color {
	return Color(i) + 1
}

// Palette colors closest to the board's CSS colors.
var (
	ColorDefault    Color
	ColorBlack      = Color256(16)
	ColorWhite      = Color256(231)
	ColorRed        = Color256(196)
	ColorGreen      = Color256(28)  // #008700
	ColorDarkGreen  = Color256(22)  // #005f00
	ColorLightGreen = Color256(120) // #87ff87
	ColorYellow     = Color256(226)
)

// ANSI attribute sequences.
const (
	ColorReset = "\033[0m"
	attrBold   = "\033[1m"
	fgDefault  = "\033[39m"
	bgDefault  = "\033[49m"
)

// Index returns the palette index and whether the color is set.
func (c Color) Index() (uint8, bool) {
	if c == ColorDefault {
		return 0, false
	}
	return uint8(c - 1), true
}

// appendFg appends the SGR sequence selecting c as foreground.
func appendFg(dst []byte, c Color) []byte {
	idx, ok := c.Index()
	if !ok {
		return append(dst, fgDefault...)
	}
	dst = append(dst, "\033[38;5;"...)
	dst = strconv.AppendInt(dst, int64(idx), 10)
	return append(dst, 'm')
}

// appendBg appends the SGR sequence selecting c as background.
func appendBg(dst []byte, c Color) []byte {
	idx, ok := c.Index()
	if !ok {
		return append(dst, bgDefault...)
	}
	dst = append(dst, "\033[48;5;"...)
	dst = strconv.AppendInt(dst, int64(idx), 10)
	return append(dst, 'm')
}

// Font describes how centered text is drawn. Terminals cannot scale text,
// so sizes at or above LargeFont are letter-spaced instead.
type Font struct {
	Size       float64
	Bold       bool
	Color      Color
	Background Color
}

// LargeFont is the size from which text is letter-spaced.
const LargeFont = 32.0

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
