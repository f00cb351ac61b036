package core

// Color represents a terminal color for a screen cell.
// ColorDefault leaves the terminal's own color in place.
type Color uint8

// Colors available to cell styles. The first eight map to the classic ANSI
// palette used by curses color pairs.
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
	ColorGray
)

// Attr is a set of text attributes applied to a cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrStandout
)

// Has reports whether all bits of flag are set.
func (a Attr) Has(flag Attr) bool {
	return a&flag == flag
}

// Style describes how a cell is painted.
// The zero value is the terminal default.
type Style struct {
	Fg   Color
	Bg   Color
	Attr Attr
}

// IsZero reports whether the style carries no color or attribute.
func (s Style) IsZero() bool {
	return s == Style{}
}
