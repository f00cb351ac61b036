package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// DefaultTitle is shown under the map unless RenderOptions overrides it.
const DefaultTitle = "TTY SOKOBAN"

// Status lines drawn below the map.
const (
	completeMessage = "Level complete! Press 'n' for next level."
	completeShort   = "Complete! 'n' for next"
	legendMoves     = "Arrows/WASD/hjkl move"
	legendKeys      = "[R]estart, [N]ext, [P]rev, [Q]uit, [C]lear"
)

// RenderOptions selects between presentation variants of the same engine.
type RenderOptions struct {
	ASCII  bool   // ASCII wall glyphs instead of box drawing
	Color  bool   // Color pairs and attributes
	Legend bool   // Key legend when there is room for it
	Title  string // Status title; empty hides the line
}

// DefaultRenderOptions returns the full color, box-drawing presentation.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Color: true, Legend: true, Title: DefaultTitle}
}

// Glyph is what one tile looks like on screen.
type Glyph struct {
	Rune  rune
	Style core.Style
}

// WallMask records which orthogonal neighbours of a wall are walls too.
type WallMask uint8

const (
	WallUp WallMask = 1 << iota
	WallDown
	WallLeft
	WallRight
)

var boxWalls = [16]rune{
	0:                                        '┼',
	WallUp:                                   '│',
	WallDown:                                 '│',
	WallUp | WallDown:                        '│',
	WallLeft:                                 '─',
	WallRight:                                '─',
	WallLeft | WallRight:                     '─',
	WallUp | WallLeft:                        '┘',
	WallUp | WallRight:                       '└',
	WallDown | WallLeft:                      '┐',
	WallDown | WallRight:                     '┌',
	WallUp | WallDown | WallLeft:             '┤',
	WallUp | WallDown | WallRight:            '├',
	WallUp | WallLeft | WallRight:            '┴',
	WallDown | WallLeft | WallRight:          '┬',
	WallUp | WallDown | WallLeft | WallRight: '┼',
}

var asciiWalls = [16]rune{
	0:                                        '+',
	WallUp:                                   '|',
	WallDown:                                 '|',
	WallUp | WallDown:                        '|',
	WallLeft:                                 '-',
	WallRight:                                '-',
	WallLeft | WallRight:                     '-',
	WallUp | WallLeft:                        '+',
	WallUp | WallRight:                       '+',
	WallDown | WallLeft:                      '+',
	WallDown | WallRight:                     '+',
	WallUp | WallDown | WallLeft:             '+',
	WallUp | WallDown | WallRight:            '+',
	WallUp | WallLeft | WallRight:            '+',
	WallDown | WallLeft | WallRight:          '+',
	WallUp | WallDown | WallLeft | WallRight: '+',
}

// tileGlyphs holds the display rune and color style of every non-wall tile.
var tileGlyphs = map[Tile]Glyph{
	TileEmpty:        {' ', core.Style{Fg: core.ColorBlack, Bg: core.ColorYellow}},
	TilePlayer:       {'@', core.Style{Fg: core.ColorBlack, Bg: core.ColorGreen, Attr: core.AttrBold}},
	TilePlayerOnGoal: {'@', core.Style{Fg: core.ColorBlack, Bg: core.ColorGreen, Attr: core.AttrBold}},
	TileBox:          {'#', core.Style{Fg: core.ColorBlack, Bg: core.ColorRed, Attr: core.AttrBold}},
	TileBoxOnGoal:    {'0', core.Style{Fg: core.ColorWhite, Bg: core.ColorMagenta, Attr: core.AttrBold}},
	TileGoal:         {'O', core.Style{Fg: core.ColorRed, Bg: core.ColorCyan, Attr: core.AttrBold}},
}

var (
	wallStyle    = core.Style{Fg: core.ColorBlue, Bg: core.ColorWhite, Attr: core.AttrReverse}
	defaultStyle = core.Style{Fg: core.ColorWhite, Bg: core.ColorBlack}
)

// GlyphFor returns the glyph of tile t. mask is only consulted for walls.
// Foreign tiles are shown as their own character.
func GlyphFor(t Tile, mask WallMask, opts RenderOptions) Glyph {
	var g Glyph
	switch {
	case t == TileWall:
		table := &boxWalls
		if opts.ASCII {
			table = &asciiWalls
		}
		g = Glyph{Rune: table[mask&0xF], Style: wallStyle}
	default:
		var ok bool
		if g, ok = tileGlyphs[t]; !ok {
			g = Glyph{Rune: rune(t), Style: defaultStyle}
		}
	}
	if !opts.Color {
		g.Style = core.Style{}
	}
	return g
}

// WallMaskAt returns the wall neighbourhood of (x, y) in s.
// Cells outside the grid never count as walls.
func (s *Session) WallMaskAt(x, y int) WallMask {
	var m WallMask
	if s.Tile(x, y-1) == TileWall {
		m |= WallUp
	}
	if s.Tile(x, y+1) == TileWall {
		m |= WallDown
	}
	if s.Tile(x-1, y) == TileWall {
		m |= WallLeft
	}
	if s.Tile(x+1, y) == TileWall {
		m |= WallRight
	}
	return m
}

// Origin returns where the top-left cell of the map is drawn on a screen
// of the given size: centered, with at least two rows above it.
func (s *Session) Origin(screenW, screenH int) core.Point {
	return core.Pt(
		core.Max((screenW-s.Width())/2, 0),
		core.Max((screenH-s.Height())/2, 2),
	)
}

// Fits reports whether the map and its status lines fit on the screen.
func (s *Session) Fits(screenW, screenH int) bool {
	o := s.Origin(screenW, screenH)
	return o.X+s.Width() <= screenW && o.Y+s.Height()+3 < screenH
}

// Render draws the current level and its status lines.
func (g *Game) Render(dst *core.Screen, opts RenderOptions) {
	dst.Clear()
	s := g.session
	w, h := dst.Width(), dst.Height()

	if !s.Fits(w, h) {
		renderTooSmall(dst)
		return
	}

	o := s.Origin(w, h)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			gl := GlyphFor(s.Tile(x, y), s.WallMaskAt(x, y), opts)
			dst.SetCell(o.X+x, o.Y+y, core.Cell{Rune: gl.Rune, Style: gl.Style})
		}
	}

	var bold, standout core.Style
	if opts.Color {
		bold = core.Style{Attr: core.AttrBold}
		standout = core.Style{Attr: core.AttrStandout}
	}

	base := o.Y + s.Height()
	if opts.Title != "" {
		drawStatus(dst, o.X, base+1, opts.Title, bold)
	}
	drawStatus(dst, o.X, base+2, fmt.Sprintf("Level: %s (%d/%d)", s.Name(), g.index+1, g.Total()), bold)
	if s.Complete() {
		msg := completeMessage
		if utf8.RuneCountInString(msg) > w {
			msg = completeShort
		}
		drawStatus(dst, o.X, base+3, msg, standout)
	} else {
		drawStatus(dst, o.X, base+3, fmt.Sprintf("Boxes: %d/%d", s.BoxesOnGoal(), s.BoxesTotal()), bold)
	}

	if opts.Legend && base+6 < h && utf8.RuneCountInString(legendKeys) <= w {
		drawStatus(dst, o.X, base+4, legendMoves, core.Style{})
		drawStatus(dst, o.X, base+5, legendKeys, core.Style{})
	}
}

// statusX returns the column of a status line: aligned with the map at x,
// shifted left as far as needed to end on the screen, never left of 0.
func statusX(x, screenW int, text string) int {
	return core.Max(core.Min(x, screenW-utf8.RuneCountInString(text)), 0)
}

func drawStatus(dst *core.Screen, x, y int, text string, style core.Style) {
	dst.DrawStyledText(statusX(x, dst.Width(), text), y, text, style)
}

func renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	hint := "Please resize terminal"
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg, core.Style{})
	if utf8.RuneCountInString(hint) <= dst.Width() {
		dst.DrawTextCentered(y+1, hint, core.Style{})
	}
}
