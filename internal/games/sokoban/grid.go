package sokoban

import (
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Grid is a fixed-size rectangle of tiles stored row-major.
// Every access is bounds checked; the dimensions never change after creation.
type Grid struct {
	width  int
	height int
	cells  []Tile
}

// NewGrid creates a grid of the given size filled with TileEmpty.
func NewGrid(width, height int) *Grid {
	width, height = core.Max(width, 0), core.Max(height, 0)
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
	for i := range g.cells {
		g.cells[i] = TileEmpty
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p. ok is false when p is outside the grid.
func (g *Grid) At(p core.Point) (t Tile, ok bool) {
	if !g.InBounds(p) {
		return TileEmpty, false
	}
	return g.cells[p.Y*g.width+p.X], true
}

// Set stores t at p. Out-of-bounds positions are ignored.
func (g *Grid) Set(p core.Point, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y*g.width+p.X] = t
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Tile, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of tiles for which match returns true.
func (g *Grid) Count(match func(Tile) bool) int {
	n := 0
	for _, t := range g.cells {
		if match(t) {
			n++
		}
	}
	return n
}

// Rows returns each row as a string of level-file characters.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		sb.Reset()
		for _, t := range g.cells[y*g.width : (y+1)*g.width] {
			sb.WriteRune(rune(t))
		}
		rows[y] = sb.String()
	}
	return rows
}
