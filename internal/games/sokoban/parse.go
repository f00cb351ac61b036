package sokoban

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Layout is the result of parsing one level text.
type Layout struct {
	Grid      *Grid
	Player    core.Point // Position of the last player tile seen in row-major order
	HasPlayer bool
	Boxes     int // Box and BoxOnGoal tiles in the text
}

// Parse turns level text into a Layout.
//
// Rows are split at '\n'; a '\r' directly before a '\n' belongs to the
// terminator. A final row without a terminator still counts. The grid is as
// wide as the longest row and shorter rows are padded with TileEmpty.
// Characters that are not canonical tiles are kept as they are.
//
// Parse never fails. Use Layout.Validate to reject unplayable results.
func Parse(text string) Layout {
	rows := splitRows(text)

	width := 0
	for _, row := range rows {
		width = core.Max(width, utf8.RuneCountInString(row))
	}

	l := Layout{Grid: NewGrid(width, len(rows))}
	for y, row := range rows {
		x := 0
		for _, r := range row {
			t := Tile(r)
			p := core.Pt(x, y)
			l.Grid.Set(p, t)
			if t.IsBox() {
				l.Boxes++
			}
			if t.IsPlayer() {
				l.Player = p
				l.HasPlayer = true
			}
			x++
		}
	}
	return l
}

func splitRows(text string) []string {
	if text == "" {
		return nil
	}
	rows := strings.Split(text, "\n")
	// Every piece but the last was followed by '\n'.
	for i := 0; i < len(rows)-1; i++ {
		rows[i] = strings.TrimSuffix(rows[i], "\r")
	}
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// Validate reports whether the layout can back a game session.
func (l Layout) Validate() error {
	switch {
	case l.Grid == nil || l.Grid.Width() == 0 || l.Grid.Height() == 0:
		return fmt.Errorf("%w: empty grid", ErrDegenerateLevel)
	case !l.HasPlayer:
		return fmt.Errorf("%w: no player", ErrDegenerateLevel)
	}
	return nil
}
