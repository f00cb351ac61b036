// Package levels provides the level catalogs Sokoban plays from: the
// built-in packs bundled into the binary and packs loaded from a directory.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

// Static is an in-memory catalog. It is read-only after construction and
// safe to share between games.
type Static struct {
	title  string
	levels []sokoban.LevelDef
}

// New creates a catalog holding defs in the given order.
func New(title string, defs ...sokoban.LevelDef) *Static {
	levels := make([]sokoban.LevelDef, len(defs))
	copy(levels, defs)
	return &Static{title: title, levels: levels}
}

// Title returns the pack title.
func (s *Static) Title() string { return s.title }

// Count returns the number of levels.
func (s *Static) Count() int { return len(s.levels) }

// Level returns level i.
func (s *Static) Level(i int) (sokoban.LevelDef, error) {
	if i < 0 || i >= len(s.levels) {
		return sokoban.LevelDef{}, fmt.Errorf("%w: %d", sokoban.ErrInvalidLevelIndex, i)
	}
	return s.levels[i], nil
}

// Names returns the level names in catalog order.
func (s *Static) Names() []string {
	names := make([]string, len(s.levels))
	for i, l := range s.levels {
		names[i] = l.Name
	}
	return names
}

// IndexOf returns the index of the level with the given name, or -1.
func (s *Static) IndexOf(name string) int {
	for i, l := range s.levels {
		if l.Name == name {
			return i
		}
	}
	return -1
}
