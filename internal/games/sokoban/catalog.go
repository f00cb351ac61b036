package sokoban

import "fmt"

// LevelDef is a named level text as it comes from a catalog.
type LevelDef struct {
	Name string
	Text string
}

// Catalog is an ordered, read-only collection of levels.
type Catalog interface {
	// Count returns the number of levels.
	Count() int
	// Level returns the level at index i, or ErrInvalidLevelIndex.
	Level(i int) (LevelDef, error)
}

// Lookup fetches level i from c, checking the index first.
func Lookup(c Catalog, i int) (LevelDef, error) {
	n := c.Count()
	if i < 0 || i >= n {
		return LevelDef{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidLevelIndex, i, n)
	}
	return c.Level(i)
}
