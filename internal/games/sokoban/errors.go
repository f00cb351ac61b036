package sokoban

import "errors"

var (
	// ErrInvalidLevelIndex is returned when a level index is outside the catalog.
	ErrInvalidLevelIndex = errors.New("level index out of range")

	// ErrEmptyCatalog is returned when a catalog holds no levels.
	ErrEmptyCatalog = errors.New("level catalog is empty")

	// ErrDegenerateLevel is returned for levels that cannot be played:
	// zero width, zero height, or no player tile.
	ErrDegenerateLevel = errors.New("level is not playable")
)
