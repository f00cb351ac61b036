package sokoban

// Tile is the content of one grid cell, stored as its level-file character.
// The seven constants below are the canonical tiles. Any other rune is a
// foreign tile: the parser keeps it verbatim, boxes cannot be pushed onto it
// and the player erases it by walking over it.
type Tile rune

const (
	TileEmpty        Tile = ' '
	TileWall         Tile = '#'
	TileBox          Tile = '$'
	TileBoxOnGoal    Tile = '*'
	TilePlayer       Tile = '@'
	TilePlayerOnGoal Tile = '+'
	TileGoal         Tile = '.'
)

// Known reports whether t is one of the canonical tiles.
func (t Tile) Known() bool {
	switch t {
	case TileEmpty, TileWall, TileBox, TileBoxOnGoal, TilePlayer, TilePlayerOnGoal, TileGoal:
		return true
	}
	return false
}

// IsBox reports whether t holds a box.
func (t Tile) IsBox() bool {
	return t == TileBox || t == TileBoxOnGoal
}

// IsPlayer reports whether t holds the player.
func (t Tile) IsPlayer() bool {
	return t == TilePlayer || t == TilePlayerOnGoal
}

// IsGoal reports whether the terrain under t is a goal square.
func (t Tile) IsGoal() bool {
	return t == TileGoal || t == TileBoxOnGoal || t == TilePlayerOnGoal
}

// IsFree reports whether an occupant may move onto t.
func (t Tile) IsFree() bool {
	return t == TileEmpty || t == TileGoal
}

// withBox returns the tile after a box arrives on free terrain t.
func (t Tile) withBox() Tile {
	if t == TileGoal {
		return TileBoxOnGoal
	}
	return TileBox
}

// withPlayer returns the tile after the player arrives on t.
func (t Tile) withPlayer() Tile {
	if t == TileGoal {
		return TilePlayerOnGoal
	}
	return TilePlayer
}

// vacated returns the bare terrain left behind when the occupant of t moves away.
func (t Tile) vacated() Tile {
	if t.IsGoal() {
		return TileGoal
	}
	return TileEmpty
}

// String returns the level-file character for t.
func (t Tile) String() string {
	return string(rune(t))
}
