package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Session is the live state of one level being played.
// It owns its grid exclusively; nothing outside the session mutates it.
type Session struct {
	name        string
	index       int
	grid        *Grid
	player      core.Point
	boxesTotal  int
	boxesOnGoal int
}

// MoveResult describes what a single move attempt did.
type MoveResult struct {
	Moved    bool       // Player changed position
	Pushed   bool       // A box was pushed one cell
	Box      core.Point // New box position when Pushed
	Complete bool       // Level is complete after the move
}

// NewSession parses def and starts a session on it.
// index is the catalog position of def and is only carried for display.
//
// Levels with an empty grid or without a player fail with ErrDegenerateLevel.
// When the text holds more than one player tile the last one in row-major
// order is kept and the others are reduced to their terrain.
func NewSession(def LevelDef, index int) (*Session, error) {
	l := Parse(def.Text)
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", def.Name, err)
	}

	for y := 0; y < l.Grid.Height(); y++ {
		for x := 0; x < l.Grid.Width(); x++ {
			p := core.Pt(x, y)
			if t, _ := l.Grid.At(p); t.IsPlayer() && p != l.Player {
				l.Grid.Set(p, t.vacated())
			}
		}
	}

	return &Session{
		name:        def.Name,
		index:       index,
		grid:        l.Grid,
		player:      l.Player,
		boxesTotal:  l.Boxes,
		boxesOnGoal: l.Grid.Count(func(t Tile) bool { return t == TileBoxOnGoal }),
	}, nil
}

// Move attempts to move the player one cell in direction d, pushing a box
// if one is in the way. Rejected moves leave the session unchanged and
// report Moved == false.
func (s *Session) Move(d Direction) MoveResult {
	if !d.Valid() {
		return MoveResult{Complete: s.Complete()}
	}
	delta := d.Delta()
	target := s.player.Add(delta)

	dest, ok := s.grid.At(target)
	if !ok || dest == TileWall {
		return MoveResult{Complete: s.Complete()}
	}

	res := MoveResult{}
	if dest.IsBox() {
		beyond := target.Add(delta)
		behind, ok := s.grid.At(beyond)
		if !ok || !behind.IsFree() {
			return MoveResult{Complete: s.Complete()}
		}

		s.grid.Set(beyond, behind.withBox())
		if behind == TileGoal {
			s.boxesOnGoal++
		}
		if dest == TileBoxOnGoal {
			s.boxesOnGoal--
		}
		// The box leaves its terrain behind; the player steps onto it below.
		dest = dest.vacated()
		s.grid.Set(target, dest)
		res.Pushed = true
		res.Box = beyond
	}

	here, _ := s.grid.At(s.player)
	s.grid.Set(s.player, here.vacated())
	// Foreign terrain is walked over and does not survive.
	s.grid.Set(target, dest.withPlayer())
	s.player = target

	res.Moved = true
	res.Complete = s.Complete()
	return res
}

// Name returns the level name.
func (s *Session) Name() string { return s.name }

// Index returns the catalog position of the level.
func (s *Session) Index() int { return s.index }

// Width returns the grid width.
func (s *Session) Width() int { return s.grid.Width() }

// Height returns the grid height.
func (s *Session) Height() int { return s.grid.Height() }

// Player returns the player position.
func (s *Session) Player() core.Point { return s.player }

// BoxesTotal returns the number of boxes in the level.
func (s *Session) BoxesTotal() int { return s.boxesTotal }

// BoxesOnGoal returns the number of boxes currently on goal squares.
func (s *Session) BoxesOnGoal() int { return s.boxesOnGoal }

// Tile returns the tile at (x, y); out-of-bounds cells read as TileEmpty.
func (s *Session) Tile(x, y int) Tile {
	t, _ := s.grid.At(core.Pt(x, y))
	return t
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// Degenerate reports whether the level has no boxes to place.
func (s *Session) Degenerate() bool {
	return s.boxesTotal == 0
}

// Complete reports whether every box rests on a goal.
// A level without boxes is never complete.
func (s *Session) Complete() bool {
	return s.boxesTotal > 0 && s.boxesOnGoal == s.boxesTotal
}
