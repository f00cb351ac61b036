package sokoban

import "github.com/vovakirdan/tui-sokoban/internal/core"

// Snapshot captures the full observable state of a session for tests and
// for printing levels.
type Snapshot struct {
	Name        string
	Index       int
	Width       int
	Height      int
	Rows        []string
	Player      core.Point
	BoxesOnGoal int
	BoxesTotal  int
	Complete    bool
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Name:        s.name,
		Index:       s.index,
		Width:       s.grid.Width(),
		Height:      s.grid.Height(),
		Rows:        s.grid.Rows(),
		Player:      s.player,
		BoxesOnGoal: s.boxesOnGoal,
		BoxesTotal:  s.boxesTotal,
		Complete:    s.Complete(),
	}
}

// Snapshot returns the state of the current level.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}
