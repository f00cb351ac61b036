package sokoban

import (
	"fmt"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Game drives play through a catalog: it owns the current level index and
// the session for it, and applies player actions one at a time.
type Game struct {
	catalog Catalog
	index   int
	session *Session
}

// Outcome reports what an applied action changed.
type Outcome struct {
	Moved  bool // Player moved
	Pushed bool // A box moved
	Solved bool // This action completed the level
	Loaded bool // A level was (re)loaded
}

// NewGame starts play at level start of c.
func NewGame(c Catalog, start int) (*Game, error) {
	if c == nil || c.Count() == 0 {
		return nil, ErrEmptyCatalog
	}
	g := &Game{catalog: c}
	if err := g.load(start); err != nil {
		return nil, err
	}
	return g, nil
}

// load replaces the current session with a fresh one for level i.
// On failure the previous session stays in place.
func (g *Game) load(i int) error {
	def, err := Lookup(g.catalog, i)
	if err != nil {
		return err
	}
	s, err := NewSession(def, i)
	if err != nil {
		return err
	}
	g.index = i
	g.session = s
	return nil
}

// Apply performs one action.
// Movement never fails. Navigation errors leave the current level untouched.
func (g *Game) Apply(a core.Action) (Outcome, error) {
	if d, ok := DirectionFor(a); ok {
		wasComplete := g.session.Complete()
		r := g.session.Move(d)
		return Outcome{
			Moved:  r.Moved,
			Pushed: r.Pushed,
			Solved: r.Complete && !wasComplete,
		}, nil
	}

	switch a {
	case core.ActionRestart:
		return g.loadOutcome(g.index)
	case core.ActionNextLevel:
		if !g.CanNext() {
			return Outcome{}, nil
		}
		return g.loadOutcome((g.index + 1) % g.Total())
	case core.ActionPrevLevel:
		if !g.CanPrev() {
			return Outcome{}, nil
		}
		return g.loadOutcome(g.index - 1)
	}
	return Outcome{}, nil
}

func (g *Game) loadOutcome(i int) (Outcome, error) {
	if err := g.load(i); err != nil {
		return Outcome{}, fmt.Errorf("load level %d: %w", i+1, err)
	}
	return Outcome{Loaded: true}, nil
}

// Jump loads level i directly.
func (g *Game) Jump(i int) error {
	if err := g.load(i); err != nil {
		return fmt.Errorf("load level %d: %w", i+1, err)
	}
	return nil
}

// CanNext reports whether NextLevel would change level: either a later
// level exists or the current one is complete (then play wraps around).
func (g *Game) CanNext() bool {
	return g.index < g.Total()-1 || g.session.Complete()
}

// CanPrev reports whether an earlier level exists.
func (g *Game) CanPrev() bool {
	return g.index > 0
}

// Session returns the session of the current level.
func (g *Game) Session() *Session { return g.session }

// Index returns the zero-based index of the current level.
func (g *Game) Index() int { return g.index }

// Total returns the number of levels in the catalog.
func (g *Game) Total() int { return g.catalog.Count() }

// LevelName returns the name of the current level.
func (g *Game) LevelName() string { return g.session.Name() }

// Complete reports whether the current level is solved.
func (g *Game) Complete() bool { return g.session.Complete() }
