package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

type solveCall struct {
	pack  string
	index int
	name  string
	runID string
}

type fakeRecorder struct {
	calls []solveCall
	err   error
}

func (f *fakeRecorder) RecordSolve(pack string, levelIndex int, levelName, runID string) (int64, error) {
	f.calls = append(f.calls, solveCall{pack, levelIndex, levelName, runID})
	return int64(len(f.calls)), f.err
}

func newTestModel(t *testing.T, rec SolveRecorder, defs ...sokoban.LevelDef) Model {
	t.Helper()
	game, err := sokoban.NewGame(levels.New("test", defs...), 0)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	return NewModel(game, Options{
		Pack:   "test",
		RunID:  "run-1",
		Store:  rec,
		Render: sokoban.RenderOptions{Title: sokoban.DefaultTitle},
		Width:  40,
		Height: 20,
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelSolveIsRecordedOnce(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, rec,
		sokoban.LevelDef{Name: "one", Text: "#@$.#"},
		sokoban.LevelDef{Name: "two", Text: "#.$@#"},
	)

	m, _ = press(t, m, runeKey('d'))
	if !m.game.Complete() {
		t.Fatal("level should be complete after pushing the box onto the goal")
	}
	if len(rec.calls) != 1 {
		t.Fatalf("RecordSolve called %d times, expected 1", len(rec.calls))
	}
	if got := rec.calls[0]; got != (solveCall{"test", 0, "one", "run-1"}) {
		t.Errorf("RecordSolve(%+v), expected test/0/one/run-1", got)
	}

	// A blocked move on a complete level is not a second solve.
	m, _ = press(t, m, runeKey('d'))
	if len(rec.calls) != 1 {
		t.Errorf("RecordSolve called %d times after blocked move, expected 1", len(rec.calls))
	}
	if r := m.Result(); r.Solved != 1 || len(r.Errors) != 0 {
		t.Errorf("Result() = %+v, expected one solve and no errors", r)
	}
}

func TestModelNavigation(t *testing.T) {
	m := newTestModel(t, nil,
		sokoban.LevelDef{Name: "one", Text: "#@$.#"},
		sokoban.LevelDef{Name: "two", Text: "#.$@#"},
	)

	m, _ = press(t, m, runeKey('n'))
	if m.game.Index() != 1 {
		t.Fatalf("after n, index = %d, expected 1", m.game.Index())
	}
	m, _ = press(t, m, runeKey('n'))
	if m.game.Index() != 1 {
		t.Errorf("n on an unsolved last level moved to %d", m.game.Index())
	}
	m, _ = press(t, m, runeKey('p'))
	if m.game.Index() != 0 {
		t.Errorf("after p, index = %d, expected 0", m.game.Index())
	}
}

func TestModelLoadErrorKeepsLevel(t *testing.T) {
	m := newTestModel(t, nil,
		sokoban.LevelDef{Name: "one", Text: "#@$.#"},
		sokoban.LevelDef{Name: "broken", Text: "#  #"},
	)

	m, cmd := press(t, m, runeKey('n'))
	if m.game.Index() != 0 {
		t.Errorf("failed load moved to level %d", m.game.Index())
	}
	if len(m.Result().Errors) != 1 {
		t.Fatalf("Errors = %v, expected one load error", m.Result().Errors)
	}
	if !errors.Is(m.Result().Errors[0], sokoban.ErrDegenerateLevel) {
		t.Errorf("error = %v, expected ErrDegenerateLevel", m.Result().Errors[0])
	}
	if cmd == nil {
		t.Error("a status line should schedule its expiry")
	}
	if !strings.Contains(m.View(), "Cannot open level") {
		t.Error("View() should show the load error")
	}

	stale, _ := m.Update(statusExpiredMsg{seq: m.statusSeq - 1})
	if stale.(Model).status == "" {
		t.Error("stale expiry should not clear the status")
	}
	cleared, _ := m.Update(statusExpiredMsg{seq: m.statusSeq})
	if cleared.(Model).status != "" {
		t.Error("matching expiry should clear the status")
	}
}

func TestModelRecordErrorIsCollected(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(t, rec, sokoban.LevelDef{Name: "one", Text: "#@$.#"})

	m, _ = press(t, m, runeKey('d'))
	r := m.Result()
	if r.Solved != 1 || len(r.Errors) != 1 {
		t.Errorf("Result() = %+v, expected the solve and its storage error", r)
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, nil, sokoban.LevelDef{Name: "one", Text: "#@$.#"})

	q, cmd := press(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if q.Result().Back || q.View() != "" {
		t.Error("quitting should not request back and should clear the view")
	}

	b, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !b.Result().Back {
		t.Error("esc should go back")
	}
}

func TestModelRedrawAndResize(t *testing.T) {
	m := newTestModel(t, nil, sokoban.LevelDef{Name: "one", Text: "#@$.#"})

	m, cmd := press(t, m, runeKey('c'))
	if cmd == nil {
		t.Error("c should request a screen clear")
	}
	if m.game.Session().Player().X != 1 {
		t.Error("redraw should not move the player")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	m = next.(Model)
	if m.screen.Width() != 20 || m.screen.Height() != 4 {
		t.Errorf("screen = %dx%d, expected 20x4", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "too small") {
		t.Error("View() on a tiny screen should ask for a resize")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, nil, sokoban.LevelDef{Name: "one", Text: "#@$.#"})
	view := m.View()
	for _, want := range []string{sokoban.DefaultTitle, "Level: one (1/1)", "Boxes: 0/1"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
