package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

type fakeProgress struct {
	solves map[string][]storage.Solve
	err    error
}

func (f fakeProgress) RecentSolves(pack string, limit int) ([]storage.Solve, error) {
	return f.solves[pack], f.err
}

func (f fakeProgress) GetPackStats(pack string) (*storage.PackStats, error) {
	names := make(map[string]bool)
	for _, s := range f.solves[pack] {
		names[s.LevelName] = true
	}
	return &storage.PackStats{Pack: pack, Solves: len(f.solves[pack]), Levels: len(names)}, nil
}

var testPacks = []registry.PackInfo{
	{ID: "classic", Title: "Classic"},
	{ID: "tutorial", Title: "Tutorial"},
}

func TestProgressShowsCurrentPack(t *testing.T) {
	src := fakeProgress{solves: map[string][]storage.Solve{
		"tutorial": {{Pack: "tutorial", LevelIndex: 1, LevelName: "down", CreatedAt: time.Now()}},
	}}

	m := NewProgressModel(src, testPacks, "tutorial", MonoTheme(), 100, 30)
	view := m.View()
	if !strings.Contains(view, "PROGRESS - Tutorial") {
		t.Error("View() should title the current pack")
	}
	if !strings.Contains(view, "down") {
		t.Error("View() should list the solved level")
	}
	if !strings.Contains(view, "1 levels solved, 1 solves") {
		t.Error("View() should show pack stats")
	}
}

func TestProgressPackSwitching(t *testing.T) {
	m := NewProgressModel(fakeProgress{}, testPacks, "classic", MonoTheme(), 60, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ProgressModel)
	if m.packCursor != 1 {
		t.Errorf("packCursor = %d after tab, expected 1", m.packCursor)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ProgressModel)
	if m.packCursor != 0 {
		t.Errorf("packCursor = %d after second tab, expected wrap to 0", m.packCursor)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ProgressModel)
	if m.packCursor != 1 {
		t.Errorf("packCursor = %d after shift+tab, expected 1", m.packCursor)
	}
	if !strings.Contains(m.View(), "No levels solved yet") {
		t.Error("View() should show the empty message")
	}
}

func TestProgressWithoutSource(t *testing.T) {
	m := NewProgressModel(nil, testPacks, "classic", MonoTheme(), 80, 24)
	if !strings.Contains(m.View(), "No levels solved yet") {
		t.Error("a board without storage should be empty")
	}
}

func TestProgressLoadError(t *testing.T) {
	m := NewProgressModel(fakeProgress{err: errors.New("locked")}, testPacks, "classic", MonoTheme(), 80, 24)
	if !strings.Contains(m.View(), "locked") {
		t.Error("View() should show the storage error")
	}
}

func TestProgressBackAndQuit(t *testing.T) {
	m := NewProgressModel(nil, testPacks, "classic", MonoTheme(), 80, 24)

	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(ProgressModel).IsGoingBack() {
		t.Error("esc should go back")
	}
	quit, _ := m.Update(runeKey('q'))
	if !quit.(ProgressModel).IsQuitting() {
		t.Error("q should quit")
	}
}
