package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

func TestLevelArg(t *testing.T) {
	tests := []struct {
		arg     string
		index   int
		wantErr bool
	}{
		{"1", 0, false},
		{"3", 2, false},
		{"0", 0, true},
		{"4", 0, true},
		{"x", 0, true},
		{"two", 1, false},
	}

	c := levels.New("t",
		sokoban.LevelDef{Name: "one", Text: "#@$.#"},
		sokoban.LevelDef{Name: "two", Text: "#.$@#"},
		sokoban.LevelDef{Name: "three", Text: "#@ $.#"},
	)
	for _, tt := range tests {
		index, err := levelArg(tt.arg, c)
		if (err != nil) != tt.wantErr {
			t.Errorf("levelArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && index != tt.index {
			t.Errorf("levelArg(%q) = %d, expected %d", tt.arg, index, tt.index)
		}
	}

	if _, err := levelArg("9", c); !errors.Is(err, sokoban.ErrInvalidLevelIndex) {
		t.Errorf("out of range error = %v, expected ErrInvalidLevelIndex", err)
	}
}

func TestRenderPlain(t *testing.T) {
	game, err := sokoban.NewGame(levels.New("t", sokoban.LevelDef{Name: "one", Text: "#####\n#@$.#\n#####"}), 0)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}

	got := renderPlain(game, sokoban.RenderOptions{ASCII: true, Color: true, Title: "ignored"})
	expected := "+---+\n|@#O|\n+---+\n"
	if got != expected {
		t.Errorf("renderPlain() = %q, expected %q", got, expected)
	}
}

func TestBuiltinPacksRegistered(t *testing.T) {
	for _, id := range []string{levels.ClassicPack, levels.TutorialPack} {
		if !registry.Exists(id) {
			t.Errorf("pack %q is not registered", id)
		}
	}
}

func TestRootHelpMoveKeys(t *testing.T) {
	if !strings.Contains(rootCmd.Long, "WASD, or hjkl") {
		t.Error("help should list the lowercase vi move keys")
	}
	if strings.Contains(rootCmd.Long, "HJKL") {
		t.Error("help should not advertise uppercase L, which is not a move key")
	}
}
