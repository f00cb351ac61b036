package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [N|name]",
	Short: "Play a level",
	Long: `Start playing level N (1-based, default 1) of the configured pack.
A level can also be picked by name.

After the last level is complete, N wraps around to the first one.

Examples:
  sokoban play
  sokoban play 4
  sokoban play 03-corner
  sokoban play 2 --pack tutorial
  sokoban play --levels ./my-levels --ascii`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.openPack()
	if err != nil {
		return err
	}

	start := 0
	if len(args) == 1 {
		if start, err = levelArg(args[0], p.Catalog); err != nil {
			return err
		}
	}

	game, err := sokoban.NewGame(p.Catalog, start)
	if err != nil {
		return fmt.Errorf("cannot start level %d: %w", start+1, err)
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	res, err := tui.Run(game, a.playOptions(p, store))
	a.logErrors(res.Errors)
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	a.logger.Info("session finished", "pack", p.ID, "level", res.Index+1, "solved", res.Solved)
	return nil
}

// playOptions builds the UI options for one run over p.
func (a *app) playOptions(p pack, store *storage.Store) tui.Options {
	size := terminalSize()
	opts := tui.Options{
		Pack:   p.ID,
		RunID:  storage.NewRunID(),
		Render: a.renderOptions(),
		Width:  size.ScreenW,
		Height: size.ScreenH,
	}
	if store != nil {
		opts.Store = store
	}
	return opts
}

// namedCatalog is implemented by catalogs that can find a level by name.
type namedCatalog interface {
	IndexOf(name string) int
}

// levelArg parses a 1-based level number, or a level name, and returns its index.
func levelArg(arg string, c sokoban.Catalog) (int, error) {
	count := c.Count()
	n, err := strconv.Atoi(arg)
	if err != nil {
		if nc, ok := c.(namedCatalog); ok {
			if i := nc.IndexOf(arg); i >= 0 {
				return i, nil
			}
		}
		return 0, fmt.Errorf("no level named %q", arg)
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("%w: level %d (pack has %d levels)", sokoban.ErrInvalidLevelIndex, n, count)
	}
	return n - 1, nil
}
