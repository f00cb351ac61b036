package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Esc or B during play returns to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Progress board
  Q            - Quit

Examples:
  sokoban menu
  sokoban menu --pack tutorial
  sokoban menu --db ./progress.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.openPack()
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	size := terminalSize()
	theme := a.theme()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(p.Title, p.Catalog, a.solvedLevels(store, p.ID), theme, size.ScreenW, size.ScreenH)
		if err != nil {
			return err
		}
		if menuResult.Width > 0 && menuResult.Height > 0 {
			size.ScreenW, size.ScreenH = menuResult.Width, menuResult.Height
		}

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantProgress {
			var source tui.ProgressSource
			if store != nil {
				source = store
			}
			goBack, err := tui.RunProgress(source, packList(p), p.ID, theme, size.ScreenW, size.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil
		}

		if !menuResult.Play {
			return nil
		}

		game, err := sokoban.NewGame(p.Catalog, menuResult.Index)
		if err != nil {
			a.logger.Error("cannot start level", "level", menuResult.Index+1, "err", err)
			continue
		}

		opts := a.playOptions(p, store)
		res, err := tui.Run(game, opts)
		a.logErrors(res.Errors)
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !res.Back {
			return nil
		}
		// Loop back to menu
	}
}

// solvedLevels returns the names of the solved levels of pack, or an
// empty set without a store.
func (a *app) solvedLevels(store *storage.Store, packID string) mapset.Set[string] {
	if store == nil {
		return mapset.New[string]()
	}
	solved, err := store.SolvedLevels(packID)
	if err != nil {
		a.logger.Warn("cannot read progress", "pack", packID, "err", err)
		return mapset.New[string]()
	}
	return solved
}
