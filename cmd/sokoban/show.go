package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
)

var flagShowRaw bool

var showCmd = &cobra.Command{
	Use:   "show N|name",
	Short: "Print a level",
	Long: `Prints level N (1-based) as it appears on screen, followed by its
metadata. With --raw, prints the level file text instead.

Examples:
  sokoban show 1
  sokoban show 2 --ascii
  sokoban show 3 --raw`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagShowRaw, "raw", false, "Print level file characters")
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.openPack()
	if err != nil {
		return err
	}
	index, err := levelArg(args[0], p.Catalog)
	if err != nil {
		return err
	}
	game, err := sokoban.NewGame(p.Catalog, index)
	if err != nil {
		return err
	}

	snap := game.Snapshot()
	if flagShowRaw {
		for _, row := range snap.Rows {
			fmt.Println(row)
		}
	} else {
		fmt.Print(renderPlain(game, a.renderOptions()))
	}

	fmt.Println()
	fmt.Printf("Level:   %s (%d/%d)\n", snap.Name, snap.Index+1, game.Total())
	fmt.Printf("Size:    %dx%d\n", snap.Width, snap.Height)
	fmt.Printf("Boxes:   %d/%d on goals\n", snap.BoxesOnGoal, snap.BoxesTotal)
	fmt.Printf("Player:  %d,%d\n", snap.Player.X, snap.Player.Y)
	if game.Session().Degenerate() {
		fmt.Println("Note:    level has no boxes and cannot be completed")
	}
	return nil
}

// renderPlain draws the map alone, without colors or status lines.
func renderPlain(game *sokoban.Game, opts sokoban.RenderOptions) string {
	s := game.Session()
	opts.Color = false
	opts.Legend = false

	screen := core.NewScreen(s.Width(), s.Height()+7)
	game.Render(screen, opts)

	o := s.Origin(screen.Width(), screen.Height())
	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		b.WriteString(strings.TrimRight(screen.Row(o.Y+y), " "))
		b.WriteString("\n")
	}
	return b.String()
}
