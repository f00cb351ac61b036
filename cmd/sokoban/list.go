package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagListPacks bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels of a pack",
	Long: `Shows every level of the configured pack with its size, box count
and whether it has been solved. With --packs, lists the level packs instead.

Examples:
  sokoban list
  sokoban list --pack tutorial
  sokoban list --packs`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListPacks, "packs", false, "List level packs instead of levels")
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	if flagListPacks {
		listPacks(store)
		return nil
	}

	p, err := a.openPack()
	if err != nil {
		return err
	}
	solved := a.solvedLevels(store, p.ID)

	fmt.Printf("%s (%d levels):\n", p.Title, p.Catalog.Count())
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	defs := make([]sokoban.LevelDef, p.Catalog.Count())
	for i := range defs {
		if defs[i], err = p.Catalog.Level(i); err != nil {
			return err
		}
		maxNameLen = max(maxNameLen, len(defs[i].Name))
	}

	fmt.Printf("  %3s  %-*s  %-7s  %5s  %s\n", "#", maxNameLen, "Name", "Size", "Boxes", "Solved")
	fmt.Printf("  %3s  %-*s  %-7s  %5s  %s\n", "-", maxNameLen, "----", "----", "-----", "------")

	for i, def := range defs {
		size, boxes := "-", "-"
		if s, err := sokoban.NewSession(def, i); err == nil {
			size = fmt.Sprintf("%dx%d", s.Width(), s.Height())
			boxes = fmt.Sprintf("%d", s.BoxesTotal())
		}
		mark := ""
		if solved.Has(def.Name) {
			mark = "yes"
		}
		fmt.Printf("  %3d  %-*s  %-7s  %5s  %s\n", i+1, maxNameLen, def.Name, size, boxes, mark)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <N>' to play a level.")
	return nil
}

// listPacks prints the registered packs with their progress.
func listPacks(store *storage.Store) {
	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	var stats map[string]*storage.PackStats
	if store != nil {
		stats, _ = store.GetAllPackStats()
	}

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println("Available packs:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Solved")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")
	for _, p := range packs {
		solved := 0
		if st, ok := stats[p.ID]; ok {
			solved = st.Levels
		}
		fmt.Printf("  %-*s  %-12s  %d\n", maxIDLen, p.ID, p.Title, solved)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play --pack <id>' to play a pack.")
}
