package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show solved levels",
	Long: `Display the levels of the configured pack that have been solved,
most recent first. With --reset, forget the pack's progress.

Examples:
  sokoban progress
  sokoban progress --pack tutorial
  sokoban progress --reset`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagResetProgress, "reset", false, "Clear the solved levels of the pack")
}

func runProgress(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	p, err := a.openPack()
	if err != nil {
		return err
	}

	store := a.openStore()
	if store == nil {
		return errors.New("progress database is not available")
	}
	defer store.Close()

	if flagResetProgress {
		if err := store.ClearProgress(p.ID); err != nil {
			return err
		}
		fmt.Printf("Progress of %s cleared.\n", p.Title)
		return nil
	}

	stats, err := store.GetPackStats(p.ID)
	if err != nil {
		return err
	}
	solves, err := store.RecentSolves(p.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Progress - %s\n", p.Title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Println("Play 'sokoban play' to solve the first one!")
		return nil
	}

	fmt.Printf("Solved %d of %d levels (%d solves in total)\n", stats.Levels, p.Catalog.Count(), stats.Solves)
	fmt.Println()

	fmt.Printf("  %-4s  %-20s  %s\n", "#", "Level", "Date")
	fmt.Printf("  %-4s  %-20s  %s\n", "-", "-----", "----")
	for _, s := range solves {
		fmt.Printf("  %-4d  %-20s  %s\n", s.LevelIndex+1, s.LevelName, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
