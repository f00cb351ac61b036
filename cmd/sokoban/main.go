// sokoban is a terminal Sokoban game.
//
// Usage:
//
//	sokoban                  - Play the first level of the configured pack
//	sokoban play [N]         - Play level N (1-based)
//	sokoban menu             - Pick levels interactively
//	sokoban list             - List levels of the pack
//	sokoban show N           - Print level N
//	sokoban progress         - Show solved levels
//
// Global flags:
//
//	-a, --ascii         - ASCII walls instead of box-drawing characters
//	-b, --bw            - Black and white mode
//	--config <path>     - Custom config file
//	--pack <id>         - Built-in level pack
//	--levels <dir>      - Directory of level files (overrides --pack)
//	--db <path>         - Progress database (default: ~/.sokoban/progress.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagASCII    bool
	flagBW       bool
	flagPack     string
	flagLevels   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "TTY Sokoban - push boxes onto goals in your terminal",
	Long: `TTY Sokoban is the classic box-pushing puzzle for the terminal.
Push every box onto a goal square to complete a level.

Controls:
  Arrow keys, WASD, or hjkl  Move player
  R                          Restart level
  N                          Next level
  P                          Previous level
  C                          Force redraw
  Esc/B                      Back to the level picker
  Q                          Quit

Available commands:
  play      - Play a level directly
  menu      - Interactive level picker
  list      - Show the levels of a pack
  show      - Print one level
  progress  - Show or reset solved levels

Examples:
  sokoban
  sokoban --ascii --bw
  sokoban play 3 --pack tutorial
  sokoban menu --levels ./my-levels
  sokoban progress --reset`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.BoolVarP(&flagASCII, "ascii", "a", false, "Use ASCII characters for walls")
	pf.BoolVarP(&flagBW, "bw", "b", false, "Black and white mode (no colors)")
	pf.StringVar(&flagPack, "pack", "", "Built-in level pack to play")
	pf.StringVar(&flagLevels, "levels", "", "Directory of .sok/.yaml level files")
	pf.StringVar(&flagDBPath, "db", "", "Path to progress database")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(progressCmd)
}
