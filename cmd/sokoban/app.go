package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// app holds what every command needs after flags and config are resolved.
type app struct {
	cfg    config.Config
	logger *log.Logger
}

// pack is an opened catalog with the identity its progress is stored under.
type pack struct {
	ID      string
	Title   string
	Catalog sokoban.Catalog
}

// newApp loads the config and applies the flags that were set explicitly.
func newApp(cmd *cobra.Command) (*app, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("ascii") {
		cfg.Display.ASCII = flagASCII
	}
	if flags.Changed("bw") {
		cfg.Display.Color = !flagBW
	}
	if flags.Changed("pack") {
		cfg.Levels.Pack = flagPack
		cfg.Levels.Dir = ""
	}
	if flags.Changed("levels") {
		cfg.Levels.Dir = flagLevels
	}
	if flags.Changed("db") {
		cfg.Storage.DB = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("config loaded", "pack", cfg.Levels.Pack, "dir", cfg.Levels.Dir, "db", cfg.Storage.DB)
	return &app{cfg: cfg, logger: logger}, nil
}

// renderOptions returns the board presentation selected by the config.
func (a *app) renderOptions() sokoban.RenderOptions {
	d := a.cfg.Display
	opts := sokoban.DefaultRenderOptions()
	opts.ASCII = d.ASCII
	opts.Color = d.Color
	opts.Legend = d.Legend
	opts.Title = d.Title
	return opts
}

// theme returns the menu theme. Black and white mode forces the mono theme.
func (a *app) theme() tui.Theme {
	if !a.cfg.Display.Color {
		return tui.MonoTheme()
	}
	return tui.ThemeByName(a.cfg.Display.Theme)
}

// openPack opens the level directory if one is configured, else the pack.
func (a *app) openPack() (pack, error) {
	if dir := a.cfg.Levels.Dir; dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return pack{}, err
		}
		loader := levels.NewLoader(abs)
		loader.Logger = a.logger
		title := filepath.Base(abs)
		c, err := loader.Load(title)
		if err != nil {
			return pack{}, err
		}
		return pack{ID: "dir:" + abs, Title: title, Catalog: c}, nil
	}

	id := a.cfg.Levels.Pack
	c, err := registry.Open(id)
	if err != nil {
		return pack{}, fmt.Errorf("%w (run 'sokoban list --packs' to see available packs)", err)
	}
	title := id
	for _, p := range registry.List() {
		if p.ID == id {
			title = p.Title
		}
	}
	return pack{ID: id, Title: title, Catalog: c}, nil
}

// openStore opens the progress database. Play goes on without it.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.DB)
	if err != nil {
		a.logger.Warn("progress will not be saved", "err", err)
		return nil
	}
	return store
}

// logErrors reports errors collected while the terminal was owned by the UI.
func (a *app) logErrors(errs []error) {
	for _, err := range errs {
		a.logger.Error("during play", "err", err)
	}
}

// terminalSize returns the size of stdout, or the defaults when it is not
// a terminal.
func terminalSize() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// packList returns the registered packs plus p when it is a directory pack.
func packList(p pack) []registry.PackInfo {
	packs := registry.List()
	if !registry.Exists(p.ID) {
		packs = append(packs, registry.PackInfo{ID: p.ID, Title: p.Title})
	}
	return packs
}
