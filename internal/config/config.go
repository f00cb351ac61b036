// Package config provides YAML-based configuration loading for Sokoban.
package config

import "fmt"

// Config contains all user-tunable settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Levels  LevelsConfig  `yaml:"levels"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig controls how the board and menus are drawn.
type DisplayConfig struct {
	ASCII  bool   `yaml:"ascii"`
	Color  bool   `yaml:"color"`
	Legend bool   `yaml:"legend"`
	Title  string `yaml:"title"`
	Theme  string `yaml:"theme"`
}

// LevelsConfig selects where levels come from.
// A non-empty Dir takes precedence over Pack.
type LevelsConfig struct {
	Pack string `yaml:"pack"`
	Dir  string `yaml:"dir"`
}

// StorageConfig locates the progress database.
type StorageConfig struct {
	DB string `yaml:"db"`
}

// Theme names accepted in DisplayConfig.Theme.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// Validate checks the configuration for values that cannot be used.
func (c Config) Validate() error {
	switch c.Display.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("config: unknown theme %q", c.Display.Theme)
	}
	if c.Levels.Pack == "" && c.Levels.Dir == "" {
		return fmt.Errorf("config: levels need a pack or a dir")
	}
	return nil
}
