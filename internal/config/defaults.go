package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Color:  true,
			Legend: true,
			Title:  "TTY SOKOBAN",
			Theme:  ThemeDefault,
		},
		Levels: LevelsConfig{
			Pack: "classic",
		},
		Storage: StorageConfig{
			DB: "~/.sokoban/progress.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
