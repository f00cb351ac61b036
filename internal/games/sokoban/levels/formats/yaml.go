// Package formats provides level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a multi-level pack file.
type YAMLPack struct {
	Name   string      `yaml:"name"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel represents a single level inside a pack file.
type YAMLLevel struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// Pack is a parsed pack: a title and its levels in file order.
type Pack struct {
	Name   string
	Levels []sokoban.LevelDef
}

// ParseYAML parses a YAML pack file.
// Levels without a name are named after their position in the file.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(yp.Levels) == 0 {
		return Pack{}, fmt.Errorf("pack %q has no levels", yp.Name)
	}

	pack := Pack{Name: yp.Name, Levels: make([]sokoban.LevelDef, 0, len(yp.Levels))}
	for i, yl := range yp.Levels {
		name := yl.Name
		if name == "" {
			name = fmt.Sprintf("%02d", i+1)
		}
		pack.Levels = append(pack.Levels, sokoban.LevelDef{
			Name: name,
			Text: strings.TrimRight(yl.Map, "\r\n"),
		})
	}
	return pack, nil
}

// ParseSok turns the contents of a single-level .sok file into a level.
// Trailing line terminators are dropped.
func ParseSok(name string, data []byte) sokoban.LevelDef {
	return sokoban.LevelDef{
		Name: name,
		Text: strings.TrimRight(string(data), "\r\n"),
	}
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".sok", ".yaml", ".yml"}
}
