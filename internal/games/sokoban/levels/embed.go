package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

//go:embed builtin/*.sok builtin/*.yaml
var builtinFS embed.FS

// Built-in pack IDs.
const (
	ClassicPack  = "classic"
	TutorialPack = "tutorial"
)

func init() {
	registry.Register(ClassicPack, "Classic", func() (sokoban.Catalog, error) {
		return Classic()
	})
	registry.Register(TutorialPack, "Tutorial", func() (sokoban.Catalog, error) {
		return Tutorial()
	})
}

func builtin() fs.FS {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return sub
}

// Classic returns the bundled single-file levels, ordered by file name.
func Classic() (*Static, error) {
	var defs []sokoban.LevelDef
	entries, err := fs.Glob(builtin(), "*.sok")
	if err != nil {
		return nil, err
	}
	l := &Loader{FS: builtin(), Root: "builtin"}
	for _, name := range entries {
		found, err := l.LoadFile(name)
		if err != nil {
			return nil, err
		}
		defs = append(defs, found...)
	}
	if len(defs) == 0 {
		return nil, sokoban.ErrEmptyCatalog
	}
	return New("Classic", defs...), nil
}

// Tutorial returns the bundled tutorial pack.
func Tutorial() (*Static, error) {
	data, err := fs.ReadFile(builtin(), "tutorial.yaml")
	if err != nil {
		return nil, err
	}
	pack, err := formats.ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("tutorial pack: %w", err)
	}
	return New(pack.Name, pack.Levels...), nil
}
