package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

// Loader reads level files from a file system tree.
// .sok files hold one level named after the file; .yaml packs hold several.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: root}
}

// LoadAll walks the tree and returns every playable level.
// Files are visited in name order so the catalog is deterministic; levels
// from a pack keep their order in the file. Unreadable or unplayable
// levels are skipped with a warning.
func (l *Loader) LoadAll() ([]sokoban.LevelDef, error) {
	var files []string
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExtension(strings.ToLower(path.Ext(p))) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}
	sort.Strings(files)

	var defs []sokoban.LevelDef
	for _, p := range files {
		found, err := l.LoadFile(p)
		if err != nil {
			l.warn("skipping level file", "file", p, "err", err)
			continue
		}
		for _, def := range found {
			if err := sokoban.Parse(def.Text).Validate(); err != nil {
				l.warn("skipping level", "file", p, "level", def.Name, "err", err)
				continue
			}
			defs = append(defs, def)
		}
	}
	return defs, nil
}

// Load returns the playable levels as a catalog.
// An empty result fails with sokoban.ErrEmptyCatalog.
func (l *Loader) Load(title string) (*Static, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("%s: %w", l.Root, sokoban.ErrEmptyCatalog)
	}
	return New(title, defs...), nil
}

// LoadFile loads the levels of a single file, relative to the loader root.
func (l *Loader) LoadFile(p string) ([]sokoban.LevelDef, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", filepath.Join(l.Root, p), err)
	}

	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".sok":
		return []sokoban.LevelDef{formats.ParseSok(strings.TrimSuffix(path.Base(p), path.Ext(p)), data)}, nil
	case ".yaml", ".yml":
		pack, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", p, err)
		}
		return pack.Levels, nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func (l *Loader) warn(msg string, keyvals ...interface{}) {
	if l.Logger != nil {
		l.Logger.Warn(msg, keyvals...)
	}
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}
