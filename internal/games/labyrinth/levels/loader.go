// Package levels provides level loading for Labyrinth.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when no level has the requested ID.
var ErrNotFound = errors.New("levels: level not found")

// Level represents a complete level definition.
type Level struct {
	formats.Level
	FilePath string
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root string
	fsys fs.FS

	// OnSkip, when set, is called for every level file that fails to parse.
	// Such files are skipped either way.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// Builtin returns a loader over the levels compiled into the binary.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return &Loader{Root: "builtin", fsys: sub}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.OnSkip != nil {
				l.OnSkip(path.Join(l.Root, p), err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// LoadFile loads a single level file, addressed relative to the loader root.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	parsed, err := parse(data, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	return Level{Level: parsed, FilePath: path.Join(l.Root, p)}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return Find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return IDs(levels), nil
}

// LoadCatalog loads the built-in levels and then every extra directory in
// order. A later level replaces an earlier one with the same ID.
func LoadCatalog(dirs []string, onSkip func(path string, err error)) ([]Level, error) {
	loaders := []*Loader{Builtin()}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		loaders = append(loaders, NewLoader(dir))
	}

	byID := make(map[string]Level)
	for _, ld := range loaders {
		ld.OnSkip = onSkip
		levels, err := ld.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, lvl := range levels {
			byID[lvl.ID] = lvl
		}
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ReadFile loads one level or board file from disk.
func ReadFile(p string) (Level, error) {
	return NewLoader(filepath.Dir(p)).LoadFile(filepath.Base(p))
}

// WriteFile stores board back into the file it was read from, keeping the
// level's start, goal and metadata. The format follows the extension.
func WriteFile(p string, level Level, b *core.Board) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(p)) {
	case ".json":
		data, err = json.MarshalIndent(formats.ToJSONBoard(b), "", "  ")
	case ".yaml", ".yml":
		data, err = formats.EncodeYAML(level.Level, b)
	default:
		return fmt.Errorf("levels: unsupported extension: %s", filepath.Ext(p))
	}
	if err != nil {
		return fmt.Errorf("levels: encoding %s: %w", p, err)
	}

	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("levels: writing %s: %w", p, err)
	}
	return nil
}

// Find returns the level with the given ID.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// IDs returns the IDs of levels in order.
func IDs(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parse routes to the parser for the file's extension. Files without an
// ID take their file stem.
func parse(data []byte, p string) (formats.Level, error) {
	ext := strings.ToLower(path.Ext(p))

	var (
		level formats.Level
		err   error
	)
	switch ext {
	case ".yaml", ".yml":
		level, err = formats.ParseYAML(data)
	case ".json":
		level, err = formats.ParseJSONLevel(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return formats.Level{}, err
	}

	if level.ID == "" {
		level.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	return level, nil
}
