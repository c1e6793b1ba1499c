// Package formats provides the level and board file formats: a JSON wire
// shape for whole boards and a YAML shape for hand-written levels.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is wrapped by every validation failure in a level file.
var ErrInvalidLevel = errors.New("formats: invalid level")

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	Grid       []string          `yaml:"grid"`
	Start      Cell              `yaml:"start"`
	Goal       Cell              `yaml:"goal"`
	Par        int               `yaml:"par,omitempty"`
	Movable    []YAMLBlock       `yaml:"movable,omitempty"`
	NonMovable []YAMLBlock       `yaml:"non_movable,omitempty"`
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// YAMLBlock is a block footprint in YAML form.
type YAMLBlock struct {
	Row    int `yaml:"row"`
	Col    int `yaml:"col"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Cell addresses one grid cell.
type Cell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID         string
	Name       string
	Rows       int
	Columns    int
	Tiles      []core.Tile
	Movable    []core.Block
	NonMovable []core.Block
	Start      Cell
	Goal       Cell
	Par        int
	Metadata   map[string]string
}

// ToBoard builds a fresh board from the level. Every call returns a new
// board, so a restarted game never sees earlier moves.
func (l *Level) ToBoard() *core.Board {
	b, err := core.NewBoardFrom(l.Rows, l.Columns, l.Tiles, l.Movable, l.NonMovable)
	if err != nil {
		panic(err) // validated by the parser
	}
	return b
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	tiles, columns, err := parseGrid(yl.Grid)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:         yl.ID,
		Name:       yl.Name,
		Rows:       len(yl.Grid),
		Columns:    columns,
		Tiles:      tiles,
		Movable:    fromYAMLBlocks(yl.Movable),
		NonMovable: fromYAMLBlocks(yl.NonMovable),
		Start:      yl.Start,
		Goal:       yl.Goal,
		Par:        yl.Par,
		Metadata:   yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	if level.Par <= 0 {
		level.Par = level.Rows + level.Columns
	}

	if err := level.validateCells(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// ParseJSONLevel wraps a JSON board as a level. The token starts in the
// top-left cell and the goal is the bottom-right cell. The caller supplies
// the ID.
func ParseJSONLevel(data []byte) (Level, error) {
	b, err := DecodeBoard(data)
	if err != nil {
		return Level{}, err
	}
	return LevelFromBoard(b), nil
}

// LevelFromBoard wraps an existing board as a level with default start,
// goal and par.
func LevelFromBoard(b *core.Board) Level {
	return Level{
		Rows:       b.Rows(),
		Columns:    b.Columns(),
		Tiles:      b.Tiles(),
		Movable:    b.MovableBlocks(),
		NonMovable: b.NonMovableBlocks(),
		Start:      Cell{Row: 0, Col: 0},
		Goal:       Cell{Row: b.Rows() - 1, Col: b.Columns() - 1},
		Par:        b.Rows() + b.Columns(),
	}
}

// EncodeYAML writes a level back out in the YAML level shape, using board
// for the grid and blocks. Glyphs are separated by single spaces.
func EncodeYAML(l Level, b *core.Board) ([]byte, error) {
	yl := YAMLLevel{
		ID:         l.ID,
		Name:       l.Name,
		Grid:       make([]string, b.Rows()),
		Start:      l.Start,
		Goal:       l.Goal,
		Par:        l.Par,
		Movable:    toYAMLBlocks(b.MovableBlocks()),
		NonMovable: toYAMLBlocks(b.NonMovableBlocks()),
		Metadata:   l.Metadata,
	}
	for row := range yl.Grid {
		glyphs := []rune(b.Row(row))
		parts := make([]string, len(glyphs))
		for i, g := range glyphs {
			parts[i] = string(g)
		}
		yl.Grid[row] = strings.Join(parts, " ")
	}

	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// parseGrid turns glyph rows into tiles. Whitespace between glyphs is
// ignored.
func parseGrid(grid []string) ([]core.Tile, int, error) {
	if len(grid) == 0 {
		return nil, 0, fmt.Errorf("%w: empty grid", ErrInvalidLevel)
	}

	var tiles []core.Tile
	columns := -1
	for row, line := range grid {
		n := 0
		for _, r := range line {
			if r == ' ' || r == '\t' {
				continue
			}
			t, ok := core.ParseGlyph(r)
			if !ok {
				return nil, 0, fmt.Errorf("%w: row %d: unknown glyph %q", ErrInvalidLevel, row, r)
			}
			tiles = append(tiles, t)
			n++
		}
		if n == 0 {
			return nil, 0, fmt.Errorf("%w: row %d is empty", ErrInvalidLevel, row)
		}
		if columns >= 0 && n != columns {
			return nil, 0, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrInvalidLevel, row, n, columns)
		}
		columns = n
	}
	return tiles, columns, nil
}

func (l *Level) validateCells() error {
	inside := func(c Cell) bool {
		return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Columns
	}
	if !inside(l.Start) {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidLevel, l.Start.Row, l.Start.Col, l.Rows, l.Columns)
	}
	if !inside(l.Goal) {
		return fmt.Errorf("%w: goal (%d,%d) outside %dx%d grid", ErrInvalidLevel, l.Goal.Row, l.Goal.Col, l.Rows, l.Columns)
	}
	return nil
}

func fromYAMLBlocks(blocks []YAMLBlock) []core.Block {
	out := make([]core.Block, len(blocks))
	for i, b := range blocks {
		out[i] = core.B(b.Row, b.Col, b.Width, b.Height)
	}
	return out
}

func toYAMLBlocks(blocks []core.Block) []YAMLBlock {
	out := make([]YAMLBlock, len(blocks))
	for i, b := range blocks {
		out[i] = YAMLBlock{Row: b.Row, Col: b.Col, Width: b.Width, Height: b.Height}
	}
	return out
}
