package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadDimensions is returned when a board cannot be built from the given
// size and tiles.
var ErrBadDimensions = errors.New("core: bad board dimensions")

// Board is the labyrinth grid. Tiles are stored in row-major order:
// pos = row*columns + col.
//
// edges is derived from tiles and rebuilt by every method that changes a
// tile, so readers can always trust it. The graph is undirected.
type Board struct {
	rows       int
	columns    int
	tiles      []Tile
	movable    BlockSet
	nonMovable BlockSet
	edges      [][]int
}

// NewBoard creates a board of the given size filled with empty tiles.
// Panics if either dimension is not positive.
func NewBoard(rows, columns int) *Board {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", rows, columns))
	}
	b := &Board{
		rows:    rows,
		columns: columns,
		tiles:   make([]Tile, rows*columns),
	}
	b.RebuildEdges()
	return b
}

// NewBoardFrom reconstructs a board from persisted fields. The tiles slice
// is copied. Edges are rebuilt before returning.
func NewBoardFrom(rows, columns int, tiles []Tile, movable, nonMovable []Block) (*Board, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, columns)
	}
	if columns > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrBadDimensions, rows, columns)
	}
	if len(tiles) != rows*columns {
		return nil, fmt.Errorf("%w: %dx%d board needs %d tiles, got %d",
			ErrBadDimensions, rows, columns, rows*columns, len(tiles))
	}

	b := &Board{
		rows:    rows,
		columns: columns,
		tiles:   make([]Tile, len(tiles)),
	}
	copy(b.tiles, tiles)
	for _, blk := range movable {
		b.movable.Add(blk)
	}
	for _, blk := range nonMovable {
		b.nonMovable.Add(blk)
	}
	b.RebuildEdges()
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// Size returns the number of cells.
func (b *Board) Size() int {
	return b.rows * b.columns
}

// InBounds reports whether (row, col) is a cell of the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// Index converts (row, col) to a position. Panics when out of range.
func (b *Board) Index(row, col int) int {
	b.mustRowCol(row, col)
	return row*b.columns + col
}

// RowCol converts a position to (row, col). Panics when out of range.
func (b *Board) RowCol(pos int) (row, col int) {
	b.mustPos(pos)
	return pos / b.columns, pos % b.columns
}

func (b *Board) mustRowCol(row, col int) {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) out of range for %dx%d board", row, col, b.rows, b.columns))
	}
}

func (b *Board) mustPos(pos int) {
	if pos < 0 || pos >= len(b.tiles) {
		panic(fmt.Sprintf("core: position %d out of range [0,%d)", pos, len(b.tiles)))
	}
}

// At returns the tile at (row, col).
func (b *Board) At(row, col int) Tile {
	return b.tiles[b.Index(row, col)]
}

// AtPos returns the tile at pos.
func (b *Board) AtPos(pos int) Tile {
	b.mustPos(pos)
	return b.tiles[pos]
}

// Set places t at (row, col) and rebuilds the graph.
func (b *Board) Set(row, col int, t Tile) {
	b.tiles[b.Index(row, col)] = t
	b.RebuildEdges()
}

// Tiles returns a copy of the tiles in row-major order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Rotate turns the tile at (row, col) and rebuilds the graph.
func (b *Board) Rotate(row, col int, r Rotation) {
	b.RotatePos(b.Index(row, col), r)
}

// RotatePos turns the tile at pos and rebuilds the graph.
func (b *Board) RotatePos(pos int, r Rotation) {
	b.mustPos(pos)
	b.tiles[pos] = b.tiles[pos].Rotate(r)
	b.RebuildEdges()
}

// AddMovable registers a footprint whose lines slide together.
func (b *Board) AddMovable(blk Block) {
	b.movable.Add(blk)
}

// AddNonMovable registers a footprint whose lines may not slide.
func (b *Board) AddNonMovable(blk Block) {
	b.nonMovable.Add(blk)
}

// MovableBlocks returns the movable footprints in sorted order.
func (b *Board) MovableBlocks() []Block {
	return b.movable.Slice()
}

// NonMovableBlocks returns the non-movable footprints in sorted order.
func (b *Board) NonMovableBlocks() []Block {
	return b.nonMovable.Slice()
}

// neighbor returns the position one step from pos in direction d, or false
// at the board edge. There is no wraparound.
func (b *Board) neighbor(pos int, d Direction) (int, bool) {
	switch d {
	case North:
		if pos-b.columns >= 0 {
			return pos - b.columns, true
		}
	case East:
		if pos%b.columns < b.columns-1 {
			return pos + 1, true
		}
	case South:
		if pos+b.columns < len(b.tiles) {
			return pos + b.columns, true
		}
	case West:
		if pos%b.columns > 0 {
			return pos - 1, true
		}
	}
	return 0, false
}

// RebuildEdges recomputes the adjacency graph from the tiles.
// Two cells are connected when each has an open side facing the other.
func (b *Board) RebuildEdges() {
	b.edges = make([][]int, len(b.tiles))
	for pos, t := range b.tiles {
		for _, side := range t.OpenSides() {
			next, ok := b.neighbor(pos, side)
			if !ok {
				continue
			}
			if b.tiles[next].Opens(side.Opposite()) {
				b.edges[pos] = append(b.edges[pos], next)
			}
		}
	}
}

// Edges returns the positions connected to pos, in N, E, S, W order.
func (b *Board) Edges(pos int) []int {
	b.mustPos(pos)
	out := make([]int, len(b.edges[pos]))
	copy(out, b.edges[pos])
	return out
}

// EdgeCount returns the number of undirected connections on the board.
func (b *Board) EdgeCount() int {
	n := 0
	for _, e := range b.edges {
		n += len(e)
	}
	return n / 2
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		rows:       b.rows,
		columns:    b.columns,
		tiles:      b.Tiles(),
		movable:    b.movable.clone(),
		nonMovable: b.nonMovable.clone(),
	}
	c.RebuildEdges()
	return c
}

// String renders the board as glyphs, one line per row, each line
// terminated by a newline.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.tiles)*3 + b.rows)
	for pos, t := range b.tiles {
		sb.WriteRune(t.Glyph())
		if (pos+1)%b.columns == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Row renders a single row as glyphs without a trailing newline.
func (b *Board) Row(row int) string {
	b.mustRowCol(row, 0)
	var sb strings.Builder
	for col := 0; col < b.columns; col++ {
		sb.WriteRune(b.tiles[row*b.columns+col].Glyph())
	}
	return sb.String()
}
