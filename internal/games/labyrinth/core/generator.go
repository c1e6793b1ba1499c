package core

import (
	"fmt"
	"math/rand"
)

// Layout selects how a generated board is divided into sliding and pinned
// lines.
type Layout string

const (
	// LayoutClassic pins every (even row, even column) cell, as in the board
	// game: only odd rows and columns slide.
	LayoutClassic Layout = "classic"
	// LayoutFree adds no blocks; every line slides on its own.
	LayoutFree Layout = "free"
	// LayoutBands pairs lines 0+1, 2+3, ... with movable blocks so one shift
	// drags the paired line along. Nothing is pinned.
	LayoutBands Layout = "bands"
)

// ParseLayout parses a layout name.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case LayoutClassic, LayoutFree, LayoutBands:
		return Layout(s), nil
	case "":
		return LayoutClassic, nil
	default:
		return "", fmt.Errorf("unknown layout %q", s)
	}
}

// Weights is the relative frequency of each tile kind in generated boards.
type Weights struct {
	None         int
	Cross        int
	Linear       int
	Curved       int
	Intersection int
}

// DefaultWeights mirrors the tile mix of the physical game.
func DefaultWeights() Weights {
	return Weights{
		None:         0,
		Cross:        1,
		Linear:       12,
		Curved:       16,
		Intersection: 6,
	}
}

func (w Weights) total() int {
	return w.None + w.Cross + w.Linear + w.Curved + w.Intersection
}

// GenOptions configures Generate.
type GenOptions struct {
	Weights Weights
	Layout  Layout
}

// Generate builds a random board. The result is fully determined by rng.
func Generate(rows, columns int, rng *rand.Rand, opts GenOptions) *Board {
	weights := opts.Weights
	if weights.total() <= 0 {
		weights = DefaultWeights()
	}
	layout := opts.Layout
	if layout == "" {
		layout = LayoutClassic
	}

	tiles := make([]Tile, rows*columns)
	for i := range tiles {
		tiles[i] = randomTile(rng, weights)
	}

	b, err := NewBoardFrom(rows, columns, tiles, nil, nil)
	if err != nil {
		panic(err) // sizes come from the caller and were just used to allocate
	}
	applyLayout(b, layout)
	return b
}

// randomTile picks a weighted kind and a uniformly random payload.
func randomTile(rng *rand.Rand, w Weights) Tile {
	n := rng.Intn(w.total())
	d := Directions[rng.Intn(4)]

	switch {
	case n < w.None:
		return Empty()
	case n < w.None+w.Cross:
		return Cross()
	case n < w.None+w.Cross+w.Linear:
		if rng.Intn(2) == 0 {
			return Linear(Vertical)
		}
		return Linear(Horizontal)
	case n < w.None+w.Cross+w.Linear+w.Curved:
		return Curved(d)
	default:
		return Intersection(d)
	}
}

// applyLayout registers the blocks of the given layout on b.
func applyLayout(b *Board, layout Layout) {
	switch layout {
	case LayoutClassic:
		for row := 0; row < b.rows; row += 2 {
			for col := 0; col < b.columns; col += 2 {
				b.AddNonMovable(B(row, col, 1, 1))
			}
		}
	case LayoutBands:
		// Bands are one cell thick across the shifting axis so a row band
		// never widens a column move and vice versa.
		for row := 0; row+1 < b.rows; row += 2 {
			b.AddMovable(B(row, 0, 1, 2))
		}
		for col := 0; col+1 < b.columns; col += 2 {
			b.AddMovable(B(0, col, 2, 1))
		}
	}
}

// Scramble applies n random moves that are not blocked.
// Returns the number of moves actually performed.
func Scramble(b *Board, rng *rand.Rand, n int) int {
	done := 0
	for attempt := 0; done < n && attempt < n*20; attempt++ {
		row := rng.Intn(b.rows)
		col := rng.Intn(b.columns)
		d := Directions[rng.Intn(4)]
		if rng.Intn(3) == 0 {
			b.Rotate(row, col, Rotation(rng.Intn(2)))
			done++
			continue
		}
		if b.Move(row, col, d) {
			done++
		}
	}
	return done
}
