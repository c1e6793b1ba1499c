package core

import (
	"fmt"
	"sort"
)

// Block is a rectangular footprint of board cells. Blocks mark where lines
// may slide (movable) or are pinned (non-movable); they never move themselves.
type Block struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// B is a convenience constructor for Block.
func B(row, col, width, height int) Block {
	return Block{Row: row, Col: col, Width: width, Height: height}
}

// String returns a string representation of the block.
func (b Block) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", b.Row, b.Col, b.Width, b.Height)
}

// Contains reports whether the cell (row, col) lies inside the block.
func (b Block) Contains(row, col int) bool {
	return row >= b.Row && row < b.Row+b.Height &&
		col >= b.Col && col < b.Col+b.Width
}

// BlockSet is a set of blocks with value semantics on insert.
type BlockSet struct {
	blocks map[Block]struct{}
}

// Add inserts b. Adding a block already present is a no-op.
func (s *BlockSet) Add(b Block) {
	if s.blocks == nil {
		s.blocks = make(map[Block]struct{})
	}
	s.blocks[b] = struct{}{}
}

// Has reports whether b is in the set.
func (s *BlockSet) Has(b Block) bool {
	_, ok := s.blocks[b]
	return ok
}

// Len returns the number of blocks.
func (s *BlockSet) Len() int {
	return len(s.blocks)
}

// Slice returns the blocks sorted by row, col, height, width.
func (s *BlockSet) Slice() []Block {
	out := make([]Block, 0, len(s.blocks))
	for b := range s.blocks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		if a.Col != b.Col {
			return a.Col < b.Col
		}
		if a.Height != b.Height {
			return a.Height < b.Height
		}
		return a.Width < b.Width
	})
	return out
}

// clone returns an independent copy of the set.
func (s *BlockSet) clone() BlockSet {
	var c BlockSet
	for b := range s.blocks {
		c.Add(b)
	}
	return c
}
