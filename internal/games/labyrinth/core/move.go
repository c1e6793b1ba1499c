package core

// Move slides the line through (row, col) one cell in direction d, together
// with every line covered by a movable block crossing it. Returns false and
// leaves the board untouched when any of those lines is pinned by a
// non-movable block.
func (b *Board) Move(row, col int, d Direction) bool {
	from, to, ok := b.MoveSpan(row, col, d)
	if !ok {
		return false
	}

	for line := from; line <= to; line++ {
		b.shiftLine(line, d)
	}

	b.RebuildEdges()
	return true
}

// MovePos is Move addressed by position.
func (b *Board) MovePos(pos int, d Direction) bool {
	row, col := b.RowCol(pos)
	return b.Move(row, col, d)
}

// MoveSpan returns the inclusive range of lines a move from (row, col) in
// direction d would shift: column indexes for North/South, row indexes for
// East/West. ok is false when the move is blocked. The board is not changed.
func (b *Board) MoveSpan(row, col int, d Direction) (from, to int, ok bool) {
	b.mustRowCol(row, col)

	if d.Vertical() {
		from, to = col, col
	} else {
		from, to = row, row
	}

	for _, blk := range b.movable.Slice() {
		if !b.crossesLine(blk, row, col, d) {
			continue
		}
		if d.Vertical() {
			from = min(from, blk.Col)
			to = max(to, blk.Col+blk.Width-1)
		} else {
			from = min(from, blk.Row)
			to = max(to, blk.Row+blk.Height-1)
		}
	}

	// Blocks may hang past the grid; only real lines can shift.
	lines := b.rows
	if d.Vertical() {
		lines = b.columns
	}
	from = max(from, 0)
	to = min(to, lines-1)

	for line := from; line <= to; line++ {
		if b.isPinned(line, d) {
			return from, to, false
		}
	}
	return from, to, true
}

// crossesLine reports whether blk covers any cell of the line through
// (row, col) along the axis of d.
func (b *Board) crossesLine(blk Block, row, col int, d Direction) bool {
	if d.Vertical() {
		for r := 0; r < b.rows; r++ {
			if blk.Contains(r, col) {
				return true
			}
		}
		return false
	}
	for c := 0; c < b.columns; c++ {
		if blk.Contains(row, c) {
			return true
		}
	}
	return false
}

// isPinned reports whether any non-movable block covers a cell of the given
// line (a column for vertical moves, a row otherwise).
func (b *Board) isPinned(line int, d Direction) bool {
	for blk := range b.nonMovable.blocks {
		if d.Vertical() {
			for r := 0; r < b.rows; r++ {
				if blk.Contains(r, line) {
					return true
				}
			}
			continue
		}
		for c := 0; c < b.columns; c++ {
			if blk.Contains(line, c) {
				return true
			}
		}
	}
	return false
}

// shiftLine rotates one row or column a single cell toward d. The tile
// pushed off the far end re-enters at the near end.
func (b *Board) shiftLine(line int, d Direction) {
	var start, step, n int
	switch d {
	case North:
		start, step, n = line, b.columns, b.rows
	case South:
		start, step, n = line+(b.rows-1)*b.columns, -b.columns, b.rows
	case East:
		start, step, n = line*b.columns+b.columns-1, -1, b.columns
	case West:
		start, step, n = line*b.columns, 1, b.columns
	default:
		return
	}

	// Walk from the far end toward the near end, pulling each tile forward.
	saved := b.tiles[start]
	pos := start
	for i := 0; i < n-1; i++ {
		next := pos + step
		b.tiles[pos] = b.tiles[next]
		pos = next
	}
	b.tiles[pos] = saved
}
