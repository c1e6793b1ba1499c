package core

import "testing"

func TestMoveShiftsSpanEast(t *testing.T) {
	b := newRowBoard()
	b.AddMovable(B(1, 2, 3, 3))
	b.AddNonMovable(B(4, 2, 1, 1))

	if !b.Move(1, 2, East) {
		t.Fatal("Move(1,2,East) = false, want true")
	}
	if got := b.Row(2); got != "⊢⊤⊥-⊣" {
		t.Errorf("row 2 = %q, want ⊢⊤⊥-⊣", got)
	}
	// ⊢ now sits at (2,0) and opens east toward ⊤.
	if got := b.Edges(10); len(got) != 1 || got[0] != 11 {
		t.Errorf("Edges(10) = %v, want [11]", got)
	}
	assertUndirected(t, b)
}

func TestMoveBlockedLeavesBoardUnchanged(t *testing.T) {
	tests := []struct {
		name       string
		nonMovable Block
		row, col   int
		dir        Direction
	}{
		{"pinned line inside span", B(3, 0, 1, 1), 1, 2, East},
		{"pinned origin line", B(2, 4, 1, 1), 2, 0, West},
		{"pinned column", B(4, 2, 1, 1), 1, 2, North},
		{"pinned widened column", B(0, 4, 1, 1), 0, 2, South},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newRowBoard()
			b.AddMovable(B(1, 2, 3, 3))
			b.AddNonMovable(tt.nonMovable)
			before := b.String()

			if b.Move(tt.row, tt.col, tt.dir) {
				t.Fatalf("Move(%d,%d,%v) = true, want false", tt.row, tt.col, tt.dir)
			}
			if after := b.String(); after != before {
				t.Errorf("blocked move changed the board:\n%s\nwant:\n%s", after, before)
			}
		})
	}
}

func TestMoveSingleLine(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string // row 2 after the move
	}{
		{East, "⊢⊤⊥-⊣"},
		{West, "⊥-⊣⊢⊤"},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := newRowBoard()
			if !b.Move(2, 3, tt.dir) {
				t.Fatal("uncontested move returned false")
			}
			if got := b.Row(2); got != tt.want {
				t.Errorf("row 2 = %q, want %q", got, tt.want)
			}
			if got := b.Row(1); got != "xxxxx" {
				t.Errorf("row 1 changed: %q", got)
			}
		})
	}
}

func TestMoveColumn(t *testing.T) {
	newBoard := func() *Board {
		b := NewBoard(3, 3)
		b.Set(0, 1, Cross())
		b.Set(1, 1, Linear(Vertical))
		return b
	}
	column := func(b *Board) string {
		return b.At(0, 1).String() + b.At(1, 1).String() + b.At(2, 1).String()
	}

	b := newBoard()
	if !b.Move(2, 1, North) {
		t.Fatal("Move North returned false")
	}
	if got := column(b); got != "|x+" {
		t.Errorf("column after North = %q, want |x+", got)
	}

	b = newBoard()
	if !b.Move(0, 1, South) {
		t.Fatal("Move South returned false")
	}
	if got := column(b); got != "x+|" {
		t.Errorf("column after South = %q, want x+|", got)
	}
	// The other columns are untouched.
	if b.At(0, 0) != Empty() || b.At(2, 2) != Empty() {
		t.Error("move touched another column")
	}
}

func TestMoveRoundTrip(t *testing.T) {
	b := newRowBoard()
	b.AddMovable(B(1, 2, 3, 3))
	before := b.String()

	for i := 0; i < 5; i++ {
		if !b.Move(2, 2, East) {
			t.Fatalf("move %d returned false", i)
		}
	}
	if got := b.String(); got != before {
		t.Errorf("five east shifts on a 5-wide board should be identity, got:\n%s", got)
	}

	b.Move(2, 2, East)
	b.Move(2, 2, West)
	if got := b.String(); got != before {
		t.Errorf("east then west should be identity, got:\n%s", got)
	}
}

func TestMovePosUsesColumnStride(t *testing.T) {
	b := NewBoard(2, 3)
	b.Set(1, 0, Cross())
	b.Set(1, 1, Linear(Horizontal))
	b.Set(1, 2, Curved(North))

	// pos 5 is (1,2); dividing by rows would give row 2, outside the board.
	if !b.MovePos(5, West) {
		t.Fatal("MovePos(5, West) returned false")
	}
	if got := b.Row(1); got != "-∧+" {
		t.Errorf("row 1 = %q, want -∧+", got)
	}
	if got := b.Row(0); got != "xxx" {
		t.Errorf("row 0 = %q, want xxx", got)
	}
}

func TestMoveSpan(t *testing.T) {
	tests := []struct {
		name     string
		movable  []Block
		pinned   []Block
		row, col int
		dir      Direction
		from, to int
		ok       bool
	}{
		{"lone row", nil, nil, 2, 3, East, 2, 2, true},
		{"lone column", nil, nil, 2, 3, North, 3, 3, true},
		{"widened rows", []Block{B(1, 2, 3, 3)}, nil, 1, 0, West, 1, 3, true},
		{"widened columns", []Block{B(1, 2, 3, 3)}, nil, 0, 2, South, 2, 4, true},
		{"block misses line", []Block{B(1, 2, 3, 3)}, nil, 0, 0, East, 0, 0, true},
		{"two blocks", []Block{B(0, 0, 1, 2), B(1, 3, 1, 3)}, nil, 1, 0, East, 0, 3, true},
		{"clamped to grid", []Block{B(0, 3, 5, 1)}, nil, 4, 3, North, 3, 4, true},
		{"pinned", []Block{B(1, 2, 3, 3)}, []Block{B(3, 0, 1, 1)}, 2, 2, East, 1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(5, 5)
			for _, blk := range tt.movable {
				b.AddMovable(blk)
			}
			for _, blk := range tt.pinned {
				b.AddNonMovable(blk)
			}
			before := b.String()

			from, to, ok := b.MoveSpan(tt.row, tt.col, tt.dir)
			if from != tt.from || to != tt.to || ok != tt.ok {
				t.Errorf("MoveSpan = (%d,%d,%v), want (%d,%d,%v)", from, to, ok, tt.from, tt.to, tt.ok)
			}
			if b.String() != before {
				t.Error("MoveSpan mutated the board")
			}
		})
	}
}
