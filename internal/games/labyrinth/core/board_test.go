package core

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

// newRowBoard returns the 5x5 board used across these tests: row 2 holds
// ⊤⊥-⊣⊢, everything else is empty.
func newRowBoard() *Board {
	b := NewBoard(5, 5)
	b.Set(2, 0, Intersection(North))
	b.Set(2, 1, Intersection(South))
	b.Set(2, 2, Linear(Horizontal))
	b.Set(2, 3, Intersection(East))
	b.Set(2, 4, Intersection(West))
	return b
}

// assertUndirected fails if any edge is missing its reverse.
func assertUndirected(t *testing.T, b *Board) {
	t.Helper()
	for p := 0; p < b.Size(); p++ {
		for _, q := range b.Edges(p) {
			found := false
			for _, back := range b.Edges(q) {
				if back == p {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("edge %d->%d has no reverse", p, q)
			}
		}
	}
}

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(3, 4)

	if b.Rows() != 3 || b.Columns() != 4 || b.Size() != 12 {
		t.Fatalf("expected 3x4 board, got %dx%d (%d cells)", b.Rows(), b.Columns(), b.Size())
	}
	want := "xxxx\nxxxx\nxxxx\n"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if b.EdgeCount() != 0 {
		t.Errorf("empty board has %d edges", b.EdgeCount())
	}
}

func TestNewBoardFromValidates(t *testing.T) {
	if _, err := NewBoardFrom(2, 2, make([]Tile, 3), nil, nil); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("short tiles: want ErrBadDimensions, got %v", err)
	}
	if _, err := NewBoardFrom(0, 2, nil, nil, nil); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("zero rows: want ErrBadDimensions, got %v", err)
	}
	if _, err := NewBoardFrom(math.MaxInt/2, 3, nil, nil, nil); !errors.Is(err, ErrBadDimensions) {
		t.Errorf("overflowing size: want ErrBadDimensions, got %v", err)
	}

	tiles := []Tile{Linear(Horizontal), Linear(Horizontal), Cross(), Empty()}
	b, err := NewBoardFrom(2, 2, tiles, []Block{B(0, 0, 2, 1)}, []Block{B(1, 1, 1, 1), B(1, 1, 1, 1)})
	if err != nil {
		t.Fatalf("NewBoardFrom failed: %v", err)
	}
	tiles[0] = Empty() // the board must hold its own copy

	if got := b.String(); got != "--\n+x\n" {
		t.Errorf("String() = %q", got)
	}
	if !reflect.DeepEqual(b.Edges(0), []int{1}) {
		t.Errorf("edges rebuilt on construction: Edges(0) = %v, want [1]", b.Edges(0))
	}
	if len(b.MovableBlocks()) != 1 || len(b.NonMovableBlocks()) != 1 {
		t.Errorf("blocks = %v / %v", b.MovableBlocks(), b.NonMovableBlocks())
	}
}

func TestIndexUsesColumnStride(t *testing.T) {
	b := NewBoard(2, 3)

	if got := b.Index(1, 2); got != 5 {
		t.Errorf("Index(1,2) = %d, want 5", got)
	}
	row, col := b.RowCol(5)
	if row != 1 || col != 2 {
		t.Errorf("RowCol(5) = (%d,%d), want (1,2)", row, col)
	}
	row, col = b.RowCol(3)
	if row != 1 || col != 0 {
		t.Errorf("RowCol(3) = (%d,%d), want (1,0)", row, col)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	b := NewBoard(5, 5)

	tests := []struct {
		name string
		fn   func()
	}{
		{"At row", func() { b.At(5, 0) }},
		{"At col", func() { b.At(0, -1) }},
		{"AtPos", func() { b.AtPos(25) }},
		{"Rotate", func() { b.Rotate(0, 5, RotateRight) }},
		{"Move", func() { b.Move(-1, 0, East) }},
		{"ShortestPath", func() { b.ShortestPath(0, 0, 9, 9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestEdgesOnRow(t *testing.T) {
	b := newRowBoard()

	tests := []struct {
		pos  int
		want []int
	}{
		{10, []int{11}},     // ⊤ east to ⊥
		{11, []int{12, 10}}, // ⊥ east then west
		{12, []int{13, 11}}, // - east then west
		{13, []int{12}},     // ⊣ only west
		{14, nil},           // ⊢ faces ⊣'s closed east side
	}

	for _, tt := range tests {
		got := b.Edges(tt.pos)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Edges(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
	if b.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", b.EdgeCount())
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	b := NewBoard(2, 2)
	b.Set(0, 0, Linear(Horizontal))
	b.Set(0, 1, Linear(Horizontal))
	b.Set(1, 0, Linear(Horizontal))

	// (0,1) east would wrap to (1,0) with a naive pos+1.
	if got := b.Edges(1); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Edges(1) = %v, want [0]", got)
	}
	if got := b.Edges(2); len(got) != 0 {
		t.Errorf("Edges(2) = %v, want none", got)
	}
}

func TestRotateRebuildsEdges(t *testing.T) {
	b := newRowBoard()

	// ⊣ at (2,3) turned left becomes ⊤, opening east; ⊢ at (2,4) turned
	// right becomes ⊤, opening west. The two now connect.
	b.Rotate(2, 3, RotateLeft)
	b.Rotate(2, 4, RotateRight)
	if got := b.At(2, 4); got != Intersection(North) {
		t.Fatalf("At(2,4) = %v, want ⊤", got)
	}
	if got := b.Edges(14); !reflect.DeepEqual(got, []int{13}) {
		t.Errorf("Edges(14) = %v, want [13]", got)
	}
	if got := b.Edges(13); !reflect.DeepEqual(got, []int{14, 12}) {
		t.Errorf("Edges(13) = %v, want [14 12]", got)
	}

	b.RotatePos(14, RotateLeft)
	if got := b.Edges(14); len(got) != 0 {
		t.Errorf("after rotating back, Edges(14) = %v, want none", got)
	}
	if got := b.Edges(13); !reflect.DeepEqual(got, []int{12}) {
		t.Errorf("after rotating back, Edges(13) = %v, want [12]", got)
	}
	assertUndirected(t, b)
}

func TestGraphIsUndirected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := Generate(3+rng.Intn(6), 3+rng.Intn(6), rng, GenOptions{Layout: LayoutFree})
		assertUndirected(t, b)

		Scramble(b, rng, 10)
		assertUndirected(t, b)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newRowBoard()
	b.AddMovable(B(1, 2, 3, 3))

	c := b.Clone()
	c.Rotate(2, 2, RotateRight)
	c.AddNonMovable(B(0, 0, 1, 1))

	if b.At(2, 2) != Linear(Horizontal) {
		t.Error("rotating the clone changed the original")
	}
	if len(b.NonMovableBlocks()) != 0 {
		t.Error("adding a block to the clone changed the original")
	}
	if c.String() == b.String() {
		t.Error("clone should differ after rotation")
	}
	if !reflect.DeepEqual(b.Clone().Edges(11), b.Edges(11)) {
		t.Error("clone edges differ from original")
	}
}

func TestStringLayout(t *testing.T) {
	b := newRowBoard()
	lines := strings.Split(b.String(), "\n")

	// Five rows plus the empty string after the trailing newline.
	if len(lines) != 6 || lines[5] != "" {
		t.Fatalf("unexpected layout %q", b.String())
	}
	if lines[2] != "⊤⊥-⊣⊢" {
		t.Errorf("row 2 = %q, want ⊤⊥-⊣⊢", lines[2])
	}
	if b.Row(2) != lines[2] {
		t.Errorf("Row(2) = %q, want %q", b.Row(2), lines[2])
	}
}
