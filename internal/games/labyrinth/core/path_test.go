package core

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestShortestPathOnRow(t *testing.T) {
	b := newRowBoard()

	path, ok := b.ShortestPath(2, 0, 2, 3)
	if !ok {
		t.Fatal("ShortestPath(2,0 -> 2,3) found no path")
	}
	want := []Direction{West, West, West}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}
	if got := Travel(path); !reflect.DeepEqual(got, []Direction{East, East, East}) {
		t.Errorf("Travel(path) = %v, want [East East East]", got)
	}

	// ⊣ has no east side, so ⊢ is cut off.
	if path, ok := b.ShortestPath(2, 0, 2, 4); ok {
		t.Errorf("ShortestPath(2,0 -> 2,4) = %v, want no path", path)
	}
}

func TestShortestPathAfterMove(t *testing.T) {
	b := newRowBoard()
	b.AddMovable(B(1, 2, 3, 3))
	b.Move(1, 2, East) // row 2 is now ⊢⊤⊥-⊣

	path, ok := b.ShortestPath(2, 0, 2, 4)
	if !ok {
		t.Fatal("ShortestPath(2,0 -> 2,4) found no path after the shift")
	}
	if len(path) != 4 {
		t.Errorf("path = %v, want four hops", path)
	}
}

func TestShortestPathEdgeCases(t *testing.T) {
	t.Run("same cell", func(t *testing.T) {
		b := newRowBoard()
		path, ok := b.ShortestPath(2, 1, 2, 1)
		if !ok || path == nil || len(path) != 0 {
			t.Errorf("ShortestPath to self = %v, %v; want [], true", path, ok)
		}
	})

	t.Run("same empty cell", func(t *testing.T) {
		b := NewBoard(2, 2)
		if _, ok := b.ShortestPath(0, 0, 0, 0); !ok {
			t.Error("a cell always reaches itself")
		}
	})

	t.Run("empty board", func(t *testing.T) {
		b := NewBoard(3, 3)
		path, ok := b.ShortestPath(0, 0, 2, 2)
		if ok || path != nil {
			t.Errorf("ShortestPath on empty board = %v, %v; want nil, false", path, ok)
		}
	})

	t.Run("corner turn", func(t *testing.T) {
		b := NewBoard(2, 2)
		b.Set(0, 0, Curved(East)) // east and south
		b.Set(0, 1, Curved(South))
		b.Set(1, 1, Linear(Vertical))

		path, ok := b.ShortestPath(0, 0, 1, 1)
		if !ok {
			t.Fatal("no path around the corner")
		}
		if want := []Direction{West, North}; !reflect.DeepEqual(path, want) {
			t.Errorf("path = %v, want %v", path, want)
		}
	})
}

// distances computes all-pairs hop counts with Floyd-Warshall.
func distances(b *Board) [][]int {
	const inf = 1 << 30
	n := b.Size()
	dist := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		for j := range dist[i] {
			dist[i][j] = inf
		}
		dist[i][i] = 0
		for _, j := range b.Edges(i) {
			dist[i][j] = 1
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	for i := range dist {
		for j := range dist[i] {
			if dist[i][j] >= inf {
				dist[i][j] = -1
			}
		}
	}
	return dist
}

func TestShortestPathIsMinimal(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := Generate(5, 6, rng, GenOptions{Layout: LayoutFree})
		dist := distances(b)

		for from := 0; from < b.Size(); from++ {
			for to := 0; to < b.Size(); to++ {
				path, ok := b.ShortestPathPos(from, to)
				if want := dist[from][to]; want < 0 {
					if ok {
						t.Fatalf("seed %d: %d->%d found %v, want no path", seed, from, to, path)
					}
					continue
				}
				if !ok {
					t.Fatalf("seed %d: %d->%d found no path, want %d hops", seed, from, to, dist[from][to])
				}
				if len(path) != dist[from][to] {
					t.Fatalf("seed %d: %d->%d has %d hops, want %d", seed, from, to, len(path), dist[from][to])
				}

				// Walking the path must follow edges and end at the target.
				pos := from
				for _, d := range Travel(path) {
					next, ok := b.neighbor(pos, d)
					if !ok || !containsInt(b.Edges(pos), next) {
						t.Fatalf("seed %d: %d->%d steps %v off the graph at %d", seed, from, to, d, pos)
					}
					pos = next
				}
				if pos != to {
					t.Fatalf("seed %d: %d->%d ended at %d", seed, from, to, pos)
				}
			}
		}
	}
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func TestReachable(t *testing.T) {
	b := newRowBoard()

	if got := b.Reachable(10); !reflect.DeepEqual(got, []int{10, 11, 12, 13}) {
		t.Errorf("Reachable(10) = %v, want [10 11 12 13]", got)
	}
	if got := b.Reachable(14); !reflect.DeepEqual(got, []int{14}) {
		t.Errorf("Reachable(14) = %v, want [14]", got)
	}
	if got := b.Reachable(0); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Reachable(0) = %v, want [0]", got)
	}
}
