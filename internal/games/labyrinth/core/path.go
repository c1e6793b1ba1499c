package core

// pathItem is a frontier entry: a position and the sides recorded to reach it.
type pathItem struct {
	pos   int
	sides []Direction
}

// walker holds the mutable state of one breadth-first search.
type walker struct {
	board   *Board
	queue   []pathItem
	visited []bool
}

func newWalker(b *Board, start int) *walker {
	w := &walker{
		board:   b,
		queue:   make([]pathItem, 0, len(b.tiles)),
		visited: make([]bool, len(b.tiles)),
	}
	w.enqueue(pathItem{pos: start})
	return w
}

// enqueue marks the item's position visited and appends it to the frontier.
func (w *walker) enqueue(item pathItem) {
	w.visited[item.pos] = true
	w.queue = append(w.queue, item)
}

// dequeue pops the oldest frontier entry.
func (w *walker) dequeue() pathItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// expand enqueues every unvisited neighbour of item. Each hop records the
// side of the entered tile that faces back toward item.
func (w *walker) expand(item pathItem) {
	for _, next := range w.board.edges[item.pos] {
		if w.visited[next] {
			continue
		}
		entry := w.board.stepDirection(item.pos, next).Opposite()
		sides := make([]Direction, len(item.sides), len(item.sides)+1)
		copy(sides, item.sides)
		w.enqueue(pathItem{pos: next, sides: append(sides, entry)})
	}
}

// stepDirection returns the direction of travel from pos to its grid
// neighbour next.
func (b *Board) stepDirection(pos, next int) Direction {
	switch next {
	case pos - b.columns:
		return North
	case pos + b.columns:
		return South
	case pos + 1:
		return East
	default:
		return West
	}
}

// ShortestPath finds a minimum-hop route from (fromRow, fromCol) to
// (toRow, toCol). Each element is the open side through which the token
// enters the next tile: walking east into a tile records West.
// Returns false when the cells are not connected.
func (b *Board) ShortestPath(fromRow, fromCol, toRow, toCol int) ([]Direction, bool) {
	return b.ShortestPathPos(b.Index(fromRow, fromCol), b.Index(toRow, toCol))
}

// ShortestPathPos is ShortestPath addressed by position.
func (b *Board) ShortestPathPos(from, to int) ([]Direction, bool) {
	b.mustPos(from)
	b.mustPos(to)

	w := newWalker(b, from)
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.pos == to {
			if item.sides == nil {
				return []Direction{}, true
			}
			return item.sides, true
		}
		w.expand(item)
	}
	return nil, false
}

// Reachable returns every position connected to pos, including pos itself,
// in breadth-first order.
func (b *Board) Reachable(pos int) []int {
	b.mustPos(pos)

	w := newWalker(b, pos)
	order := make([]int, 0, len(b.tiles))
	for len(w.queue) > 0 {
		item := w.dequeue()
		order = append(order, item.pos)
		w.expand(item)
	}
	return order
}

// Travel converts the entry sides returned by ShortestPath into directions
// of travel.
func Travel(sides []Direction) []Direction {
	out := make([]Direction, len(sides))
	for i, s := range sides {
		out[i] = s.Opposite()
	}
	return out
}
