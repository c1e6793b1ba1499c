package core

import "fmt"

// Kind is the discriminant of a Tile.
type Kind uint8

const (
	KindNone Kind = iota
	KindCross
	KindLinear
	KindCurved
	KindIntersection
)

// String returns the string representation of a tile kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindCross:
		return "Cross"
	case KindLinear:
		return "Linear"
	case KindCurved:
		return "Curved"
	case KindIntersection:
		return "Intersection"
	default:
		return "Unknown"
	}
}

// ParseKind parses a tile kind name as written on the wire.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "None":
		return KindNone, nil
	case "Cross":
		return KindCross, nil
	case "Linear":
		return KindLinear, nil
	case "Curved":
		return KindCurved, nil
	case "Intersection":
		return KindIntersection, nil
	default:
		return 0, fmt.Errorf("unknown tile type %q", s)
	}
}

// HasOrientation reports whether tiles of this kind carry an Orientation.
func (k Kind) HasOrientation() bool {
	return k == KindLinear
}

// HasDirection reports whether tiles of this kind carry a Direction.
func (k Kind) HasDirection() bool {
	return k == KindCurved || k == KindIntersection
}

// Tile is a connector shape occupying one board cell.
// Only the payload field matching Kind is meaningful; constructors keep the
// other one zeroed so tiles compare with ==.
type Tile struct {
	Kind        Kind
	Orientation Orientation // KindLinear only
	Direction   Direction   // KindCurved and KindIntersection only
}

// Empty returns a tile with no open sides.
func Empty() Tile {
	return Tile{Kind: KindNone}
}

// Cross returns a tile open on all four sides.
func Cross() Tile {
	return Tile{Kind: KindCross}
}

// Linear returns a straight tile.
func Linear(o Orientation) Tile {
	return Tile{Kind: KindLinear, Orientation: o}
}

// Curved returns a corner tile. The direction names the first of its two
// open sides going clockwise.
func Curved(d Direction) Tile {
	return Tile{Kind: KindCurved, Direction: d}
}

// Intersection returns a T tile. The direction names the tile's stem
// orientation: North is ⊤ (closed on the north side).
func Intersection(d Direction) Tile {
	return Tile{Kind: KindIntersection, Direction: d}
}

// Rotate returns the tile turned a quarter in the given rotation.
func (t Tile) Rotate(r Rotation) Tile {
	switch t.Kind {
	case KindLinear:
		return Linear(t.Orientation.Rotate(r))
	case KindCurved:
		return Curved(t.Direction.Rotate(r))
	case KindIntersection:
		return Intersection(t.Direction.Rotate(r))
	default:
		return t
	}
}

// OpenSides returns the open sides of the tile, always in N, E, S, W order.
func (t Tile) OpenSides() []Direction {
	switch t.Kind {
	case KindCross:
		return []Direction{North, East, South, West}
	case KindLinear:
		if t.Orientation == Horizontal {
			return []Direction{East, West}
		}
		return []Direction{North, South}
	case KindCurved:
		switch t.Direction {
		case North:
			return []Direction{North, East}
		case East:
			return []Direction{East, South}
		case South:
			return []Direction{South, West}
		case West:
			return []Direction{North, West}
		}
	case KindIntersection:
		switch t.Direction {
		case North:
			return []Direction{East, South, West}
		case East:
			return []Direction{North, South, West}
		case South:
			return []Direction{North, East, West}
		case West:
			return []Direction{North, East, South}
		}
	}
	return nil
}

// Opens reports whether side d of the tile is open.
func (t Tile) Opens(d Direction) bool {
	for _, side := range t.OpenSides() {
		if side == d {
			return true
		}
	}
	return false
}

// Glyph returns the single-character representation of the tile.
func (t Tile) Glyph() rune {
	switch t.Kind {
	case KindCross:
		return '+'
	case KindLinear:
		if t.Orientation == Horizontal {
			return '-'
		}
		return '|'
	case KindCurved:
		return curvedGlyphs[t.Direction%4]
	case KindIntersection:
		return intersectionGlyphs[t.Direction%4]
	default:
		return 'x'
	}
}

// String returns the glyph as a string.
func (t Tile) String() string {
	return string(t.Glyph())
}

var (
	curvedGlyphs       = [4]rune{'∧', '>', '∨', '<'}
	intersectionGlyphs = [4]rune{'⊤', '⊣', '⊥', '⊢'}
)

// ParseGlyph returns the tile rendered by r. The bool is false for runes
// that are not tile glyphs.
func ParseGlyph(r rune) (Tile, bool) {
	switch r {
	case 'x', 'X':
		return Empty(), true
	case '+':
		return Cross(), true
	case '-':
		return Linear(Horizontal), true
	case '|':
		return Linear(Vertical), true
	}
	for _, d := range Directions {
		if curvedGlyphs[d] == r {
			return Curved(d), true
		}
		if intersectionGlyphs[d] == r {
			return Intersection(d), true
		}
	}
	return Tile{}, false
}
