package formats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
)

// Decode errors. They are wrapped with the index of the offending tile.
var (
	ErrMissingOrientation = errors.New("formats: linear tile without orientation")
	ErrMissingDirection   = errors.New("formats: tile without direction")
	ErrUnknownTileType    = errors.New("formats: unknown tile type")
)

// JSONBoard is the wire shape of a board. Edges are never stored; they are
// derived from the tiles on decode.
type JSONBoard struct {
	Rows             int         `json:"rows"`
	Columns          int         `json:"columns"`
	Boxes            []JSONTile  `json:"boxes"`
	MovableBlocks    []JSONBlock `json:"movableBlocks"`
	NonMovableBlocks []JSONBlock `json:"nonMovableBlocks"`
}

// JSONTile is one tile on the wire. Orientation is present only for Linear
// tiles, Direction only for Curved and Intersection tiles.
type JSONTile struct {
	Type        string `json:"type"`
	Orientation string `json:"orientation,omitempty"`
	Direction   string `json:"direction,omitempty"`
}

// JSONBlock is a block footprint on the wire.
type JSONBlock struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// UnmarshalJSON accepts the misspelled "heigth" key written by older tools
// when "height" is absent.
func (b *JSONBlock) UnmarshalJSON(data []byte) error {
	var raw struct {
		Row    int  `json:"row"`
		Col    int  `json:"col"`
		Width  int  `json:"width"`
		Height *int `json:"height"`
		Heigth *int `json:"heigth"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = JSONBlock{Row: raw.Row, Col: raw.Col, Width: raw.Width}
	switch {
	case raw.Height != nil:
		b.Height = *raw.Height
	case raw.Heigth != nil:
		b.Height = *raw.Heigth
	}
	return nil
}

// MarshalTile converts a tile to its wire shape.
func MarshalTile(t core.Tile) JSONTile {
	jt := JSONTile{Type: t.Kind.String()}
	switch {
	case t.Kind.HasOrientation():
		jt.Orientation = t.Orientation.String()
	case t.Kind.HasDirection():
		jt.Direction = t.Direction.String()
	}
	return jt
}

// UnmarshalTile converts a wire tile back to a core tile.
func UnmarshalTile(jt JSONTile) (core.Tile, error) {
	kind, err := core.ParseKind(jt.Type)
	if err != nil {
		return core.Tile{}, fmt.Errorf("%w %q", ErrUnknownTileType, jt.Type)
	}

	switch kind {
	case core.KindNone:
		return core.Empty(), nil
	case core.KindCross:
		return core.Cross(), nil
	case core.KindLinear:
		if jt.Orientation == "" {
			return core.Tile{}, ErrMissingOrientation
		}
		o, err := wireOrientation(jt.Orientation)
		if err != nil {
			return core.Tile{}, err
		}
		return core.Linear(o), nil
	default:
		if jt.Direction == "" {
			return core.Tile{}, ErrMissingDirection
		}
		d, err := wireDirection(jt.Direction)
		if err != nil {
			return core.Tile{}, err
		}
		if kind == core.KindCurved {
			return core.Curved(d), nil
		}
		return core.Intersection(d), nil
	}
}

// wireOrientation matches an orientation name exactly as MarshalTile writes it.
func wireOrientation(s string) (core.Orientation, error) {
	for _, o := range []core.Orientation{core.Vertical, core.Horizontal} {
		if s == o.String() {
			return o, nil
		}
	}
	return 0, fmt.Errorf("formats: unknown orientation %q", s)
}

// wireDirection matches a direction name exactly as MarshalTile writes it.
func wireDirection(s string) (core.Direction, error) {
	for _, d := range core.Directions {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("formats: unknown direction %q", s)
}

// ToJSONBoard converts a board to its wire shape. Blocks come out sorted.
func ToJSONBoard(b *core.Board) JSONBoard {
	tiles := b.Tiles()
	jb := JSONBoard{
		Rows:             b.Rows(),
		Columns:          b.Columns(),
		Boxes:            make([]JSONTile, len(tiles)),
		MovableBlocks:    toJSONBlocks(b.MovableBlocks()),
		NonMovableBlocks: toJSONBlocks(b.NonMovableBlocks()),
	}
	for i, t := range tiles {
		jb.Boxes[i] = MarshalTile(t)
	}
	return jb
}

// Board rebuilds a core board from the wire shape. Nothing is returned on
// error.
func (jb JSONBoard) Board() (*core.Board, error) {
	tiles := make([]core.Tile, len(jb.Boxes))
	for i, jt := range jb.Boxes {
		t, err := UnmarshalTile(jt)
		if err != nil {
			return nil, fmt.Errorf("box %d: %w", i, err)
		}
		tiles[i] = t
	}

	b, err := core.NewBoardFrom(jb.Rows, jb.Columns, tiles,
		fromJSONBlocks(jb.MovableBlocks), fromJSONBlocks(jb.NonMovableBlocks))
	if err != nil {
		return nil, fmt.Errorf("formats: %w", err)
	}
	return b, nil
}

// EncodeBoard serialises a board as JSON.
func EncodeBoard(b *core.Board) ([]byte, error) {
	data, err := json.Marshal(ToJSONBoard(b))
	if err != nil {
		return nil, fmt.Errorf("formats: encode board: %w", err)
	}
	return data, nil
}

// DecodeBoard parses a JSON board and rebuilds its graph.
func DecodeBoard(data []byte) (*core.Board, error) {
	var jb JSONBoard
	if err := json.Unmarshal(data, &jb); err != nil {
		return nil, fmt.Errorf("formats: decode board: %w", err)
	}
	return jb.Board()
}

func toJSONBlocks(blocks []core.Block) []JSONBlock {
	out := make([]JSONBlock, len(blocks))
	for i, b := range blocks {
		out[i] = JSONBlock{Row: b.Row, Col: b.Col, Width: b.Width, Height: b.Height}
	}
	return out
}

func fromJSONBlocks(blocks []JSONBlock) []core.Block {
	out := make([]core.Block, len(blocks))
	for i, b := range blocks {
		out[i] = core.B(b.Row, b.Col, b.Width, b.Height)
	}
	return out
}
