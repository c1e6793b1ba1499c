package formats

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
)

func sampleBoard() *core.Board {
	b := core.NewBoard(5, 5)
	b.Set(2, 0, core.Intersection(core.North))
	b.Set(2, 1, core.Intersection(core.South))
	b.Set(2, 2, core.Linear(core.Horizontal))
	b.Set(2, 3, core.Intersection(core.East))
	b.Set(2, 4, core.Intersection(core.West))
	b.Set(0, 0, core.Curved(core.East))
	b.Set(4, 4, core.Cross())
	b.AddMovable(core.B(1, 2, 3, 3))
	b.AddNonMovable(core.B(4, 2, 1, 1))
	return b
}

func TestEncodeBoardShape(t *testing.T) {
	data, err := EncodeBoard(sampleBoard())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.EqualValues(t, 5, raw["rows"])
	require.EqualValues(t, 5, raw["columns"])
	require.NotContains(t, raw, "edges")

	boxes := raw["boxes"].([]any)
	require.Len(t, boxes, 25)
	require.Equal(t, map[string]any{"type": "Curved", "direction": "East"}, boxes[0])
	require.Equal(t, map[string]any{"type": "None"}, boxes[1])
	require.Equal(t, map[string]any{"type": "Linear", "orientation": "Horizontal"}, boxes[12])
	require.Equal(t, map[string]any{"type": "Cross"}, boxes[24])

	require.Equal(t, []any{map[string]any{"row": 1.0, "col": 2.0, "width": 3.0, "height": 3.0}}, raw["movableBlocks"])
	require.Equal(t, []any{map[string]any{"row": 4.0, "col": 2.0, "width": 1.0, "height": 1.0}}, raw["nonMovableBlocks"])
}

func TestDecodeBoardRestoresGraph(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		want := core.Generate(6, 4, rng, core.GenOptions{Layout: core.LayoutBands})

		data, err := EncodeBoard(want)
		require.NoError(t, err)
		got, err := DecodeBoard(data)
		require.NoError(t, err)

		require.Equal(t, want.String(), got.String())
		require.Equal(t, want.MovableBlocks(), got.MovableBlocks())
		require.Equal(t, want.NonMovableBlocks(), got.NonMovableBlocks())
		for pos := 0; pos < want.Size(); pos++ {
			require.Equal(t, want.Edges(pos), got.Edges(pos), "edges of %d", pos)
		}
	}
}

func TestEncodeBoardSortsBlocks(t *testing.T) {
	b := core.NewBoard(3, 3)
	b.AddNonMovable(core.B(2, 2, 1, 1))
	b.AddNonMovable(core.B(0, 2, 1, 1))
	b.AddNonMovable(core.B(0, 0, 1, 1))

	first, err := EncodeBoard(b)
	require.NoError(t, err)
	second, err := EncodeBoard(b)
	require.NoError(t, err)
	require.Equal(t, string(first), string(second))
	require.Contains(t, string(first),
		`"nonMovableBlocks":[{"row":0,"col":0,"width":1,"height":1},{"row":0,"col":2,"width":1,"height":1},{"row":2,"col":2,"width":1,"height":1}]`)
}

func TestDecodeBoardLegacyHeightKey(t *testing.T) {
	data := []byte(`{"rows":1,"columns":2,
		"boxes":[{"type":"Linear","orientation":"Horizontal"},{"type":"Cross"}],
		"movableBlocks":[{"row":0,"col":0,"width":2,"heigth":1}],
		"nonMovableBlocks":[]}`)

	b, err := DecodeBoard(data)
	require.NoError(t, err)
	require.Equal(t, []core.Block{core.B(0, 0, 2, 1)}, b.MovableBlocks())
	require.Equal(t, []int{1}, b.Edges(0))
}

func TestDecodeBoardErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		is   error
	}{
		{
			name: "linear without orientation",
			data: `{"rows":1,"columns":2,"boxes":[{"type":"None"},{"type":"Linear"}]}`,
			is:   ErrMissingOrientation,
		},
		{
			name: "curved without direction",
			data: `{"rows":1,"columns":1,"boxes":[{"type":"Curved"}]}`,
			is:   ErrMissingDirection,
		},
		{
			name: "intersection without direction",
			data: `{"rows":1,"columns":1,"boxes":[{"type":"Intersection","orientation":"Vertical"}]}`,
			is:   ErrMissingDirection,
		},
		{
			name: "unknown type",
			data: `{"rows":1,"columns":1,"boxes":[{"type":"Diagonal"}]}`,
			is:   ErrUnknownTileType,
		},
		{
			name: "size mismatch",
			data: `{"rows":2,"columns":2,"boxes":[{"type":"None"}]}`,
			is:   core.ErrBadDimensions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := DecodeBoard([]byte(tt.data))
			require.ErrorIs(t, err, tt.is)
			require.Nil(t, b)
		})
	}

	t.Run("index in message", func(t *testing.T) {
		_, err := DecodeBoard([]byte(`{"rows":1,"columns":2,"boxes":[{"type":"None"},{"type":"Linear"}]}`))
		require.ErrorContains(t, err, "box 1")
	})

	t.Run("bad direction value", func(t *testing.T) {
		_, err := DecodeBoard([]byte(`{"rows":1,"columns":1,"boxes":[{"type":"Curved","direction":"Up-ish"}]}`))
		require.Error(t, err)
	})

	t.Run("overflowing size", func(t *testing.T) {
		b, err := DecodeBoard([]byte(`{"rows":4294967296,"columns":4294967296,"boxes":[]}`))
		require.Error(t, err)
		require.Nil(t, b)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeBoard([]byte(`{"rows":`))
		require.Error(t, err)
	})
}

func TestUnmarshalTileExactNames(t *testing.T) {
	tests := []JSONTile{
		{Type: "Curved", Direction: "up"},
		{Type: "Curved", Direction: "north"},
		{Type: "Intersection", Direction: "E"},
		{Type: "Linear", Orientation: "h"},
		{Type: "Linear", Orientation: "vertical"},
		{Type: "Linear", Orientation: " Vertical"},
	}
	for _, jt := range tests {
		_, err := UnmarshalTile(jt)
		require.Error(t, err, "%+v should be rejected", jt)
	}

	got, err := UnmarshalTile(JSONTile{Type: "Curved", Direction: "West"})
	require.NoError(t, err)
	require.Equal(t, core.Curved(core.West), got)
}

func TestMarshalTileRoundTrip(t *testing.T) {
	tiles := []core.Tile{core.Empty(), core.Cross(), core.Linear(core.Vertical)}
	for _, d := range core.Directions {
		tiles = append(tiles, core.Curved(d), core.Intersection(d))
	}

	for _, tile := range tiles {
		jt := MarshalTile(tile)
		got, err := UnmarshalTile(jt)
		require.NoError(t, err)
		require.Equal(t, tile, got)
		if !tile.Kind.HasOrientation() {
			require.Empty(t, jt.Orientation, "%v carries an orientation", tile)
		}
		if !tile.Kind.HasDirection() {
			require.Empty(t, jt.Direction, "%v carries a direction", tile)
		}
	}
}
