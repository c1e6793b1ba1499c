package formats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
)

const rowLevel = `
id: lvl_row
name: Row
grid:
  - "x x x x x"
  - "x x x x x"
  - "⊤ ⊥ - ⊣ ⊢"
  - "xxxxx"
  - "x x x x x"
start: {row: 2, col: 0}
goal: {row: 2, col: 4}
par: 2
movable:
  - {row: 1, col: 2, width: 3, height: 3}
non_movable:
  - {row: 4, col: 2, width: 1, height: 1}
metadata:
  author: test
`

func TestParseYAML(t *testing.T) {
	level, err := ParseYAML([]byte(rowLevel))
	require.NoError(t, err)

	require.Equal(t, "lvl_row", level.ID)
	require.Equal(t, "Row", level.Name)
	require.Equal(t, 5, level.Rows)
	require.Equal(t, 5, level.Columns)
	require.Equal(t, Cell{Row: 2, Col: 0}, level.Start)
	require.Equal(t, Cell{Row: 2, Col: 4}, level.Goal)
	require.Equal(t, 2, level.Par)
	require.Equal(t, "test", level.Metadata["author"])

	b := level.ToBoard()
	require.Equal(t, "⊤⊥-⊣⊢", b.Row(2))
	require.Equal(t, []core.Block{core.B(1, 2, 3, 3)}, b.MovableBlocks())
	require.Equal(t, []core.Block{core.B(4, 2, 1, 1)}, b.NonMovableBlocks())

	require.True(t, b.Move(1, 2, core.East))
	require.Equal(t, "⊢⊤⊥-⊣", b.Row(2))
	require.Equal(t, "⊤⊥-⊣⊢", level.ToBoard().Row(2), "ToBoard must return a fresh board")
}

func TestParseYAMLDefaults(t *testing.T) {
	level, err := ParseYAML([]byte("id: tiny\ngrid: [\"+-\", \"|∨\"]\n"))
	require.NoError(t, err)

	require.Equal(t, "tiny", level.Name)
	require.Equal(t, 4, level.Par)
	require.Equal(t, Cell{}, level.Start)
	require.Empty(t, level.Movable)
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty grid", "id: a\ngrid: []\n"},
		{"ragged rows", "id: a\ngrid: [\"++\", \"+\"]\n"},
		{"unknown glyph", "id: a\ngrid: [\"+?\"]\n"},
		{"blank row", "id: a\ngrid: [\"++\", \"  \"]\n"},
		{"start outside", "id: a\ngrid: [\"++\"]\nstart: {row: 1, col: 0}\n"},
		{"goal outside", "id: a\ngrid: [\"++\"]\ngoal: {row: 0, col: -1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			require.ErrorIs(t, err, ErrInvalidLevel)
		})
	}

	_, err := ParseYAML([]byte("grid: {not: a list}"))
	require.Error(t, err)
}

func TestParseJSONLevel(t *testing.T) {
	data, err := EncodeBoard(sampleBoard())
	require.NoError(t, err)

	level, err := ParseJSONLevel(data)
	require.NoError(t, err)
	require.Equal(t, Cell{Row: 0, Col: 0}, level.Start)
	require.Equal(t, Cell{Row: 4, Col: 4}, level.Goal)
	require.Equal(t, 10, level.Par)
	require.Equal(t, sampleBoard().String(), level.ToBoard().String())
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	level, err := ParseYAML([]byte(rowLevel))
	require.NoError(t, err)

	b := level.ToBoard()
	b.Rotate(2, 2, core.RotateRight)
	data, err := EncodeYAML(level, b)
	require.NoError(t, err)

	again, err := ParseYAML(data)
	require.NoError(t, err)
	require.Equal(t, "⊤⊥|⊣⊢", again.ToBoard().Row(2))
	require.Equal(t, b.String(), again.ToBoard().String())
	require.Equal(t, level.Start, again.Start)
	require.Equal(t, level.Goal, again.Goal)
	require.Equal(t, level.Par, again.Par)
	require.Equal(t, level.Metadata, again.Metadata)
}
