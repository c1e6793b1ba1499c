package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
)

func TestBuiltinLevels(t *testing.T) {
	levels, err := Builtin().LoadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"lvl01", "lvl02", "lvl03", "lvl04", "lvl05"}, IDs(levels))

	for _, lvl := range levels {
		t.Run(lvl.ID, func(t *testing.T) {
			require.NotEmpty(t, lvl.Name)
			require.NotEqual(t, lvl.Start, lvl.Goal)
			require.Positive(t, lvl.Par)

			b := lvl.ToBoard()
			_, ok := b.ShortestPath(lvl.Start.Row, lvl.Start.Col, lvl.Goal.Row, lvl.Goal.Col)
			require.False(t, ok, "level is solved before the first action")
		})
	}
}

func TestBuiltinFirstLevelShiftCarriesGoal(t *testing.T) {
	lvl, err := Builtin().LoadByID("lvl01")
	require.NoError(t, err)

	b := lvl.ToBoard()
	require.True(t, b.Move(1, 2, core.East))
	// Start (2,0) and goal (2,4) ride along to (2,1) and (2,0).
	path, ok := b.ShortestPath(2, 1, 2, 0)
	require.True(t, ok)
	require.Equal(t, []core.Direction{core.East}, path)
}

func TestLoaderLoadAll(t *testing.T) {
	var skipped []string
	l := NewLoader("testdata")
	l.OnSkip = func(path string, err error) {
		require.Error(t, err)
		skipped = append(skipped, path)
	}

	levels, err := l.LoadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"board", "custom01", "lvl01"}, IDs(levels))
	require.Equal(t, []string{filepath.Join("testdata", "broken.yaml")}, skipped)

	board, err := Find(levels, "board")
	require.NoError(t, err)
	require.Equal(t, "board", board.Name)
	require.Equal(t, 0, board.Start.Col)
	require.Equal(t, 2, board.Goal.Col)
	require.Equal(t, []core.Block{core.B(0, 1, 1, 1)}, board.NonMovable)
	require.Equal(t, filepath.Join("testdata", "board.json"), board.FilePath)

	b := board.ToBoard()
	_, ok := b.ShortestPath(0, 0, 0, 2)
	require.True(t, ok)
}

func TestLoaderLoadByID(t *testing.T) {
	l := NewLoader("testdata")

	lvl, err := l.LoadByID("custom01")
	require.NoError(t, err)
	require.Equal(t, "Custom", lvl.Name)
	require.Equal(t, 4, lvl.Par)

	_, err = l.LoadByID("missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = NewLoader(filepath.Join("testdata", "does-not-exist")).LoadAll()
	require.Error(t, err)
}

func TestLoadCatalogOverridesBuiltin(t *testing.T) {
	levels, err := LoadCatalog([]string{"", "testdata"}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"board", "custom01", "lvl01", "lvl02", "lvl03", "lvl04", "lvl05"}, IDs(levels))

	first, err := Find(levels, "lvl01")
	require.NoError(t, err)
	require.Equal(t, "Overridden First Steps", first.Name)
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"copy.json", "copy.yaml"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := ReadFile(filepath.Join("testdata", "custom.yaml"))
			require.NoError(t, err)

			b := lvl.ToBoard()
			b.Set(0, 1, core.Curved(core.West))
			b.AddMovable(core.B(1, 0, 2, 1))

			p := filepath.Join(dir, name)
			require.NoError(t, WriteFile(p, lvl, b))

			again, err := ReadFile(p)
			require.NoError(t, err)
			require.Equal(t, b.String(), again.ToBoard().String())
			require.Equal(t, b.MovableBlocks(), again.ToBoard().MovableBlocks())
		})
	}

	require.Error(t, WriteFile(filepath.Join(dir, "copy.txt"), Level{}, core.NewBoard(1, 1)))
	_, err := os.Stat(filepath.Join(dir, "copy.txt"))
	require.True(t, os.IsNotExist(err))
}
