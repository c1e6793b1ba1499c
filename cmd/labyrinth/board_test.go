package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels/formats"
)

// writeBoard stores b as a JSON board file and returns its path.
func writeBoard(t *testing.T, b *core.Board) string {
	t.Helper()
	data, err := formats.EncodeBoard(b)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestSolveUnconnectedFails(t *testing.T) {
	path := writeBoard(t, core.NewBoard(1, 2))
	flagFrom, flagTo, flagReverse = "0,0", "0,1", false
	t.Cleanup(func() { flagFrom, flagTo = "", "" })

	err := runSolve(nil, []string{path})
	require.ErrorIs(t, err, errFailed)
}

func TestSolveConnected(t *testing.T) {
	b := core.NewBoard(1, 2)
	b.Set(0, 0, core.Linear(core.Horizontal))
	b.Set(0, 1, core.Linear(core.Horizontal))
	path := writeBoard(t, b)
	flagFrom, flagTo, flagReverse = "0,0", "0,1", false
	t.Cleanup(func() { flagFrom, flagTo = "", "" })

	require.NoError(t, runSolve(nil, []string{path}))
}

func TestShiftPinnedFails(t *testing.T) {
	b := core.NewBoard(1, 2)
	b.AddNonMovable(core.B(0, 0, 1, 1))
	path := writeBoard(t, b)
	flagAt, flagDir, flagWrite = "0,1", "east", false
	t.Cleanup(func() { flagAt, flagDir = "", "" })

	err := runShift(nil, []string{path})
	require.ErrorIs(t, err, errFailed)
}
