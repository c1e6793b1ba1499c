package labyrinth

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/labyrinth/internal/config"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels/formats"
)

// minEndlessSize keeps generated boards from degenerating into a single line.
const minEndlessSize = 3

// nextEndlessBoard generates, carves and scrambles the next board of the run.
//
// The board starts solved: a random monotone path links the top-left token
// to the bottom-right goal. It is then scrambled with the same rotations
// and riding shifts the player has, so replaying them backwards always
// solves it and the scramble count (plus the final walk) is a fair par.
func (g *Game) nextEndlessBoard() {
	rows := max(g.cfg.Board.Rows, minEndlessSize)
	cols := max(g.cfg.Board.Columns, minEndlessSize)

	g.board = core.Generate(rows, cols, g.rng, GenOptions(g.cfg))
	carvePath(g.board, g.rng)

	g.token = 0
	g.goal = g.board.Size() - 1

	want := g.difficulty.Scramble(g.score, g.round)
	done := g.scramble(want)
	// A scramble can land back on a connected board; keep going a little.
	for extra := 0; extra < want && g.connected(); extra++ {
		done += g.scramble(1)
	}

	lvl := formats.LevelFromBoard(g.board)
	lvl.ID = fmt.Sprintf("endless-%d", g.round+1)
	lvl.Name = fmt.Sprintf("Round %d", g.round+1)
	lvl.Start = cellOf(g.board, g.token)
	lvl.Goal = cellOf(g.board, g.goal)
	lvl.Par = done + 1

	g.loadLevel(levels.Level{Level: lvl})
}

// GenOptions builds generator options from the board and tile sections of
// cfg. An unknown layout falls back to classic.
func GenOptions(cfg config.LabyrinthConfig) core.GenOptions {
	layout, err := core.ParseLayout(cfg.Board.Layout)
	if err != nil {
		layout = core.LayoutClassic
	}
	w := cfg.Tiles
	return core.GenOptions{
		Weights: core.Weights{
			None:         w.None,
			Cross:        w.Cross,
			Linear:       w.Linear,
			Curved:       w.Curved,
			Intersection: w.Intersection,
		},
		Layout: layout,
	}
}

// carvePath lays a random monotone path of tiles from the top-left cell to
// the bottom-right one, going only east and south.
func carvePath(b *core.Board, rng *rand.Rand) {
	row, col := 0, 0
	entry := core.West // the first tile has no entry; West behaves as "straight"
	lastRow, lastCol := b.Rows()-1, b.Columns()-1

	for {
		var exit core.Direction
		switch {
		case row == lastRow && col == lastCol:
			b.Set(row, col, endTile(entry))
			return
		case row == lastRow:
			exit = core.East
		case col == lastCol:
			exit = core.South
		case rng.Intn(2) == 0:
			exit = core.East
		default:
			exit = core.South
		}

		if row == 0 && col == 0 {
			b.Set(row, col, endTile(exit))
		} else {
			b.Set(row, col, connector(entry, exit))
		}

		dr, dc := exit.Delta()
		row, col = row+dr, col+dc
		entry = exit.Opposite()
	}
}

// endTile is a straight tile open toward side.
func endTile(side core.Direction) core.Tile {
	if side.Vertical() {
		return core.Linear(core.Vertical)
	}
	return core.Linear(core.Horizontal)
}

// connector is the tile joining entry (West or North) to exit (East or South).
func connector(entry, exit core.Direction) core.Tile {
	switch {
	case entry == core.West && exit == core.East:
		return core.Linear(core.Horizontal)
	case entry == core.North && exit == core.South:
		return core.Linear(core.Vertical)
	case entry == core.West && exit == core.South:
		return core.Curved(core.South)
	default: // north to east
		return core.Curved(core.North)
	}
}

// scramble applies up to n random rotations and shifts that change the
// board, carrying token and goal. Returns how many were applied.
func (g *Game) scramble(n int) int {
	done := 0
	for attempt := 0; done < n && attempt < n*20; attempt++ {
		pos := g.rng.Intn(g.board.Size())
		if g.rng.Intn(3) == 0 {
			t := g.board.AtPos(pos)
			if t.Kind == core.KindNone || t.Kind == core.KindCross {
				continue // turning it changes nothing
			}
			g.board.RotatePos(pos, core.Rotation(g.rng.Intn(2)))
			done++
			continue
		}
		if g.slide(pos, core.Directions[g.rng.Intn(4)]) {
			done++
		}
	}
	return done
}

// connected reports whether the token can already walk to the goal.
func (g *Game) connected() bool {
	_, ok := g.board.ShortestPathPos(g.token, g.goal)
	return ok
}

func cellOf(b *core.Board, pos int) formats.Cell {
	row, col := b.RowCol(pos)
	return formats.Cell{Row: row, Col: col}
}
