package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels/formats"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

// dbPrefix marks a board argument that names a board saved in the database.
const dbPrefix = "db:"

var (
	flagFrom    string
	flagTo      string
	flagAt      string
	flagDir     string
	flagLeft    bool
	flagWrite   bool
	flagReverse bool
)

const boardArgHelp = `<board> is a path to a .yaml/.yml/.json level or board file, or
db:<name> for a board saved with Ctrl+S or 'generate --save'.`

var showCmd = &cobra.Command{
	Use:   "show <board>",
	Short: "Print a board",
	Long: `Print a board's grid, its blocks and a summary of its connections.

` + boardArgHelp + `

Examples:
  labyrinth show ./levels/lvl01.yaml
  labyrinth show db:lvl01-20260101-120000`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Find the shortest path between two cells",
	Long: `Print the shortest path between two cells as the side through which
each next tile is entered. --reverse prints directions of travel instead.
Without --from/--to the level's start and goal are used.

Exits with status 1 when the cells are not connected.

` + boardArgHelp + `

Examples:
  labyrinth solve ./board.json --from 0,0 --to 2,2
  labyrinth solve db:mine --reverse`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

var shiftCmd = &cobra.Command{
	Use:   "shift <board>",
	Short: "Slide the line of tiles through a cell",
	Long: `Slide the row or column through --at one step in --dir, wrapping
the tile that falls off. The line is the band of the movable block under
the cell, or the single row/column when none covers it.

Exits with status 1 when a non-movable block pins the line. --write stores
the result back where the board came from.

` + boardArgHelp + `

Examples:
  labyrinth shift ./board.yaml --at 2,0 --dir east
  labyrinth shift db:mine --at 0,3 --dir up --write`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <board>",
	Short: "Rotate one tile",
	Long: `Rotate the tile at --at a quarter turn clockwise, or counter-clockwise
with --left. --write stores the result back where the board came from.

` + boardArgHelp + `

Examples:
  labyrinth rotate ./board.yaml --at 1,1
  labyrinth rotate db:mine --at 1,1 --left --write`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	solveCmd.Flags().StringVar(&flagFrom, "from", "", "Start cell as row,col (default: level start)")
	solveCmd.Flags().StringVar(&flagTo, "to", "", "Target cell as row,col (default: level goal)")
	solveCmd.Flags().BoolVar(&flagReverse, "reverse", false, "Print directions of travel instead of entry sides")

	shiftCmd.Flags().StringVar(&flagAt, "at", "", "Cell on the line as row,col")
	shiftCmd.Flags().StringVar(&flagDir, "dir", "", "Direction: north, east, south, west (or up, right, down, left)")
	shiftCmd.Flags().BoolVar(&flagWrite, "write", false, "Save the shifted board")
	_ = shiftCmd.MarkFlagRequired("at")
	_ = shiftCmd.MarkFlagRequired("dir")

	rotateCmd.Flags().StringVar(&flagAt, "at", "", "Cell as row,col")
	rotateCmd.Flags().BoolVar(&flagLeft, "left", false, "Rotate counter-clockwise")
	rotateCmd.Flags().BoolVar(&flagWrite, "write", false, "Save the rotated board")
	_ = rotateCmd.MarkFlagRequired("at")
}

// boardSource is a board loaded from a file or the database, remembering
// where to write it back.
type boardSource struct {
	ref   string
	path  string // File path, empty for saved boards
	name  string // Saved board name, empty for files
	level levels.Level
	board *core.Board
}

func openBoard(ref string) (*boardSource, error) {
	if name, ok := strings.CutPrefix(ref, dbPrefix); ok {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		saved, err := store.LoadBoard(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		b, err := formats.DecodeBoard(saved.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ref, err)
		}
		lvl := formats.LevelFromBoard(b)
		lvl.ID = saved.LevelID
		lvl.Name = saved.Name
		return &boardSource{ref: ref, name: name, level: levels.Level{Level: lvl}, board: b}, nil
	}

	lvl, err := levels.ReadFile(ref)
	if err != nil {
		return nil, err
	}
	return &boardSource{ref: ref, path: ref, level: lvl, board: lvl.ToBoard()}, nil
}

// save writes the board back where it was read from.
func (s *boardSource) save() error {
	if s.path != "" {
		return levels.WriteFile(s.path, s.level, s.board)
	}

	data, err := formats.EncodeBoard(s.board)
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveBoard(s.name, s.level.ID, data)
}

// cell parses "row,col" and checks it lies on the board.
func (s *boardSource) cell(v string) (row, col int, err error) {
	r, c, ok := strings.Cut(v, ",")
	if !ok {
		return 0, 0, fmt.Errorf("cell %q: want row,col", v)
	}
	row, err = strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", v, err)
	}
	col, err = strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return 0, 0, fmt.Errorf("cell %q: %w", v, err)
	}
	if !s.board.InBounds(row, col) {
		return 0, 0, fmt.Errorf("cell %q is outside the %dx%d board", v, s.board.Rows(), s.board.Columns())
	}
	return row, col, nil
}

// cellOr parses v, falling back to def when v is empty.
func (s *boardSource) cellOr(v string, def formats.Cell) (row, col int, err error) {
	if v == "" {
		if !s.board.InBounds(def.Row, def.Col) {
			return 0, 0, fmt.Errorf("%s: level cell (%d,%d) is outside the board", s.ref, def.Row, def.Col)
		}
		return def.Row, def.Col, nil
	}
	return s.cell(v)
}

func runShow(_ *cobra.Command, args []string) error {
	src, err := openBoard(args[0])
	if err != nil {
		return err
	}
	b := src.board

	if src.level.Name != "" {
		fmt.Printf("%s (%s)\n", src.level.Name, src.level.ID)
	}
	fmt.Printf("%dx%d board\n\n", b.Rows(), b.Columns())
	printGrid(b)
	fmt.Println()

	printBlocks("Movable", b.MovableBlocks())
	printBlocks("Non-movable", b.NonMovableBlocks())

	start := b.Index(src.level.Start.Row, src.level.Start.Col)
	fmt.Printf("Connections: %d\n", b.EdgeCount())
	fmt.Printf("Cells reachable from start (%d,%d): %d of %d\n",
		src.level.Start.Row, src.level.Start.Col, len(b.Reachable(start)), b.Size())
	if src.level.Par > 0 {
		fmt.Printf("Par: %d\n", src.level.Par)
	}
	return nil
}

func runSolve(_ *cobra.Command, args []string) error {
	src, err := openBoard(args[0])
	if err != nil {
		return err
	}
	fromRow, fromCol, err := src.cellOr(flagFrom, src.level.Start)
	if err != nil {
		return err
	}
	toRow, toCol, err := src.cellOr(flagTo, src.level.Goal)
	if err != nil {
		return err
	}

	sides, ok := src.board.ShortestPath(fromRow, fromCol, toRow, toCol)
	if !ok {
		fmt.Printf("No path from (%d,%d) to (%d,%d)\n", fromRow, fromCol, toRow, toCol)
		return errFailed
	}
	if flagReverse {
		sides = core.Travel(sides)
	}

	names := make([]string, len(sides))
	for i, d := range sides {
		names[i] = d.String()
	}
	fmt.Printf("%d steps from (%d,%d) to (%d,%d)\n", len(sides), fromRow, fromCol, toRow, toCol)
	if len(names) > 0 {
		fmt.Println(strings.Join(names, " "))
	}
	return nil
}

func runShift(_ *cobra.Command, args []string) error {
	src, err := openBoard(args[0])
	if err != nil {
		return err
	}
	row, col, err := src.cell(flagAt)
	if err != nil {
		return err
	}
	d, err := core.ParseDirection(flagDir)
	if err != nil {
		return err
	}

	if !src.board.Move(row, col, d) {
		fmt.Printf("Line through (%d,%d) is pinned and cannot move %s\n", row, col, d)
		return errFailed
	}
	printGrid(src.board)
	return src.finish()
}

func runRotate(_ *cobra.Command, args []string) error {
	src, err := openBoard(args[0])
	if err != nil {
		return err
	}
	row, col, err := src.cell(flagAt)
	if err != nil {
		return err
	}

	r := core.RotateRight
	if flagLeft {
		r = core.RotateLeft
	}
	src.board.Rotate(row, col, r)
	printGrid(src.board)
	return src.finish()
}

// finish saves the board when --write was given.
func (s *boardSource) finish() error {
	if !flagWrite {
		return nil
	}
	if err := s.save(); err != nil {
		return err
	}
	logger.Info("board saved", "to", s.ref)
	return nil
}

func printGrid(b *core.Board) {
	for row := 0; row < b.Rows(); row++ {
		fmt.Printf("  %s\n", strings.Join(strings.Split(b.Row(row), ""), " "))
	}
}

func printBlocks(label string, blocks []core.Block) {
	if len(blocks) == 0 {
		return
	}
	parts := make([]string, len(blocks))
	for i, blk := range blocks {
		parts[i] = blk.String()
	}
	fmt.Printf("%s blocks: %s\n", label, strings.Join(parts, " "))
}
