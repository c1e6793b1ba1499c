// labyrinth is a sliding-tile maze game for the terminal.
//
// Usage:
//
//	labyrinth list                 - List game modes and campaign levels
//	labyrinth play [level]         - Play the campaign (or --endless)
//	labyrinth menu                 - Pick a mode or level interactively
//	labyrinth serve                - Start SSH server for remote play
//	labyrinth scores [game]        - Show high scores
//	labyrinth show <board>         - Print a board
//	labyrinth solve <board>        - Find the shortest path across a board
//	labyrinth shift <board>        - Slide a line of tiles
//	labyrinth rotate <board>       - Rotate one tile
//	labyrinth boards               - List boards saved in the database
//	labyrinth generate             - Generate a random board
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.labyrinth/labyrinth.db)
package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLevelDirs  []string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

// logger reports warnings and diagnostics on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "labyrinth",
})

// errFailed makes a command exit with status 1 after it has printed why.
var errFailed = errors.New("command failed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			logger.Error(err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labyrinth",
	Short: "Labyrinth - slide and turn tiles to open a path",
	Long: `Labyrinth is a terminal puzzle game played on a grid of path tiles.
Rotate tiles and slide whole rows or columns until the token can walk
to the goal.

Available commands:
  list      - Show game modes and campaign levels
  play      - Play the campaign or an endless run
  menu      - Interactive mode and level picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  show      - Print a board file or saved board
  solve     - Find the shortest path between two cells
  shift     - Slide a line of tiles
  rotate    - Rotate a tile
  boards    - Manage boards saved in the database
  generate  - Generate a random board

Examples:
  labyrinth play
  labyrinth play lvl03
  labyrinth play --endless --difficulty hard
  labyrinth solve ./board.yaml --from 0,0 --to 4,4
  labyrinth serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		labyrinth.SetConfigPath(flagConfig)
		labyrinth.SetDifficultyPreset(flagDifficulty)
		labyrinth.SetLevelDirs(flagLevelDirs)
	},
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.labyrinth/labyrinth.db", "Path to the database")
	pf.StringSliceVar(&flagLevelDirs, "levels", nil, "Extra directory of campaign levels (repeatable)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(boardsCmd)
	rootCmd.AddCommand(generateCmd)
}
