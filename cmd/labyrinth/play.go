package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/labyrinth/internal/core"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth"
	"github.com/vovakirdan/labyrinth/internal/games/labyrinth/levels"
	"github.com/vovakirdan/labyrinth/internal/platform/tui"
	"github.com/vovakirdan/labyrinth/internal/registry"
	"github.com/vovakirdan/labyrinth/internal/storage"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or an endless run",
	Long: `Start playing. With no argument the campaign starts from its first
level; a level ID starts from that level. --endless plays generated boards
instead.

Controls:
  Arrows/hjkl      - Move the cursor
  x / z            - Rotate the tile under the cursor right / left
  W A S D          - Slide the line through the cursor (also shift+arrows)
  Enter/Space      - Walk the token to the cursor
  P/Esc            - Pause
  R                - Restart the board
  Ctrl+S           - Save the board to the database
  Q/Ctrl+C         - Quit

Difficulty options (endless scramble depth):
  easy   - Start shallow, progresses to max
  normal - Start at 30%, progresses to max
  hard   - Start at 70%, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  labyrinth play
  labyrinth play lvl02
  labyrinth play --endless --difficulty easy
  labyrinth play --levels ./my-levels my-first-level`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play generated boards instead of the campaign")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := labyrinth.IDCampaign
	if flagEndless {
		if len(args) > 0 {
			return fmt.Errorf("a level cannot be chosen in endless mode")
		}
		gameID = labyrinth.IDEndless
	}

	if len(args) > 0 {
		// Fail before the alt screen opens
		lvls, err := loadCatalog()
		if err != nil {
			return err
		}
		if _, err := levels.Find(lvls, args[0]); err != nil {
			return fmt.Errorf("%w (run 'labyrinth list' to see levels)", err)
		}
		labyrinth.SetStartLevel(args[0])
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig())
	return err
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the database, or returns nil so play continues without
// saving scores.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// loadCatalog loads the built-in levels and the --levels directories.
func loadCatalog() ([]levels.Level, error) {
	return levels.LoadCatalog(flagLevelDirs, func(path string, err error) {
		logger.Warn("skipping level", "path", path, "error", err)
	})
}
