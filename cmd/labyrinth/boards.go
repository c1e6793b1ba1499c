package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/storage"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List boards saved in the database",
	Long: `List the boards saved in the database, newest first. Saved boards
can be passed to show, solve, shift and rotate as db:<name>.

Examples:
  labyrinth boards
  labyrinth boards delete lvl01-20260101-120000`,
	Args: cobra.NoArgs,
	RunE: runBoards,
}

var boardsDeleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete saved boards",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBoardsDelete,
}

func init() {
	boardsCmd.AddCommand(boardsDeleteCmd)
}

func runBoards(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	boards, err := store.ListBoards()
	if err != nil {
		return err
	}
	if len(boards) == 0 {
		fmt.Println("No saved boards. Press Ctrl+S in a game to save one.")
		return nil
	}

	maxNameLen := 4 // "Name" header
	for _, b := range boards {
		maxNameLen = max(maxNameLen, len(b.Name))
	}
	fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, "Name", "Level", "Saved")
	fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, "----", "-----", "-----")
	for _, b := range boards {
		levelID := b.LevelID
		if levelID == "" {
			levelID = "-"
		}
		fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, b.Name, levelID, b.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runBoardsDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, name := range args {
		if err := store.DeleteBoard(name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Printf("Deleted %s\n", name)
	}
	return nil
}
