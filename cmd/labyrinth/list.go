package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labyrinth/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long: `Shows the registered game modes and every campaign level: the
built-in set followed by any directories given with --levels.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	lvls, err := loadCatalog()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Campaign levels:")
	fmt.Println()
	if len(lvls) == 0 {
		fmt.Println("  No levels found.")
		return nil
	}

	maxIDLen = 2
	for _, lvl := range lvls {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}
	fmt.Printf("  %-*s  %-5s  %-3s  %s\n", maxIDLen, "ID", "Size", "Par", "Name")
	fmt.Printf("  %-*s  %-5s  %-3s  %s\n", maxIDLen, "--", "----", "---", "----")
	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Rows, lvl.Columns)
		fmt.Printf("  %-*s  %-5s  %-3d  %s\n", maxIDLen, lvl.ID, size, lvl.Par, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'labyrinth play <level>' to start from a level.")
	return nil
}
