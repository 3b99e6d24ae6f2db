package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codequest-game/codequest/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available quests",
	Long:  `Shows a list of all quests known to the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No quests available.")
		return
	}

	fmt.Println("Available quests:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Challenges")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "----------")

	// Print quests
	for _, l := range levels {
		fmt.Printf("  %-*s  %-24s  %d\n", maxIDLen, l.ID, l.Title, l.Challenges)
	}

	fmt.Println()
	fmt.Println("Run 'codequest play <id>' to start a quest.")
}
