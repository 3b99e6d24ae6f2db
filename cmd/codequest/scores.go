package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codequest-game/codequest/internal/registry"
	"github.com/codequest-game/codequest/internal/storage"
)

var flagScoresClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <quest>",
	Short: "Show best runs for a quest",
	Long: `Display the top 10 runs for the specified quest.

Examples:
  codequest scores classic
  codequest scores caverns
  codequest scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the quest")
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := args[0]

	if !registry.Exists(levelID) {
		fmt.Fprintf(os.Stderr, "Error: unknown quest %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'codequest list' to see available quests.")
		os.Exit(1)
	}

	// Get quest title
	lvl, err := registry.Load(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading quest: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all recorded runs for %s.\n", lvl.Title)
		return
	}

	results, err := store.TopResults(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", lvl.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'codequest play %s' to set the first record!\n", levelID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-9s  %s\n", "Rank", "Score", "Gems", "Moves", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-9s  %s\n", "----", "-----", "----", "-----", "-------", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-9s  %s\n",
			i+1, entry.Score, entry.Gems, entry.Moves, entry.Outcome, dateStr)
	}

	fmt.Println()
	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Printf("Best: %d  |  Runs: %d  |  Wins: %d\n", stats.HighScore, stats.Runs, stats.Wins)
	}
}
