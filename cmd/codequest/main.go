// codequest is a terminal coding adventure: steer a hero across a grid
// by typing commands like hero.move_right() in an in-game console.
//
// Usage:
//
//	codequest list               - List available quests
//	codequest play <quest>       - Play a quest
//	codequest menu               - Start menu to pick quests interactively
//	codequest serve              - Start SSH server for remote play
//	codequest scores <quest>     - Show best runs for a quest
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--db <path>         - Set database path (default: ~/.codequest/results.db)
//	--settings <path>   - Path to custom settings YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codequest-game/codequest/internal/config"

	// Import levels to register them
	_ "github.com/codequest-game/codequest/internal/levels"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagSettings string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codequest",
	Short: "CodeQuest - Learn to code by typing your hero through quests",
	Long: `CodeQuest is a terminal adventure where you control the hero by
typing commands in a console, the way a programmer would.

Available commands:
  list     - Show all available quests
  play     - Play a specific quest directly
  menu     - Interactive quest picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  codequest list
  codequest play classic
  codequest menu
  codequest serve --ssh :2222
  codequest scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.codequest/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to custom settings YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadSettings resolves platform settings from the --settings flag,
// falling back to the search path and embedded defaults.
func loadSettings() config.Settings {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load settings: %v\n", err)
		return config.DefaultSettings()
	}
	return settings
}
