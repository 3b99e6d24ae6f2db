package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
	"github.com/codequest-game/codequest/internal/game"
	"github.com/codequest-game/codequest/internal/platform/tui"
	"github.com/codequest-game/codequest/internal/registry"
	"github.com/codequest-game/codequest/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a quest picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a quest.
After a quest ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select quest
  Tab          - Best runs
  Q            - Quit

Examples:
  codequest menu
  codequest menu --fps 20
  codequest menu --difficulty easy`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	settings := loadSettings()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		levelID := menuResult.LevelID
		if levelID == "" {
			break
		}

		lvl, err := registry.Load(levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quest: %v\n", err)
			continue
		}
		config.ApplyDifficultyPreset(lvl, preset)

		g, err := game.New(lvl, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating quest: %v\n", err)
			continue
		}

		if err := tui.Run(g, store, cfg, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error running quest: %v\n", err)
		}
		if gameErr := g.Err(); gameErr != nil {
			fmt.Fprintf(os.Stderr, "Quest aborted: %v\n", gameErr)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
