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

var (
	flagLevelFile  string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <quest>",
	Short: "Play a quest",
	Long: `Start playing the specified quest.

Type commands in the console to control the hero:
  hero.move_right()   - Step right
  hero.move_left()    - Step left
  hero.move_up()      - Step up
  hero.move_down()    - Step down
  hero.say("hello")   - Speak
  help / hint / clear / reset

Keys:
  Up/Down    - Command history
  Ctrl+R/F5  - Reset the quest
  Esc        - Back to menu
  Ctrl+C     - Quit

Difficulty options:
  easy   - No move budget, explore freely
  normal - Quest's own move budget
  hard   - Tightened move budget

Examples:
  codequest play classic
  codequest play caverns --difficulty hard
  codequest play --level ./my-quest.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelFile, "level", "", "Path to custom quest YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	preset := config.DifficultyPreset(flagDifficulty)
	if !config.ValidPreset(preset) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
		os.Exit(1)
	}

	var (
		lvl *config.Level
		err error
	)
	switch {
	case flagLevelFile != "":
		lvl, err = config.LoadLevel(flagLevelFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quest file: %v\n", err)
			os.Exit(1)
		}
	case len(args) == 1:
		levelID := args[0]
		if !registry.Exists(levelID) {
			fmt.Fprintf(os.Stderr, "Error: unknown quest %q\n", levelID)
			fmt.Fprintln(os.Stderr, "Run 'codequest list' to see available quests.")
			os.Exit(1)
		}
		lvl, err = registry.Load(levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quest: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: name a quest or pass --level <file>")
		fmt.Fprintln(os.Stderr, "Run 'codequest list' to see available quests.")
		os.Exit(1)
	}

	config.ApplyDifficultyPreset(lvl, preset)

	// Terminal size for the layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	settings := loadSettings()

	g, err := game.New(lvl, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quest: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - quest still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, settings)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running quest: %v\n", runErr)
		os.Exit(1)
	}
	if gameErr := g.Err(); gameErr != nil {
		fmt.Fprintf(os.Stderr, "Quest aborted: %v\n", gameErr)
		os.Exit(1)
	}
}
