package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
	"github.com/codequest-game/codequest/internal/game"
	"github.com/codequest-game/codequest/internal/storage"
)

// GameModel is the Bubble Tea model for a quest session: grid pane on
// the left, command console on the right.
type GameModel struct {
	game        *game.Game
	screen      *core.Screen
	console     ConsoleModel
	store       *storage.Store
	config      core.RuntimeConfig
	keys        GameKeyMap
	help        help.Model
	width       int
	height      int
	quitting    bool
	backToMenu  bool
	resultSaved bool // result persisted once per finished run
}

// NewGameModel creates a model for the given quest.
func NewGameModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, settings config.Settings) GameModel {
	paneW, paneH := g.PaneSize()

	h := help.New()
	h.ShowAll = false

	return GameModel{
		game:    g,
		screen:  core.NewScreen(paneW, paneH),
		console: NewConsole(settings),
		store:   store,
		config:  cfg,
		keys:    DefaultGameKeyMap(),
		help:    h,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the tick loop and the input cursor blink.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.console.Focus())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Step()
		m.saveResultOnce()
		return m, tickCmd(m.config.TickRate)
	}

	var cmd tea.Cmd
	m.console, cmd, _ = m.console.Update(msg)
	return m, cmd
}

// handleKey routes the few bound keys and hands the rest to the console.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		m.backToMenu = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		m.console.Push(m.game.Exec("reset"))
		m.resultSaved = false
		return m, nil
	}

	var cmd tea.Cmd
	var line string
	m.console, cmd, line = m.console.Update(msg)
	if line != "" {
		hadEnded := m.game.Status().Terminal()
		m.console.Push(m.game.Exec(line))
		if hadEnded && !m.game.Status().Terminal() {
			// The player typed reset; the next run saves its own result.
			m.resultSaved = false
		}
	}
	return m, cmd
}

// saveResultOnce persists the run outcome the first tick after it ends.
func (m *GameModel) saveResultOnce() {
	if !m.game.Status().Terminal() || m.resultSaved || m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveResult(storage.ResultEntry{
		LevelID:  m.game.Level().ID,
		Score:    snap.Score,
		Gems:     snap.Gems,
		Moves:    snap.Moves,
		Commands: snap.Commands,
		Outcome:  snap.Status.String(),
	})
	m.resultSaved = true
}

// View renders the grid pane and console side by side.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	gamePane := RenderScreen(m.screen)

	consoleW := m.width - m.screen.Width() - 4
	if consoleW < 30 {
		consoleW = 30
	}
	consoleH := m.screen.Height()
	consolePane := m.console.View(consoleW, consoleH)

	body := lipgloss.JoinHorizontal(lipgloss.Top, gamePane, "  ", consolePane)
	helpLine := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, body, "", helpLine)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single quest.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, settings config.Settings) error {
	model := NewGameModel(g, store, cfg, settings)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
