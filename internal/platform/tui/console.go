package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/game"
)

// Console line styles per event kind.
var (
	styleEcho    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	stylePrompt  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

// ConsoleModel is the command input and scrollback for a quest session.
// It owns the text input, echoes submitted lines, styles game feedback
// and keeps a bounded command history for up/down recall.
type ConsoleModel struct {
	input      textinput.Model
	lines      []string
	history    []string
	histCursor int // len(history) means "past the newest entry"
	draft      string
	maxHistory int
	maxLines   int
}

// NewConsole creates a console with limits from settings.
func NewConsole(settings config.Settings) ConsoleModel {
	ti := textinput.New()
	ti.Placeholder = "hero.move_right()"
	ti.Prompt = ">>> "
	ti.PromptStyle = stylePrompt
	ti.CharLimit = 120
	ti.Focus()

	return ConsoleModel{
		input:      ti,
		maxHistory: settings.Console.MaxHistory,
		maxLines:   settings.Console.MaxOutputLines,
	}
}

// Focus gives keyboard focus to the input and returns the blink command.
func (c *ConsoleModel) Focus() tea.Cmd {
	return c.input.Focus()
}

// Update handles a message. If the user submitted a line, it is returned
// non-empty; the caller executes it and feeds the events back via Push.
func (c ConsoleModel) Update(msg tea.Msg) (ConsoleModel, tea.Cmd, string) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			line := strings.TrimSpace(c.input.Value())
			if line == "" {
				return c, nil, ""
			}
			c.pushLine(styleEcho.Render(">>> " + line))
			c.remember(line)
			c.input.Reset()
			return c, nil, line

		case "up":
			if c.histCursor == len(c.history) {
				c.draft = c.input.Value()
			}
			if c.histCursor > 0 {
				c.histCursor--
				c.input.SetValue(c.history[c.histCursor])
				c.input.CursorEnd()
			}
			return c, nil, ""

		case "down":
			if c.histCursor < len(c.history) {
				c.histCursor++
				if c.histCursor == len(c.history) {
					c.input.SetValue(c.draft)
				} else {
					c.input.SetValue(c.history[c.histCursor])
				}
				c.input.CursorEnd()
			}
			return c, nil, ""
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd, ""
}

// Push appends styled game feedback to the scrollback.
func (c *ConsoleModel) Push(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventClear:
			c.lines = nil
		case game.EventSuccess:
			c.pushLine(styleSuccess.Render("✓ " + ev.Text))
		case game.EventError:
			c.pushLine(styleError.Render("✗ " + ev.Text))
		case game.EventHint:
			c.pushLine(styleHint.Render("★ " + ev.Text))
		default:
			c.pushLine(styleInfo.Render("ℹ " + ev.Text))
		}
	}
}

func (c *ConsoleModel) pushLine(line string) {
	c.lines = append(c.lines, line)
	if c.maxLines > 0 && len(c.lines) > c.maxLines {
		c.lines = c.lines[len(c.lines)-c.maxLines:]
	}
}

// remember records a submitted line for up/down recall. Consecutive
// duplicates collapse into one entry.
func (c *ConsoleModel) remember(line string) {
	if n := len(c.history); n == 0 || c.history[n-1] != line {
		c.history = append(c.history, line)
	}
	if c.maxHistory > 0 && len(c.history) > c.maxHistory {
		c.history = c.history[len(c.history)-c.maxHistory:]
	}
	c.histCursor = len(c.history)
	c.draft = ""
}

// History returns submitted lines, oldest first.
func (c ConsoleModel) History() []string {
	return c.history
}

// View renders the scrollback tail and the input line within the given
// size, framed with a border.
func (c ConsoleModel) View(width, height int) string {
	inner := height - 3 // border rows and input line
	if inner < 1 {
		inner = 1
	}

	visible := c.lines
	if len(visible) > inner {
		visible = visible[len(visible)-inner:]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := len(visible); i < inner; i++ {
		b.WriteString("\n")
	}
	b.WriteString(c.input.View())

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width-2).
		Padding(0, 1)

	return frame.Render(b.String())
}
