package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/game"
)

func typeLine(c ConsoleModel, line string) (ConsoleModel, string) {
	c, _, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	c, _, submitted := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return c, submitted
}

func TestConsoleSubmitAndHistory(t *testing.T) {
	c := NewConsole(config.DefaultSettings())

	c, submitted := typeLine(c, "hero.spin()")
	if submitted != "hero.spin()" {
		t.Fatalf("submitted = %q, want hero.spin()", submitted)
	}
	c, submitted = typeLine(c, "hero.move_right()")
	if submitted != "hero.move_right()" {
		t.Fatalf("submitted = %q", submitted)
	}

	if got := c.History(); len(got) != 2 || got[0] != "hero.spin()" {
		t.Fatalf("history = %v", got)
	}

	// Up recalls newest first.
	c, _, _ = c.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c.input.Value() != "hero.move_right()" {
		t.Errorf("after up, input = %q", c.input.Value())
	}
	c, _, _ = c.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c.input.Value() != "hero.spin()" {
		t.Errorf("after up up, input = %q", c.input.Value())
	}

	// Down walks back toward the empty draft.
	c, _, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
	c, _, _ = c.Update(tea.KeyMsg{Type: tea.KeyDown})
	if c.input.Value() != "" {
		t.Errorf("after down down, input = %q", c.input.Value())
	}
}

func TestConsoleEmptySubmitIgnored(t *testing.T) {
	c := NewConsole(config.DefaultSettings())
	c, _, submitted := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if submitted != "" {
		t.Errorf("empty line submitted: %q", submitted)
	}
	if len(c.History()) != 0 {
		t.Errorf("history = %v", c.History())
	}
}

func TestConsoleDuplicateCollapsed(t *testing.T) {
	c := NewConsole(config.DefaultSettings())
	c, _ = typeLine(c, "help")
	c, _ = typeLine(c, "help")
	if len(c.History()) != 1 {
		t.Errorf("history = %v, want single entry", c.History())
	}
}

func TestConsoleScrollbackCap(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Console.MaxOutputLines = 5

	c := NewConsole(settings)
	for i := 0; i < 10; i++ {
		c.Push([]game.Event{{Kind: game.EventInfo, Text: "line"}})
	}
	if len(c.lines) != 5 {
		t.Errorf("scrollback = %d lines, want 5", len(c.lines))
	}
}

func TestConsoleClearEvent(t *testing.T) {
	c := NewConsole(config.DefaultSettings())
	c.Push([]game.Event{
		{Kind: game.EventInfo, Text: "one"},
		{Kind: game.EventSuccess, Text: "two"},
	})
	if len(c.lines) != 2 {
		t.Fatalf("scrollback = %d lines", len(c.lines))
	}
	c.Push([]game.Event{{Kind: game.EventClear}})
	if len(c.lines) != 0 {
		t.Errorf("scrollback not cleared: %d lines", len(c.lines))
	}
}

func TestConsoleHistoryCap(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Console.MaxHistory = 3

	c := NewConsole(settings)
	for _, line := range []string{"help", "hint", "hero.spin()", "hero.dance()"} {
		c, _ = typeLine(c, line)
	}
	got := c.History()
	if len(got) != 3 || got[0] != "hint" {
		t.Errorf("history = %v, want oldest dropped", got)
	}
}
