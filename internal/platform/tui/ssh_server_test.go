package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/codequest-game/codequest/internal/config"
	"github.com/codequest-game/codequest/internal/core"
)

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30}
	return NewSessionModel(nil, cfg, config.DefaultSettings())
}

// quits reports whether a command resolves to tea.QuitMsg.
func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestSessionTabShowsScoreboard(t *testing.T) {
	m := newTestSession()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	session, ok := updated.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", updated)
	}
	if session.scoreboard == nil {
		t.Fatal("tab in the menu should open the scoreboard")
	}
	if quits(cmd) {
		t.Fatal("opening the scoreboard must not end the session")
	}
}

func TestSessionScoreboardBackReturnsToMenu(t *testing.T) {
	m := newTestSession()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	session := updated.(SessionModel)

	updated, cmd := session.Update(tea.KeyMsg{Type: tea.KeyEsc})
	session = updated.(SessionModel)
	if session.scoreboard != nil {
		t.Fatal("esc should leave the scoreboard")
	}
	if session.quitting {
		t.Fatal("leaving the scoreboard must not quit the session")
	}
	if quits(cmd) {
		t.Fatal("leaving the scoreboard must not end the session")
	}
}

func TestSessionScoreboardQuitEndsSession(t *testing.T) {
	m := newTestSession()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	session := updated.(SessionModel)

	updated, cmd := session.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	session = updated.(SessionModel)
	if !session.quitting {
		t.Fatal("q in the scoreboard should quit the session")
	}
	if !quits(cmd) {
		t.Fatal("quitting the scoreboard should end the program")
	}
}
