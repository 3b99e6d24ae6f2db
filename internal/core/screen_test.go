package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(4, 1, '♦', ColorBrightRed)
	cell := s.GetCell(4, 1)
	if cell.Rune != '♦' {
		t.Errorf("GetCell rune = %q, expected '♦'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell color = %v, expected ColorBrightRed", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Get out of bounds = %q, expected space", got)
	}
	cell := s.GetCell(100, 100)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("GetCell out of bounds = %+v, expected blank cell", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, 'a', ColorGreen)
	s.SetCell(2, 2, 'b', ColorRed)
	s.Clear()

	if s.Get(1, 1) != ' ' || s.Get(2, 2) != ' ' {
		t.Error("Clear() did not reset cells to spaces")
	}
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear() did not reset cell colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got[2:7] != "hello" {
		t.Errorf("Row(1) = %q, expected 'hello' at offset 2", got)
	}

	// Clipped text should not panic
	s.DrawText(18, 2, "world")
	if got := s.Get(19, 2); got != 'o' {
		t.Errorf("Get(19, 2) = %q, expected 'o'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawBox(NewRect(0, 0, 5, 4))

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' {
		t.Error("Top corners not drawn correctly")
	}
	if s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("Bottom corners not drawn correctly")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("Edges not drawn correctly")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, '@')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("Content lost on grow: Get(2, 2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != '@' {
		t.Errorf("Content lost on shrink: Get(2, 2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
