package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is wrapped by every validation failure so callers can
// distinguish bad configuration from I/O errors with errors.Is.
var ErrInvalidLevel = errors.New("invalid level")

var validObstacleKinds = map[string]bool{
	"rock":  true,
	"crate": true,
	"bush":  true,
}

var validGemKinds = map[string]bool{
	"ruby":     true,
	"emerald":  true,
	"sapphire": true,
	"gold":     true,
	"diamond":  true,
}

// ValidateLevel checks a level definition for structural problems.
// Any failure is fatal at startup: a malformed level never reaches the game.
func ValidateLevel(lvl *Level) error {
	if lvl.ID == "" {
		return invalid("missing id")
	}
	if lvl.Title == "" {
		return invalid("level %s: missing title", lvl.ID)
	}
	if lvl.Grid.Cols <= 0 || lvl.Grid.Rows <= 0 {
		return invalid("level %s: grid must be positive, got %dx%d", lvl.ID, lvl.Grid.Cols, lvl.Grid.Rows)
	}
	if lvl.MoveBudget < 0 {
		return invalid("level %s: move_budget must not be negative", lvl.ID)
	}

	inBounds := func(col, row int) bool {
		return col >= 0 && col < lvl.Grid.Cols && row >= 0 && row < lvl.Grid.Rows
	}

	if !inBounds(lvl.Hero.StartCol, lvl.Hero.StartRow) {
		return invalid("level %s: hero start (%d,%d) outside %dx%d grid",
			lvl.ID, lvl.Hero.StartCol, lvl.Hero.StartRow, lvl.Grid.Cols, lvl.Grid.Rows)
	}

	type tile struct{ col, row int }
	blocked := make(map[tile]bool, len(lvl.Obstacles))

	for i, obs := range lvl.Obstacles {
		if !validObstacleKinds[obs.Kind] {
			return invalid("level %s: obstacle %d: unknown kind %q", lvl.ID, i, obs.Kind)
		}
		if !inBounds(obs.Col, obs.Row) {
			return invalid("level %s: obstacle %d at (%d,%d) outside grid", lvl.ID, i, obs.Col, obs.Row)
		}
		pos := tile{obs.Col, obs.Row}
		if blocked[pos] {
			return invalid("level %s: duplicate obstacle at (%d,%d)", lvl.ID, obs.Col, obs.Row)
		}
		blocked[pos] = true
	}

	if blocked[tile{lvl.Hero.StartCol, lvl.Hero.StartRow}] {
		return invalid("level %s: hero start (%d,%d) is on an obstacle",
			lvl.ID, lvl.Hero.StartCol, lvl.Hero.StartRow)
	}

	gemTiles := make(map[tile]bool, len(lvl.Gems))
	for i, gem := range lvl.Gems {
		if !validGemKinds[gem.Kind] {
			return invalid("level %s: gem %d: unknown kind %q", lvl.ID, i, gem.Kind)
		}
		if !inBounds(gem.Col, gem.Row) {
			return invalid("level %s: gem %d at (%d,%d) outside grid", lvl.ID, i, gem.Col, gem.Row)
		}
		pos := tile{gem.Col, gem.Row}
		if blocked[pos] {
			return invalid("level %s: gem at (%d,%d) is on an obstacle", lvl.ID, gem.Col, gem.Row)
		}
		if gemTiles[pos] {
			return invalid("level %s: duplicate gem at (%d,%d)", lvl.ID, gem.Col, gem.Row)
		}
		gemTiles[pos] = true
	}

	if len(lvl.Challenges) == 0 {
		return invalid("level %s: needs at least one challenge", lvl.ID)
	}
	for i, ch := range lvl.Challenges {
		if ch.Title == "" {
			return invalid("level %s: challenge %d: missing title", lvl.ID, i)
		}
		if !inBounds(ch.TargetCol, ch.TargetRow) {
			return invalid("level %s: challenge %q target (%d,%d) outside grid",
				lvl.ID, ch.Title, ch.TargetCol, ch.TargetRow)
		}
		if blocked[tile{ch.TargetCol, ch.TargetRow}] {
			return invalid("level %s: challenge %q target (%d,%d) is unreachable (obstacle)",
				lvl.ID, ch.Title, ch.TargetCol, ch.TargetRow)
		}
		if ch.Reward < 0 {
			return invalid("level %s: challenge %q has negative reward", lvl.ID, ch.Title)
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidLevel, fmt.Sprintf(format, args...))
}
