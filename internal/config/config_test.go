package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func validLevelYAML() []byte {
	return []byte(`
id: test
title: Test Level
grid:
  cols: 10
  rows: 10
hero:
  start_col: 0
  start_row: 0
move_budget: 30
obstacles:
  - {col: 2, row: 2, kind: rock}
  - {col: 3, row: 2, kind: crate}
gems:
  - {col: 1, row: 1, kind: ruby}
  - {col: 5, row: 5, kind: diamond}
challenges:
  - title: Go far
    description: Reach the corner
    target_col: 9
    target_row: 9
    reward: 75
`)
}

func TestParseLevelValid(t *testing.T) {
	lvl, err := ParseLevel(validLevelYAML())
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}

	// Exposed values must match the provided configuration exactly
	if lvl.ID != "test" || lvl.Title != "Test Level" {
		t.Errorf("identity mismatch: %q %q", lvl.ID, lvl.Title)
	}
	if lvl.Grid.Cols != 10 || lvl.Grid.Rows != 10 {
		t.Errorf("grid = %dx%d, expected 10x10", lvl.Grid.Cols, lvl.Grid.Rows)
	}
	if lvl.MoveBudget != 30 {
		t.Errorf("move budget = %d, expected 30", lvl.MoveBudget)
	}
	if len(lvl.Obstacles) != 2 || len(lvl.Gems) != 2 || len(lvl.Challenges) != 1 {
		t.Errorf("entity counts = %d/%d/%d", len(lvl.Obstacles), len(lvl.Gems), len(lvl.Challenges))
	}
	if lvl.Gems[1].Kind != "diamond" {
		t.Errorf("gem kind = %q, expected diamond", lvl.Gems[1].Kind)
	}
	if ch := lvl.Challenges[0]; ch.TargetCol != 9 || ch.TargetRow != 9 || ch.Reward != 75 {
		t.Errorf("challenge = %+v", ch)
	}
}

func TestParseLevelMalformedYAML(t *testing.T) {
	if _, err := ParseLevel([]byte("id: [broken")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateLevelRejections(t *testing.T) {
	base := func() *Level {
		lvl, err := ParseLevel(validLevelYAML())
		if err != nil {
			t.Fatalf("baseline level invalid: %v", err)
		}
		return lvl
	}

	tests := []struct {
		name   string
		mutate func(*Level)
	}{
		{"missing id", func(l *Level) { l.ID = "" }},
		{"missing title", func(l *Level) { l.Title = "" }},
		{"zero grid", func(l *Level) { l.Grid.Cols = 0 }},
		{"negative budget", func(l *Level) { l.MoveBudget = -1 }},
		{"hero outside grid", func(l *Level) { l.Hero.StartCol = 10 }},
		{"hero on obstacle", func(l *Level) { l.Hero.StartCol, l.Hero.StartRow = 2, 2 }},
		{"unknown obstacle kind", func(l *Level) { l.Obstacles[0].Kind = "lava" }},
		{"obstacle outside grid", func(l *Level) { l.Obstacles[0].Row = -1 }},
		{"duplicate obstacle", func(l *Level) { l.Obstacles[1] = l.Obstacles[0] }},
		{"unknown gem kind", func(l *Level) { l.Gems[0].Kind = "opal" }},
		{"gem outside grid", func(l *Level) { l.Gems[0].Col = 99 }},
		{"gem on obstacle", func(l *Level) { l.Gems[0].Col, l.Gems[0].Row = 2, 2 }},
		{"duplicate gem", func(l *Level) { l.Gems[1] = l.Gems[0] }},
		{"no challenges", func(l *Level) { l.Challenges = nil }},
		{"challenge without title", func(l *Level) { l.Challenges[0].Title = "" }},
		{"challenge target outside grid", func(l *Level) { l.Challenges[0].TargetRow = 10 }},
		{"challenge target on obstacle", func(l *Level) {
			l.Challenges[0].TargetCol, l.Challenges[0].TargetRow = 2, 2
		}},
		{"negative reward", func(l *Level) { l.Challenges[0].Reward = -5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := base()
			tc.mutate(lvl)
			err := ValidateLevel(lvl)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("error %v does not wrap ErrInvalidLevel", err)
			}
		})
	}
}

func TestLoadLevelFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "level.yaml")
	if err := os.WriteFile(path, validLevelYAML(), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	lvl, err := LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel() failed: %v", err)
	}
	if lvl.ID != "test" {
		t.Errorf("loaded level id = %q", lvl.ID)
	}

	if _, err := LoadLevel(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.Console.MaxHistory <= 0 || s.Console.MaxOutputLines <= 0 || s.Effects.FloatTicks <= 0 {
		t.Errorf("defaults not applied: %+v", s)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.yaml")
	if err := os.WriteFile(path, []byte("console:\n  max_history: 7\n"), 0o644); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.Console.MaxHistory != 7 {
		t.Errorf("max_history = %d, expected 7", s.Console.MaxHistory)
	}
	// Unset fields fall back to defaults
	if s.Console.MaxOutputLines != DefaultSettings().Console.MaxOutputLines {
		t.Errorf("max_output_lines = %d, expected default", s.Console.MaxOutputLines)
	}
}

func TestApplyDifficultyPreset(t *testing.T) {
	tests := []struct {
		name     string
		budget   int
		preset   DifficultyPreset
		expected int
	}{
		{"easy removes budget", 40, DifficultyEasy, 0},
		{"normal keeps budget", 40, DifficultyNormal, 40},
		{"hard tightens budget", 40, DifficultyHard, 30},
		{"hard keeps unlimited", 0, DifficultyHard, 0},
		{"hard floors at one", 1, DifficultyHard, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := Level{MoveBudget: tc.budget}
			ApplyDifficultyPreset(&lvl, tc.preset)
			if lvl.MoveBudget != tc.expected {
				t.Errorf("budget = %d, expected %d", lvl.MoveBudget, tc.expected)
			}
		})
	}

	if !ValidPreset("") || !ValidPreset(DifficultyEasy) {
		t.Error("expected empty and easy presets to be valid")
	}
	if ValidPreset("brutal") {
		t.Error("unknown preset should be invalid")
	}
}
