package config

// DifficultyPreset represents a named difficulty level. Difficulty in a
// command-driven game is a question of how many moves you get: easier
// presets loosen the level's move budget, harder ones tighten it.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the preset name is recognized.
// The empty string is valid and means "use the level as configured".
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyDifficultyPreset adjusts a level's move budget for the preset.
// Easy removes the budget entirely; hard cuts it to three quarters.
// Levels without a budget stay unlimited on every preset.
func ApplyDifficultyPreset(lvl *Level, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		lvl.MoveBudget = 0
	case DifficultyHard:
		if lvl.MoveBudget > 0 {
			lvl.MoveBudget = lvl.MoveBudget * 3 / 4
			if lvl.MoveBudget < 1 {
				lvl.MoveBudget = 1
			}
		}
	}
}
