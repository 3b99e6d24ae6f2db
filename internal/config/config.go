// Package config provides YAML-based level and settings loading for the
// quest engine. Configuration is loaded once at startup, validated, and
// passed by reference to every component that needs it; nothing here is
// mutated after load.
package config

// Level describes a playable world: grid dimensions, hero start, the
// entities placed on the grid, and the challenge sequence.
type Level struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Grid        GridConfig        `yaml:"grid"`
	Hero        HeroConfig        `yaml:"hero"`
	MoveBudget  int               `yaml:"move_budget"` // 0 = unlimited; exceeding it loses the run
	Obstacles   []ObstacleConfig  `yaml:"obstacles"`
	Gems        []GemConfig       `yaml:"gems"`
	Challenges  []ChallengeConfig `yaml:"challenges"`
}

// GridConfig defines the bounded coordinate space of the world.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// HeroConfig defines the hero's starting tile.
type HeroConfig struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
}

// ObstacleConfig places a blocking entity on the grid.
// Kind is one of "rock", "crate", "bush".
type ObstacleConfig struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Kind string `yaml:"kind"`
}

// GemConfig places a collectible gem on the grid.
// Kind is one of "ruby", "emerald", "sapphire", "gold", "diamond".
type GemConfig struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	Kind string `yaml:"kind"`
}

// ChallengeConfig defines one step of the level's challenge sequence:
// reach the target tile, earn the reward.
type ChallengeConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	TargetCol   int    `yaml:"target_col"`
	TargetRow   int    `yaml:"target_row"`
	Reward      int    `yaml:"reward"`
}

// Settings holds platform-level tunables that apply to every level.
type Settings struct {
	Console ConsoleSettings `yaml:"console"`
	Effects EffectSettings  `yaml:"effects"`
}

// ConsoleSettings controls the in-game command console.
type ConsoleSettings struct {
	MaxHistory     int `yaml:"max_history"`      // Commands kept for up/down recall
	MaxOutputLines int `yaml:"max_output_lines"` // Scrollback lines kept in the log
}

// EffectSettings controls transient visual effects.
type EffectSettings struct {
	FloatTicks int `yaml:"float_ticks"` // Lifetime of floating score popups, in ticks
}
