package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the default platform settings.
func DefaultSettings() Settings {
	return Settings{
		Console: ConsoleSettings{
			MaxHistory:     50,
			MaxOutputLines: 200,
		},
		Effects: EffectSettings{
			FloatTicks: 45,
		},
	}
}

// DefaultSettingsYAML returns the embedded default settings file.
func DefaultSettingsYAML() []byte {
	return defaultSettingsYAML
}
