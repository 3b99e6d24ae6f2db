package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ParseLevel unmarshals and validates a level definition.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("config: failed to parse level: %w", err)
	}
	if err := ValidateLevel(&lvl); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadLevel loads a level definition from a YAML file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read level %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("config: level %s: %w", path, err)
	}
	return lvl, nil
}

// LoadSettings loads platform settings.
// Search order: customPath -> ~/.codequest/configs/settings.yaml ->
// ./configs/settings.yaml -> embedded default.
func LoadSettings(customPath string) (Settings, error) {
	var s Settings

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("config: failed to read settings %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("config: failed to parse settings %s: %w", customPath, err)
		}
		applySettingsDefaults(&s)
		return s, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("settings.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil {
				applySettingsDefaults(&s)
				return s, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/settings.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &s); err == nil {
			applySettingsDefaults(&s)
			return s, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	applySettingsDefaults(&s)
	return s, nil
}

// applySettingsDefaults fills zero-valued fields with defaults so a
// partial settings file stays usable.
func applySettingsDefaults(s *Settings) {
	def := DefaultSettings()
	if s.Console.MaxHistory <= 0 {
		s.Console.MaxHistory = def.Console.MaxHistory
	}
	if s.Console.MaxOutputLines <= 0 {
		s.Console.MaxOutputLines = def.Console.MaxOutputLines
	}
	if s.Effects.FloatTicks <= 0 {
		s.Effects.FloatTicks = def.Effects.FloatTicks
	}
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codequest", "configs", filename)
}
