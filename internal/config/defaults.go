package config

import (
	_ "embed"
)

//go:embed defaults/corridor.yaml
var defaultYAML []byte

// DefaultSettings returns the hardcoded fallback settings, used when even the
// embedded YAML cannot be parsed.
func DefaultSettings() Settings {
	return Settings{
		Width:      120,
		Height:     36,
		Quality:    "high",
		FOVDegrees: 75,
		Fullscreen: false,
		Difficulty: "medium",
		PlayerName: "player",
	}
}

// DefaultYAML returns the embedded default settings YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
