// Package config provides YAML-based settings loading and difficulty presets
// for the corridor shooter. Out-of-range values are clamped here, at the
// boundary, so the simulation core never sees invalid configuration.
package config

import (
	"math"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

// Settings is the host-facing settings record: screen size, render quality,
// field of view, difficulty and player identity.
type Settings struct {
	Width      int     `yaml:"width"`       // screen width in columns
	Height     int     `yaml:"height"`      // screen height in rows
	Quality    string  `yaml:"quality"`     // "low", "medium" or "high"
	FOVDegrees float64 `yaml:"fov_degrees"` // horizontal field of view
	Fullscreen bool    `yaml:"fullscreen"`
	Difficulty string  `yaml:"difficulty"`
	PlayerName string  `yaml:"player_name"`
}

// Clamping bounds for settings arriving from persisted data.
const (
	MinWidth  = 40
	MaxWidth  = 1920
	MinHeight = 16
	MaxHeight = 480

	MinFOVDegrees = 50
	MaxFOVDegrees = 110

	minRayCount = 32
	maxRayCount = 1920
)

// Normalize clamps every field into its valid range and substitutes
// documented defaults for unrecognized enum values. It never fails.
func (s *Settings) Normalize() {
	def := DefaultSettings()
	if s.Width == 0 {
		s.Width = def.Width
	}
	if s.Height == 0 {
		s.Height = def.Height
	}
	s.Width = core.Clamp(s.Width, MinWidth, MaxWidth)
	s.Height = core.Clamp(s.Height, MinHeight, MaxHeight)

	switch s.Quality {
	case "low", "medium", "high":
	default:
		s.Quality = def.Quality
	}

	if s.FOVDegrees == 0 {
		s.FOVDegrees = def.FOVDegrees
	}
	s.FOVDegrees = core.ClampF(s.FOVDegrees, MinFOVDegrees, MaxFOVDegrees)

	if _, err := core.ParseDifficulty(s.Difficulty); err != nil {
		s.Difficulty = def.Difficulty
	}
	if s.PlayerName == "" {
		s.PlayerName = def.PlayerName
	}
}

// RayCount derives the raycaster column count from screen width and quality.
func (s Settings) RayCount() int {
	div := 1
	switch s.Quality {
	case "low":
		div = 4
	case "medium":
		div = 2
	}
	return core.Clamp(s.Width/div, minRayCount, maxRayCount)
}

// FOVRadians returns the field of view in radians.
func (s Settings) FOVRadians() float64 {
	return core.ClampF(s.FOVDegrees, MinFOVDegrees, MaxFOVDegrees) * math.Pi / 180
}

// ParsedDifficulty returns the difficulty enum, defaulting unknown values.
func (s Settings) ParsedDifficulty() core.Difficulty {
	d, _ := core.ParseDifficulty(s.Difficulty)
	return d
}

// ApplyDifficultyPreset overrides the difficulty field from a preset name.
// Unknown presets leave the settings untouched.
func ApplyDifficultyPreset(s *Settings, preset string) {
	if _, err := core.ParseDifficulty(preset); err == nil && preset != "" {
		s.Difficulty = preset
	}
}
