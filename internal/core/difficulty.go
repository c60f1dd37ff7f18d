package core

import (
	"fmt"
	"strings"
)

// Difficulty selects the numeric balance tables used by the level generator
// and the simulation engine. It is a closed enum: every lookup over it
// (health, speeds, kill targets) switches exhaustively.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Hell
)

// String returns the lowercase name used in configs and the database.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Hell:
		return "hell"
	default:
		return "medium"
	}
}

// ParseDifficulty converts a stored/config string to a Difficulty.
// Unrecognized values fall back to Medium rather than failing, since
// difficulty strings arrive from persisted data.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "normal", "":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "hell":
		return Hell, nil
	default:
		return Medium, fmt.Errorf("core: unknown difficulty %q", s)
	}
}

// Clamp returns d forced into the valid enum range.
func (d Difficulty) Clamp() Difficulty {
	if d < Easy {
		return Easy
	}
	if d > Hell {
		return Hell
	}
	return d
}
