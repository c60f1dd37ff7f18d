package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-corridor/internal/core"
)

// KeyMapper translates Bubble Tea key messages to input frame flags.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "w", "up":
		frame.Forward = true
	case "s", "down":
		frame.Backward = true
	case "a":
		frame.StrafeLeft = true
	case "d":
		frame.StrafeRight = true
	case "left":
		frame.TurnLeft = true
	case "right":
		frame.TurnRight = true
	case " ", "f":
		frame.Fire = true
	case "e", "enter":
		frame.Interact = true
	case "r":
		frame.Restart = true
	}

	return false
}
