package core

// InputFrame represents the player input state for a single simulation tick.
// The platform layer builds it from keyboard (and optionally mouse) events;
// the engine consumes it without knowing the input source.
type InputFrame struct {
	Forward     bool
	Backward    bool
	StrafeLeft  bool
	StrafeRight bool
	TurnLeft    bool
	TurnRight   bool
	Fire        bool
	Interact    bool // use exit / skip exit timer
	Restart     bool // restart campaign after death

	// TurnDelta is an accumulated analog turn amount in radians, applied on
	// top of the key-driven turn. Mouse-capable hosts feed it; terminal hosts
	// leave it zero.
	TurnDelta float64
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Any returns true if any movement or action input is set this frame.
func (f InputFrame) Any() bool {
	return f.Forward || f.Backward || f.StrafeLeft || f.StrafeRight ||
		f.TurnLeft || f.TurnRight || f.Fire || f.Interact || f.Restart ||
		f.TurnDelta != 0
}
