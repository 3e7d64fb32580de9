package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move paddle left while held
	ActionRight          // Right arrow, D - move paddle right while held
	ActionStart          // Space - launch the resting ball
	ActionRestart        // R - new game after win or game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputState tracks which actions are currently held down.
// Frontends feed it key-down/key-up events; the game polls it.
type InputState struct {
	held map[Action]bool
}

// NewInputState creates an input state with nothing held.
func NewInputState() InputState {
	return InputState{held: make(map[Action]bool)}
}

// Press marks an action as held.
func (s *InputState) Press(a Action) {
	if s.held == nil {
		s.held = make(map[Action]bool)
	}
	s.held[a] = true
}

// Release marks an action as no longer held.
func (s *InputState) Release(a Action) {
	delete(s.held, a)
}

// Held returns true if the action is currently held.
func (s InputState) Held(a Action) bool {
	return s.held[a]
}

// Clear releases every action.
func (s *InputState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}
