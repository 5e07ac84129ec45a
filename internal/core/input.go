package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions and games work with these intents.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move the player paddle up
	ActionDown           // Down arrow, S - move the player paddle down
	ActionConfirm        // Enter - start the game, restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action drives paddle velocity.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown
}
