package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine reacts to actions and never sees raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, W, K
	ActionDown             // Down arrow, S, J
	ActionLeft             // Left arrow, A, H
	ActionRight            // Right arrow, D, l
	ActionRestart          // R
	ActionNextLevel        // N
	ActionPrevLevel        // P
	ActionRedraw           // C
	ActionQuit             // Q, Ctrl+C
	ActionConfirm          // Enter in menus
	ActionBack             // Esc, B - back to the level picker
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionPrevLevel:
		return "PrevLevel"
	case ActionRedraw:
		return "Redraw"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the player.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
