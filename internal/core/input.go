package core

// Button identifies one of the two physical buttons of the game.
type Button int

const (
	ButtonLeft  Button = iota // A on the LED board
	ButtonRight               // B on the LED board
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow, h - press the left button
	ActionRight          // D, Right arrow, l - press the right button
	ActionRestart        // R key - start a new session after game over
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Button returns the button an action presses, if any.
func (a Action) Button() (Button, bool) {
	switch a {
	case ActionLeft:
		return ButtonLeft, true
	case ActionRight:
		return ButtonRight, true
	}
	return 0, false
}
