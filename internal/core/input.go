package core

import "github.com/zyedidia/generic/mapset"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K - climb
	ActionDown           // Down arrow, S, J - climb down
	ActionJump           // Space
	ActionConfirm        // Enter - start, confirm
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - try again
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one frame, plus the
// order they arrived in. Movement is applied in arrival order.
type InputFrame struct {
	set   *mapset.Set[Action]
	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action. Repeats are kept in the order list.
func (f *InputFrame) Set(a Action) {
	if f.set == nil {
		s := mapset.New[Action]()
		f.set = &s
	}
	f.set.Put(a)
	f.order = append(f.order, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.set != nil && f.set.Has(a)
}

// Actions returns the actions in the order they were set.
func (f InputFrame) Actions() []Action {
	return f.order
}

// Empty reports a frame with no input.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.set = nil
	f.order = f.order[:0]
}
