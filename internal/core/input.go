package core

import "time"

// Action represents a semantic game action, abstracted from physical key
// presses or pointer events. The game works with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space/Enter - start a session from the idle screen
	ActionGrab           // Space, mouse press - attempt to tether to an anchor
	ActionRelease        // Space again, mouse release - let go of the tether
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionGrab:
		return "Grab"
	case ActionRelease:
		return "Release"
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

// GrabAttempt is a grab request produced by the input layer. The world
// position is already translated from screen cells by the platform; the
// simulation never sees raw pointer coordinates. HasTarget is false for
// keyboard grabs, which aim from the player's own position.
type GrabAttempt struct {
	WorldPos  Vec2
	HasTarget bool
	At        time.Time
}

// InputFrame represents the input state for a single simulation tick.
// Actions are accumulated between ticks and consumed atomically at the
// start of the next Step, never mid-physics.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Grab carries the pending grab attempt when ActionGrab is set.
	Grab GrabAttempt
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetGrab marks a grab attempt, optionally aimed at a world position.
func (f *InputFrame) SetGrab(attempt GrabAttempt) {
	f.Set(ActionGrab)
	f.Grab = attempt
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Grab = GrabAttempt{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Grab = f.Grab
	return clone
}
