package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ropeswing/ropeswing/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes bindings and makes them testable. The mapper is the
// input collaborator: raw screen coordinates stop here, translated into
// world positions before the simulation sees them.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action given the current session
// status. Space means start on the idle screen and toggles grab/release
// while playing. Returns the action (may be ActionNone) and whether it's
// a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state core.GameState) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "up", "w":
		switch {
		case state.Idle:
			return core.ActionStart, false
		case state.Tethered:
			return core.ActionRelease, false
		default:
			return core.ActionGrab, false
		}
	case "enter":
		if state.Idle {
			return core.ActionStart, false
		}
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapMouse translates a mouse message into a grab or release event. The
// press position is converted from screen cells to world coordinates using
// the current camera offset and cell scale. ok is false for mouse traffic
// the game ignores (motion, other buttons).
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, cameraX float64, cfg core.RuntimeConfig) (action core.Action, grab core.GrabAttempt, ok bool) {
	if msg.Button != tea.MouseButtonLeft {
		return core.ActionNone, core.GrabAttempt{}, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		world := core.V(
			cameraX+float64(msg.X)*cfg.CellW,
			float64(msg.Y)*cfg.CellH,
		)
		return core.ActionGrab, core.GrabAttempt{WorldPos: world, HasTarget: true, At: time.Now()}, true
	case tea.MouseActionRelease:
		return core.ActionRelease, core.GrabAttempt{}, true
	}

	return core.ActionNone, core.GrabAttempt{}, false
}
