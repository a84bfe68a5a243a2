package swing

import "github.com/ropeswing/ropeswing/internal/core"

// SessionState is the top-level game session state.
type SessionState int

const (
	StateIdle SessionState = iota
	StatePlaying
	StateGameOver
)

// String returns a stable lowercase name used in snapshots and storage.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TetherState is the swing sub-state, meaningful only while playing.
type TetherState int

const (
	TetherFree TetherState = iota
	TetherTethered
)

// NearestGrabbable returns the index of the anchor the player should tether
// to, or -1 when no anchor qualifies. Eligibility: within the grab radius of
// the player and not further than forwardBias behind them. Among eligible
// anchors the nearest to the player wins; when the grab carries an aim
// position (mouse), proximity to the aim decides instead.
func NearestGrabbable(anchors []Anchor, player core.Vec2, grab core.GrabAttempt, radius, forwardBias float64) int {
	best := -1
	bestDist := 0.0

	rank := player
	if grab.HasTarget {
		rank = grab.WorldPos
	}

	for i, a := range anchors {
		if a.Pos.X <= player.X-forwardBias {
			continue
		}
		if player.Dist(a.Pos) >= radius {
			continue
		}
		d := rank.Dist(a.Pos)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
