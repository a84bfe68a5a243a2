package swing

import (
	"math"

	"github.com/ropeswing/ropeswing/internal/core"
)

// WorldSnapshot is the immutable per-tick view handed to renderers. Entity
// slices are copies restricted to the visible window plus a small margin;
// mutating a snapshot never touches live simulation state.
type WorldSnapshot struct {
	Tick         uint64
	PlayerPos    core.Vec2
	PlayerVel    core.Vec2
	PlayerRadius float64
	CameraX      float64

	Anchors   []Anchor
	Obstacles []Obstacle
	Pickups   []Pickup

	Tethered     bool
	TetherAnchor core.Vec2
	RopeLen      float64
}

// SessionSnapshot is the per-tick view handed to the UI overlay.
type SessionSnapshot struct {
	State   string
	Score   int
	Pickups int
	Paused  bool
}

// visibleMargin keeps entities just off both screen edges in the snapshot
// so partially visible sprites do not pop in and out.
const visibleMargin = 100.0

// WorldSnapshot returns the renderer view of the current tick.
func (g *Game) WorldSnapshot() WorldSnapshot {
	left := g.camera.Offset - visibleMargin
	right := g.camera.Offset + g.cfg.ViewportW() + visibleMargin

	snap := WorldSnapshot{
		Tick:         uint64(g.ticks), //#nosec G115 -- tick count is always positive
		PlayerPos:    g.player.Pos,
		PlayerVel:    g.player.Vel,
		PlayerRadius: g.player.Radius,
		CameraX:      g.camera.Offset,
	}

	for _, a := range g.world.Anchors {
		if a.Pos.X >= left && a.Pos.X <= right {
			snap.Anchors = append(snap.Anchors, a)
		}
	}
	for _, o := range g.world.Obstacles {
		if o.Pos.X >= left && o.Pos.X <= right {
			snap.Obstacles = append(snap.Obstacles, o)
		}
	}
	for _, p := range g.world.Pickups {
		if p.Pos.X >= left && p.Pos.X <= right {
			snap.Pickups = append(snap.Pickups, p)
		}
	}

	if g.tether != nil {
		snap.Tethered = true
		snap.TetherAnchor = g.tether.AnchorPos
		snap.RopeLen = g.tether.RopeLen
	}

	return snap
}

// SessionSnapshot returns the UI overlay view of the current tick.
func (g *Game) SessionSnapshot() SessionSnapshot {
	return SessionSnapshot{
		State:   g.state.String(),
		Score:   g.Score(),
		Pickups: g.pickups,
		Paused:  g.paused,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *WorldSnapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + math.Float64bits(s.PlayerPos.X)
	h = h*31 + math.Float64bits(s.PlayerPos.Y)
	h = h*31 + math.Float64bits(s.PlayerVel.X)
	h = h*31 + math.Float64bits(s.PlayerVel.Y)
	h = h*31 + math.Float64bits(s.CameraX)
	h = h*31 + uint64(len(s.Anchors))   //#nosec G115 -- hash computation
	h = h*31 + uint64(len(s.Obstacles)) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(s.Pickups))   //#nosec G115 -- hash computation

	for _, a := range s.Anchors {
		h = h*31 + math.Float64bits(a.Pos.X)
		h = h*31 + math.Float64bits(a.Pos.Y)
	}
	for _, o := range s.Obstacles {
		h = h*31 + math.Float64bits(o.Pos.X)
		h = h*31 + math.Float64bits(o.Pos.Y)
	}
	for _, p := range s.Pickups {
		h = h*31 + math.Float64bits(p.Pos.X)
		h = h*31 + math.Float64bits(p.Pos.Y)
	}

	if s.Tethered {
		h = h*31 + math.Float64bits(s.RopeLen)
	}
	return h
}
