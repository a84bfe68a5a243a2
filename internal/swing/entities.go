// Package swing implements an endless side-scrolling swing game.
// The player alternates between free-fall and rope-swinging from anchor to
// anchor through a procedurally generated world, collecting diamonds and
// avoiding obstacles. All logic is pure and deterministic: one Step per
// fixed tick, seeded randomness, no I/O.
package swing

import (
	"fmt"

	"github.com/ropeswing/ropeswing/internal/core"
)

// Player is the body moving through the world. Owned exclusively by the
// game loop; outside code only ever sees snapshot copies.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// Anchor is a fixed point the player can tether to. Immutable once
// generated; evicted when far behind the camera.
type Anchor struct {
	Pos    core.Vec2
	Radius float64
}

// Obstacle is a fatal axis-aligned square centered at Pos.
type Obstacle struct {
	Pos  core.Vec2
	Size float64
}

// Bounds returns the obstacle's collision rectangle.
func (o Obstacle) Bounds() core.Rect {
	half := o.Size / 2
	return core.NewRect(o.Pos.X-half, o.Pos.Y-half, o.Size, o.Size)
}

// Pickup is a collectible square centered at Pos, removed on contact.
type Pickup struct {
	Pos  core.Vec2
	Size float64
}

// Radius returns the pickup's collision radius.
func (p Pickup) Radius() float64 {
	return p.Size / 2
}

// Tether binds the player to an anchor with a rope length fixed at grab
// time. The anchor position is copied so world cleanup can never leave a
// dangling reference.
type Tether struct {
	AnchorPos core.Vec2
	RopeLen   float64
}

// World holds all live entities. Anchors are kept strictly sorted by
// ascending x and are never reordered.
type World struct {
	Anchors   []Anchor
	Obstacles []Obstacle
	Pickups   []Pickup
	FrontierX float64 // x of the furthest generated anchor
}

// Reset clears all entities, reusing backing storage.
func (w *World) Reset() {
	w.Anchors = w.Anchors[:0]
	w.Obstacles = w.Obstacles[:0]
	w.Pickups = w.Pickups[:0]
	w.FrontierX = 0
}

// assertf panics when a core invariant is violated. These guard against
// programming defects, not runtime conditions, so a violation is fatal.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("swing: " + fmt.Sprintf(format, args...))
	}
}
