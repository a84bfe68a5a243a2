package swing

import (
	"math"
	"testing"

	"github.com/ropeswing/ropeswing/internal/core"
)

const epsilon = 1e-9

func TestFreeFallIntegration(t *testing.T) {
	ph := Physics{Gravity: 0.25, Damping: 0.99}
	p := Player{
		Pos:    core.V(100, 300),
		Vel:    core.V(6, -5),
		Radius: 15,
	}

	ph.Step(&p, nil)

	// Gravity applies before the move, so the new velocity drives this tick.
	if p.Vel.X != 6 || p.Vel.Y != -4.75 {
		t.Errorf("Free fall velocity wrong: got (%v, %v), want (6, -4.75)", p.Vel.X, p.Vel.Y)
	}
	if p.Pos.X != 106 || p.Pos.Y != 295.25 {
		t.Errorf("Free fall position wrong: got (%v, %v), want (106, 295.25)", p.Pos.X, p.Pos.Y)
	}
}

func TestTetheredRopeLengthPreserved(t *testing.T) {
	ph := Physics{Gravity: 0.25, Damping: 0.99}
	anchor := core.V(400, 100)
	p := Player{
		Pos:    core.V(400, 250),
		Vel:    core.V(5, 0),
		Radius: 15,
	}
	tether := &Tether{AnchorPos: anchor, RopeLen: p.Pos.Dist(anchor)}

	if tether.RopeLen != 150 {
		t.Fatalf("Setup rope length wrong: got %v, want 150", tether.RopeLen)
	}

	for i := 0; i < 100; i++ {
		ph.Step(&p, tether)
		dist := p.Pos.Dist(anchor)
		if math.Abs(dist-tether.RopeLen) > epsilon {
			t.Fatalf("Tick %d: player drifted off the rope circle: dist=%v, rope=%v", i, dist, tether.RopeLen)
		}
	}
}

func TestTetheredVelocityIsTangential(t *testing.T) {
	ph := Physics{Gravity: 0.25, Damping: 0.99}
	anchor := core.V(400, 100)
	p := Player{
		Pos:    core.V(400, 250),
		Vel:    core.V(5, -3),
		Radius: 15,
	}
	tether := &Tether{AnchorPos: anchor, RopeLen: 150}

	ph.Step(&p, tether)

	// After the projection the radial velocity component must be zero.
	dir, ok := p.Pos.Sub(anchor).Normalized()
	if !ok {
		t.Fatal("Player ended up exactly on the anchor")
	}
	radial := p.Vel.Dot(dir)
	if math.Abs(radial) > epsilon {
		t.Errorf("Velocity has radial component %v after tethered step", radial)
	}
}

func TestTetheredDampingApplied(t *testing.T) {
	ph := Physics{Gravity: 0, Damping: 0.5}
	anchor := core.V(0, 0)
	p := Player{
		Pos: core.V(0, 100),
		Vel: core.V(10, 0), // Pure tangent at the bottom of the circle
	}
	tether := &Tether{AnchorPos: anchor, RopeLen: 100}

	ph.Step(&p, tether)

	// Replay the step by hand: move, re-project, damp, keep the tangent part.
	moved := core.V(10, 100)
	dir, _ := moved.Normalized()
	tangent := dir.Perp()
	want := math.Abs(core.V(5, 0).Dot(tangent))

	speed := p.Vel.Len()
	if math.Abs(speed-want) > 1e-6 {
		t.Errorf("Damped speed wrong: got %v, want %v", speed, want)
	}
	if speed >= 10 {
		t.Errorf("Damping had no effect: speed %v", speed)
	}
}

func TestTetheredPlayerAtAnchorSkipsConstraint(t *testing.T) {
	ph := Physics{Gravity: 0, Damping: 0.99}
	anchor := core.V(200, 200)
	p := Player{
		Pos: core.V(200, 200), // Exactly on the anchor
		Vel: core.V(0, 0),
	}
	tether := &Tether{AnchorPos: anchor, RopeLen: 50}

	// Must not panic or produce NaN from normalizing a zero vector.
	ph.Step(&p, tether)

	if math.IsNaN(p.Pos.X) || math.IsNaN(p.Pos.Y) {
		t.Errorf("Position became NaN: (%v, %v)", p.Pos.X, p.Pos.Y)
	}
	if math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
		t.Errorf("Velocity became NaN: (%v, %v)", p.Vel.X, p.Vel.Y)
	}
}

func TestTetherZeroRopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-positive rope length")
		}
	}()

	ph := Physics{Gravity: 0.25, Damping: 0.99}
	p := Player{Pos: core.V(100, 100)}
	ph.Step(&p, &Tether{AnchorPos: core.V(0, 0), RopeLen: 0})
}
