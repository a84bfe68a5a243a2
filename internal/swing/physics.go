package swing

// Physics integrates the player one tick at a time. Gravity is a fixed
// per-tick velocity increment and the swing is a rigid re-projection onto
// the rope circle with a tangent velocity projection. This is a deliberate
// arcade approximation, not pendulum mechanics; keep it that way.
type Physics struct {
	Gravity float64 // Added to vel.y every tick
	Damping float64 // Velocity multiplier while tethered, <1
}

// Step advances the player under free-fall or tethered-swing rules.
// The two modes are mutually exclusive per tick: tether nil means free-fall.
func (ph Physics) Step(p *Player, tether *Tether) {
	p.Vel.Y += ph.Gravity
	p.Pos = p.Pos.Add(p.Vel)

	if tether == nil {
		return
	}

	assertf(tether.RopeLen > 0, "tether with non-positive rope length %v", tether.RopeLen)

	// Rigid rope: snap the player back onto the circle around the anchor.
	// A zero-length direction (player exactly at the anchor) cannot be
	// normalized; skip the constraint for this tick instead of dividing
	// by zero.
	dir, ok := p.Pos.Sub(tether.AnchorPos).Normalized()
	if !ok {
		return
	}
	p.Pos = tether.AnchorPos.Add(dir.Scale(tether.RopeLen))

	// Air resistance, then keep only the tangential velocity component so
	// motion on the rope is purely angular, never radial.
	p.Vel = p.Vel.Scale(ph.Damping)
	tangent := dir.Perp()
	p.Vel = tangent.Scale(p.Vel.Dot(tangent))
}
