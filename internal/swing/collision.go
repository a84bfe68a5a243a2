package swing

// CollectPickups removes every pickup overlapping the player's circle and
// returns how many were removed. Removal is at-most-once per pickup by
// construction: a collected pickup no longer exists.
func CollectPickups(w *World, p *Player) int {
	collected := 0
	remaining := w.Pickups[:0]
	for _, pk := range w.Pickups {
		if p.Pos.Dist(pk.Pos) < p.Radius+pk.Radius() {
			collected++
			continue
		}
		remaining = append(remaining, pk)
	}
	w.Pickups = remaining
	return collected
}

// HitObstacle reports whether the player's circle overlaps any obstacle.
// Obstacles are checked in iteration order and the first hit wins; callers
// end the tick on a hit, so later obstacles are never evaluated.
func HitObstacle(w *World, p *Player) bool {
	for _, o := range w.Obstacles {
		if o.Bounds().OverlapsCircle(p.Pos, p.Radius) {
			return true
		}
	}
	return false
}

// FellOff reports whether the player has dropped below the viewport by
// more than the fall margin.
func FellOff(p *Player, viewportH, fallMargin float64) bool {
	return p.Pos.Y > viewportH+fallMargin
}
