package swing

// Camera tracks a horizontal viewport offset that follows the player and
// never moves backward, producing a one-directional scroll.
type Camera struct {
	Offset       float64
	LeadFraction float64 // Fraction of viewport width kept ahead of the player
}

// Update advances the offset toward the player. The offset is monotone:
// a player swinging backward never drags the camera with them.
func (c *Camera) Update(playerX, viewportW float64) {
	target := playerX - viewportW*c.LeadFraction
	if target > c.Offset {
		c.Offset = target
	}
}
