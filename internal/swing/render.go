package swing

import (
	"fmt"

	"github.com/ropeswing/ropeswing/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	AnchorChar   = 'o'
	RopeChar     = '·'
	ObstacleChar = '▓'
	PickupChar   = '◆'
)

// Render draws the current snapshot to the screen buffer.
// World coordinates map to cells through the camera offset and the
// configured cell scale; the simulation itself never deals in cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.WorldSnapshot()

	// Rope behind everything else
	if snap.Tethered {
		g.drawRope(dst, snap.PlayerPos, snap.TetherAnchor, snap.CameraX)
	}

	for _, a := range snap.Anchors {
		x, y := g.toCell(a.Pos, snap.CameraX)
		dst.SetColored(x, y, AnchorChar, core.ColorYellow)
	}
	for _, o := range snap.Obstacles {
		g.drawSquare(dst, o.Pos, o.Size, snap.CameraX, ObstacleChar, core.ColorBrightRed)
	}
	for _, p := range snap.Pickups {
		x, y := g.toCell(p.Pos, snap.CameraX)
		dst.SetColored(x, y, PickupChar, core.ColorBrightMagenta)
	}

	px, py := g.toCell(snap.PlayerPos, snap.CameraX)
	dst.SetColored(px, py, PlayerChar, core.ColorBrightCyan)

	// HUD
	session := g.SessionSnapshot()
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", session.Score))
	dst.DrawTextColored(dst.Width()-16, 0, fmt.Sprintf(" %c %d ", PickupChar, session.Pickups), core.ColorBrightMagenta)

	switch g.state {
	case StateIdle:
		g.drawCenteredMessage(dst, "ROPE SWING", "Press Space or click to start")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Distance: %d  |  %c %d  |  Press R to restart", session.Score, PickupChar, session.Pickups))
	}
	if session.Paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toCell converts a world position to screen cell coordinates.
func (g *Game) toCell(p core.Vec2, cameraX float64) (int, int) {
	return int((p.X - cameraX) / g.cfg.CellW), int(p.Y / g.cfg.CellH)
}

// drawSquare fills the cell footprint of a world-space square.
func (g *Game) drawSquare(dst *core.Screen, center core.Vec2, size, cameraX float64, r rune, c core.Color) {
	half := size / 2
	x0, y0 := g.toCell(core.V(center.X-half, center.Y-half), cameraX)
	x1, y1 := g.toCell(core.V(center.X+half, center.Y+half), cameraX)
	dst.DrawRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1), r, c)
}

// drawRope draws the tether as a sampled line from player to anchor.
func (g *Game) drawRope(dst *core.Screen, player, anchor core.Vec2, cameraX float64) {
	x0, y0 := g.toCell(player, cameraX)
	x1, y1 := g.toCell(anchor, cameraX)

	steps := core.Max(core.Abs(x1-x0), core.Abs(y1-y0))
	if steps == 0 {
		return
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0))
		y := y0 + int(t*float64(y1-y0))
		dst.SetColored(x, y, RopeChar, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
