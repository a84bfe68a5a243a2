package swing

import (
	"testing"

	"github.com/ropeswing/ropeswing/internal/core"
)

func TestCollectPickupsRemovesOnContact(t *testing.T) {
	w := World{
		Pickups: []Pickup{
			{Pos: core.V(100, 100), Size: 20}, // Touching
			{Pos: core.V(500, 100), Size: 20}, // Far away
		},
	}
	p := Player{Pos: core.V(105, 100), Radius: 15}

	got := CollectPickups(&w, &p)
	if got != 1 {
		t.Errorf("Collected %d pickups, want 1", got)
	}
	if len(w.Pickups) != 1 {
		t.Fatalf("World should keep 1 pickup, has %d", len(w.Pickups))
	}
	if w.Pickups[0].Pos.X != 500 {
		t.Errorf("Wrong pickup survived: %v", w.Pickups[0].Pos)
	}

	// The same pickup cannot be collected twice.
	got = CollectPickups(&w, &p)
	if got != 0 {
		t.Errorf("Second pass collected %d pickups, want 0", got)
	}
}

func TestCollectPickupsMultipleInOneTick(t *testing.T) {
	w := World{
		Pickups: []Pickup{
			{Pos: core.V(100, 100), Size: 20},
			{Pos: core.V(110, 100), Size: 20},
		},
	}
	p := Player{Pos: core.V(105, 100), Radius: 15}

	if got := CollectPickups(&w, &p); got != 2 {
		t.Errorf("Collected %d pickups, want 2", got)
	}
	if len(w.Pickups) != 0 {
		t.Errorf("World should be empty, has %d pickups", len(w.Pickups))
	}
}

func TestHitObstacleOverlap(t *testing.T) {
	w := World{
		Obstacles: []Obstacle{{Pos: core.V(500, 300), Size: 30}},
	}

	// Player centered on the obstacle.
	p := Player{Pos: core.V(500, 300), Radius: 15}
	if !HitObstacle(&w, &p) {
		t.Error("Player centered on an obstacle should collide")
	}

	// Player just outside: obstacle half-size 15 + radius 15 = 30 reach.
	p.Pos = core.V(531, 300)
	if HitObstacle(&w, &p) {
		t.Error("Player outside the obstacle should not collide")
	}

	// Circle clipping a corner.
	p.Pos = core.V(522, 322)
	if !HitObstacle(&w, &p) {
		t.Error("Player clipping the obstacle corner should collide")
	}
}

func TestFellOff(t *testing.T) {
	viewportH := 480.0
	margin := 200.0

	p := Player{Pos: core.V(100, 400)}
	if FellOff(&p, viewportH, margin) {
		t.Error("Player inside the viewport reported as fallen")
	}

	p.Pos.Y = 680
	if FellOff(&p, viewportH, margin) {
		t.Error("Player exactly at the margin should not be out yet")
	}

	p.Pos.Y = 681
	if !FellOff(&p, viewportH, margin) {
		t.Error("Player below the margin should be out")
	}
}
