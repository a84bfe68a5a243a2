package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(5, 5, 10, 10)
	r3 := NewRect(20, 20, 5, 5)
	r4 := NewRect(10, 0, 10, 10) // Touching edges only

	if !r1.Intersects(r2) {
		t.Error("Overlapping rectangles should intersect")
	}
	if !r2.Intersects(r1) {
		t.Error("Intersection should be symmetric")
	}
	if r1.Intersects(r3) {
		t.Error("Distant rectangles should not intersect")
	}
	if r1.Intersects(r4) {
		t.Error("Edge-touching rectangles should not intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !r.Contains(V(15, 15)) {
		t.Error("Interior point should be contained")
	}
	if !r.Contains(V(10, 10)) {
		t.Error("Top-left corner should be contained")
	}
	if r.Contains(V(30, 30)) {
		t.Error("Bottom-right corner should be excluded")
	}
	if r.Contains(V(5, 15)) {
		t.Error("Outside point should not be contained")
	}
}

func TestRectOverlapsCircle(t *testing.T) {
	r := NewRect(100, 100, 30, 30)

	if !r.OverlapsCircle(V(115, 115), 5) {
		t.Error("Circle inside the rect should overlap")
	}
	if !r.OverlapsCircle(V(90, 115), 15) {
		t.Error("Circle touching the left edge should overlap")
	}
	if r.OverlapsCircle(V(84, 115), 15) {
		t.Error("Circle short of the left edge should not overlap")
	}

	// Corner case: the circle must reach the actual corner, not the
	// bounding box of the corner.
	if r.OverlapsCircle(V(90, 90), 14) {
		t.Error("Circle short of the corner should not overlap")
	}
	if !r.OverlapsCircle(V(90, 90), 15) {
		t.Error("Circle reaching the corner should overlap")
	}
}

func TestVec2Normalized(t *testing.T) {
	v, ok := V(3, 4).Normalized()
	if !ok {
		t.Fatal("Non-zero vector should normalize")
	}
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Normalized length %v, want 1", v.Len())
	}
	if v.X != 0.6 || v.Y != 0.8 {
		t.Errorf("Normalized vector (%v, %v), want (0.6, 0.8)", v.X, v.Y)
	}

	if _, ok := V(0, 0).Normalized(); ok {
		t.Error("Zero vector must report failure, not NaN")
	}
}

func TestVec2Perp(t *testing.T) {
	v := V(1, 0)
	p := v.Perp()
	if p.X != 0 || p.Y != 1 {
		t.Errorf("Perp of (1,0) is (%v, %v), want (0, 1)", p.X, p.Y)
	}
	if v.Dot(p) != 0 {
		t.Error("Perp should be orthogonal")
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != V(2, 4) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot: got %v", got)
	}
	if got := V(3, 4).Len(); got != 5 {
		t.Errorf("Len: got %v", got)
	}
	if got := V(0, 0).Dist(V(3, 4)); got != 5 {
		t.Errorf("Dist: got %v", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(5, 0, 10); got != 5 {
		t.Errorf("ClampF in range: got %v", got)
	}
	if got := ClampF(-5, 0, 10); got != 0 {
		t.Errorf("ClampF below: got %v", got)
	}
	if got := ClampF(15, 0, 10); got != 10 {
		t.Errorf("ClampF above: got %v", got)
	}
}
