package core

import "math"

// Vec2 is a 2D vector in world coordinates. Y grows downward, matching
// screen space, so gravity is a positive Y increment.
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and other.
func (v Vec2) Dist(other Vec2) float64 {
	return v.Sub(other).Len()
}

// Normalized returns the unit vector in v's direction and true, or the
// zero vector and false when v has zero length. Callers must check the
// flag before relying on the direction.
func (v Vec2) Normalized() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Perp returns v rotated 90 degrees counter-clockwise in screen space.
// For a unit radial direction this is the swing tangent.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}
