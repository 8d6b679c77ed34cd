package physics

import "math"

// Vec2 is a 2D vector used for positions, velocities, and forces.
// Operations return new values; a Vec2 is never mutated in place.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// MagnitudeSquared avoids the sqrt when only a comparison is needed.
func (v Vec2) MagnitudeSquared() float64 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Magnitude() float64 { return math.Sqrt(v.MagnitudeSquared()) }

// Normalized returns the unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalized() Vec2 {
	mag := v.Magnitude()
	if mag > 0 {
		return Vec2{v.X / mag, v.Y / mag}
	}
	return Vec2{}
}
