// Package geom provides the small 2D vector type shared by game entities.
package geom

import "math"

// Vec is a 2D vector used for positions and velocities.
type Vec struct {
	X, Y float64
}

// FromAngle returns a vector of the given magnitude pointing at angle (radians).
func FromAngle(angle, mag float64) Vec {
	return Vec{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the vector magnitude.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSquared returns the squared magnitude (avoids the sqrt when comparing).
func (v Vec) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Heading returns the direction of v in radians.
func (v Vec) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// ClampLen returns v shortened to max if it is longer than max.
func (v Vec) ClampLen(max float64) Vec {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}
