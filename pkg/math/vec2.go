// Package math provides the small scalar and vector helpers used by the noise
// and terrain packages.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// UnitVector returns the unit vector at angle theta (radians).
func UnitVector(theta float64) Vec2 {
	return Vec2{math.Cos(theta), math.Sin(theta)}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}
