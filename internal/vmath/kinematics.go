package vmath

import "math"

// Physical and angular constants.
const (
	Gravity  = 9.81
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// IntegrateGravity applies one explicit Euler step of downward acceleration g over dt.
// Only the Y component changes.
func IntegrateGravity(v Vec3, g, dt float64) Vec3 {
	v.Y -= g * dt
	return v
}

// CalculateVelocity returns v0 + a*t.
func CalculateVelocity(v0, a, t float64) float64 {
	return v0 + a*t
}

// CalculatePosition returns p0 + v0*t + a*t²/2.
func CalculatePosition(p0, v0, a, t float64) float64 {
	return p0 + v0*t + 0.5*a*t*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates between a and b by t (0..1).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Mod is a modulo whose result always has the sign of m.
func Mod(v, m float64) float64 {
	return math.Mod(math.Mod(v, m)+m, m)
}

// Distance2D returns the Euclidean distance between two points in the plane.
func Distance2D(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// RangeRandom maps a uniform sample r in [0,1) onto [lo, hi).
func RangeRandom(r, lo, hi float64) float64 {
	return r*(hi-lo) + lo
}
