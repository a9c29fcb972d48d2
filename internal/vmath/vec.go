// Package vmath provides the vector arithmetic and closed-form kinematics used by
// the game simulations. Everything here is pure and allocation free.
package vmath

import "math"

// Vec3 is a point or direction in world space. Y is up, -Z points away from the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// AddScaled returns v + o*s.
func (v Vec3) AddScaled(o Vec3, s float64) Vec3 {
	return Vec3{v.X + o.X*s, v.Y + o.Y*s, v.Z + o.Z*s}
}

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthXZ returns the magnitude of the horizontal projection.
func (v Vec3) LengthXZ() float64 {
	return math.Hypot(v.X, v.Z)
}

// Distance returns |v - o|.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps && math.Abs(v.Z-o.Z) <= eps
}

// Forward returns the unit direction for a yaw (around Y) and pitch (around X), both in
// radians. Yaw 0 and pitch 0 look down -Z. Positive yaw turns left, positive pitch looks up.
func Forward(yaw, pitch float64) Vec3 {
	cp := math.Cos(pitch)
	return Vec3{
		X: -math.Sin(yaw) * cp,
		Y: math.Sin(pitch),
		Z: -math.Cos(yaw) * cp,
	}
}
