// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "github.com/vovakirdan/range-arcade/internal/vmath"

// Box is an axis-aligned bounding box in world space used for collision detection.
type Box struct {
	Min, Max vmath.Vec3
}

// NewBox creates a box from two corners.
func NewBox(min, max vmath.Vec3) Box {
	return Box{Min: min, Max: max}
}

// BoxAround creates a box centred on c extending half in each direction.
func BoxAround(c, half vmath.Vec3) Box {
	return Box{Min: c.Sub(half), Max: c.Add(half)}
}

// Intersects returns true if the boxes overlap. Touching faces count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.Max.X < o.Min.X || o.Max.X < b.Min.X {
		return false
	}
	if b.Max.Y < o.Min.Y || o.Max.Y < b.Min.Y {
		return false
	}
	if b.Max.Z < o.Min.Z || o.Max.Z < b.Min.Z {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box or on its boundary.
func (b Box) Contains(p vmath.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Shrink moves Min inward by minMargin and Max inward by maxMargin.
func (b Box) Shrink(minMargin, maxMargin vmath.Vec3) Box {
	return Box{Min: b.Min.Add(minMargin), Max: b.Max.Sub(maxMargin)}
}

// Expand grows the box by half on every side.
func (b Box) Expand(half vmath.Vec3) Box {
	return Box{Min: b.Min.Sub(half), Max: b.Max.Add(half)}
}

// SegmentIntersects reports whether the segment between from and to touches the box.
// A degenerate segment reduces to Contains.
func (b Box) SegmentIntersects(from, to vmath.Vec3) bool {
	d := to.Sub(from)
	lo, hi := 0.0, 1.0
	for _, ax := range [3][4]float64{
		{from.X, d.X, b.Min.X, b.Max.X},
		{from.Y, d.Y, b.Min.Y, b.Max.Y},
		{from.Z, d.Z, b.Min.Z, b.Max.Z},
	} {
		p, dir, min, max := ax[0], ax[1], ax[2], ax[3]
		if dir == 0 {
			if p < min || p > max {
				return false
			}
			continue
		}
		t0 := (min - p) / dir
		t1 := (max - p) / dir
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > lo {
			lo = t0
		}
		if t1 < hi {
			hi = t1
		}
		if lo > hi {
			return false
		}
	}
	return true
}

// Translate moves the box by d.
func (b Box) Translate(d vmath.Vec3) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Center returns the midpoint of the box.
func (b Box) Center() vmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Box) Size() vmath.Vec3 {
	return b.Max.Sub(b.Min)
}

// Empty reports whether the box has a negative extent on any axis.
func (b Box) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// Rect represents an axis-aligned rectangle on the screen grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
