package core

import (
	"math"

	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// cellAspect is the height/width ratio of a terminal character cell.
const cellAspect = 2.0

// Camera is a fixed perspective viewer looking down -Z.
type Camera struct {
	Pos  vmath.Vec3
	FOV  float64 // vertical field of view in degrees
	Near float64
}

// NewCamera creates a camera at pos with a 75° field of view.
func NewCamera(pos vmath.Vec3) Camera {
	return Camera{Pos: pos, FOV: 75, Near: 0.1}
}

// Project maps a world point onto a w×h cell grid. ok is false for points behind
// the near plane. depth is the distance along the view axis.
func (c Camera) Project(p vmath.Vec3, w, h int) (x, y int, depth float64, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, false
	}
	rel := p.Sub(c.Pos)
	depth = -rel.Z
	if depth < c.Near {
		return 0, 0, depth, false
	}

	f := 1 / math.Tan(c.FOV*vmath.DegToRad/2)
	aspect := float64(w) / (float64(h) * cellAspect)

	ndcX := rel.X * f / aspect / depth
	ndcY := rel.Y * f / depth

	x = int(math.Floor((ndcX + 1) / 2 * float64(w)))
	y = int(math.Floor((1 - ndcY) / 2 * float64(h)))
	return x, y, depth, true
}
