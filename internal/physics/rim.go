package physics

import (
	"math"

	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// Contact classifies how a ball met the rim.
type Contact int

const (
	ContactNone    Contact = iota
	ContactCone            // top hit on the inner lip, bounced off the cone surface
	ContactTopFlat         // top hit on the rim tube itself
	ContactSide            // side hit, bounced radially
)

// String returns the contact name.
func (c Contact) String() string {
	switch c {
	case ContactCone:
		return "cone"
	case ContactTopFlat:
		return "top"
	case ContactSide:
		return "side"
	default:
		return "none"
	}
}

// pushOut is the gap left between a resolved ball and the rim surface.
const pushOut = 0.001

// topBounceDamping scales the rebound when a ball rolls over the top of the rim.
const topBounceDamping = 0.3

// rollingSpeed is the horizontal speed above which a flat top hit rebounds.
const rollingSpeed = 0.05

// Rim describes a horizontal torus-like hoop.
type Rim struct {
	Center            vmath.Vec3
	HeightOffset      float64 // added to Center.Y to get the tube's centre line
	Radius            float64 // radius of the tube centre line
	Thickness         float64 // radial half-thickness of the tube
	VerticalThickness float64 // full height of the tube
	Restitution       float64
	Friction          float64
	ConeSlopeDeg      float64
}

// Inner returns the inner radius of the tube.
func (r Rim) Inner() float64 { return r.Radius - r.Thickness }

// Outer returns the outer radius of the tube.
func (r Rim) Outer() float64 { return r.Radius + r.Thickness }

// Level returns the world position of the tube centre line's centre.
func (r Rim) Level() vmath.Vec3 {
	c := r.Center
	c.Y += r.HeightOffset
	return c
}

// bounce reflects the component of v along n scaled by restitution and keeps the
// tangential remainder scaled by (1 - friction).
func bounce(v, n vmath.Vec3, restitution, friction float64) vmath.Vec3 {
	vn := n.Scale(v.Dot(n))
	vt := v.Sub(vn)
	return vn.Scale(-restitution).Add(vt.Scale(1 - friction))
}

// ResolveRim tests a falling ball of radius ballR against the rim and returns its
// corrected position and velocity. The collision resolves along the axis of least
// penetration: vertical for top hits, radial for side hits.
func ResolveRim(pos, vel vmath.Vec3, ballR float64, rim Rim) (vmath.Vec3, vmath.Vec3, Contact) {
	if vel.Y >= 0 {
		return pos, vel, ContactNone
	}

	level := rim.Level()
	dx := pos.X - level.X
	dz := pos.Z - level.Z
	distXZ := math.Hypot(dx, dz)
	inner := rim.Inner()
	outer := rim.Outer()
	verticalDist := math.Abs(pos.Y - level.Y)

	atRimHeight := verticalDist < rim.VerticalThickness*0.5+ballR*0.25
	touching := distXZ > inner-ballR && distXZ < outer+ballR
	if !atRimHeight || !touching {
		return pos, vel, ContactNone
	}

	// Well inside the hoop: the ball drops through cleanly.
	if distXZ < inner-ballR*0.8 {
		return pos, vel, ContactNone
	}

	radialPen := outer + ballR - distXZ
	verticalPen := rim.VerticalThickness*0.5 + ballR - verticalDist
	topHit := verticalPen < radialPen && pos.Y > level.Y

	if topHit {
		if distXZ < inner {
			slope := rim.ConeSlopeDeg * vmath.DegToRad
			n := vmath.V3(dx, math.Tan(slope)*distXZ, dz).Normalize()

			vel = bounce(vel, n, rim.Restitution, rim.Friction)
			pos.X = level.X + n.X*(ballR+pushOut)
			pos.Z = level.Z + n.Z*(ballR+pushOut)
			pos.Y = math.Max(pos.Y, level.Y+ballR*0.5)
			return pos, vel, ContactCone
		}

		if math.Abs(vel.X)+math.Abs(vel.Z) > rollingSpeed {
			vel.Y = math.Abs(vel.Y) * rim.Restitution * topBounceDamping
		}
		pos.Y = level.Y + rim.VerticalThickness*0.5 + ballR + pushOut
		return pos, vel, ContactTopFlat
	}

	n := vmath.V3(dx, 0, dz).Normalize()
	vel = bounce(vel, n, rim.Restitution, rim.Friction)

	push := n.Scale(outer + ballR + pushOut)
	pos.X = level.X + push.X
	pos.Z = level.Z + push.Z
	pos.Y = math.Max(pos.Y, level.Y-rim.VerticalThickness*0.25)
	return pos, vel, ContactSide
}
