// Package physics holds the per-tick responders shared by the games: free-flight
// integration, lifetime bounds, rim bounces, scoring volumes and miss penalties.
package physics

import (
	"math"

	"github.com/vovakirdan/range-arcade/internal/entity"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// MaxStep is the longest single integration step, in seconds.
const MaxStep = 1.0 / 60

// Substeps splits dt into n equal steps no longer than maxStep.
func Substeps(dt, maxStep float64) (n int, step float64) {
	if dt <= 0 {
		return 0, 0
	}
	n = int(math.Ceil(dt/maxStep - 1e-9))
	if n < 1 {
		n = 1
	}
	return n, dt / float64(n)
}

// Advance applies gravity g for dt seconds and then moves the entity along its
// velocity. Pass g = 0 for straight-line projectiles. The position before the
// move is kept in Prev for swept tests.
func Advance(e *entity.Entity, g, dt float64) {
	e.Prev = e.Pos
	if g != 0 {
		e.Vel = vmath.IntegrateGravity(e.Vel, g, dt)
	}
	e.Pos = e.Pos.AddScaled(e.Vel, dt)
	e.Age += dt
}

// BelowFloor reports whether pos has dropped under floorY.
func BelowFloor(pos vmath.Vec3, floorY float64) bool {
	return pos.Y < floorY
}

// BeyondRange reports whether pos is farther than maxDist from origin.
func BeyondRange(pos, origin vmath.Vec3, maxDist float64) bool {
	return pos.Distance(origin) > maxDist
}

// ApplyMissPenalty subtracts penalty from score without going below zero.
func ApplyMissPenalty(score, penalty int) int {
	score -= penalty
	if score < 0 {
		return 0
	}
	return score
}
