// Package collision finds hits between moving entities and targets and records
// what each hit did. Bounding volumes are rebuilt from entity state on every query.
package collision

import (
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/entity"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// Outcome classifies what a collision did to the moving entity.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeAbsorbed
	OutcomeBounced
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAbsorbed:
		return "absorbed"
	case OutcomeBounced:
		return "bounced"
	default:
		return "ignored"
	}
}

// Event records a collision between two entities. DeltaVel and DeltaPos are
// set only for bounced outcomes.
type Event struct {
	A, B     entity.Handle
	Outcome  Outcome
	DeltaVel vmath.Vec3
	DeltaPos vmath.Vec3
}

// Swept reports whether a moving entity touched box during its last step. The
// entity's half extents are folded into the box and its centre path is tested
// against the result.
func Swept(mover *entity.Entity, box core.Box) bool {
	from, to := mover.Path()
	return box.Expand(mover.HalfExtents).SegmentIntersects(from, to)
}

// FirstHit returns an absorbed event for the first entity of targetKind, in
// registry order, that the projectile touched during its last step. Later
// targets are not tested.
func FirstHit(reg *entity.Registry, projectile *entity.Entity, targetKind entity.Kind) (Event, bool) {
	for _, h := range reg.Handles(targetKind) {
		t, ok := reg.Get(h)
		if !ok {
			continue
		}
		if Swept(projectile, t.Box()) {
			return Event{A: projectile.Handle, B: h, Outcome: OutcomeAbsorbed}, true
		}
	}
	return Event{}, false
}

// Bounce builds the event for an entity deflected by static scenery. B is zero
// because the obstacle is not a registry entity.
func Bounce(e *entity.Entity, oldPos, oldVel vmath.Vec3) Event {
	return Event{
		A:        e.Handle,
		Outcome:  OutcomeBounced,
		DeltaVel: e.Vel.Sub(oldVel),
		DeltaPos: e.Pos.Sub(oldPos),
	}
}
