package physics

import (
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// ScoringVolume fires at most once per shot when a point enters its box.
type ScoringVolume struct {
	Box    core.Box
	scored bool
}

// NewScoringVolume derives a scoring volume from an obstacle's bounds, shrunk by
// minMargin on the low corner and maxMargin on the high corner so that only a
// clean pass through the interior counts.
func NewScoringVolume(bounds core.Box, minMargin, maxMargin vmath.Vec3) *ScoringVolume {
	return &ScoringVolume{Box: bounds.Shrink(minMargin, maxMargin)}
}

// Arm clears the scored flag. Call when a new shot begins.
func (v *ScoringVolume) Arm() {
	v.scored = false
}

// Scored reports whether the current shot already scored.
func (v *ScoringVolume) Scored() bool {
	return v.scored
}

// Check returns true the first time the path from..to touches the volume since
// the last Arm. Pass the same point twice for a plain containment test.
func (v *ScoringVolume) Check(from, to vmath.Vec3) bool {
	if v.scored || !v.Box.SegmentIntersects(from, to) {
		return false
	}
	v.scored = true
	return true
}
