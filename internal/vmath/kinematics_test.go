package vmath

import (
	"math"
	"testing"
)

func TestIntegrateGravityStepSplitting(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		total float64
		steps int
	}{
		{"one second in 60 steps", V3(1, 5, -2), 1.0, 60},
		{"short throw in 7 steps", V3(0, 3.2, -4), 0.35, 7},
		{"zero time", V3(0, 1, 0), 0, 10},
		{"long fall in 1000 steps", V3(0, 0, 0), 4.2, 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			whole := IntegrateGravity(tc.v, Gravity, tc.total)

			split := tc.v
			dt := tc.total / float64(tc.steps)
			for i := 0; i < tc.steps; i++ {
				split = IntegrateGravity(split, Gravity, dt)
			}

			if !whole.ApproxEqual(split, 1e-9) {
				t.Errorf("single step %+v differs from %d sub-steps %+v", whole, tc.steps, split)
			}
			if whole.X != tc.v.X || whole.Z != tc.v.Z {
				t.Errorf("gravity must only change Y, got %+v from %+v", whole, tc.v)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, math.Inf(1), 0},
		{-10, 0, math.Inf(1), 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestLerpAndMod(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2, 4, 0.5) = %v, expected 3", got)
	}
	if got := Mod(-1, 5); got != 4 {
		t.Errorf("Mod(-1, 5) = %v, expected 4", got)
	}
	if got := Mod(7, 5); got != 2 {
		t.Errorf("Mod(7, 5) = %v, expected 2", got)
	}
}

func TestClosedFormMotion(t *testing.T) {
	if got := CalculateVelocity(2, -Gravity, 1); math.Abs(got-(2-Gravity)) > 1e-12 {
		t.Errorf("CalculateVelocity = %v", got)
	}
	// Apex of a throw at 9.81 m/s is reached after 1s at height 4.905.
	if got := CalculatePosition(0, Gravity, -Gravity, 1); math.Abs(got-Gravity/2) > 1e-12 {
		t.Errorf("CalculatePosition = %v, expected %v", got, Gravity/2)
	}
	if got := Distance2D(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance2D = %v, expected 5", got)
	}
}

func TestVectorOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, expected 32", got)
	}
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %v, expected 5", got)
	}
	if got := V3(3, 100, 4).LengthXZ(); got != 5 {
		t.Errorf("LengthXZ = %v, expected 5", got)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %+v", got)
	}
	if got := V3(0, 0, -7).Normalize(); got != V3(0, 0, -1) {
		t.Errorf("Normalize = %+v", got)
	}
}

func TestForward(t *testing.T) {
	if got := Forward(0, 0); !got.ApproxEqual(V3(0, 0, -1), 1e-12) {
		t.Errorf("Forward(0,0) = %+v, expected straight down -Z", got)
	}
	if got := Forward(math.Pi/2, 0); !got.ApproxEqual(V3(-1, 0, 0), 1e-12) {
		t.Errorf("Forward(pi/2,0) = %+v, expected -X", got)
	}
	if got := Forward(0, math.Pi/2); !got.ApproxEqual(V3(0, 1, 0), 1e-12) {
		t.Errorf("Forward(0,pi/2) = %+v, expected +Y", got)
	}
}
