// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"github.com/vovakirdan/range-arcade/internal/session"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// SessionConfig is the timing block shared by every game.
type SessionConfig struct {
	Duration         float64 `yaml:"duration"`          // seconds of play
	CountdownSeconds int     `yaml:"countdown_seconds"` // readiness window
	CountdownOnStart bool    `yaml:"countdown_on_start"`
}

// Options converts the block to session options.
func (c SessionConfig) Options() session.Options {
	return session.Options{
		Duration:         c.Duration,
		CountdownSeconds: c.CountdownSeconds,
		CountdownOnStart: c.CountdownOnStart,
	}
}

// BlasterConfig contains all configuration for the shooting gallery.
type BlasterConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Targets    BlasterTargets   `yaml:"targets"`
	Bullet     BlasterBullet    `yaml:"bullet"`
	Aim        BlasterAim       `yaml:"aim"`
	Scoring    BlasterScoring   `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlasterTargets defines the target field.
type BlasterTargets struct {
	Count        int        `yaml:"count"`
	Min          vmath.Vec3 `yaml:"min"` // spawn volume
	Max          vmath.Vec3 `yaml:"max"`
	HalfSize     float64    `yaml:"half_size"`
	RespawnDelay float64    `yaml:"respawn_delay"` // seconds
}

// BlasterBullet defines projectile parameters.
type BlasterBullet struct {
	Speed       float64 `yaml:"speed"`        // units per second
	MaxDistance float64 `yaml:"max_distance"` // from the world origin
	HalfSize    float64 `yaml:"half_size"`
	Muzzle      float64 `yaml:"muzzle"` // spawn distance along the aim
	MuzzleRise  float64 `yaml:"muzzle_rise"`
}

// BlasterAim defines how the pointer turns the blaster.
type BlasterAim struct {
	MaxTilt float64 `yaml:"max_tilt"` // radians at the viewport edge
}

// BlasterScoring defines points per event.
type BlasterScoring struct {
	HitPoints   int `yaml:"hit_points"`
	MissPenalty int `yaml:"miss_penalty"`
}

// BasketballConfig contains all configuration for the free-throw game.
type BasketballConfig struct {
	Session    SessionConfig     `yaml:"session"`
	Camera     vmath.Vec3        `yaml:"camera"`
	Ball       BasketballBall    `yaml:"ball"`
	Hoop       BasketballHoop    `yaml:"hoop"`
	Rim        BasketballRim     `yaml:"rim"`
	Scoring    BasketballScoring `yaml:"scoring"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// BasketballBall defines the thrown ball.
type BasketballBall struct {
	Radius        float64    `yaml:"radius"`
	ColliderScale float64    `yaml:"collider_scale"`
	Speed         float64    `yaml:"speed"` // velocity per pixel/second of flick
	Arc           float64    `yaml:"arc"`
	LifetimeY     float64    `yaml:"lifetime_y"` // reset below this height
	Gravity       float64    `yaml:"gravity"`
	ResetOffset   vmath.Vec3 `yaml:"reset_offset"` // from the camera
}

// BasketballHoop places the hoop.
type BasketballHoop struct {
	Position    vmath.Vec3 `yaml:"position"`
	HalfExtents vmath.Vec3 `yaml:"half_extents"`
}

// BasketballRim defines the rim collider.
type BasketballRim struct {
	Radius            float64 `yaml:"radius"`
	Thickness         float64 `yaml:"thickness"`
	VerticalThickness float64 `yaml:"vertical_thickness"`
	HeightOffset      float64 `yaml:"height_offset"`
	Restitution       float64 `yaml:"restitution"`
	Friction          float64 `yaml:"friction"`
	ConeSlopeDeg      float64 `yaml:"cone_slope_deg"`
}

// BasketballScoring defines the scoring volume and points.
type BasketballScoring struct {
	Points    int        `yaml:"points"`
	MinMargin vmath.Vec3 `yaml:"min_margin"`
	MaxMargin vmath.Vec3 `yaml:"max_margin"`
}

// DrivingConfig contains all configuration for the driving demo.
type DrivingConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Car        DrivingCar       `yaml:"car"`
	Arena      DrivingArena     `yaml:"arena"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DrivingCar defines the car handling.
type DrivingCar struct {
	Acceleration float64 `yaml:"acceleration"` // units/s^2
	Braking      float64 `yaml:"braking"`
	Drag         float64 `yaml:"drag"` // fraction of speed lost per second
	MaxSpeed     float64 `yaml:"max_speed"`
	ReverseSpeed float64 `yaml:"reverse_speed"`
	TurnRate     float64 `yaml:"turn_rate"` // radians/s at full speed
	IdleSpin     float64 `yaml:"idle_spin"` // radians/s while parked
	Heading      float64 `yaml:"heading"`   // initial yaw
}

// DrivingArena bounds the drivable area on the XZ plane.
type DrivingArena struct {
	HalfWidth float64 `yaml:"half_width"`
	HalfDepth float64 `yaml:"half_depth"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
	SizeReduction   float64 `yaml:"size_reduction"`   // fraction of size removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// DurationScaleForPreset returns the session length multiplier for a preset.
func DurationScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}
