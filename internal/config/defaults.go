package config

import (
	_ "embed"
	"math"

	"github.com/vovakirdan/range-arcade/internal/vmath"
)

//go:embed defaults/blaster.yaml
var defaultBlasterYAML []byte

//go:embed defaults/basketball.yaml
var defaultBasketballYAML []byte

//go:embed defaults/driving.yaml
var defaultDrivingYAML []byte

// DefaultBlasterConfig returns the default shooting gallery configuration.
func DefaultBlasterConfig() BlasterConfig {
	return BlasterConfig{
		Session: SessionConfig{
			Duration:         60,
			CountdownSeconds: 3,
			CountdownOnStart: true,
		},
		Targets: BlasterTargets{
			Count:        10,
			Min:          vmath.V3(-2, -2, -11),
			Max:          vmath.V3(2, 2, -4),
			HalfSize:     0.3,
			RespawnDelay: 2,
		},
		Bullet: BlasterBullet{
			Speed:       6, // 0.1 per frame at 60fps
			MaxDistance: 20,
			HalfSize:    0.05,
			Muzzle:      0.1,
			MuzzleRise:  0.08,
		},
		Aim: BlasterAim{
			MaxTilt: math.Pi / 3,
		},
		Scoring: BlasterScoring{
			HitPoints:   100,
			MissPenalty: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SizeReduction:   0.4,
			},
		},
	}
}

// DefaultBasketballConfig returns the default free-throw configuration.
func DefaultBasketballConfig() BasketballConfig {
	return BasketballConfig{
		Session: SessionConfig{
			Duration:         60,
			CountdownSeconds: 3,
			CountdownOnStart: true,
		},
		Camera: vmath.V3(0, 0, 10),
		Ball: BasketballBall{
			Radius:        0.24,
			ColliderScale: 0.5,
			Speed:         0.0025,
			Arc:           1.1,
			LifetimeY:     -10,
			Gravity:       vmath.Gravity,
			ResetOffset:   vmath.V3(0, -0.5, -2),
		},
		Hoop: BasketballHoop{
			Position:    vmath.V3(0, 1.5, 0),
			HalfExtents: vmath.V3(1.1, 0.6, 1.1),
		},
		Rim: BasketballRim{
			Radius:            1,
			Thickness:         0.05,
			VerticalThickness: 0.2,
			HeightOffset:      -0.1,
			Restitution:       1.2,
			Friction:          0.1,
			ConeSlopeDeg:      20,
		},
		Scoring: BasketballScoring{
			Points:    200,
			MinMargin: vmath.V3(0.4, 0.4, 0.4),
			MaxMargin: vmath.V3(0.4, 0.5, 0.4),
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultDrivingConfig returns the default driving demo configuration.
func DefaultDrivingConfig() DrivingConfig {
	return DrivingConfig{
		Session: SessionConfig{
			Duration:         10,
			CountdownSeconds: 3,
			CountdownOnStart: false,
		},
		Car: DrivingCar{
			Acceleration: 8,
			Braking:      12,
			Drag:         0.8,
			MaxSpeed:     12,
			ReverseSpeed: 4,
			TurnRate:     2.2,
			IdleSpin:     0.6, // 0.01 rad per frame at 60fps
			Heading:      math.Pi,
		},
		Arena: DrivingArena{
			HalfWidth: 30,
			HalfDepth: 30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blaster":
		return defaultBlasterYAML
	case "basketball":
		return defaultBasketballYAML
	case "driving":
		return defaultDrivingYAML
	default:
		return nil
	}
}
