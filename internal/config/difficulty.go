package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed play seconds.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base from 1x up to (1 + speed_multiplier)x.
func (d *DifficultyManager) Speed(base float64, score int, elapsed float64) float64 {
	return base * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Size shrinks base by up to size_reduction, never below a quarter of base.
func (d *DifficultyManager) Size(base float64, score int, elapsed float64) float64 {
	factor := 1.0 - d.Level(score, elapsed)*d.cfg.Scaling.SizeReduction
	return base * math.Max(0.25, factor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
