package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlaster loads the shooting gallery configuration.
// Search order: customPath -> ~/.arcade/configs/blaster.yaml -> ./configs/blaster.yaml -> embedded default
func LoadBlaster(customPath string) (BlasterConfig, error) {
	return load("blaster", customPath, defaultBlasterYAML, DefaultBlasterConfig)
}

// LoadBasketball loads the free-throw configuration.
// Search order: customPath -> ~/.arcade/configs/basketball.yaml -> ./configs/basketball.yaml -> embedded default
func LoadBasketball(customPath string) (BasketballConfig, error) {
	return load("basketball", customPath, defaultBasketballYAML, DefaultBasketballConfig)
}

// LoadDriving loads the driving demo configuration.
// Search order: customPath -> ~/.arcade/configs/driving.yaml -> ./configs/driving.yaml -> embedded default
func LoadDriving(customPath string) (DrivingConfig, error) {
	return load("driving", customPath, defaultDrivingYAML, DefaultDrivingConfig)
}

// load decodes on top of the hardcoded defaults so a partial file only
// overrides the keys it names.
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if cfg, ok := decodeFile(path, fallback); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func decodeFile[T any](path string, fallback func() T) (T, bool) {
	cfg := fallback()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func applyDifficulty(d *DifficultyConfig, s *SessionConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = d.Progression.Type != "none"
		d.InitialLevel = InitialLevelForPreset(preset)
	}
	s.Duration *= DurationScaleForPreset(preset)
}

// ApplyBlasterPreset modifies the config based on a difficulty preset.
func ApplyBlasterPreset(cfg *BlasterConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, &cfg.Session, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Scoring.MissPenalty = 0
		cfg.Targets.HalfSize *= 1.25
	case DifficultyHard:
		cfg.Scoring.MissPenalty *= 2
		cfg.Targets.RespawnDelay *= 1.5
	}
}

// ApplyBasketballPreset modifies the config based on a difficulty preset.
func ApplyBasketballPreset(cfg *BasketballConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, &cfg.Session, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rim.Restitution = 0.8
	case DifficultyHard:
		cfg.Rim.Restitution = 1.4
	}
}

// ApplyDrivingPreset modifies the config based on a difficulty preset.
func ApplyDrivingPreset(cfg *DrivingConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, &cfg.Session, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Car.Drag *= 0.5
	case DifficultyHard:
		cfg.Car.TurnRate *= 0.8
	}
}
