package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func isolateHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	isolateHome(t)

	blaster, err := LoadBlaster("")
	if err != nil {
		t.Fatalf("LoadBlaster: %v", err)
	}
	if !reflect.DeepEqual(blaster, DefaultBlasterConfig()) {
		t.Errorf("embedded blaster config differs:\n got %+v\nwant %+v", blaster, DefaultBlasterConfig())
	}

	basketball, err := LoadBasketball("")
	if err != nil {
		t.Fatalf("LoadBasketball: %v", err)
	}
	if !reflect.DeepEqual(basketball, DefaultBasketballConfig()) {
		t.Errorf("embedded basketball config differs:\n got %+v\nwant %+v", basketball, DefaultBasketballConfig())
	}

	driving, err := LoadDriving("")
	if err != nil {
		t.Fatalf("LoadDriving: %v", err)
	}
	if !reflect.DeepEqual(driving, DefaultDrivingConfig()) {
		t.Errorf("embedded driving config differs:\n got %+v\nwant %+v", driving, DefaultDrivingConfig())
	}
}

func TestCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	data := []byte("session:\n  duration: 30\nscoring:\n  hit_points: 250\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBlaster(path)
	if err != nil {
		t.Fatalf("LoadBlaster: %v", err)
	}
	if cfg.Session.Duration != 30 {
		t.Errorf("duration = %v, want 30", cfg.Session.Duration)
	}
	if cfg.Scoring.HitPoints != 250 {
		t.Errorf("hit points = %d, want 250", cfg.Scoring.HitPoints)
	}
	if cfg.Scoring.MissPenalty != 10 {
		t.Errorf("miss penalty = %d, want default 10", cfg.Scoring.MissPenalty)
	}
	if cfg.Targets.Count != 10 {
		t.Errorf("target count = %d, want default 10", cfg.Targets.Count)
	}
}

func TestCustomPathErrors(t *testing.T) {
	if _, err := LoadDriving(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("session: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBasketball(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "driving.yaml"), []byte("car:\n  max_speed: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDriving("")
	if err != nil {
		t.Fatalf("LoadDriving: %v", err)
	}
	if cfg.Car.MaxSpeed != 20 {
		t.Errorf("max speed = %v, want 20", cfg.Car.MaxSpeed)
	}
	if cfg.Session.Duration != 10 {
		t.Errorf("duration = %v, want default 10", cfg.Session.Duration)
	}
}

func TestSessionOptions(t *testing.T) {
	opts := DefaultDrivingConfig().Session.Options()
	if opts.Duration != 10 || opts.CountdownSeconds != 3 || opts.CountdownOnStart {
		t.Errorf("driving options = %+v", opts)
	}
	opts = DefaultBlasterConfig().Session.Options()
	if opts.Duration != 60 || !opts.CountdownOnStart {
		t.Errorf("blaster options = %+v", opts)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantDuration float64
		wantEnabled  bool
		wantLevel    float64
	}{
		{DifficultyEasy, 90, true, 0.0},
		{DifficultyNormal, 60, true, 0.3},
		{DifficultyHard, 45, true, 0.7},
		{DifficultyFixed, 60, false, 0.0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBlasterConfig()
			ApplyBlasterPreset(&cfg, tt.preset)
			if cfg.Session.Duration != tt.wantDuration {
				t.Errorf("duration = %v, want %v", cfg.Session.Duration, tt.wantDuration)
			}
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
		})
	}

	// Progression type none stays disabled under any preset.
	bb := DefaultBasketballConfig()
	ApplyBasketballPreset(&bb, DifficultyHard)
	if bb.Difficulty.Enabled {
		t.Error("basketball difficulty enabled by preset")
	}
	if bb.Rim.Restitution != 1.4 {
		t.Errorf("hard rim restitution = %v, want 1.4", bb.Rim.Restitution)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("brutal"); ok {
		t.Error("ParsePreset accepted unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, SizeReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if got := d.Speed(10, 1000, 0); math.Abs(got-20) > 1e-9 {
		t.Errorf("Speed at max = %v, want 20", got)
	}
	if got := d.Size(1, 1000, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Size at max = %v, want 0.5", got)
	}

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     ScalingConfig{SizeReduction: 2},
	})
	if got := timed.Level(0, 5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("time Level = %v, want 0.5", got)
	}
	if got := timed.Size(1, 0, 10); got != 0.25 {
		t.Errorf("Size floor = %v, want 0.25", got)
	}

	off := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.4})
	if off.IsEnabled() || off.Level(9999, 9999) != 0.4 {
		t.Error("disabled manager should hold the initial level")
	}
}
