// Package blaster implements a shooting gallery. The player aims with the
// pointer and fires bullets at targets floating in front of the range.
package blaster

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/collision"
	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/entity"
	"github.com/vovakirdan/range-arcade/internal/physics"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// ID is the game identifier and high-score key.
const ID = "blaster"

const (
	KindTarget entity.Kind = "target"
	KindBullet entity.Kind = "bullet"
)

// Visual characters for rendering
const (
	TargetChar    = '◎'
	TargetFarChar = 'o'
	BulletChar    = '•'
	CrosshairChar = '+'
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game implements the shooting gallery.
type Game struct {
	cfg        config.BlasterConfig
	logger     *log.Logger
	rng        *rand.Rand
	seed       int64
	difficulty *config.DifficultyManager

	reg      *entity.Registry
	respawns *respawnQueue
	camera   core.Camera
	muzzle   vmath.Vec3 // blaster position

	targetsReady bool // false when the target field could not be set up
	yaw, pitch   float64
	now          core.Duration
	elapsed      float64

	shots, hits, misses int
}

// New creates a blaster with default configuration.
func New() *Game {
	cfg := config.DefaultBlasterConfig()
	return &Game{
		cfg:          cfg,
		logger:       log.Default(),
		difficulty:   config.NewDifficultyManager(cfg.Difficulty),
		reg:          entity.NewRegistry(),
		respawns:     &respawnQueue{},
		camera:       core.NewCamera(vmath.V3(0, 0.4, 1)),
		targetsReady: true,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Blaster Range" }

// Initialize loads the configuration and validates the target field.
func (g *Game) Initialize(env registry.Env) error {
	if env.Logger != nil {
		g.logger = env.Logger.With("game", ID)
	}

	cfg, err := config.LoadBlaster(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("blaster: %w", err)
	}
	config.ApplyBlasterPreset(&cfg, env.Difficulty)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.seed = env.Runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))

	g.targetsReady = true
	if err := validateTargets(cfg.Targets); err != nil {
		g.targetsReady = false
		g.logger.Warn("targets unavailable", "error", err)
	}
	return nil
}

func validateTargets(t config.BlasterTargets) error {
	switch {
	case t.Count <= 0:
		return fmt.Errorf("target count %d", t.Count)
	case t.HalfSize <= 0:
		return fmt.Errorf("target half size %v", t.HalfSize)
	case t.Min.X > t.Max.X || t.Min.Y > t.Max.Y || t.Min.Z > t.Max.Z:
		return fmt.Errorf("empty spawn volume %v..%v", t.Min, t.Max)
	}
	return nil
}

// Options returns the session settings.
func (g *Game) Options() session.Options {
	return g.cfg.Session.Options()
}

// Start places the target field.
func (g *Game) Start(s *session.Session) {
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	if !g.targetsReady {
		return
	}
	for i := 0; i < g.cfg.Targets.Count; i++ {
		g.spawnTarget(s.Score())
	}
}

// spawnTarget places a target at a random point of the spawn volume.
func (g *Game) spawnTarget(score int) entity.Handle {
	t := g.cfg.Targets
	pos := vmath.V3(
		vmath.RangeRandom(g.rng.Float64(), t.Min.X, t.Max.X),
		vmath.RangeRandom(g.rng.Float64(), t.Min.Y, t.Max.Y),
		vmath.RangeRandom(g.rng.Float64(), t.Min.Z, t.Max.Z),
	)
	half := g.difficulty.Size(t.HalfSize, score, g.elapsed)
	return g.reg.SpawnWith(KindTarget, pos, vmath.Vec3{}, func(e *entity.Entity) {
		e.HalfExtents = vmath.V3(half, half, half)
		e.Radius = half
	})
}

// Update moves bullets, resolves hits and misses and brings back targets whose
// respawn delay has passed.
func (g *Game) Update(f core.Frame, s *session.Session) {
	g.now = f.Now
	g.elapsed += f.Delta

	for range g.respawns.popDue(g.now) {
		g.spawnTarget(s.Score())
	}

	g.reg.ForEach(KindBullet, func(b *entity.Entity) {
		physics.Advance(b, 0, f.Delta)

		if hit, ok := collision.FirstHit(g.reg, b, KindTarget); ok {
			g.reg.Despawn(hit.B)
			g.reg.Despawn(hit.A)
			g.hits++
			g.logger.Debug("target hit", "bullet", hit.A, "target", hit.B, "outcome", hit.Outcome)
			s.AddScore(g.cfg.Scoring.HitPoints)
			g.respawns.push(g.now + seconds(g.cfg.Targets.RespawnDelay))
			return
		}

		if physics.BeyondRange(b.Pos, vmath.Vec3{}, g.cfg.Bullet.MaxDistance) {
			g.reg.Despawn(b.Handle)
			g.misses++
			s.Penalize(g.cfg.Scoring.MissPenalty)
		}
	})
}

// HandleInput aims on pointer movement and fires on the primary button.
func (g *Game) HandleInput(ev core.InputEvent, s *session.Session) {
	switch ev.Kind {
	case core.EventPointerMove:
		g.aim(ev)
	case core.EventPointerDown:
		if ev.Button != core.ButtonPrimary {
			return
		}
		g.aim(ev)
		g.fire(s.Score())
	}
}

func (g *Game) aim(ev core.InputEvent) {
	nx, ny := ev.Normalized()
	g.yaw = -nx * g.cfg.Aim.MaxTilt
	g.pitch = ny * g.cfg.Aim.MaxTilt
}

// Aim returns the current firing direction.
func (g *Game) Aim() vmath.Vec3 {
	return vmath.Forward(g.yaw, g.pitch)
}

func (g *Game) fire(score int) entity.Handle {
	dir := g.Aim()
	pos := g.muzzle.AddScaled(dir, g.cfg.Bullet.Muzzle)
	pos.Y += g.cfg.Bullet.MuzzleRise
	speed := g.difficulty.Speed(g.cfg.Bullet.Speed, score, g.elapsed)

	g.shots++
	half := g.cfg.Bullet.HalfSize
	return g.reg.SpawnWith(KindBullet, pos, dir.Scale(speed), func(e *entity.Entity) {
		e.HalfExtents = vmath.V3(half, half, half)
		e.Radius = half
	})
}

// Pause is a no-op: pending respawns keep their wall-clock due time.
func (g *Game) Pause(core.Duration) {}

// Unpause is a no-op.
func (g *Game) Unpause(core.Duration) {}

// Reset clears the range for a new attempt.
func (g *Game) Reset() {
	g.reg.Reset()
	g.respawns.clear()
	g.yaw, g.pitch = 0, 0
	g.elapsed = 0
	g.shots, g.hits, g.misses = 0, 0, 0
	if g.seed != 0 {
		g.rng = rand.New(rand.NewSource(g.seed))
	}
}

// Cleanup removes every entity.
func (g *Game) Cleanup() {
	g.logger.Debug("range cleared", "entities", g.reg.Total())
	g.reg.Reset()
	g.respawns.clear()
}

// Stats returns shots fired, hits and misses of the current attempt.
func (g *Game) Stats() (shots, hits, misses int) {
	return g.shots, g.hits, g.misses
}

// Registry exposes the live entities.
func (g *Game) Registry() *entity.Registry { return g.reg }

// Render draws targets, bullets and the crosshair.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Range floor
	if fy, ok := g.horizonRow(w, h); ok {
		dst.DrawHLine(0, fy, w, '·', core.ColorGray)
	}

	g.reg.ForEach(KindTarget, func(e *entity.Entity) {
		x, y, depth, ok := g.camera.Project(e.Pos, w, h)
		if !ok {
			return
		}
		ch := TargetChar
		if depth > 8 {
			ch = TargetFarChar
		}
		dst.SetColor(x, y, ch, core.Shade(core.ColorBrightRed, depth, 8))
	})

	g.reg.ForEach(KindBullet, func(e *entity.Entity) {
		if x, y, depth, ok := g.camera.Project(e.Pos, w, h); ok {
			dst.SetColor(x, y, BulletChar, core.Shade(core.ColorBrightYellow, depth, 8))
		}
	})

	aimPoint := g.muzzle.AddScaled(g.Aim(), 10)
	if x, y, _, ok := g.camera.Project(aimPoint, w, h); ok {
		dst.SetColor(x, y, CrosshairChar, core.ColorBrightGreen)
	}

	if !g.targetsReady {
		dst.DrawTextColor(2, h-2, "targets unavailable", core.ColorGray)
	}
}

func (g *Game) horizonRow(w, h int) (int, bool) {
	_, y, _, ok := g.camera.Project(vmath.V3(0, -2.5, -11), w, h)
	return y, ok && y >= 0 && y < h
}

func seconds(s float64) core.Duration {
	return core.Duration(s * float64(time.Second))
}
