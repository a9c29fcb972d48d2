// Package driving implements a small top-down driving demo. The car is steered
// with W/A/S/D or the arrow keys and scores one point per unit driven. Left
// alone it turns slowly on the spot like a showroom turntable.
package driving

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

// ID is the game identifier and high-score key.
const ID = "driving"

// stopSpeed is the speed below which a coasting car is considered parked.
const stopSpeed = 0.05

// TrackChar marks the recent path of the car.
const TrackChar = '·'

// headingChars are car glyphs for eight compass directions, starting at -Z
// (screen up) and turning clockwise as seen from above.
var headingChars = [8]rune{'▲', '◥', '▶', '◢', '▼', '◣', '◀', '◤'}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// controls holds which driving keys are currently held.
type controls struct {
	forward, backward, left, right bool
}

// Game implements the driving demo.
type Game struct {
	cfg        config.DrivingConfig
	logger     *log.Logger
	difficulty *config.DifficultyManager

	keys     controls
	pos      vmath.Vec3
	heading  float64 // yaw; 0 faces -Z
	speed    float64 // signed, along the heading
	odometer float64
	scored   int
	elapsed  float64

	trail []vmath.Vec3
}

// New creates a driving demo with default configuration.
func New() *Game {
	cfg := config.DefaultDrivingConfig()
	g := &Game{
		cfg:        cfg,
		logger:     log.Default(),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Test Drive" }

// Initialize loads the configuration.
func (g *Game) Initialize(env registry.Env) error {
	if env.Logger != nil {
		g.logger = env.Logger.With("game", ID)
	}

	cfg, err := config.LoadDriving(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("driving: %w", err)
	}
	config.ApplyDrivingPreset(&cfg, env.Difficulty)
	if cfg.Arena.HalfWidth <= 0 || cfg.Arena.HalfDepth <= 0 {
		g.logger.Warn("arena unavailable, driving unbounded", "half_width", cfg.Arena.HalfWidth, "half_depth", cfg.Arena.HalfDepth)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.Reset()
	return nil
}

// Options returns the session settings.
func (g *Game) Options() session.Options {
	return g.cfg.Session.Options()
}

// Start is a no-op: Initialize and Reset leave the car parked at the arena centre.
func (g *Game) Start(*session.Session) {}

// Update integrates throttle, drag and steering, moves the car and scores
// whole units of distance driven.
func (g *Game) Update(f core.Frame, s *session.Session) {
	dt := f.Delta
	g.elapsed += dt
	car := g.cfg.Car

	maxSpeed := g.difficulty.Speed(car.MaxSpeed, s.Score(), g.elapsed)
	throttle := 0.0
	if g.keys.forward {
		throttle++
	}
	if g.keys.backward {
		throttle--
	}

	switch {
	case throttle > 0:
		g.speed += car.Acceleration * dt
	case throttle < 0 && g.speed > 0:
		g.speed -= car.Braking * dt
	case throttle < 0:
		g.speed -= car.Acceleration * dt
	default:
		g.speed *= math.Max(0, 1-car.Drag*dt)
		if math.Abs(g.speed) < stopSpeed {
			g.speed = 0
		}
	}
	g.speed = vmath.Clamp(g.speed, -car.ReverseSpeed, maxSpeed)

	steer := 0.0
	if g.keys.left {
		steer++
	}
	if g.keys.right {
		steer--
	}

	if g.Parked() && steer == 0 {
		g.heading += car.IdleSpin * dt
	} else if maxSpeed > 0 {
		g.heading += steer * car.TurnRate * dt * (g.speed / maxSpeed)
	}
	g.heading = vmath.Mod(g.heading, 2*math.Pi)

	prev := g.pos
	g.pos = g.pos.AddScaled(vmath.Forward(g.heading, 0), g.speed*dt)
	if g.clampToArena() {
		g.speed = 0
	}

	moved := g.pos.Sub(prev).LengthXZ()
	if moved > 0 {
		g.odometer += moved
		g.recordTrail()
	}
	if whole := int(g.odometer); whole > g.scored {
		s.AddScore(whole - g.scored)
		g.scored = whole
	}
}

// clampToArena keeps the car inside the arena and reports whether it hit a wall.
func (g *Game) clampToArena() bool {
	a := g.cfg.Arena
	if a.HalfWidth <= 0 || a.HalfDepth <= 0 {
		return false
	}
	x := vmath.Clamp(g.pos.X, -a.HalfWidth, a.HalfWidth)
	z := vmath.Clamp(g.pos.Z, -a.HalfDepth, a.HalfDepth)
	hit := x != g.pos.X || z != g.pos.Z
	g.pos.X, g.pos.Z = x, z
	return hit
}

func (g *Game) recordTrail() {
	const maxTrail = 48
	if n := len(g.trail); n > 0 && g.trail[n-1].Distance(g.pos) < 1 {
		return
	}
	g.trail = append(g.trail, g.pos)
	if len(g.trail) > maxTrail {
		g.trail = g.trail[len(g.trail)-maxTrail:]
	}
}

// HandleInput tracks held driving keys.
func (g *Game) HandleInput(ev core.InputEvent, _ *session.Session) {
	var down bool
	switch ev.Kind {
	case core.EventKeyDown:
		down = true
	case core.EventKeyUp:
		down = false
	default:
		return
	}

	switch ev.Code {
	case core.KeyW, core.KeyUp:
		g.keys.forward = down
	case core.KeyS, core.KeyDown:
		g.keys.backward = down
	case core.KeyA, core.KeyLeft:
		g.keys.left = down
	case core.KeyD, core.KeyRight:
		g.keys.right = down
	}
}

// Pause releases every held key so the car does not lurch on resume.
func (g *Game) Pause(core.Duration) {
	g.keys = controls{}
}

// Unpause is a no-op.
func (g *Game) Unpause(core.Duration) {}

// Reset parks the car at the centre with the configured heading.
func (g *Game) Reset() {
	g.keys = controls{}
	g.pos = vmath.Vec3{}
	g.heading = g.cfg.Car.Heading
	g.speed = 0
	g.odometer = 0
	g.scored = 0
	g.elapsed = 0
	g.trail = g.trail[:0]
}

// Cleanup drops the trail.
func (g *Game) Cleanup() {
	g.trail = nil
}

// Parked reports whether the car is standing still.
func (g *Game) Parked() bool { return g.speed == 0 }

// Position returns the car's position on the XZ plane.
func (g *Game) Position() vmath.Vec3 { return g.pos }

// Heading returns the car's yaw in radians, in [0, 2π).
func (g *Game) Heading() float64 { return g.heading }

// Speed returns the signed speed along the heading.
func (g *Game) Speed() float64 { return g.speed }

// Odometer returns the total distance driven.
func (g *Game) Odometer() float64 { return g.odometer }

// Render draws a top-down view of the arena with the car and its trail.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 {
		return
	}
	dst.DrawBox(core.NewRect(0, 0, w, h))

	for _, p := range g.trail {
		x, y := g.toScreen(p, w, h)
		dst.SetColor(x, y, TrackChar, core.ColorGray)
	}

	x, y := g.toScreen(g.pos, w, h)
	dst.SetColor(x, y, g.carChar(), core.ColorBrightCyan)

	status := fmt.Sprintf(" %.1f u/s ", math.Abs(g.speed))
	dst.DrawTextColor(w-len(status)-1, h-1, status, core.ColorGray)
}

// toScreen maps arena coordinates to cells inside the border.
func (g *Game) toScreen(p vmath.Vec3, w, h int) (int, int) {
	a := g.cfg.Arena
	hw, hd := a.HalfWidth, a.HalfDepth
	if hw <= 0 || hd <= 0 {
		hw, hd = 30, 30
	}
	fx := (vmath.Clamp(p.X, -hw, hw) + hw) / (2 * hw)
	fz := (vmath.Clamp(p.Z, -hd, hd) + hd) / (2 * hd)
	x := 1 + int(math.Round(fx*float64(w-3)))
	y := 1 + int(math.Round(fz*float64(h-3)))
	return x, y
}

// carChar picks the glyph closest to the car's heading.
func (g *Game) carChar() rune {
	// Heading grows counter-clockwise seen from above; glyphs go clockwise.
	octant := int(math.Round(vmath.Mod(-g.heading, 2*math.Pi)/(math.Pi/4))) % 8
	return headingChars[octant]
}
