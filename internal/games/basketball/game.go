// Package basketball implements a free-throw game. The player flicks the ball
// with a pointer drag; it flies under gravity, bounces off the rim and scores
// when it drops cleanly through the hoop.
package basketball

import (
	"fmt"
	"math"

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
const ID = "basketball"

// KindBall is the entity kind of the thrown ball.
const KindBall entity.Kind = "ball"

// minFlickSeconds keeps a zero-length drag from dividing by zero.
const minFlickSeconds = 0.001

// Visual characters for rendering
const (
	BallChar     = '●'
	RimChar      = 'o'
	BoardChar    = '│'
	BoardTopChar = '─'
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

type dragPoint struct {
	x, y float64
	at   core.Duration
}

// Game implements the free-throw game.
type Game struct {
	cfg    config.BasketballConfig
	logger *log.Logger

	reg    *entity.Registry
	camera core.Camera
	ball   entity.Handle

	ballReady bool
	hoopReady bool
	rim       physics.Rim
	hoopBox   core.Box
	volume    *physics.ScoringVolume

	inMotion  bool
	dragging  bool
	dragStart dragPoint
	spin      float64 // radians per second about X
	spinAngle float64

	shots, makes int
	lastContact  physics.Contact
	lastBounce   collision.Event
}

// New creates a basketball game with default configuration.
func New() *Game {
	g := &Game{
		cfg:    config.DefaultBasketballConfig(),
		logger: log.Default(),
		reg:    entity.NewRegistry(),
	}
	g.setup()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Free Throw" }

// Initialize loads the configuration and builds the hoop and the ball.
func (g *Game) Initialize(env registry.Env) error {
	if env.Logger != nil {
		g.logger = env.Logger.With("game", ID)
	}

	cfg, err := config.LoadBasketball(env.ConfigPath)
	if err != nil {
		return fmt.Errorf("basketball: %w", err)
	}
	config.ApplyBasketballPreset(&cfg, env.Difficulty)
	g.cfg = cfg
	g.setup()

	if !g.ballReady {
		g.logger.Warn("ball unavailable", "radius", cfg.Ball.Radius)
	}
	if !g.hoopReady {
		g.logger.Warn("hoop unavailable", "half_extents", cfg.Hoop.HalfExtents)
	}
	return nil
}

// setup derives the colliders from the configuration.
func (g *Game) setup() {
	cfg := g.cfg
	g.camera = core.NewCamera(cfg.Camera)

	he := cfg.Hoop.HalfExtents
	g.hoopReady = he.X > 0 && he.Y > 0 && he.Z > 0 && cfg.Rim.Radius > 0
	g.ballReady = cfg.Ball.Radius > 0

	g.rim = physics.Rim{
		Center:            cfg.Hoop.Position,
		HeightOffset:      cfg.Rim.HeightOffset,
		Radius:            cfg.Rim.Radius,
		Thickness:         cfg.Rim.Thickness,
		VerticalThickness: cfg.Rim.VerticalThickness,
		Restitution:       cfg.Rim.Restitution,
		Friction:          cfg.Rim.Friction,
		ConeSlopeDeg:      cfg.Rim.ConeSlopeDeg,
	}
	g.hoopBox = core.BoxAround(cfg.Hoop.Position, he)
	g.volume = physics.NewScoringVolume(g.hoopBox, cfg.Scoring.MinMargin, cfg.Scoring.MaxMargin)
}

// Options returns the session settings.
func (g *Game) Options() session.Options {
	return g.cfg.Session.Options()
}

// Start puts the ball in the player's hands.
func (g *Game) Start(*session.Session) {
	if !g.ballReady {
		return
	}
	if !g.reg.Alive(g.ball) {
		r := g.cfg.Ball.Radius
		g.ball = g.reg.SpawnWith(KindBall, g.restPosition(), vmath.Vec3{}, func(e *entity.Entity) {
			e.Radius = r
			e.HalfExtents = vmath.V3(r, r, r)
		})
	}
	g.resetBall()
}

// restPosition is the ball's spot in front of the camera.
func (g *Game) restPosition() vmath.Vec3 {
	return g.cfg.Camera.Add(g.cfg.Ball.ResetOffset)
}

func (g *Game) resetBall() {
	if e, ok := g.reg.Get(g.ball); ok {
		e.Place(g.restPosition())
		e.Origin = e.Pos
		e.Vel = vmath.Vec3{}
		e.Age = 0
	}
	g.inMotion = false
	g.spin = 0
}

// colliderRadius is the radius used against the rim.
func (g *Game) colliderRadius() float64 {
	return g.cfg.Ball.Radius * g.cfg.Ball.ColliderScale
}

// Update flies the ball, resolves rim contact and checks the scoring volume.
// Long frames are split into short steps so the ball cannot skip the rim.
func (g *Game) Update(f core.Frame, s *session.Session) {
	ball, ok := g.reg.Get(g.ball)
	if !ok || !g.inMotion {
		return
	}

	n, dt := physics.Substeps(f.Delta, physics.MaxStep)
	for i := 0; i < n && g.inMotion; i++ {
		g.step(ball, dt, s)
	}
}

func (g *Game) step(ball *entity.Entity, dt float64, s *session.Session) {
	physics.Advance(ball, g.cfg.Ball.Gravity, dt)
	g.spinAngle = vmath.Mod(g.spinAngle+g.spin*dt, 2*math.Pi)
	if physics.BelowFloor(ball.Pos, g.cfg.Ball.LifetimeY) {
		g.resetBall()
		return
	}
	if !g.hoopReady {
		return
	}

	pos, vel := ball.Pos, ball.Vel
	var contact physics.Contact
	ball.Pos, ball.Vel, contact = physics.ResolveRim(pos, vel, g.colliderRadius(), g.rim)
	if contact != physics.ContactNone {
		g.lastContact = contact
		g.lastBounce = collision.Bounce(ball, pos, vel)
		g.logger.Debug("rim contact", "contact", contact, "dv", g.lastBounce.DeltaVel, "dp", g.lastBounce.DeltaPos)
	}

	if g.volume.Check(ball.Path()) {
		g.makes++
		ball.Hit = true
		s.AddScore(g.cfg.Scoring.Points)
	}
}

// HandleInput starts a drag on primary press and throws on release.
func (g *Game) HandleInput(ev core.InputEvent, _ *session.Session) {
	switch ev.Kind {
	case core.EventPointerDown:
		if ev.Button != core.ButtonPrimary || !g.reg.Alive(g.ball) {
			return
		}
		g.dragging = true
		g.dragStart = dragPoint{x: ev.X, y: ev.Y, at: ev.At}

	case core.EventPointerUp:
		if !g.dragging {
			return
		}
		g.dragging = false
		if g.inMotion || !g.reg.Alive(g.ball) {
			return
		}
		g.throw(dragPoint{x: ev.X, y: ev.Y, at: ev.At})
	}
}

// throw converts a flick into a launch velocity and spin.
func (g *Game) throw(end dragPoint) {
	dx, dy := end.x-g.dragStart.x, g.dragStart.y-end.y
	if dx == 0 && dy == 0 {
		return
	}
	ball, _ := g.reg.Get(g.ball)

	vel, spin := FlickVelocity(
		dx,
		dy,
		(end.at - g.dragStart.at).Seconds(),
		g.cfg.Ball.Arc,
		g.cfg.Ball.Speed,
	)
	ball.Vel = vel
	ball.Hit = false
	g.spin = spin
	g.inMotion = true
	g.volume.Arm()
	g.shots++
}

// FlickVelocity maps a screen drag (dx right, dy up, in pixels, over dt seconds)
// to a launch velocity and spin rate. The screen direction is lifted by arc and
// pushed into the scene along -Z; the speed is proportional to drag speed.
func FlickVelocity(dx, dy, dt, arc, scale float64) (vmath.Vec3, float64) {
	dt = math.Max(dt, minFlickSeconds)

	screen := vmath.V3(dx, dy, 0).Normalize()
	dir := vmath.V3(screen.X, screen.Y+arc, -1).Normalize()

	speed := math.Hypot(dx, dy) / dt
	spin := 1 - math.Min(5, speed*0.02)
	return dir.Scale(speed * scale), spin
}

// Pause drops an unfinished drag: its release would arrive while the session
// is not live and never reach the game.
func (g *Game) Pause(core.Duration) {
	g.dragging = false
}

// Unpause is a no-op.
func (g *Game) Unpause(core.Duration) {}

// Reset returns the ball to the player for a new attempt.
func (g *Game) Reset() {
	g.dragging = false
	g.shots, g.makes = 0, 0
	g.spinAngle = 0
	g.lastContact = physics.ContactNone
	g.lastBounce = collision.Event{}
	g.volume.Arm()
	g.resetBall()
}

// Cleanup removes the ball.
func (g *Game) Cleanup() {
	g.reg.Reset()
	g.inMotion = false
	g.dragging = false
}

// Ball returns the ball entity, if present.
func (g *Game) Ball() (*entity.Entity, bool) { return g.reg.Get(g.ball) }

// InMotion reports whether a shot is in flight.
func (g *Game) InMotion() bool { return g.inMotion }

// Stats returns shots thrown and shots made in the current attempt.
func (g *Game) Stats() (shots, makes int) { return g.shots, g.makes }

// Render draws the backboard, the rim and the ball.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	if g.hoopReady {
		g.drawBoard(dst, w, h)
		level := g.rim.Level()
		for i := 0; i < 32; i++ {
			a := float64(i) / 32 * 2 * math.Pi
			p := level.Add(vmath.V3(math.Cos(a)*g.rim.Radius, 0, math.Sin(a)*g.rim.Radius))
			if x, y, _, ok := g.camera.Project(p, w, h); ok {
				dst.SetColor(x, y, RimChar, core.ColorOrange)
			}
		}
	}

	if ball, ok := g.reg.Get(g.ball); ok {
		if x, y, depth, ok := g.camera.Project(ball.Pos, w, h); ok {
			dst.SetColor(x, y, BallChar, core.Shade(core.ColorBrightRed, depth, 12))
		}
	}

	if g.dragging {
		dst.DrawTextColor(2, h-2, "release to throw", core.ColorGray)
	}
}

// drawBoard outlines the backboard behind the hoop.
func (g *Game) drawBoard(dst *core.Screen, w, h int) {
	c := g.cfg.Hoop.Position
	back := c.Z - g.rim.Radius - 0.2
	tl := vmath.V3(c.X-1.8, c.Y+1.2, back)
	br := vmath.V3(c.X+1.8, c.Y-0.3, back)

	x0, y0, _, ok0 := g.camera.Project(tl, w, h)
	x1, y1, _, ok1 := g.camera.Project(br, w, h)
	if !ok0 || !ok1 {
		return
	}
	for x := x0; x <= x1; x++ {
		dst.SetColor(x, y0, BoardTopChar, core.ColorWhite)
		dst.SetColor(x, y1, BoardTopChar, core.ColorWhite)
	}
	for y := y0 + 1; y < y1; y++ {
		dst.SetColor(x0, y, BoardChar, core.ColorWhite)
		dst.SetColor(x1, y, BoardChar, core.ColorWhite)
	}
}
