package driving

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
	"github.com/vovakirdan/range-arcade/internal/vmath"
)

const step = time.Second / 60

var quiet = log.NewWithOptions(io.Discard, log.Options{})

func newGame(t *testing.T) (*Game, *session.Session) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	env := registry.Env{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
		Difficulty: config.DifficultyFixed,
		Logger:     quiet,
	}
	if err := g.Initialize(env); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	s := session.New(ID, g.Options(), nil, quiet)
	g.Start(s)
	return g, s
}

func run(g *Game, s *session.Session, n int) {
	for i := 0; i < n; i++ {
		g.Update(core.Frame{Delta: step.Seconds(), Tick: i + 1}, s)
	}
}

func press(g *Game, s *session.Session, code string) {
	g.HandleInput(core.KeyDownEvent(code, 0), s)
}

func release(g *Game, s *session.Session, code string) {
	g.HandleInput(core.KeyUpEvent(code, 0), s)
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestStartsParkedAtCentre(t *testing.T) {
	g, _ := newGame(t)
	if !g.Parked() || g.Position() != (vmath.Vec3{}) || g.Heading() != math.Pi {
		t.Errorf("at start: speed %v pos %v heading %v", g.Speed(), g.Position(), g.Heading())
	}
}

func TestOptionsStartImmediately(t *testing.T) {
	g, _ := newGame(t)
	opts := g.Options()
	if opts.CountdownOnStart {
		t.Error("driving should start without a countdown")
	}
	if opts.Duration != 10 {
		t.Errorf("Duration = %v, want 10", opts.Duration)
	}
}

func TestAccelerationScoresDistance(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	run(g, s, 60)

	if !approx(g.Speed(), 8, 1e-9) {
		t.Errorf("speed after 1s = %v, want 8", g.Speed())
	}
	// Initial heading faces +Z.
	if p := g.Position(); p.Z < 4 || p.Z > 4.1 || math.Abs(p.X) > 1e-6 {
		t.Errorf("position = %+v, want z in [4, 4.1]", p)
	}
	if s.Score() != 4 {
		t.Errorf("score = %d, want 4", s.Score())
	}
	if got := int(g.Odometer()); got != s.Score() {
		t.Errorf("odometer %v does not match score %d", g.Odometer(), s.Score())
	}

	run(g, s, 60)
	if !approx(g.Speed(), 12, 1e-9) {
		t.Errorf("speed = %v, want capped at 12", g.Speed())
	}
}

func TestDragSlowsToStop(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyUp)
	run(g, s, 60)
	release(g, s, core.KeyUp)

	run(g, s, 60)
	if v := g.Speed(); v <= 3 || v >= 4 {
		t.Errorf("speed after 1s coasting = %v, want about 3.6", v)
	}

	run(g, s, 600)
	if !g.Parked() {
		t.Errorf("car still moving at %v", g.Speed())
	}
}

func TestBrakeThenReverse(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	run(g, s, 30) // 4 u/s
	release(g, s, core.KeyW)

	press(g, s, core.KeyS)
	run(g, s, 10) // braking takes 2 u/s off
	if !approx(g.Speed(), 2, 1e-9) {
		t.Errorf("speed while braking = %v, want 2", g.Speed())
	}

	run(g, s, 120)
	if !approx(g.Speed(), -4, 1e-9) {
		t.Errorf("speed = %v, want reverse cap -4", g.Speed())
	}
}

func TestArenaClampsPosition(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	run(g, s, 600)

	if p := g.Position(); p.Z != 30 {
		t.Errorf("z = %v, want clamped to 30", p.Z)
	}
	if g.Speed() != 0 {
		t.Errorf("speed at wall = %v, want 0", g.Speed())
	}
	if sc := s.Score(); sc < 29 || sc > 30 {
		t.Errorf("score = %d, want about 30", sc)
	}
}

func TestIdleCarSpins(t *testing.T) {
	g, s := newGame(t)
	run(g, s, 60)

	if !approx(g.Heading(), math.Pi+0.6, 1e-9) {
		t.Errorf("heading = %v, want %v", g.Heading(), math.Pi+0.6)
	}
	if p := g.Position(); p.X != 0 || p.Z != 0 {
		t.Errorf("parked car moved to %+v", p)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestSteeringTurnsLeft(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	press(g, s, core.KeyA)
	run(g, s, 60)

	turned := g.Heading() - math.Pi
	if turned <= 0.01 || turned >= 2.2 {
		t.Errorf("turned %v rad, want a partial left turn", turned)
	}
	// Turning left from +Z swings the car towards +X.
	if g.Position().X <= 0 {
		t.Errorf("x = %v, want positive", g.Position().X)
	}
}

func TestPauseReleasesKeys(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	run(g, s, 30)
	g.Pause(0)
	g.Unpause(0)

	before := g.Speed()
	run(g, s, 1)
	if g.Speed() >= before {
		t.Errorf("speed %v -> %v, want coasting after pause", before, g.Speed())
	}
}

func TestDeterministicDrive(t *testing.T) {
	script := func() (*Game, int) {
		g, s := newGame(t)
		press(g, s, core.KeyW)
		run(g, s, 45)
		press(g, s, core.KeyD)
		run(g, s, 30)
		release(g, s, core.KeyD)
		press(g, s, core.KeyS)
		run(g, s, 20)
		return g, s.Score()
	}

	a, scoreA := script()
	b, scoreB := script()
	if a.Position() != b.Position() || a.Heading() != b.Heading() || scoreA != scoreB {
		t.Errorf("runs diverged: %+v/%v/%d vs %+v/%v/%d",
			a.Position(), a.Heading(), scoreA, b.Position(), b.Heading(), scoreB)
	}
}

func TestResetParksCar(t *testing.T) {
	g, s := newGame(t)
	press(g, s, core.KeyW)
	run(g, s, 60)
	g.Reset()

	if !g.Parked() || g.Odometer() != 0 || g.Heading() != math.Pi {
		t.Errorf("after reset: speed %v odometer %v heading %v", g.Speed(), g.Odometer(), g.Heading())
	}
	run(g, s, 1)
	if !g.Parked() {
		t.Error("keys survived reset")
	}
}

func TestRenderDrawsCar(t *testing.T) {
	g, _ := newGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if got := scr.Get(40, 12); got != '▼' {
		t.Errorf("cell (40,12) = %q, want car facing down", got)
	}
	if got := scr.Get(0, 0); got != '┌' {
		t.Errorf("corner = %q, want arena border", got)
	}
}
