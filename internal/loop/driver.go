// Package loop drives one game instance: it drains queued input, advances the
// session clock and steps the game once per tick.
package loop

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
)

// Driver owns a game's session and entity state for one play-through.
// It is single threaded: Push, Tick and the control methods must be called
// from the same goroutine.
type Driver struct {
	game    registry.Game
	session *session.Session
	clock   core.Clock
	queue   *core.InputQueue
	logger  *log.Logger
	redraw  func()

	ticks    int
	resuming bool
	started  bool
}

// NewDriver wires a game to its session and clock.
func NewDriver(game registry.Game, sess *session.Session, clock core.Clock, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{
		game:    game,
		session: sess,
		clock:   clock,
		queue:   core.NewInputQueue(),
		logger:  logger.With("game", game.ID()),
		redraw:  func() {},
	}
}

// OnRedraw sets the hook called whenever the view should be repainted.
func (d *Driver) OnRedraw(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	d.redraw = fn
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game { return d.game }

// Session returns the driven session.
func (d *Driver) Session() *session.Session { return d.session }

// Clock returns the clock the driver reads on every tick.
func (d *Driver) Clock() core.Clock { return d.clock }

// Push queues an input event for the next tick.
func (d *Driver) Push(ev core.InputEvent) {
	d.queue.Push(ev)
}

// Start spawns the game's entities and starts the session.
func (d *Driver) Start() error {
	now := d.clock.Now()
	if err := d.session.Start(now); err != nil {
		return err
	}
	if !d.started {
		d.game.Start(d.session)
		d.started = true
	}
	d.logger.Debug("session started", "state", d.session.State())
	d.redraw()
	return nil
}

// TogglePause pauses a running session or resumes a paused one.
// Requests during a countdown are ignored.
func (d *Driver) TogglePause() {
	now := d.clock.Now()
	switch d.session.State() {
	case session.StateRunning:
		if err := d.session.Pause(now); err != nil {
			d.logger.Debug("pause rejected", "error", err)
			return
		}
		d.game.Pause(now)
		d.logger.Debug("paused")
	case session.StatePaused:
		if err := d.session.Resume(now); err != nil {
			d.logger.Debug("resume rejected", "error", err)
			return
		}
		d.resuming = true
		if d.session.State() == session.StateRunning {
			d.finishResume(now)
		}
		d.logger.Debug("resuming")
	default:
		return
	}
	d.redraw()
}

// Restart resets the game and the session and starts a new attempt.
func (d *Driver) Restart() error {
	d.game.Reset()
	d.session.Reset()
	d.ticks = 0
	d.resuming = false
	d.started = false
	return d.Start()
}

// Close releases the game's entities.
func (d *Driver) Close() {
	d.game.Cleanup()
}

// Tick performs one loop iteration and reports what the session did.
func (d *Driver) Tick() session.TickResult {
	now := d.clock.Now()

	for _, ev := range d.queue.Drain() {
		d.dispatch(ev)
	}

	dt, res := d.session.Tick(now)
	switch res {
	case session.TickIdle:
		return res
	case session.TickCounting:
		d.redraw()
		return res
	case session.TickStarted:
		if d.resuming {
			d.finishResume(now)
		}
		d.redraw()
		return res
	case session.TickExpired:
		d.logger.Info("time up", "score", d.session.Score(), "high", d.session.HighScore())
		d.redraw()
		return res
	}

	d.ticks++
	d.game.Update(core.Frame{Now: now, Delta: dt, Tick: d.ticks}, d.session)
	d.redraw()
	return res
}

func (d *Driver) finishResume(now core.Duration) {
	d.resuming = false
	d.game.Unpause(now)
}

func (d *Driver) dispatch(ev core.InputEvent) {
	if ev.Kind == core.EventKeyDown {
		switch core.ActionForKey(ev.Code) {
		case core.ActionPause:
			d.TogglePause()
			return
		case core.ActionRestart:
			if err := d.Restart(); err != nil && !errors.Is(err, session.ErrCountdownActive) {
				d.logger.Warn("restart failed", "error", err)
			}
			return
		}
	}
	if d.session.Live() {
		d.game.HandleInput(ev, d.session)
	}
}

// Render draws the game into dst.
func (d *Driver) Render(dst *core.Screen) {
	d.game.Render(dst)
}
