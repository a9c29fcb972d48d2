// Package session implements the per-attempt game state machine: countdown,
// running clock, pause bookkeeping, score and high-score persistence.
//
// State edges:
//
//	Idle -> Countdown -> Running <-> Paused
//	Paused -> Countdown -> Running   (resume re-applies the countdown)
//	Running -> Over -> (Reset) -> Idle
package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/physics"
)

// State is the lifecycle state of a session.
type State int

const (
	StateIdle State = iota
	StateCountdown
	StateRunning
	StatePaused
	StateOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCountdown:
		return "countdown"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("session: invalid state transition")
	// ErrCountdownActive is returned when a countdown is requested while one is running.
	ErrCountdownActive = errors.New("session: countdown already active")
)

// Options tune a session for one game.
type Options struct {
	Duration         float64 // play time in seconds
	CountdownSeconds int     // readiness window before play starts and on resume
	CountdownOnStart bool    // false starts play immediately; resume always counts down
}

// DefaultOptions returns the 60 second, 3 second countdown configuration.
func DefaultOptions() Options {
	return Options{
		Duration:         60,
		CountdownSeconds: 3,
		CountdownOnStart: true,
	}
}

// HighScoreStore persists one high score per game identifier.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SaveHighScore(gameID string, score int) error
}

// ScoreRecorder is implemented by stores that also keep a score history.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// TickResult reports what a Tick did.
type TickResult int

const (
	TickIdle      TickResult = iota // not live, nothing happened
	TickCounting                    // countdown in progress
	TickStarted                     // countdown finished this tick; play is live
	TickRunning                     // normal running tick
	TickExpired                     // time ran out this tick; session is over
)

// Snapshot is a read-only view of the session used by HUDs and tests.
type Snapshot struct {
	GameID             string
	State              State
	Score              int
	TimeRemaining      float64
	CountdownRemaining int
	HighScore          int
	NewHighScore       bool
	Resuming           bool
}

// Session is the scoring and timing context for one game attempt.
type Session struct {
	gameID string
	opts   Options
	store  HighScoreStore
	logger *log.Logger

	state              State
	score              int
	timeRemaining      float64
	countdownRemaining int
	highScore          int
	newHighScore       bool

	lastUpdate     time.Duration // reference for elapsed-time computation
	pauseStart     time.Duration
	countdownStart time.Duration
	resuming       bool
}

// New creates an idle session. store may be nil, in which case high scores only
// live in memory.
func New(gameID string, opts Options, store HighScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		gameID: gameID,
		opts:   opts,
		store:  store,
		logger: logger,
	}
	s.Reset()
	return s
}

// Reset returns the session to Idle with a fresh score and clock and reloads the
// persisted high score.
func (s *Session) Reset() {
	s.state = StateIdle
	s.score = 0
	s.timeRemaining = s.opts.Duration
	s.countdownRemaining = 0
	s.newHighScore = false
	s.resuming = false
	s.lastUpdate = 0
	s.pauseStart = 0
	s.countdownStart = 0
	s.loadHighScore()
}

func (s *Session) loadHighScore() {
	if s.store == nil {
		return
	}
	hs, err := s.store.HighScore(s.gameID)
	if err != nil {
		s.logger.Warn("could not load high score", "game", s.gameID, "error", err)
		return
	}
	s.highScore = hs
}

// Start leaves Idle, entering the countdown or running immediately depending on
// the options.
func (s *Session) Start(now time.Duration) error {
	if s.state == StateCountdown {
		return ErrCountdownActive
	}
	if s.state != StateIdle {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.state)
	}
	if s.opts.CountdownOnStart && s.opts.CountdownSeconds > 0 {
		s.beginCountdown(now, false)
		return nil
	}
	s.state = StateRunning
	s.lastUpdate = now
	return nil
}

// Pause freezes a running session.
func (s *Session) Pause(now time.Duration) error {
	if s.state != StateRunning {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, s.state)
	}
	s.state = StatePaused
	s.pauseStart = now
	return nil
}

// Resume leaves Paused through a fresh countdown. The paused span, including the
// countdown itself, is excluded from play time.
func (s *Session) Resume(now time.Duration) error {
	if s.state == StateCountdown {
		return ErrCountdownActive
	}
	if s.state != StatePaused {
		return fmt.Errorf("%w: resume from %s", ErrInvalidTransition, s.state)
	}
	if s.opts.CountdownSeconds <= 0 {
		s.resuming = true
		s.finishCountdown(now)
		return nil
	}
	s.beginCountdown(now, true)
	return nil
}

func (s *Session) beginCountdown(now time.Duration, resuming bool) {
	s.state = StateCountdown
	s.countdownStart = now
	s.countdownRemaining = s.opts.CountdownSeconds
	s.resuming = resuming
}

func (s *Session) finishCountdown(now time.Duration) {
	if s.resuming {
		s.lastUpdate += now - s.pauseStart
	} else {
		s.lastUpdate = now
	}
	s.resuming = false
	s.countdownRemaining = 0
	s.state = StateRunning
}

// Tick advances the session to now. While running it returns the elapsed play time
// in seconds since the previous tick. When time runs out the session moves to Over
// and the returned delta should not be simulated.
func (s *Session) Tick(now time.Duration) (float64, TickResult) {
	switch s.state {
	case StateCountdown:
		elapsed := int(math.Floor((now - s.countdownStart).Seconds()))
		s.countdownRemaining = s.opts.CountdownSeconds - elapsed
		if s.countdownRemaining > 0 {
			return 0, TickCounting
		}
		s.finishCountdown(now)
		return 0, TickStarted

	case StateRunning:
		delta := (now - s.lastUpdate).Seconds()
		if delta < 0 {
			delta = 0
		}
		s.lastUpdate = now
		s.timeRemaining = math.Max(0, s.timeRemaining-delta)
		if s.timeRemaining <= 0 {
			s.End()
			return 0, TickExpired
		}
		return delta, TickRunning
	}
	return 0, TickIdle
}

// End moves the session to Over and persists the high score if it was beaten.
// Ending an idle or already finished session is a no-op.
func (s *Session) End() {
	if s.state == StateOver || s.state == StateIdle {
		return
	}
	s.state = StateOver
	s.countdownRemaining = 0

	if rec, ok := s.store.(ScoreRecorder); ok && s.score > 0 {
		if _, err := rec.SaveScore(s.gameID, s.score); err != nil {
			s.logger.Warn("could not record score", "game", s.gameID, "error", err)
		}
	}

	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	s.newHighScore = true
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.gameID, s.score); err != nil {
		s.logger.Warn("could not save high score", "game", s.gameID, "error", err)
		return
	}
	s.logger.Info("new high score", "game", s.gameID, "score", s.score)
}

// AddScore adds points. Negative values are clamped so the score stays >= 0.
func (s *Session) AddScore(points int) {
	s.score += points
	if s.score < 0 {
		s.score = 0
	}
}

// Penalize applies a miss penalty with a floor of zero.
func (s *Session) Penalize(points int) {
	s.score = physics.ApplyMissPenalty(s.score, points)
}

// GameID returns the game identifier the high score is stored under.
func (s *Session) GameID() string { return s.gameID }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Live reports whether physics should run.
func (s *Session) Live() bool { return s.state == StateRunning }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the play time left in seconds.
func (s *Session) TimeRemaining() float64 { return s.timeRemaining }

// HighScore returns the best score known for this game.
func (s *Session) HighScore() int { return s.highScore }

// Options returns the session's options.
func (s *Session) Options() Options { return s.opts }

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		GameID:             s.gameID,
		State:              s.state,
		Score:              s.score,
		TimeRemaining:      s.timeRemaining,
		CountdownRemaining: s.countdownRemaining,
		HighScore:          s.highScore,
		NewHighScore:       s.newHighScore,
		Resuming:           s.resuming,
	}
}
