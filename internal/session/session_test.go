package session

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

type failingStore struct{ saves int }

func (f *failingStore) HighScore(string) (int, error) { return 0, errors.New("unavailable") }
func (f *failingStore) SaveHighScore(string, int) error {
	f.saves++
	return errors.New("unavailable")
}

type historyStore struct {
	*MemoryStore
	history []int
}

func (h *historyStore) SaveScore(_ string, score int) (int64, error) {
	h.history = append(h.history, score)
	return int64(len(h.history)), nil
}

func sec(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestFullSessionPersistsHighScore(t *testing.T) {
	store := NewMemoryStore()
	s := New("blaster", DefaultOptions(), store, quietLogger())

	if s.Score() != 0 || s.TimeRemaining() != 60 {
		t.Fatalf("fresh session = score %d time %v", s.Score(), s.TimeRemaining())
	}
	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.State() != StateCountdown {
		t.Fatalf("state after start = %v, want countdown", s.State())
	}

	// Countdown finishes at t=3s.
	for now := 0.0; now < 3; now += 0.5 {
		if _, res := s.Tick(sec(now)); res != TickCounting {
			t.Fatalf("tick at %.1fs = %v, want counting", now, res)
		}
	}
	if _, res := s.Tick(sec(3)); res != TickStarted {
		t.Fatalf("tick at 3s = %v, want started", res)
	}

	scored := false
	var now float64
	for now = 3.1; s.State() == StateRunning; now += 0.1 {
		if !scored && now-3 >= 5 {
			s.AddScore(100)
			scored = true
		}
		s.Tick(sec(now))
		if now > 100 {
			t.Fatal("session never expired")
		}
	}

	if s.State() != StateOver {
		t.Fatalf("state = %v, want over", s.State())
	}
	if s.Score() != 100 {
		t.Errorf("final score = %d, want 100", s.Score())
	}
	if math.Abs(now-63) > 0.25 {
		t.Errorf("expired at %.2fs, want ~63s", now)
	}
	if hs, _ := store.HighScore("blaster"); hs != 100 {
		t.Errorf("persisted high score = %d, want 100", hs)
	}
	if !s.Snapshot().NewHighScore {
		t.Error("expected NewHighScore flag")
	}
}

func TestHighScoreNotLowered(t *testing.T) {
	store := NewMemoryStore()
	_ = store.SaveHighScore("blaster", 500)

	s := New("blaster", Options{Duration: 1}, store, quietLogger())
	if s.HighScore() != 500 {
		t.Fatalf("loaded high score = %d, want 500", s.HighScore())
	}
	_ = s.Start(0)
	s.AddScore(200)
	s.Tick(sec(2))

	if s.State() != StateOver {
		t.Fatalf("state = %v, want over", s.State())
	}
	if hs, _ := store.HighScore("blaster"); hs != 500 {
		t.Errorf("high score = %d, want 500", hs)
	}
	if s.Snapshot().NewHighScore {
		t.Error("NewHighScore set for a lower score")
	}
}

func TestPausePreservesTimeRemaining(t *testing.T) {
	s := New("blaster", DefaultOptions(), nil, quietLogger())
	_ = s.Start(0)
	s.Tick(sec(3))
	s.Tick(sec(10))

	before := s.TimeRemaining()
	if err := s.Pause(sec(10)); err != nil {
		t.Fatalf("Pause: %v", err)
	}

	// Ticks while paused do not consume time.
	for now := 11.0; now < 40; now++ {
		if _, res := s.Tick(sec(now)); res != TickIdle {
			t.Fatalf("paused tick = %v, want idle", res)
		}
	}
	if err := s.Resume(sec(40)); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if s.State() != StateCountdown {
		t.Fatalf("state after resume = %v, want countdown", s.State())
	}
	s.Tick(sec(41))
	if got := s.Snapshot().CountdownRemaining; got != 2 {
		t.Errorf("countdown remaining = %d, want 2", got)
	}
	if _, res := s.Tick(sec(43)); res != TickStarted {
		t.Fatalf("tick at 43s = %v, want started", res)
	}
	dt, res := s.Tick(sec(43))
	if res != TickRunning || dt != 0 {
		t.Fatalf("first tick after resume = (%v, %v), want (0, running)", dt, res)
	}
	if after := s.TimeRemaining(); math.Abs(after-before) > 1e-9 {
		t.Errorf("time remaining %v -> %v across pause", before, after)
	}

	dt, _ = s.Tick(sec(44))
	if math.Abs(dt-1) > 1e-9 {
		t.Errorf("dt = %v, want 1", dt)
	}
}

func TestCountdownGuard(t *testing.T) {
	s := New("blaster", DefaultOptions(), nil, quietLogger())
	_ = s.Start(0)

	if err := s.Start(sec(1)); !errors.Is(err, ErrCountdownActive) {
		t.Errorf("second Start = %v, want ErrCountdownActive", err)
	}
	if err := s.Resume(sec(1)); !errors.Is(err, ErrCountdownActive) {
		t.Errorf("Resume during countdown = %v, want ErrCountdownActive", err)
	}
	if err := s.Pause(sec(1)); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Pause during countdown = %v, want ErrInvalidTransition", err)
	}

	// The running countdown is not restarted by the rejected calls.
	if _, res := s.Tick(sec(3)); res != TickStarted {
		t.Errorf("tick at 3s = %v, want started", res)
	}
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Session) error
	}{
		{"pause idle", func(s *Session) error { return s.Pause(0) }},
		{"resume idle", func(s *Session) error { return s.Resume(0) }},
		{"resume running", func(s *Session) error {
			_ = s.Start(0)
			return s.Resume(0)
		}},
		{"start running", func(s *Session) error {
			_ = s.Start(0)
			return s.Start(0)
		}},
		{"pause over", func(s *Session) error {
			_ = s.Start(0)
			s.End()
			return s.Pause(0)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("driving", Options{Duration: 10}, nil, quietLogger())
			if err := tt.run(s); !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("err = %v, want ErrInvalidTransition", err)
			}
		})
	}
}

func TestStartWithoutCountdown(t *testing.T) {
	s := New("driving", Options{Duration: 10, CountdownSeconds: 3}, nil, quietLogger())
	_ = s.Start(sec(5))
	if s.State() != StateRunning {
		t.Fatalf("state = %v, want running", s.State())
	}
	dt, res := s.Tick(sec(6))
	if res != TickRunning || math.Abs(dt-1) > 1e-9 {
		t.Errorf("tick = (%v, %v), want (1, running)", dt, res)
	}

	// Resume still counts down.
	_ = s.Pause(sec(6))
	_ = s.Resume(sec(7))
	if s.State() != StateCountdown {
		t.Errorf("state after resume = %v, want countdown", s.State())
	}
}

func TestTimeRemainingMonotonic(t *testing.T) {
	s := New("blaster", Options{Duration: 5}, nil, quietLogger())
	_ = s.Start(0)

	prev := s.TimeRemaining()
	steps := []float64{0.1, 0.1, 0.5, 0.4, 1.2, 0.05, 3}
	now := 0.0
	for _, step := range steps {
		now += step
		s.Tick(sec(now))
		if s.TimeRemaining() > prev {
			t.Fatalf("time remaining increased %v -> %v", prev, s.TimeRemaining())
		}
		if s.TimeRemaining() < 0 {
			t.Fatalf("time remaining negative: %v", s.TimeRemaining())
		}
		prev = s.TimeRemaining()
	}
	if s.State() != StateOver {
		t.Errorf("state = %v, want over", s.State())
	}

	// A clock that goes backwards never adds time.
	r := New("blaster", Options{Duration: 5}, nil, quietLogger())
	_ = r.Start(sec(2))
	r.Tick(sec(1))
	if r.TimeRemaining() != 5 {
		t.Errorf("time remaining = %v, want 5", r.TimeRemaining())
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s := New("blaster", Options{Duration: 5}, nil, quietLogger())
	s.AddScore(15)
	s.Penalize(10)
	s.Penalize(10)
	if s.Score() != 0 {
		t.Errorf("score = %d, want 0", s.Score())
	}
}

func TestStoreFailuresAreNonFatal(t *testing.T) {
	store := &failingStore{}
	s := New("basketball", Options{Duration: 1}, store, quietLogger())
	_ = s.Start(0)
	s.AddScore(200)
	s.Tick(sec(1))

	if s.State() != StateOver {
		t.Fatalf("state = %v, want over", s.State())
	}
	if store.saves != 1 {
		t.Errorf("save attempts = %d, want 1", store.saves)
	}
	if s.HighScore() != 200 {
		t.Errorf("in-memory high score = %d, want 200", s.HighScore())
	}
}

func TestEndRecordsHistory(t *testing.T) {
	store := &historyStore{MemoryStore: NewMemoryStore()}
	s := New("basketball", Options{Duration: 1}, store, quietLogger())
	_ = s.Start(0)
	s.AddScore(400)
	s.End()
	s.End()

	if len(store.history) != 1 || store.history[0] != 400 {
		t.Errorf("history = %v, want [400]", store.history)
	}
}

func TestReset(t *testing.T) {
	store := NewMemoryStore()
	s := New("blaster", DefaultOptions(), store, quietLogger())
	_ = s.Start(0)
	s.Tick(sec(3))
	s.AddScore(300)
	s.End()

	s.Reset()
	snap := s.Snapshot()
	if snap.State != StateIdle || snap.Score != 0 || snap.TimeRemaining != 60 {
		t.Errorf("after reset = %+v", snap)
	}
	if snap.HighScore != 300 {
		t.Errorf("high score after reset = %d, want 300", snap.HighScore)
	}
	if err := s.Start(sec(100)); err != nil {
		t.Errorf("Start after reset: %v", err)
	}
}
