package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/loop"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
)

var quiet = log.NewWithOptions(io.Discard, log.Options{})

// probe is a game that records the input it receives.
type probe struct {
	inputs           []core.InputEvent
	updates          int
	pauses, cleanups int
}

func (p *probe) ID() string                    { return "probe" }
func (p *probe) Title() string                 { return "Probe" }
func (p *probe) Initialize(registry.Env) error { return nil }
func (p *probe) Start(*session.Session)        {}
func (p *probe) Pause(core.Duration)           { p.pauses++ }
func (p *probe) Unpause(core.Duration)         {}
func (p *probe) Reset()                        {}
func (p *probe) Cleanup()                      { p.cleanups++ }
func (p *probe) Render(dst *core.Screen)       { dst.Set(0, 0, '#') }

func (p *probe) Options() session.Options {
	return session.Options{Duration: 30, CountdownSeconds: 3, CountdownOnStart: false}
}

func (p *probe) Update(core.Frame, *session.Session) { p.updates++ }

func (p *probe) HandleInput(ev core.InputEvent, _ *session.Session) {
	p.inputs = append(p.inputs, ev)
}

func init() {
	registry.Register("probe", func() registry.Game { return &probe{} })
}

const step = time.Second / 60

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (Model, *probe, *core.ManualClock) {
	t.Helper()
	game := &probe{}
	clock := core.NewManualClock(0)
	sess := session.New(game.ID(), game.Options(), session.NewMemoryStore(), quiet)
	d := loop.NewDriver(game, sess, clock, quiet)
	m := NewModel(d, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, quiet)
	m.Init()
	return m, game, clock
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, clock *core.ManualClock, d time.Duration) Model {
	clock.Advance(d)
	return update(m, TickMsg{ID: m.tickID})
}

func TestKeyHold(t *testing.T) {
	h := newKeyHold(DefaultHoldWindow)

	if !h.Press(core.KeyW, 0) {
		t.Fatal("first press should start a hold")
	}
	if h.Press(core.KeyW, 100*time.Millisecond) {
		t.Error("auto-repeat should not start a new hold")
	}
	if got := h.Expire(500 * time.Millisecond); len(got) != 0 {
		t.Errorf("released %v inside the window", got)
	}
	got := h.Expire(700 * time.Millisecond)
	if len(got) != 1 || got[0] != core.KeyW {
		t.Errorf("Expire = %v, want [KeyW]", got)
	}
	if !h.Press(core.KeyW, time.Second) {
		t.Error("press after release should start a new hold")
	}

	h.Press(core.KeyA, time.Second)
	if got := h.ReleaseAll(); len(got) != 2 || got[0] != core.KeyA || got[1] != core.KeyW {
		t.Errorf("ReleaseAll = %v, want [KeyA KeyW]", got)
	}
}

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		kind   core.EventKind
		button int
		ok     bool
	}{
		{"move", tea.MouseMsg{Action: tea.MouseActionMotion}, core.EventPointerMove, 0, true},
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.EventPointerDown, core.ButtonPrimary, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.EventPointerDown, core.ButtonSecondary, true},
		{"bare release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.EventPointerUp, core.ButtonPrimary, true},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.EventNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := pointerEvent(tt.msg, 39, 11, 80, 22, 0)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.kind || ev.Button != tt.button {
				t.Errorf("event = %v/%d, want %v/%d", ev.Kind, ev.Button, tt.kind, tt.button)
			}
			if ev.X != 316 || ev.Y != 184 || ev.ViewW != 640 || ev.ViewH != 352 {
				t.Errorf("position = (%v,%v) in %dx%d", ev.X, ev.Y, ev.ViewW, ev.ViewH)
			}
		})
	}

	if _, ok := pointerEvent(tea.MouseMsg{Action: tea.MouseActionMotion}, 0, 0, 0, 0, 0); ok {
		t.Error("zero-sized game area should drop pointer input")
	}
}

func TestModelSynthesizesKeyUp(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = update(m, runes("w"))
	m = tick(m, clock, step)
	m = update(m, runes("w")) // auto-repeat
	m = tick(m, clock, step)
	if len(game.inputs) != 1 || game.inputs[0].Kind != core.EventKeyDown || game.inputs[0].Code != core.KeyW {
		t.Fatalf("inputs = %+v, want one KeyDown KeyW", game.inputs)
	}

	tick(m, clock, 700*time.Millisecond)
	if len(game.inputs) != 2 || game.inputs[1].Kind != core.EventKeyUp {
		t.Fatalf("inputs = %+v, want KeyUp after the hold window", game.inputs)
	}
}

func TestModelPauseReleasesHeldKeys(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = update(m, runes("w"))
	m = update(m, runes("p"))
	tick(m, clock, step)

	if len(game.inputs) != 2 || game.inputs[1].Kind != core.EventKeyUp {
		t.Errorf("inputs = %+v, want KeyDown then KeyUp", game.inputs)
	}
	if got := m.Driver().Session().State(); got != session.StatePaused {
		t.Errorf("state = %v, want Paused", got)
	}
	if game.pauses != 1 {
		t.Errorf("game paused %d times", game.pauses)
	}
}

func TestModelMouseInGameArea(t *testing.T) {
	m, game, clock := newTestModel(t)

	m = update(m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(m, clock, step)

	if len(game.inputs) != 1 {
		t.Fatalf("inputs = %+v", game.inputs)
	}
	ev := game.inputs[0]
	// Row 12 of the terminal is row 11 of the game area below the HUD.
	if ev.X != 324 || ev.Y != 184 || ev.ViewW != 640 || ev.ViewH != 352 {
		t.Errorf("event = %+v", ev)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m, game, clock := newTestModel(t)
	m = tick(m, clock, step)
	before := game.updates

	clock.Advance(step)
	update(m, TickMsg{ID: m.tickID + 1000})
	if game.updates != before {
		t.Errorf("stale tick advanced the game")
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m, game, _ := newTestModel(t)

	view := m.View()
	for _, want := range []string{"Probe", "Score: 0", "Time: 30.0s", "pause"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = update(m, runes("b"))
	if m.BackToMenu() {
		t.Error("back is disabled outside the arcade menu")
	}

	next, cmd := m.Update(runes("q"))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if game.cleanups != 1 {
		t.Errorf("cleanups = %d, want 1", game.cleanups)
	}
}

func TestHUDText(t *testing.T) {
	if got := TimeText(12.345); got != "Time: 12.3s" {
		t.Errorf("TimeText = %q", got)
	}
	if got := ScoreText(120); got != "Score: 120" {
		t.Errorf("ScoreText = %q", got)
	}

	hud := renderHUD("Probe", session.Snapshot{State: session.StateRunning, Score: 120, TimeRemaining: 9.5, HighScore: 300}, 80)
	for _, want := range []string{"Score: 120", "Time: 9.5s", "Best: 300"} {
		if !strings.Contains(hud, want) {
			t.Errorf("hud missing %q: %q", want, hud)
		}
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		snap session.Snapshot
		want []string
	}{
		{"countdown", session.Snapshot{State: session.StateCountdown, CountdownRemaining: 2, Resuming: true}, []string{"2", "resuming"}},
		{"paused", session.Snapshot{State: session.StatePaused}, []string{"PAUSED"}},
		{"over", session.Snapshot{State: session.StateOver, Score: 300, HighScore: 500}, []string{"TIME UP", "Score: 300", "High Score: 500"}},
		{"new high", session.Snapshot{State: session.StateOver, Score: 500, HighScore: 500, NewHighScore: true}, []string{"NEW HIGH SCORE!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scr := core.NewScreen(80, 24)
			drawOverlay(scr, tt.snap)
			text := scr.String()
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("overlay missing %q", want)
				}
			}
		})
	}

	scr := core.NewScreen(80, 24)
	drawOverlay(scr, session.Snapshot{State: session.StateRunning})
	if strings.TrimSpace(scr.String()) != "" {
		t.Error("running game should have no overlay")
	}
}

func TestArcadeFlow(t *testing.T) {
	a := NewArcadeModel(ArcadeConfig{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Difficulty: config.DifficultyNormal,
		Logger:     quiet,
	})
	send := func(msg tea.Msg) {
		next, _ := a.Update(msg)
		a = next.(ArcadeModel)
	}

	send(tea.KeyMsg{Type: tea.KeyRight})
	send(tea.KeyMsg{Type: tea.KeyEnter})
	if a.current != screenGame || a.game == nil {
		t.Fatalf("selecting a game did not start it")
	}
	if a.cfg.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %q, want hard", a.cfg.Difficulty)
	}

	send(runes("b"))
	if a.current != screenGame {
		t.Fatal("back should be ignored while playing")
	}

	send(runes("p"))
	send(TickMsg{ID: a.game.tickID})
	send(runes("b"))
	if a.current != screenMenu || a.game != nil {
		t.Fatal("back from a paused game should return to the menu")
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if a.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if view := a.View(); !strings.Contains(view, "Best: 0") {
		t.Errorf("scoreboard view missing best score:\n%s", view)
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if a.current != screenMenu {
		t.Error("esc should leave the scoreboard")
	}
}

func TestScoreboardWithoutHistory(t *testing.T) {
	store := session.NewMemoryStore()
	if err := store.SaveHighScore("probe", 250); err != nil {
		t.Fatal(err)
	}

	view := NewScoreboardModel(store, 80, 24).View()
	for _, want := range []string{"Best: 250", "No score history"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
