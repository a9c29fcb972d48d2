// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/session"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Env is what a game receives when it is initialized.
type Env struct {
	Runtime    core.RuntimeConfig
	ConfigPath string // empty uses the config search path
	Difficulty config.DifficultyPreset
	Logger     *log.Logger
}

// Game is the capability interface every arcade game implements.
// Games hold pure simulation state and never touch the terminal; the loop
// driver owns the session and calls into the game once per tick.
type Game interface {
	// ID returns a unique identifier ("blaster", "basketball"). It is also the
	// key the high score is stored under.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Initialize loads configuration and assets. A failure of one optional
	// feature is logged and leaves that feature absent; only a failure that
	// makes the game unplayable is returned.
	Initialize(env Env) error

	// Options returns the session settings the game wants. Valid after Initialize.
	Options() session.Options

	// Start spawns the initial entities. Called when play begins.
	Start(s *session.Session)

	// Update advances the simulation by one frame. Only called while Running.
	Update(f core.Frame, s *session.Session)

	// HandleInput reacts to a pointer or key event. Only called while Running.
	HandleInput(ev core.InputEvent, s *session.Session)

	// Pause and Unpause bracket a paused span.
	Pause(now core.Duration)
	Unpause(now core.Duration)

	// Reset returns entities to the initial layout for a new attempt.
	Reset()

	// Cleanup releases all entities. The game is not used afterwards.
	Cleanup()

	// Render draws the current state into the pre-cleared screen.
	Render(dst *core.Screen)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
