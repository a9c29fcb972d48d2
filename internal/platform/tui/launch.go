package tui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/loop"
	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/session"
)

// PlayOptions select a game and how it is configured.
type PlayOptions struct {
	GameID     string
	Runtime    core.RuntimeConfig
	ConfigPath string
	Difficulty config.DifficultyPreset
	// Store persists high scores. A nil store keeps them in memory.
	Store  session.HighScoreStore
	Logger *log.Logger
}

// NewPlay creates and initializes a game and wraps it in a loop driver.
func NewPlay(opts PlayOptions, clock core.Clock) (*loop.Driver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if clock == nil {
		clock = core.NewSystemClock()
	}

	game, err := registry.Create(opts.GameID)
	if err != nil {
		return nil, err
	}

	env := registry.Env{
		Runtime:    opts.Runtime,
		ConfigPath: opts.ConfigPath,
		Difficulty: opts.Difficulty,
		Logger:     logger,
	}
	if err := game.Initialize(env); err != nil {
		return nil, fmt.Errorf("initialize %s: %w", opts.GameID, err)
	}

	store := opts.Store
	if store == nil {
		store = session.NewMemoryStore()
	}
	sess := session.New(game.ID(), game.Options(), store, logger)
	return loop.NewDriver(game, sess, clock, logger), nil
}
