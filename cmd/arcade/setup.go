package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/range-arcade/internal/config"
	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/session"
	"github.com/vovakirdan/range-arcade/internal/storage"
)

// newLogger builds the root logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}

// fileLogger builds the root logger for commands that take over the terminal.
// The returned close function must be called on exit.
func fileLogger() (*log.Logger, func(), error) {
	path, err := storage.ExpandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openStore opens the configured score store. When it cannot be opened the
// arcade keeps scores in memory for this run.
func openStore(logger *log.Logger) (session.HighScoreStore, func()) {
	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		logger.Warn("score store unavailable, keeping scores in memory", "store", flagStore, "error", err)
		return session.NewMemoryStore(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close score store", "error", err)
		}
	}
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// parseDifficulty validates a --difficulty value.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	preset, ok := config.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return preset, nil
}
