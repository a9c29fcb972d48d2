package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/range-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and Enter
to play. B returns to the menu once a game is paused or over.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Play
  Tab          - Scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --store kv`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, closeStore := openStore(logger)
	defer closeStore()

	err = tui.RunArcade(tui.ArcadeConfig{
		Runtime:    runtimeConfig(),
		ConfigPath: flagConfig,
		Difficulty: preset,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
