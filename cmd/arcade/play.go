package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/range-arcade/internal/core"
	"github.com/vovakirdan/range-arcade/internal/platform/tui"
	"github.com/vovakirdan/range-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Mouse      - Aim and shoot (blaster), drag and release to throw (basketball)
  W/A/S/D    - Drive (driving); arrow keys work too
  P/Esc      - Pause and resume
  R          - Restart
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Longer sessions, forgiving physics
  normal - Start at 30% difficulty, progresses to max
  hard   - Shorter sessions, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play blaster
  arcade play basketball --difficulty easy
  arcade play driving --difficulty hard
  arcade play blaster --config ./my-blaster.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("%w %q, run 'arcade list' to see available games", registry.ErrUnknownGame, gameID)
	}
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

	cfg := runtimeConfig()
	driver, err := tui.NewPlay(tui.PlayOptions{
		GameID:     gameID,
		Runtime:    cfg,
		ConfigPath: flagConfig,
		Difficulty: preset,
		Store:      store,
		Logger:     logger,
	}, core.NewSystemClock())
	if err != nil {
		return err
	}

	logger.Info("playing", "game", gameID, "difficulty", preset, "store", flagStore)
	if err := tui.Run(driver, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
