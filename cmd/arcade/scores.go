package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/range-arcade/internal/registry"
	"github.com/vovakirdan/range-arcade/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show scores for a game",
	Long: `Display the best score and, with the sqlite store, the top 10 sessions
and play statistics for the specified game.

Examples:
  arcade scores blaster
  arcade scores basketball --store kv
  arcade scores driving --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history and high score for the game (sqlite store)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'arcade list' to see available games", err)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.OpenBackend(flagStore, flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close score store", "error", err)
		}
	}()

	db, hasHistory := store.(*storage.Store)

	if flagClear {
		if !hasHistory {
			return fmt.Errorf("--clear needs the sqlite store")
		}
		if err := db.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()
	fmt.Printf("Best: %d\n", best)

	if !hasHistory {
		return nil
	}

	scores, err := db.TopScores(gameID, 10)
	if err != nil {
		return err
	}
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := db.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Sessions: %d  Average: %.1f  Last played: %s\n",
		stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
