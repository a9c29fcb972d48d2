// arcade is a terminal arcade of small 3D range games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible target fields
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--store <kind>       - Score store: sqlite or kv
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file used while a game owns the terminal
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/range-arcade/internal/games/basketball"
	_ "github.com/vovakirdan/range-arcade/internal/games/blaster"
	_ "github.com/vovakirdan/range-arcade/internal/games/driving"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagStore    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Range Arcade - 3D range games in your terminal",
	Long: `Range Arcade is a terminal arcade with three timed range games:
a shooting gallery, a basketball free-throw range and a test drive.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View scores

Examples:
  arcade list
  arcade play blaster
  arcade menu --store kv
  arcade serve --ssh :2222
  arcade scores basketball`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database (sqlite store)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "sqlite", "Score store: sqlite or kv")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file used while playing")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
