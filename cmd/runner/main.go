// runner is an endless runner for the terminal: jump over ground obstacles,
// duck under floating ones, and chase the high score while the game speeds up.
//
// Usage:
//
//	runner                   - Start menu to pick a difficulty
//	runner play              - Play right away
//	runner scores            - Show the run history
//	runner serve             - Start SSH server (and optional HTTP leaderboard)
//	runner simulate          - Run the game headless with an autopilot
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Endless Runner - jump and duck your way to a high score",
	Long: `Endless Runner is a terminal game. Obstacles stream in from the right;
jump over the ones on the ground and duck under the floating ones. A hit
clears the field and restarts the score, the session high score stays.

Without a subcommand the start menu opens.

Available commands:
  play      - Play right away
  menu      - Start menu (the default)
  scores    - View the run history
  serve     - Start SSH server for remote play
  simulate  - Run headless with an autopilot
  config    - Print the effective configuration

Examples:
  runner
  runner play --difficulty hard
  runner serve --ssh :2222 --http :8080
  runner simulate --ticks 100000 --seed 42`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (discarded when empty)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
