package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimTicks int
	flagSimSave  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless with an autopilot",
	Long: `Run the simulation without a terminal UI. An autopilot jumps and ducks;
every collision ends a run. A summary is printed at the end.

The same --seed always produces the same runs.

Examples:
  runner simulate --ticks 100000 --seed 42
  runner simulate --difficulty hard --save`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Number of ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the scores database")
}

// simSummary collects what a headless session produced.
type simSummary struct {
	Ticks    int
	Runs     []int // Scores of finished runs
	Failures int
	Final    runner.State
}

func (s simSummary) best() int {
	best := 0
	for _, score := range s.Runs {
		best = max(best, score)
	}
	return best
}

// simulate drives a loop with the autopilot for the given number of ticks.
func simulate(loop *runner.Loop, pilot runner.Autopilot, ticks int) simSummary {
	in := core.NewInputState()
	var sum simSummary
	for i := 0; i < ticks; i++ {
		pilot.Decide(loop, in)
		res := loop.Tick(in)
		switch {
		case res.Failed:
			sum.Failures++
		case res.Collided:
			sum.Runs = append(sum.Runs, res.RunScore)
		}
		in.Advance()
		sum.Ticks++
	}
	sum.Final = loop.State()
	return sum
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}
	preset, err := difficulty()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("runner-sim")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store *storage.Store
	opts := runner.Options{Seed: seed, Logger: logger}
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		defer store.Close()
		opts.Store = store.HighScores(runner.GameID)
	}

	start := time.Now()
	sum := simulate(runner.NewLoop(cfg, opts), runner.DefaultAutopilot(), flagSimTicks)
	elapsed := time.Since(start)

	logger.Info("simulation finished", "seed", seed, "ticks", sum.Ticks, "runs", len(sum.Runs), "elapsed", elapsed)

	if store != nil {
		for _, score := range sum.Runs {
			if _, err := store.SaveScore(runner.GameID, score); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Simulated %s ticks in %s (seed %d)\n", humanize.Comma(int64(sum.Ticks)), elapsed.Round(time.Millisecond), seed)
	fmt.Printf("  Finished runs:  %s\n", humanize.Comma(int64(len(sum.Runs))))
	fmt.Printf("  Best run:       %s\n", humanize.Comma(int64(sum.best())))
	fmt.Printf("  Current run:    %s\n", humanize.Comma(int64(sum.Final.Score)))
	fmt.Printf("  High score:     %s\n", humanize.Comma(int64(sum.Final.HighScore)))
	fmt.Printf("  Final speed:    %s\n", humanize.FtoaWithDigits(sum.Final.Speed, 2))
	if sum.Failures > 0 {
		fmt.Printf("  Failed ticks:   %d\n", sum.Failures)
	}
	if store != nil {
		fmt.Printf("  Saved %d runs to %s\n", len(sum.Runs), flagDBPath)
	}
	return nil
}
