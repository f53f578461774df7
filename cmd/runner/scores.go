package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs (or the latest with --recent).

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores --tui
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and stored high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	title := runner.New(runner.GameOptions{}).Title()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(runner.GameID); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(runner.GameID, title, store, width, height)
		return err
	}

	var entries []storage.ScoreEntry
	heading := "High Scores"
	if flagScoresRecent {
		heading = "Recent Runs"
		entries, err = store.RecentScores(runner.GameID, flagScoresLimit)
	} else {
		entries, err = store.TopScores(runner.GameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n\n", heading, title)

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	now := time.Now()
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Run", "When")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, e := range entries {
		runID := e.RunID
		if len(runID) > 8 {
			runID = runID[:8]
		}
		fmt.Printf("  %-4d  %-10s  %-8s  %s\n", i+1, humanize.Comma(int64(e.Score)), runID, humanize.RelTime(e.CreatedAt, now, "ago", "from now"))
	}

	stats, err := store.GetGameStats(runner.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Runs: %s  Avg: %s\n",
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.RunsCount)),
			humanize.CommafWithDigits(stats.AvgScore, 1),
		)
	}
	return nil
}
