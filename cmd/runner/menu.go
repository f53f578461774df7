package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu to pick a difficulty",
	Long: `Start the interactive menu.

Use arrow keys or j/k to navigate, Enter to play, Tab for the run history.
Pause a game and press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Run history
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("runner")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var (
		scores tui.HighScoreReader
		source tui.ScoreSource
	)
	if store != nil {
		scores, source = store, store
	}

	cfg := runtimeConfig()
	title := runner.New(runner.GameOptions{}).Title()

	for {
		result, err := tui.RunMenu(runner.GameID, title, scores, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(runner.GameID, title, source, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !goBack {
				return nil
			}

		default:
			preset := result.Preset
			if flagDifficulty != "" {
				if preset, err = difficulty(); err != nil {
					return err
				}
			}

			opts := modelOptions(store, logger)
			opts.AllowBack = true

			back, err := tui.Run(newGame(preset, store, logger), cfg, opts)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !back {
				return nil
			}
		}
	}
}
