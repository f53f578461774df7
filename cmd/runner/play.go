package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play right away",
	Long: `Start a play session with the chosen difficulty.

Controls:
  Space/W/Up   - Jump (hold to charge a higher jump)
  S/Down       - Duck
  P/Esc        - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

A hit clears the field and restarts the score; the session goes on.

Terminals report key presses but not releases, so a press counts as held
for input.hold_ticks ticks (36 by default, enough to bridge the key-repeat
delay). Lower it in the config for shorter hops on quick taps.

Difficulty options:
  easy   - Slower start, gentler speed ramp
  normal - The classic ramp (default)
  hard   - Fast start, steep ramp
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.toml
  runner play --seed 42 --log runner.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := difficulty()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger("runner")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game := newGame(preset, store, logger)
	if _, err := tui.Run(game, runtimeConfig(), modelOptions(store, logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
