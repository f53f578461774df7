package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// difficulty validates the --difficulty flag.
func difficulty() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return preset, nil
}

// openLogger returns a logger writing to --log, or a discarding one. The alt
// screen owns stdout while a game runs, so play logs never go there.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newGame builds a runner game bound to the store's high score. store may be nil.
func newGame(preset config.DifficultyPreset, store *storage.Store, logger *log.Logger) *runner.Game {
	opts := runner.GameOptions{
		ConfigPath: flagConfig,
		Preset:     preset,
		Logger:     logger,
	}
	if store != nil {
		opts.Store = store.HighScores(runner.GameID)
	}
	return runner.New(opts)
}

// modelOptions wires the store into the terminal host. store may be nil.
func modelOptions(store *storage.Store, logger *log.Logger) tui.Options {
	opts := tui.Options{Logger: logger}
	if store != nil {
		opts.Scores = store
	}
	return opts
}
