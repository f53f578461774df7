// Package runner implements an endless runner. The avatar jumps or ducks to
// avoid a stream of obstacles while the score climbs and the game speeds up.
// A collision clears the field and restarts the score without ending the session.
package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// GameID identifies the runner in score storage.
const GameID = "runner"

// GameOptions configure a Game.
type GameOptions struct {
	ConfigPath string                  // Custom config file, empty for the search path
	Preset     config.DifficultyPreset // Empty keeps the config as loaded
	Store      HighScoreStore          // Optional high score persistence
	Logger     *log.Logger             // Optional, discards when nil
}

// Game adapts the Loop to the terminal platform: config loading, pausing and
// drawing onto a screen buffer.
type Game struct {
	opts    GameOptions
	loop    *Loop
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a runner game. Call Reset before stepping it.
func New(opts GameOptions) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// Reset starts a new play session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(g.opts.ConfigPath)
	if err != nil {
		g.opts.Logger.Warn("using default config", "error", err)
		cfg = config.DefaultRunnerConfig()
	}
	if g.opts.Preset != "" {
		config.ApplyRunnerPreset(&cfg, g.opts.Preset)
	}

	g.loop = NewLoop(cfg, Options{
		Seed:   runtime.Seed,
		Store:  g.opts.Store,
		Logger: g.opts.Logger,
	})
	g.paused = false
}

// Step advances the game by one tick unless paused.
func (g *Game) Step(in *core.InputState) core.StepResult {
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.loop.Tick(in)
	return core.StepResult{
		State:    g.State(),
		Crashed:  res.Collided,
		RunScore: res.RunScore,
	}
}

// SetPaused stops or resumes ticking.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// InputHold returns how many ticks a terminal key press counts as held.
func (g *Game) InputHold() int {
	return g.loop.Config().Input.HoldTicks
}

// Loop exposes the simulation.
func (g *Game) Loop() *Loop {
	return g.loop
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	r := NewScreenRenderer(dst, g.loop.Surface())
	r.DrawGround(core.ColorGray)
	g.loop.Draw(r)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.loop.State()
	return core.GameState{
		Score:     st.Score,
		HighScore: st.HighScore,
		Speed:     st.Speed,
		Runs:      st.Runs,
		Paused:    g.paused,
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// String summarises the session for logs.
func (g *Game) String() string {
	st := g.State()
	return fmt.Sprintf("%s score=%d high=%d runs=%d speed=%.3f", g.ID(), st.Score, st.HighScore, st.Runs, st.Speed)
}
