package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Game is what the terminal host drives. Games contain pure logic with no
// Bubble Tea dependency; the host handles input mapping, timing and display.
type Game interface {
	// ID returns the identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new play session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in *core.InputState) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// SetPaused stops or resumes the simulation.
	SetPaused(paused bool)

	// InputHold returns how many ticks a key press counts as held.
	InputHold() int
}

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (storage.ScoreEntry, error)
}

// Options configure a game Model.
type Options struct {
	Scores        ScoreSaver  // Optional run history
	Logger        *log.Logger // Optional, discards when nil
	ScreenshotDir string      // Defaults to ~/.arcade/screenshots
	AllowBack     bool        // "b" while paused returns to the menu
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	scores   ScoreSaver
	logger   *log.Logger
	shotDir  string
	config   core.RuntimeConfig
	input    *core.InputState
	keys     *KeyMapper
	state    core.GameState
	lastRun  int // Score of the last finished run
	canBack  bool
	back     bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		scores:  opts.Scores,
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		config:  cfg,
		input:   core.NewInputState(),
		keys:    NewKeyMapper(),
		canBack: opts.AllowBack,
	}
}

// playfieldHeight leaves the last terminal row for the status bar.
func playfieldHeight(screenH int) int {
	return core.Max(screenH-1, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.canBack && m.state.Paused {
			m.endRun()
			m.back = true
			return m, tea.Quit
		}
	}

	action, isQuit := m.keys.MapKeyToInput(msg, m.input, m.game.InputHold())
	if isQuit {
		m.endRun()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionPause {
		m.game.SetPaused(!m.state.Paused)
		m.state = m.game.State()
		m.input.Clear()
	}

	return m, nil
}

// handleResize only resizes the screen; the simulation keeps its own units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.state = result.State

	if result.Crashed {
		m.lastRun = result.RunScore
		m.saveRun(result.RunScore)
	}

	m.input.Advance()
	return m, tickCmd(m.config.TickRate)
}

// endRun records the run in progress when the player leaves.
func (m *Model) endRun() {
	st := m.game.State()
	if st.Score > 0 {
		m.lastRun = st.Score
		m.saveRun(st.Score)
	}
}

// saveRun records a finished run. Failures are logged; the game goes on.
func (m *Model) saveRun(score int) {
	if m.scores == nil || score <= 0 {
		return
	}
	entry, err := m.scores.SaveScore(m.game.ID(), score)
	if err != nil {
		m.logger.Warn("could not save run", "score", score, "error", err)
		return
	}
	m.logger.Info("run saved", "run_id", entry.RunID, "score", score)
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not resolve screenshot directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + renderStatusBar(m.state, m.lastRun, m.config.ScreenW)
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Run starts the Bubble Tea program with the given game.
// backToMenu reports whether the player left for the menu rather than quitting.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
