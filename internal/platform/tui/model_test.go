package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// fakeGame scores a point per unpaused tick and crashes on demand.
type fakeGame struct {
	resets  int
	steps   int
	score   int
	runs    int
	paused  bool
	crashAt int
	seen    []bool // jump state observed per step
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) InputHold() int {
	return 2
}

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.score = 0
}

func (g *fakeGame) Step(in *core.InputState) core.StepResult {
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	g.seen = append(g.seen, in.IsPressed(core.ActionJump))
	g.score++
	if g.crashAt > 0 && g.score == g.crashAt {
		run := g.score
		g.score = 0
		g.runs++
		return core.StepResult{State: g.State(), Crashed: true, RunScore: run}
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, HighScore: g.score, Runs: g.runs, Paused: g.paused}
}

func (g *fakeGame) SetPaused(p bool) { g.paused = p }

// fakeScores records saved runs.
type fakeScores struct {
	saved []int
	err   error
}

func (s *fakeScores) SaveScore(gameID string, score int) (storage.ScoreEntry, error) {
	if s.err != nil {
		return storage.ScoreEntry{}, s.err
	}
	s.saved = append(s.saved, score)
	return storage.ScoreEntry{GameID: gameID, Score: score, RunID: "run"}, nil
}

func newTestModel(g *fakeGame, opts Options) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickSteps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if g.steps != 1 || m.State().Score != 1 {
		t.Errorf("steps = %d, score = %d", g.steps, m.State().Score)
	}
}

func TestModelJumpIsHeldForLatch(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(t, m, keyRunes(" "))
	for i := 0; i < 4; i++ {
		m = send(t, m, TickMsg(time.Now()))
	}

	want := []bool{true, true, false, false}
	for i, w := range want {
		if g.seen[i] != w {
			t.Errorf("tick %d: jump held = %v, expected %v", i, g.seen[i], w)
		}
	}
}

func TestModelPauseToggle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(t, m, TickMsg(time.Now()))
	m = send(t, m, keyRunes("p"))
	if !g.paused || !m.State().Paused {
		t.Fatal("p should pause the game")
	}

	m = send(t, m, TickMsg(time.Now()))
	if g.steps != 1 {
		t.Errorf("paused game stepped: %d steps", g.steps)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if g.paused {
		t.Fatal("esc should resume the game")
	}
	send(t, m, TickMsg(time.Now()))
	if g.steps != 2 {
		t.Errorf("resumed game should step, got %d steps", g.steps)
	}
}

func TestModelSavesCrashedRun(t *testing.T) {
	g := &fakeGame{crashAt: 3}
	scores := &fakeScores{}
	m := newTestModel(g, Options{Scores: scores})

	for i := 0; i < 7; i++ {
		m = send(t, m, TickMsg(time.Now()))
	}
	if len(scores.saved) != 2 || scores.saved[0] != 3 || scores.saved[1] != 3 {
		t.Errorf("saved runs = %v, expected [3 3]", scores.saved)
	}
	if !strings.Contains(m.View(), "last 3") {
		t.Error("status bar should show the last run")
	}
}

func TestModelSaveFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	g := &fakeGame{crashAt: 1}
	m := newTestModel(g, Options{Scores: &fakeScores{err: errors.New("locked")}, Logger: log.New(&buf)})

	send(t, m, TickMsg(time.Now()))
	if !strings.Contains(buf.String(), "could not save run") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestModelQuitSavesRunInProgress(t *testing.T) {
	g := &fakeGame{}
	scores := &fakeScores{}
	m := newTestModel(g, Options{Scores: scores})

	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg(time.Now()))
	}
	next, cmd := m.Update(keyRunes("q"))
	m = next.(Model)

	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if len(scores.saved) != 1 || scores.saved[0] != 5 {
		t.Errorf("saved runs = %v, expected [5]", scores.saved)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{AllowBack: true})

	m = send(t, m, keyRunes("b"))
	if m.BackToMenu() {
		t.Fatal("b should only go back while paused")
	}

	m = send(t, m, keyRunes("p"))
	m = send(t, m, keyRunes("b"))
	if !m.BackToMenu() {
		t.Error("b while paused should go back to the menu")
	}

	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("ticking should stop after leaving the game")
	}
}

func TestModelResizeKeepsSimulation(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = send(t, m, TickMsg(time.Now()))
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, expected 30", lines)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := newTestModel(g, Options{ScreenshotDir: dir})

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
}
