package runner

import (
	"errors"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const testFloor = 300.0

// held returns an input state with the given actions pressed.
func held(actions ...core.Action) *core.InputState {
	in := core.NewInputState()
	for _, a := range actions {
		in.Press(a)
	}
	return in
}

// groundedAvatar returns a default avatar standing on the test floor.
func groundedAvatar() *Avatar {
	cfg := config.DefaultRunnerConfig()
	a := NewAvatar(cfg.Player, cfg.Physics)
	a.Y = testFloor - a.H
	a.Grounded = true
	return a
}

// memStore is an in-memory HighScoreStore.
type memStore struct {
	score  int
	ok     bool
	getErr error
	setErr error
	sets   []int
}

func (m *memStore) GetHighScore() (int, bool, error) {
	return m.score, m.ok, m.getErr
}

func (m *memStore) SetHighScore(score int) error {
	m.sets = append(m.sets, score)
	if m.setErr != nil {
		return m.setErr
	}
	m.score, m.ok = score, true
	return nil
}

var errDiskFull = errors.New("disk full")

// recorder is a Renderer that remembers draw requests.
type recorder struct {
	rects []core.RectF
	texts []string
}

func (r *recorder) DrawRect(x, y, w, h float64, _ core.Color) {
	r.rects = append(r.rects, core.NewRectF(x, y, w, h))
}

func (r *recorder) DrawText(text string, _, _ float64, _ Align, _ core.Color, _ int) {
	r.texts = append(r.texts, text)
}

// panicInput blows up on read to simulate a failure inside a tick.
type panicInput struct{}

func (panicInput) IsPressed(core.Action) bool {
	panic("input source exploded")
}

// quietLoop returns a loop with spawning pushed far into the future.
func quietLoop(opts Options) *Loop {
	l := NewLoop(config.DefaultRunnerConfig(), opts)
	l.state.SpawnTimer = 1 << 20
	return l
}
