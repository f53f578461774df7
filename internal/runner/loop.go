package runner

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// HighScoreStore is the persistence collaborator for the high score.
type HighScoreStore interface {
	// GetHighScore returns the stored high score; ok is false when none exists.
	GetHighScore() (score int, ok bool, err error)
	// SetHighScore persists the given high score.
	SetHighScore(score int) error
}

// Options configure a Loop beyond the runner config.
type Options struct {
	Seed   int64
	Store  HighScoreStore // Optional
	Logger *log.Logger    // Optional, discards when nil
}

// TickResult reports what happened during a tick.
type TickResult struct {
	Collided bool
	RunScore int // Score reached by the run that just ended
	Failed   bool
}

// Loop is the per-tick orchestrator. It owns the game state, avatar and spawner.
type Loop struct {
	cfg     config.RunnerConfig
	surface Surface
	state   State
	avatar  *Avatar
	spawner *Spawner
	store   HighScoreStore
	logger  *log.Logger

	scoreText     Text
	highScoreText Text
}

// NewLoop creates a loop at the start of a play session.
func NewLoop(cfg config.RunnerConfig, opts Options) *Loop {
	cfg.Sanitize()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	surface := NewSurface(cfg.Surface)
	l := &Loop{
		cfg:     cfg,
		surface: surface,
		state:   newState(cfg),
		avatar:  NewAvatar(cfg.Player, cfg.Physics),
		spawner: NewSpawner(rand.New(rand.NewSource(opts.Seed)), cfg.Obstacles),
		store:   opts.Store,
		logger:  logger,
		scoreText: Text{
			X: 25, Y: 25, Align: AlignLeft, Color: core.ColorGray, Size: 20,
		},
		highScoreText: Text{
			X: surface.Width - 25, Y: 25, Align: AlignRight, Color: core.ColorGray, Size: 20,
		},
	}

	if cfg.HighScore.RestoreOnStart && l.store != nil {
		score, ok, err := l.store.GetHighScore()
		switch {
		case err != nil:
			logger.Warn("could not read high score", "error", err)
		case ok && score > 0:
			l.state.HighScore = score
		}
	}

	l.refreshTexts()
	return l
}

// Tick advances the simulation by one step. A panic inside the step is logged
// and swallowed so the host keeps scheduling ticks.
func (l *Loop) Tick(in Input) (res TickResult) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("tick failed", "tick", l.state.Ticks, "panic", r)
			res = TickResult{Failed: true}
		}
	}()
	return l.step(in)
}

func (l *Loop) step(in Input) TickResult {
	st := &l.state
	st.Ticks++

	st.SpawnTimer--
	if st.SpawnTimer <= 0 {
		l.spawner.Spawn(st, l.avatar, l.surface)
		st.SpawnTimer = NextSpawnInterval(l.cfg.Spawn.InitialTimer, st.Speed, l.cfg.Spawn.SpeedFactor, l.cfg.Spawn.MinTimer)
	}

	var res TickResult
	avatarBox := l.avatar.Rect()
	live := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if o.OffScreen() {
			continue
		}
		o.Update(st.Speed)
		live = append(live, o)
		if Overlaps(avatarBox, o.Rect()) {
			res = l.softReset()
			break
		}
	}
	if !res.Collided {
		st.Obstacles = live
	}

	l.avatar.Animate(in, st.Gravity, l.surface.Height)

	st.Score++
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
	l.refreshTexts()

	st.Speed += l.cfg.Speed.Increment
	return res
}

// softReset clears the obstacle field and counters after a collision.
// The avatar keeps its position and velocity.
func (l *Loop) softReset() TickResult {
	st := &l.state
	res := TickResult{Collided: true, RunScore: st.Score}

	st.Obstacles = st.Obstacles[:0]
	st.Score = 0
	st.SpawnTimer = l.cfg.Spawn.InitialTimer
	st.Speed = l.cfg.Speed.Initial
	st.Runs++

	if l.store != nil {
		if err := l.store.SetHighScore(st.HighScore); err != nil {
			l.logger.Warn("could not persist high score", "high_score", st.HighScore, "error", err)
		}
	}
	l.logger.Debug("soft reset", "run_score", res.RunScore, "high_score", st.HighScore, "runs", st.Runs)
	return res
}

func (l *Loop) refreshTexts() {
	l.scoreText.Text = fmt.Sprintf("Score: %d", l.state.Score)
	l.highScoreText.Text = fmt.Sprintf("High Score: %d", l.state.HighScore)
}

// Drawables returns everything the render pass draws, back to front.
func (l *Loop) Drawables() []Drawable {
	out := make([]Drawable, 0, len(l.state.Obstacles)+3)
	for i := range l.state.Obstacles {
		out = append(out, &l.state.Obstacles[i])
	}
	return append(out, l.avatar, l.scoreText, l.highScoreText)
}

// Draw runs the render pass.
func (l *Loop) Draw(r Renderer) {
	for _, d := range l.Drawables() {
		d.Draw(r)
	}
}

// State returns a snapshot of the game state.
func (l *Loop) State() State {
	return l.state.clone()
}

// Avatar returns the live avatar.
func (l *Loop) Avatar() *Avatar {
	return l.avatar
}

// Surface returns the playfield size.
func (l *Loop) Surface() Surface {
	return l.surface
}

// Config returns the effective runner config.
func (l *Loop) Config() config.RunnerConfig {
	return l.cfg
}
