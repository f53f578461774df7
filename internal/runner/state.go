package runner

import (
	"slices"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Surface is the playfield size in simulation units. The floor is at y == Height.
type Surface struct {
	Width  float64
	Height float64
}

// NewSurface builds a surface from config, clamping non-positive sizes to 1.
func NewSurface(cfg config.SurfaceConfig) Surface {
	s := Surface{Width: cfg.Width, Height: cfg.Height}
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	return s
}

// State is the mutable aggregate the loop owns.
type State struct {
	Score      int
	HighScore  int
	Obstacles  []Obstacle // Spawn order
	SpawnTimer int        // Ticks until the next spawn
	Speed      float64
	Gravity    float64

	Runs  int    // Soft resets so far
	Ticks uint64 // Ticks simulated so far
}

// newState returns the state at the start of a session.
func newState(cfg config.RunnerConfig) State {
	return State{
		Obstacles:  make([]Obstacle, 0, 8),
		SpawnTimer: cfg.Spawn.InitialTimer,
		Speed:      cfg.Speed.Initial,
		Gravity:    cfg.Physics.Gravity,
	}
}

// clone returns a copy that does not share the obstacle slice.
func (s State) clone() State {
	s.Obstacles = slices.Clone(s.Obstacles)
	return s
}
