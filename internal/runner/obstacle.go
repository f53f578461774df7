package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ObstacleKind tells ground obstacles from floating ones.
type ObstacleKind int

const (
	Ground   ObstacleKind = iota // Sits on the floor, jump over it
	Floating                     // Hangs above the floor, duck under it
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	if k == Floating {
		return "floating"
	}
	return "ground"
}

// Obstacle is a passive box moving left at the game speed.
type Obstacle struct {
	X, Y  float64
	W, H  float64
	DX    float64 // Always -speed
	Kind  ObstacleKind
	Color core.Color
}

// Update moves the obstacle one tick at the given speed.
func (o *Obstacle) Update(speed float64) {
	o.DX = -speed
	o.X += o.DX
}

// OffScreen reports whether the obstacle has fully left the left edge.
func (o *Obstacle) OffScreen() bool {
	return o.X+o.W < 0
}

// Rect returns the obstacle's collision box.
func (o *Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Draw implements Drawable.
func (o *Obstacle) Draw(r Renderer) {
	r.DrawRect(o.X, o.Y, o.W, o.H, o.Color)
}

// Spawner creates obstacles from a seeded random source.
type Spawner struct {
	rng       *rand.Rand
	minSize   int
	maxSize   int
	clearance float64
	color     core.Color
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.ObstacleConfig) *Spawner {
	minSize := core.Max(cfg.MinSize, 1)
	return &Spawner{
		rng:       rng,
		minSize:   minSize,
		maxSize:   core.Max(cfg.MaxSize, minSize),
		clearance: cfg.FloatClearance,
		color:     core.ParseColor(cfg.Color),
	}
}

// Spawn creates an obstacle just past the right edge and appends it to the state.
func (s *Spawner) Spawn(st *State, avatar *Avatar, surface Surface) Obstacle {
	size := float64(core.Max(randomIntInRange(s.rng, s.minSize, s.maxSize), 1))
	kind := ObstacleKind(randomIntInRange(s.rng, 0, 1))

	o := Obstacle{
		X:     surface.Width + size,
		Y:     surface.Height - size,
		W:     size,
		H:     size,
		DX:    -st.Speed,
		Kind:  kind,
		Color: s.color,
	}
	if kind == Floating {
		o.Y -= avatar.OriginalHeight - s.clearance
	}

	st.Obstacles = append(st.Obstacles, o)
	return o
}

// randomIntInRange draws from [min, max] by rounding a uniform real.
func randomIntInRange(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return int(math.Round(rng.Float64()*float64(max-min) + float64(min)))
}

// NextSpawnInterval returns the ticks until the next spawn at the given speed.
// The timer shortens by factor ticks per unit of speed down to minTimer.
// Fractional intervals round up: a real-valued countdown reaches zero on that tick.
func NextSpawnInterval(initial int, speed, factor float64, minTimer int) int {
	next := int(math.Ceil(float64(initial) - speed*factor - 1e-9))
	if next < minTimer {
		return minTimer
	}
	return next
}
