package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Autopilot drives the input for headless runs: it jumps ground obstacles
// and ducks floating ones once they come within reach.
type Autopilot struct {
	// JumpLead is the reaction margin in ticks of travel on top of the ticks
	// the avatar needs to rise over the obstacle.
	JumpLead float64
	// DuckLead is the reaction distance in ticks of travel for floating obstacles.
	DuckLead float64
}

// DefaultAutopilot returns an autopilot tuned for the default config.
func DefaultAutopilot() Autopilot {
	return Autopilot{JumpLead: 2, DuckLead: 8}
}

// Decide updates in for the coming tick.
func (p Autopilot) Decide(l *Loop, in *core.InputState) {
	in.Release(core.ActionJump)
	in.Release(core.ActionDuck)

	a := l.Avatar()
	next, ok := nextObstacle(l.state.Obstacles, a)
	if !ok {
		return
	}

	speed := l.state.Speed
	if speed <= 0 {
		return
	}
	lead := (next.X - (a.X + a.W)) / speed

	switch next.Kind {
	case Floating:
		if lead <= p.DuckLead {
			in.Press(core.ActionDuck)
		}
	default:
		charging := !a.Grounded && a.JumpTimer > 0 && a.JumpTimer < a.chargeTicks
		rise := 0.0
		if a.JumpForce > 0 {
			rise = next.H / a.JumpForce
		}
		if charging || (a.Grounded && lead <= rise+p.JumpLead) {
			in.Press(core.ActionJump)
		}
	}
}

// nextObstacle returns the closest obstacle the avatar has not yet cleared.
func nextObstacle(obstacles []Obstacle, a *Avatar) (Obstacle, bool) {
	var best Obstacle
	found := false
	for _, o := range obstacles {
		if o.X+o.W <= a.X {
			continue
		}
		if !found || o.X < best.X {
			best = o
			found = true
		}
	}
	return best, found
}
