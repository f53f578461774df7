package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Input is the read-only view of the logical input state.
type Input interface {
	IsPressed(a core.Action) bool
}

// Avatar is the player-controlled box.
type Avatar struct {
	X, Y float64
	W, H float64
	DY   float64 // Vertical velocity, negative is up

	JumpForce      float64
	OriginalHeight float64
	Grounded       bool
	JumpTimer      int // Charge counter, 0 when jump is released

	Color core.Color

	chargeTicks   int
	chargeDivisor float64
}

// NewAvatar creates the avatar described by the player and physics config.
func NewAvatar(p config.PlayerConfig, phys config.PhysicsConfig) *Avatar {
	h := p.Height
	if h < 1 {
		h = 1
	}
	w := p.Width
	if w < 1 {
		w = 1
	}
	divisor := phys.ChargeDivisor
	if divisor == 0 {
		divisor = 50
	}
	charge := phys.ChargeTicks
	if charge <= 0 {
		charge = 15
	}
	return &Avatar{
		X:              p.X,
		Y:              p.Y,
		W:              w,
		H:              h,
		JumpForce:      phys.JumpForce,
		OriginalHeight: h,
		Color:          core.ParseColor(p.Color),
		chargeTicks:    charge,
		chargeDivisor:  divisor,
	}
}

// Animate advances the avatar by one tick. floor is the y of the ground line.
func (a *Avatar) Animate(in Input, gravity, floor float64) {
	if in.IsPressed(core.ActionJump) {
		a.jump()
	} else {
		a.JumpTimer = 0
	}

	if in.IsPressed(core.ActionDuck) {
		a.H = a.OriginalHeight / 2
	} else {
		a.H = a.OriginalHeight
	}

	// Velocity from the previous tick moves the avatar before gravity updates it.
	a.Y += a.DY

	if a.Y+a.H < floor {
		a.DY += gravity
		a.Grounded = false
	} else {
		a.DY = 0
		a.Grounded = true
		a.Y = floor - a.H
	}
}

// jump starts a jump from the ground or keeps charging one in progress.
func (a *Avatar) jump() {
	switch {
	case a.Grounded && a.JumpTimer == 0:
		a.JumpTimer = 1
		a.DY = -a.JumpForce
	case a.JumpTimer > 0 && a.JumpTimer < a.chargeTicks:
		a.JumpTimer++
		a.DY = -a.JumpForce - float64(a.JumpTimer)/a.chargeDivisor
	}
}

// Rect returns the avatar's collision box.
func (a *Avatar) Rect() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

// Draw implements Drawable.
func (a *Avatar) Draw(r Renderer) {
	r.DrawRect(a.X, a.Y, a.W, a.H, a.Color)
}
