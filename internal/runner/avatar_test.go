package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestAvatarJumpFromGround(t *testing.T) {
	a := groundedAvatar()
	startY := a.Y

	// Zero gravity isolates the impulse set by the jump control.
	a.Animate(held(core.ActionJump), 0, testFloor)

	if a.DY != -a.JumpForce {
		t.Errorf("DY = %v, expected %v", a.DY, -a.JumpForce)
	}
	if a.JumpTimer != 1 {
		t.Errorf("JumpTimer = %d, expected 1", a.JumpTimer)
	}
	if a.Y != startY-a.JumpForce {
		t.Errorf("Y = %v, expected %v", a.Y, startY-a.JumpForce)
	}
	if a.Grounded {
		t.Error("avatar should be airborne after jumping")
	}
}

func TestAvatarJumpWithGravity(t *testing.T) {
	a := groundedAvatar()
	startY := a.Y

	a.Animate(held(core.ActionJump), 1, testFloor)

	// The impulse moves the avatar first, then gravity bends the velocity.
	if a.Y != startY-9 {
		t.Errorf("Y = %v, expected %v", a.Y, startY-9)
	}
	if a.DY != -8 {
		t.Errorf("DY = %v, expected -8", a.DY)
	}
}

func TestAvatarJumpCharge(t *testing.T) {
	a := groundedAvatar()
	in := held(core.ActionJump)

	a.Animate(in, 0, testFloor)
	for tick := 2; tick <= 15; tick++ {
		a.Animate(in, 0, testFloor)
		if a.JumpTimer != tick {
			t.Fatalf("tick %d: JumpTimer = %d", tick, a.JumpTimer)
		}
		want := -a.JumpForce - float64(tick)/50
		if a.DY != want {
			t.Fatalf("tick %d: DY = %v, expected %v", tick, a.DY, want)
		}
	}

	capped := a.DY
	for tick := 16; tick <= 25; tick++ {
		a.Animate(in, 0, testFloor)
		if a.JumpTimer != 15 {
			t.Fatalf("tick %d: JumpTimer = %d, expected to stay at 15", tick, a.JumpTimer)
		}
		if a.DY != capped {
			t.Fatalf("tick %d: DY = %v, charge should stop at %v", tick, a.DY, capped)
		}
	}
}

func TestAvatarReleaseKeepsVelocity(t *testing.T) {
	a := groundedAvatar()
	a.Animate(held(core.ActionJump), 1, testFloor)
	before := a.DY

	a.Animate(held(), 1, testFloor)

	if a.JumpTimer != 0 {
		t.Errorf("JumpTimer = %d, release should reset it", a.JumpTimer)
	}
	if a.DY != before+1 {
		t.Errorf("DY = %v, expected gravity only (%v)", a.DY, before+1)
	}
}

func TestAvatarNoAirJump(t *testing.T) {
	a := groundedAvatar()
	a.Animate(held(core.ActionJump), 1, testFloor)
	a.Animate(held(), 1, testFloor)

	dy := a.DY
	a.Animate(held(core.ActionJump), 1, testFloor)
	if a.JumpTimer != 0 {
		t.Errorf("JumpTimer = %d, a fresh press in the air must not start a jump", a.JumpTimer)
	}
	if a.DY != dy+1 {
		t.Errorf("DY = %v, expected %v", a.DY, dy+1)
	}
}

func TestAvatarDuck(t *testing.T) {
	a := groundedAvatar()

	a.Animate(held(core.ActionDuck), 1, testFloor)
	if a.H != a.OriginalHeight/2 {
		t.Errorf("H = %v while ducking, expected %v", a.H, a.OriginalHeight/2)
	}

	// The shorter box drops onto the floor under gravity.
	for i := 0; i < 20; i++ {
		a.Animate(held(core.ActionDuck), 1, testFloor)
	}
	if !a.Grounded || a.Y != testFloor-a.H {
		t.Errorf("ducked avatar should rest on the floor, Y = %v grounded = %v", a.Y, a.Grounded)
	}

	a.Animate(held(), 1, testFloor)
	if a.H != a.OriginalHeight {
		t.Errorf("H = %v after release, expected %v", a.H, a.OriginalHeight)
	}
	if a.Y+a.H > testFloor {
		t.Errorf("avatar sank below the floor: Y+H = %v", a.Y+a.H)
	}
}

func TestAvatarFallsToFloor(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	a := NewAvatar(cfg.Player, cfg.Physics)

	for i := 0; i < 100 && !a.Grounded; i++ {
		a.Animate(held(), 1, testFloor)
	}
	if !a.Grounded {
		t.Fatal("avatar should land within 100 ticks")
	}
	if a.Y != testFloor-a.H || a.DY != 0 {
		t.Errorf("landed avatar at Y=%v DY=%v, expected Y=%v DY=0", a.Y, a.DY, testFloor-a.H)
	}
}

func TestAvatarNeverBelowFloor(t *testing.T) {
	a := groundedAvatar()
	rng := rand.New(rand.NewSource(7))
	in := core.NewInputState()

	for tick := 0; tick < 2000; tick++ {
		if rng.Intn(3) == 0 {
			in.Press(core.ActionJump)
		} else {
			in.Release(core.ActionJump)
		}
		if rng.Intn(4) == 0 {
			in.Press(core.ActionDuck)
		} else {
			in.Release(core.ActionDuck)
		}

		a.Animate(in, 1, testFloor)
		if a.Y+a.H > testFloor {
			t.Fatalf("tick %d: Y+H = %v exceeds floor", tick, a.Y+a.H)
		}
		if a.JumpTimer < 0 || a.JumpTimer > 15 {
			t.Fatalf("tick %d: JumpTimer = %d out of range", tick, a.JumpTimer)
		}
	}
}

func TestNewAvatarClampsSize(t *testing.T) {
	a := NewAvatar(config.PlayerConfig{Width: 0, Height: -4}, config.PhysicsConfig{JumpForce: 9})
	if a.W < 1 || a.H < 1 || a.OriginalHeight < 1 {
		t.Errorf("avatar size should be clamped positive, got %vx%v", a.W, a.H)
	}
	if a.chargeTicks != 15 || a.chargeDivisor != 50 {
		t.Errorf("charge defaults = (%d, %v), expected (15, 50)", a.chargeTicks, a.chargeDivisor)
	}
}
