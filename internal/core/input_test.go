package core

import "testing"

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()

	if s.IsPressed(ActionJump) {
		t.Fatal("new input state should have nothing pressed")
	}

	s.Press(ActionJump)
	for i := 0; i < 100; i++ {
		s.Advance()
	}
	if !s.IsPressed(ActionJump) {
		t.Error("pressed action should stay held until released")
	}

	s.Release(ActionJump)
	if s.IsPressed(ActionJump) {
		t.Error("released action should not be pressed")
	}
}

func TestInputStateLatch(t *testing.T) {
	s := NewInputState()
	s.Latch(ActionDuck, 3)

	for tick := 0; tick < 3; tick++ {
		if !s.IsPressed(ActionDuck) {
			t.Fatalf("latched action should be held on tick %d", tick)
		}
		s.Advance()
	}
	if s.IsPressed(ActionDuck) {
		t.Error("latch should expire after its window")
	}
}

func TestInputStateLatchRefresh(t *testing.T) {
	s := NewInputState()
	s.Latch(ActionJump, 2)
	s.Advance()
	s.Latch(ActionJump, 2) // key repeat
	s.Advance()
	if !s.IsPressed(ActionJump) {
		t.Error("a repeated latch should extend the hold")
	}

	s.Press(ActionDuck)
	s.Latch(ActionDuck, 1)
	s.Advance()
	if !s.IsPressed(ActionDuck) {
		t.Error("a latch must not shorten a press")
	}
}

func TestInputStateReadsAreSideEffectFree(t *testing.T) {
	s := NewInputState()
	s.Latch(ActionJump, 1)
	for i := 0; i < 5; i++ {
		if !s.IsPressed(ActionJump) {
			t.Fatal("IsPressed must not consume the action")
		}
	}

	var nilState *InputState
	if nilState.IsPressed(ActionJump) {
		t.Error("nil input state should report nothing pressed")
	}
}

func TestInputStateClear(t *testing.T) {
	s := NewInputState()
	s.Press(ActionJump)
	s.Latch(ActionDuck, 10)
	s.Clear()
	if s.IsPressed(ActionJump) || s.IsPressed(ActionDuck) {
		t.Error("Clear should release every action")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" || ActionDuck.String() != "Duck" {
		t.Error("unexpected action names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
