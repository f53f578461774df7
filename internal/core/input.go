package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, W, Up
	ActionDuck         // S, Down
	ActionPause        // P, Escape
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// holdForever marks an action pressed until an explicit Release.
const holdForever = -1

// InputState tracks which logical actions are currently held.
//
// Hosts with key-up events use Press and Release. Terminals only report
// presses (repeated while a key is held), so they use Latch: the action stays
// pressed for a number of ticks and every repeat refreshes the window.
// Advance is called once after each tick to age latched actions.
type InputState struct {
	held map[Action]int
}

// NewInputState creates an input state with nothing pressed.
func NewInputState() *InputState {
	return &InputState{held: make(map[Action]int)}
}

// Press marks the action held until Release.
func (s *InputState) Press(a Action) {
	s.ensure()
	s.held[a] = holdForever
}

// Release clears the action.
func (s *InputState) Release(a Action) {
	delete(s.held, a)
}

// Latch marks the action held for the given number of ticks.
// A latch never shortens an existing hold.
func (s *InputState) Latch(a Action, ticks int) {
	if ticks <= 0 {
		return
	}
	s.ensure()
	if cur, ok := s.held[a]; ok && (cur == holdForever || cur >= ticks) {
		return
	}
	s.held[a] = ticks
}

// IsPressed reports whether the action is currently held.
func (s *InputState) IsPressed(a Action) bool {
	if s == nil || s.held == nil {
		return false
	}
	_, ok := s.held[a]
	return ok
}

// Advance ages latched actions by one tick.
func (s *InputState) Advance() {
	for a, left := range s.held {
		if left == holdForever {
			continue
		}
		if left <= 1 {
			delete(s.held, a)
			continue
		}
		s.held[a] = left - 1
	}
}

// Clear releases every action.
func (s *InputState) Clear() {
	for a := range s.held {
		delete(s.held, a)
	}
}

func (s *InputState) ensure() {
	if s.held == nil {
		s.held = make(map[Action]int)
	}
}
