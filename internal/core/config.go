package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current run score
	HighScore int     // Best score of this session
	Speed     float64 // Current game speed
	Runs      int     // Number of crashes so far
	Paused    bool    // Whether the host has paused ticking
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState

	// Crashed is set on the tick a collision soft-reset the run.
	Crashed bool
	// RunScore is the score the crashed run reached.
	RunScore int
}
