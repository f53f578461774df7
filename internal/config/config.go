// Package config provides YAML/TOML-based runner configuration loading and
// difficulty presets.
package config

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Surface   SurfaceConfig   `yaml:"surface" toml:"surface"`
	Physics   PhysicsConfig   `yaml:"physics" toml:"physics"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles" toml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn" toml:"spawn"`
	Speed     SpeedConfig     `yaml:"speed" toml:"speed"`
	Input     InputConfig     `yaml:"input" toml:"input"`
	HighScore HighScoreConfig `yaml:"high_score" toml:"high_score"`
}

// SurfaceConfig is the size of the simulated playfield in simulation units.
// The terminal renderer scales it to whatever the screen offers.
type SurfaceConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines the vertical integrator.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity" toml:"gravity"`
	JumpForce     float64 `yaml:"jump_force" toml:"jump_force"`
	ChargeTicks   int     `yaml:"charge_ticks" toml:"charge_ticks"`     // Ticks the jump can be charged
	ChargeDivisor float64 `yaml:"charge_divisor" toml:"charge_divisor"` // Boost per charge tick is 1/divisor
}

// PlayerConfig defines the avatar's start box and color.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Color  string  `yaml:"color" toml:"color"`
}

// ObstacleConfig defines obstacle size draws.
type ObstacleConfig struct {
	MinSize        int     `yaml:"min_size" toml:"min_size"`
	MaxSize        int     `yaml:"max_size" toml:"max_size"`
	FloatClearance float64 `yaml:"float_clearance" toml:"float_clearance"` // Floating obstacles sit OriginalHeight-clearance above ground
	Color          string  `yaml:"color" toml:"color"`
}

// SpawnConfig defines spawn cadence in ticks.
type SpawnConfig struct {
	InitialTimer int     `yaml:"initial_timer" toml:"initial_timer"`
	MinTimer     int     `yaml:"min_timer" toml:"min_timer"`
	SpeedFactor  float64 `yaml:"speed_factor" toml:"speed_factor"` // Ticks removed per unit of speed
}

// SpeedConfig defines the difficulty ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial" toml:"initial"`
	Increment float64 `yaml:"increment" toml:"increment"` // Added every tick
}

// InputConfig tunes keyboard handling for hosts without key-release events.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"` // Ticks a key press counts as held
}

// HighScoreConfig controls high score persistence.
type HighScoreConfig struct {
	RestoreOnStart bool `yaml:"restore_on_start" toml:"restore_on_start"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown or empty values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
