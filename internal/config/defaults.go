package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 300,
		},
		Physics: PhysicsConfig{
			Gravity:       1,
			JumpForce:     9,
			ChargeTicks:   15,
			ChargeDivisor: 50,
		},
		Player: PlayerConfig{
			X:      25,
			Y:      0,
			Width:  50,
			Height: 50,
			Color:  "green",
		},
		Obstacles: ObstacleConfig{
			MinSize:        20,
			MaxSize:        70,
			FloatClearance: 10,
			Color:          "orange",
		},
		Spawn: SpawnConfig{
			InitialTimer: 150,
			MinTimer:     60,
			SpeedFactor:  8,
		},
		Speed: SpeedConfig{
			Initial:   3,
			Increment: 0.003,
		},
		Input: InputConfig{
			HoldTicks: 36,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
