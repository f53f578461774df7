package config

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial = 2.5
		cfg.Speed.Increment = 0.002
		cfg.Spawn.InitialTimer = 170
	case DifficultyHard:
		cfg.Speed.Initial = 4
		cfg.Speed.Increment = 0.005
		cfg.Spawn.InitialTimer = 120
	case DifficultyFixed:
		// No ramp: speed and spawn cadence stay at their starting values.
		cfg.Speed.Increment = 0
	}
	cfg.Sanitize()
}
