package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
// A customPath ending in .toml is decoded as TOML.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	if customPath != "" {
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		cfg.Sanitize()
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")} {
		if path == "" {
			continue
		}
		candidate := DefaultRunnerConfig()
		if err := decodeFile(path, &candidate); err == nil {
			candidate.Sanitize()
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		cfg = DefaultRunnerConfig() // Fallback to hardcoded if embed fails
	}
	cfg.Sanitize()
	return cfg, nil
}

// decodeFile reads a YAML or TOML file into cfg.
func decodeFile(path string, cfg *RunnerConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Sanitize clamps values the simulation cannot work with to safe minimums.
func (c *RunnerConfig) Sanitize() {
	if c.Surface.Width < 1 {
		c.Surface.Width = 1
	}
	if c.Surface.Height < 1 {
		c.Surface.Height = 1
	}
	if c.Player.Width < 1 {
		c.Player.Width = 1
	}
	if c.Player.Height < 1 {
		c.Player.Height = 1
	}
	if c.Physics.ChargeDivisor == 0 {
		c.Physics.ChargeDivisor = 50
	}
	if c.Physics.ChargeTicks < 1 {
		c.Physics.ChargeTicks = 1
	}
	if c.Obstacles.MinSize < 1 {
		c.Obstacles.MinSize = 1
	}
	if c.Obstacles.MaxSize < c.Obstacles.MinSize {
		c.Obstacles.MaxSize = c.Obstacles.MinSize
	}
	if c.Spawn.MinTimer < 1 {
		c.Spawn.MinTimer = 1
	}
	if c.Spawn.InitialTimer < c.Spawn.MinTimer {
		c.Spawn.InitialTimer = c.Spawn.MinTimer
	}
	if c.Speed.Initial < 0 {
		c.Speed.Initial = 0
	}
	if c.Input.HoldTicks < 1 {
		c.Input.HoldTicks = 1
	}
}
