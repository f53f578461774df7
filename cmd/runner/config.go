package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and the --difficulty preset are applied.

With --default the embedded default file is printed; redirect it to
~/.arcade/configs/runner.yaml to start customizing.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the embedded default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	preset, err := difficulty()
	if err != nil {
		return err
	}
	return writeConfig(cmd.OutOrStdout(), flagConfig, preset, flagConfigDefault)
}

// writeConfig prints the embedded defaults, or the config loaded from path
// with the preset applied.
func writeConfig(w io.Writer, path string, preset config.DifficultyPreset, defaults bool) error {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRunner(path)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(out)
	return err
}
