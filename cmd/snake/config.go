package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the snake config as YAML after applying the search order
(--config, ~/.snake/configs/snake.yaml, ./configs/snake.yaml, built-in defaults)
and the --difficulty preset, if any. Presets replace file values: easy and hard
set pacing.initial_interval_ms, fixed sets pacing.decrement_ms to 0.

With --defaults, print the built-in default file instead.

Redirect the output to start a custom config:
  snake config --defaults > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply before printing")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.GetDefaultYAML())
		return
	}

	logger, closeLog, err := newLogger(os.Stderr, "snake")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, err := config.LoadSnake(flagConfig, logger)
	if err != nil {
		fail("%v", err)
	}

	if flagDifficulty != "" {
		preset, parseErr := config.ParsePreset(flagDifficulty)
		if parseErr != nil {
			fail("%v", parseErr)
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	//nolint:errcheck // Nothing useful to do if stdout is gone
	os.Stdout.Write(data)
}
