package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Pacing: PacingConfig{
			InitialIntervalMs: 150,
			DecrementMs:       2,
			MinIntervalMs:     50,
		},
		Scoring: ScoringConfig{
			FoodPoints: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
