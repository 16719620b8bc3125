// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Size int `yaml:"size"` // Side length N of the square field
}

// PacingConfig defines how fast the snake moves and how it speeds up.
type PacingConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	DecrementMs       int `yaml:"decrement_ms"`    // Applied once per food eaten
	MinIntervalMs     int `yaml:"min_interval_ms"` // Floor for the interval
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// MinGridSize is the smallest playable field.
const MinGridSize = 4

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < MinGridSize:
		return fmt.Errorf("%w: grid.size %d is below %d", ErrInvalidConfig, c.Grid.Size, MinGridSize)
	case c.Pacing.InitialIntervalMs <= 0:
		return fmt.Errorf("%w: pacing.initial_interval_ms must be positive", ErrInvalidConfig)
	case c.Pacing.MinIntervalMs <= 0:
		return fmt.Errorf("%w: pacing.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Pacing.MinIntervalMs > c.Pacing.InitialIntervalMs:
		return fmt.Errorf("%w: pacing.min_interval_ms %d exceeds initial_interval_ms %d",
			ErrInvalidConfig, c.Pacing.MinIntervalMs, c.Pacing.InitialIntervalMs)
	case c.Pacing.DecrementMs < 0:
		return fmt.Errorf("%w: pacing.decrement_ms must not be negative", ErrInvalidConfig)
	case c.Scoring.FoodPoints < 0:
		return fmt.Errorf("%w: scoring.food_points must not be negative", ErrInvalidConfig)
	}
	return nil
}

// InitialInterval returns the starting tick interval.
func (p PacingConfig) InitialInterval() time.Duration {
	return time.Duration(p.InitialIntervalMs) * time.Millisecond
}

// Decrement returns the per-food interval reduction.
func (p PacingConfig) Decrement() time.Duration {
	return time.Duration(p.DecrementMs) * time.Millisecond
}

// MinInterval returns the interval floor.
func (p PacingConfig) MinInterval() time.Duration {
	return time.Duration(p.MinIntervalMs) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user string to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Description returns a one-line summary for menus and help text.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slow start, speeds up per food"
	case DifficultyNormal:
		return "Classic pace, speeds up per food"
	case DifficultyHard:
		return "Fast start, speeds up per food"
	case DifficultyFixed:
		return "Classic pace, never speeds up"
	default:
		return ""
	}
}
