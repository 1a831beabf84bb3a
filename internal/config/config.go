// Package config provides YAML-based configuration loading for the sweeper
// platform: board presets per difficulty and the score formula constants.
package config

import (
	"fmt"
	"strings"
)

// MinesweeperConfig contains all tunable game parameters.
type MinesweeperConfig struct {
	Difficulties DifficultiesConfig `yaml:"difficulties"`
	Scoring      ScoringConfig      `yaml:"scoring"`
}

// DifficultiesConfig holds one board preset per difficulty.
type DifficultiesConfig struct {
	Easy   DifficultyParams `yaml:"easy"`
	Medium DifficultyParams `yaml:"medium"`
	Hard   DifficultyParams `yaml:"hard"`
}

// DifficultyParams defines a square board and its score multiplier.
type DifficultyParams struct {
	Size       int `yaml:"size"`       // Rows and columns
	Mines      int `yaml:"mines"`      // Must be less than size*size
	Multiplier int `yaml:"multiplier"` // Score multiplier, at least 1
}

// ScoringConfig defines the score formula constants.
type ScoringConfig struct {
	BaseScore        int `yaml:"base_score"`         // Points for a full clear
	PenaltyPerSecond int `yaml:"penalty_per_second"` // Points lost per elapsed second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists all presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParsePreset converts a case-insensitive name into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// ParamsFor returns the board preset for p.
func (c MinesweeperConfig) ParamsFor(p DifficultyPreset) (DifficultyParams, error) {
	switch p {
	case DifficultyEasy:
		return c.Difficulties.Easy, nil
	case DifficultyMedium:
		return c.Difficulties.Medium, nil
	case DifficultyHard:
		return c.Difficulties.Hard, nil
	default:
		return DifficultyParams{}, fmt.Errorf("config: unknown difficulty %q", p)
	}
}

// Validate checks every preset and the scoring constants.
func (c MinesweeperConfig) Validate() error {
	for _, p := range Presets {
		dp, _ := c.ParamsFor(p)
		if err := dp.Validate(); err != nil {
			return fmt.Errorf("config: difficulty %s: %w", p, err)
		}
	}
	if c.Scoring.BaseScore <= 0 {
		return fmt.Errorf("config: scoring.base_score must be positive, got %d", c.Scoring.BaseScore)
	}
	if c.Scoring.PenaltyPerSecond < 0 {
		return fmt.Errorf("config: scoring.penalty_per_second must not be negative, got %d", c.Scoring.PenaltyPerSecond)
	}
	return nil
}

// Validate checks that a board with these params can be generated.
func (p DifficultyParams) Validate() error {
	switch {
	case p.Size <= 0:
		return fmt.Errorf("size must be positive, got %d", p.Size)
	case p.Mines < 0:
		return fmt.Errorf("mines must not be negative, got %d", p.Mines)
	case p.Mines >= p.Size*p.Size:
		return fmt.Errorf("%d mines do not fit a %dx%d board", p.Mines, p.Size, p.Size)
	case p.Multiplier < 1:
		return fmt.Errorf("multiplier must be at least 1, got %d", p.Multiplier)
	}
	return nil
}
