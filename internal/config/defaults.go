package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Difficulties: DifficultiesConfig{
			Easy:   DifficultyParams{Size: 8, Mines: 10, Multiplier: 1},
			Medium: DifficultyParams{Size: 12, Mines: 25, Multiplier: 2},
			Hard:   DifficultyParams{Size: 16, Mines: 40, Multiplier: 3},
		},
		Scoring: ScoringConfig{
			BaseScore:        1000,
			PenaltyPerSecond: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}
