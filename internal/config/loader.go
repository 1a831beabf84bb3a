package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadMinesweeper when no file was used.
const SourceEmbedded = "embedded"

const minesweeperFile = "minesweeper.yaml"

// LoadMinesweeper loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.sweeper/configs/minesweeper.yaml ->
// ./configs/minesweeper.yaml -> embedded default.
// A broken custom file is an error; broken files on the search path are skipped.
func LoadMinesweeper(customPath string) (MinesweeperConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	candidates := []string{filepath.Join("configs", minesweeperFile)}
	if p := userConfigPath(minesweeperFile); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (MinesweeperConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MinesweeperConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return MinesweeperConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data over the built-in defaults, so partial files only
// override the keys they set, then validates the result.
func parse(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}
