package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLabyrinth loads Labyrinth configuration.
// Search order: customPath -> ~/.labyrinth/configs/labyrinth.yaml -> ./configs/labyrinth.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadLabyrinth(customPath string) (LabyrinthConfig, error) {
	cfg := DefaultLabyrinthConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultLabyrinthConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("labyrinth.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultLabyrinthConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "labyrinth.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultLabyrinthConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLabyrinthYAML, &cfg); err != nil {
		return DefaultLabyrinthConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".labyrinth", "configs", filename)
}

// ApplyLabyrinthPreset modifies the config based on a difficulty preset.
func ApplyLabyrinthPreset(cfg *LabyrinthConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust board size based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.Rows, cfg.Board.Columns = 5, 5
		cfg.Endless.Rounds = 3
	case DifficultyHard:
		cfg.Board.Rows, cfg.Board.Columns = 9, 9
		cfg.Endless.Rounds = 7
	}
}
