// Package config provides YAML-based game configuration loading and
// difficulty management for Labyrinth.
package config

import "fmt"

// LabyrinthConfig contains all configuration for the Labyrinth game.
type LabyrinthConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Tiles      TileWeights      `yaml:"tiles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Endless    EndlessConfig    `yaml:"endless"`
	Theme      ThemeConfig      `yaml:"theme"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines generated board parameters.
type BoardConfig struct {
	Rows    int    `yaml:"rows"`
	Columns int    `yaml:"columns"`
	Layout  string `yaml:"layout"` // "classic", "free" or "bands"
}

// TileWeights is the relative frequency of each tile kind on generated boards.
type TileWeights struct {
	None         int `yaml:"none"`
	Cross        int `yaml:"cross"`
	Linear       int `yaml:"linear"`
	Curved       int `yaml:"curved"`
	Intersection int `yaml:"intersection"`
}

// ScoringConfig defines how a cleared board is scored:
// max(Minimum, Base + PerPar*par - PerAction*actions).
type ScoringConfig struct {
	Base      int `yaml:"base"`
	PerPar    int `yaml:"per_par"`
	PerAction int `yaml:"per_action"`
	Minimum   int `yaml:"minimum"`
}

// Score applies the scoring formula.
func (s ScoringConfig) Score(par, actions int) int {
	return max(s.Minimum, s.Base+s.PerPar*par-s.PerAction*actions)
}

// EndlessConfig defines endless mode parameters.
type EndlessConfig struct {
	Rounds int `yaml:"rounds"` // Boards per run; 0 means unlimited
}

// ThemeConfig names the colors used to draw the board.
type ThemeConfig struct {
	Tile      string `yaml:"tile"`
	Reachable string `yaml:"reachable"`
	Token     string `yaml:"token"`
	Goal      string `yaml:"goal"`
	Cursor    string `yaml:"cursor"`
	Pinned    string `yaml:"pinned"`
	Movable   string `yaml:"movable"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rounds", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Rounds/score at which max difficulty is reached
}

// ScalingConfig defines what difficulty changes.
type ScalingConfig struct {
	MinScramble int `yaml:"min_scramble"` // Scramble moves at level 0.0
	MaxScramble int `yaml:"max_scramble"` // Scramble moves at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset parses a preset name. The empty string is allowed and means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
