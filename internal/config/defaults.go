package config

import (
	_ "embed"
)

//go:embed defaults/labyrinth.yaml
var defaultLabyrinthYAML []byte

// DefaultLabyrinthConfig returns the default Labyrinth configuration.
func DefaultLabyrinthConfig() LabyrinthConfig {
	return LabyrinthConfig{
		Board: BoardConfig{
			Rows:    7,
			Columns: 7,
			Layout:  "classic",
		},
		Tiles: TileWeights{
			None:         0,
			Cross:        1,
			Linear:       12,
			Curved:       16,
			Intersection: 6,
		},
		Scoring: ScoringConfig{
			Base:      100,
			PerPar:    10,
			PerAction: 10,
			Minimum:   10,
		},
		Endless: EndlessConfig{
			Rounds: 5,
		},
		Theme: ThemeConfig{
			Tile:      "white",
			Reachable: "green",
			Token:     "bright_yellow",
			Goal:      "bright_magenta",
			Cursor:    "bright_cyan",
			Pinned:    "gray",
			Movable:   "blue",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				MinScramble: 2,
				MaxScramble: 12,
			},
		},
	}
}
