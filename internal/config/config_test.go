package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg LabyrinthConfig
	require.NoError(t, yaml.Unmarshal(defaultLabyrinthYAML, &cfg))
	require.Equal(t, DefaultLabyrinthConfig(), cfg)
}

func TestLoadLabyrinthCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "labyrinth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  rows: 4\n  layout: free\nendless:\n  rounds: 2\n"), 0o600))

	cfg, err := LoadLabyrinth(path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Board.Rows)
	require.Equal(t, "free", cfg.Board.Layout)
	require.Equal(t, 2, cfg.Endless.Rounds)

	// Unset keys keep their defaults.
	require.Equal(t, 7, cfg.Board.Columns)
	require.Equal(t, DefaultLabyrinthConfig().Scoring, cfg.Scoring)
}

func TestLoadLabyrinthErrors(t *testing.T) {
	_, err := LoadLabyrinth(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [1, 2"), 0o600))
	cfg, err := LoadLabyrinth(path)
	require.Error(t, err)
	require.Equal(t, DefaultLabyrinthConfig(), cfg)
}

func TestApplyLabyrinthPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		rows    int
		rounds  int
	}{
		{DifficultyEasy, true, 0.0, 5, 3},
		{DifficultyNormal, true, 0.3, 7, 5},
		{DifficultyHard, true, 0.7, 9, 7},
		{DifficultyFixed, false, 0.0, 7, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultLabyrinthConfig()
			ApplyLabyrinthPreset(&cfg, tt.preset)
			require.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			require.InDelta(t, tt.initial, cfg.Difficulty.InitialLevel, 1e-9)
			require.Equal(t, tt.rows, cfg.Board.Rows)
			require.Equal(t, tt.rows, cfg.Board.Columns)
			require.Equal(t, tt.rounds, cfg.Endless.Rounds)
		})
	}

	cfg := DefaultLabyrinthConfig()
	ApplyLabyrinthPreset(&cfg, "")
	require.Equal(t, DefaultLabyrinthConfig(), cfg)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		require.Equal(t, DifficultyPreset(s), p)
	}
	_, err := ParsePreset("nightmare")
	require.Error(t, err)
}

func TestScoringFormula(t *testing.T) {
	s := DefaultLabyrinthConfig().Scoring
	require.Equal(t, 150, s.Score(10, 5)) // 100 + 100 - 50
	require.Equal(t, 100, s.Score(3, 3))  // par met exactly
	require.Equal(t, 10, s.Score(2, 40))  // floor
	require.Equal(t, 120, s.Score(2, 0))  // already solved
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultLabyrinthConfig().Difficulty
	d := NewDifficultyManager(cfg)

	require.True(t, d.IsEnabled())
	require.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	require.InDelta(t, 0.4, d.Level(0, 2), 1e-9)
	require.InDelta(t, 1.0, d.Level(0, 50), 1e-9)

	require.Equal(t, 2, d.Scramble(0, 0))
	require.Equal(t, 6, d.Scramble(0, 2))
	require.Equal(t, 12, d.Scramble(0, 5))

	d.SetInitialLevel(0.5)
	require.InDelta(t, 0.5, d.Level(0, 0), 1e-9)
	require.InDelta(t, 0.7, d.Level(0, 2), 1e-9)

	d.SetEnabled(false)
	require.False(t, d.IsEnabled())
	require.InDelta(t, 0.5, d.Level(0, 5), 1e-9)
	require.Equal(t, 7, d.Scramble(0, 5))
}

func TestDifficultyManagerScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 400},
		Scaling:     ScalingConfig{MinScramble: 0, MaxScramble: 0},
	})

	require.InDelta(t, 0.25, d.Level(100, 0), 1e-9)
	require.Equal(t, 1, d.Scramble(100, 0), "scramble never drops below one")
}
