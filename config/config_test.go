package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"isolation/game"
	"isolation/meta"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, meta.DEPTH_LIMIT, cfg.DepthLimit)
	require.Equal(t, meta.OPENING_PLIES, cfg.OpeningPlies)
	require.Equal(t, meta.TIME_LIMIT, cfg.TimeLimit)
	require.Equal(t, "mobility", cfg.Evaluator)
	require.Equal(t, game.NewMobilityEvaluator(), cfg.Mobility(), "Defaults should match the reference heuristic")
	require.Equal(t, []string{"random", "greedy", "minimax"}, cfg.Opponents)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isolation.yaml")
	content := `
depth_limit: 4
time_limit: 1s
evaluator: aggressive
weights:
  interior: 5
opponent_factor: 1.5
opponents: [greedy]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 4, cfg.DepthLimit)
	require.Equal(t, time.Second, cfg.TimeLimit)
	require.Equal(t, "aggressive", cfg.Evaluator)
	require.Equal(t, 5.0, cfg.Weights.Interior)
	require.Equal(t, 2.0, cfg.Weights.Edge, "Unset keys keep their defaults")
	require.Equal(t, 1.5, cfg.Mobility().OpponentFactor)
	require.Equal(t, []string{"greedy"}, cfg.Opponents)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ISOLATION_DEPTH_LIMIT", "6")
	t.Setenv("ISOLATION_WEIGHTS_CORNER", "0.5")

	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, 6, cfg.DepthLimit)
	require.Equal(t, 0.5, cfg.Weights.Corner)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("ISOLATION_DEPTH_LIMIT", "0")
		t.Setenv("ISOLATION_EVALUATOR", "learned")

		_, err := Load("")

		require.ErrorContains(t, err, "depth_limit")
		require.ErrorContains(t, err, "unknown evaluator")
	})
}
