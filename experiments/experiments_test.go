package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"isolation/config"
	"isolation/experiments/metrics"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSummarize(t *testing.T) {
	games := []metrics.GameRecord{
		{ID: 1, Opponent: "random", CustomFirst: true, GameMetric: metrics.GameMetric{Winner: "custom", TotalMoves: 20}},
		{ID: 2, Opponent: "random", CustomFirst: false, GameMetric: metrics.GameMetric{Winner: "random", TotalMoves: 30, Forfeit: true}},
		{ID: 3, Opponent: "greedy", CustomFirst: true, GameMetric: metrics.GameMetric{Winner: "custom", TotalMoves: 25}},
	}
	moves := []metrics.MoveRecord{
		{Game: 1, MoveMetric: metrics.MoveMetric{Player: 0, SearchMetric: metrics.SearchMetric{Depth: 2, Nodes: 100}}},
		{Game: 1, MoveMetric: metrics.MoveMetric{Player: 1, SearchMetric: metrics.SearchMetric{Depth: 9, Nodes: 9}}},
		{Game: 2, MoveMetric: metrics.MoveMetric{Player: 1, TimedOut: true, SearchMetric: metrics.SearchMetric{Depth: 1, Nodes: 50}}},
	}

	got := summarize([]string{"random", "greedy", "minimax"}, games, moves)

	require.Len(t, got, 2, "Opponents without games are skipped")
	require.Equal(t, "random", got[0].Opponent)
	require.Equal(t, 2, got[0].Games)
	require.Equal(t, 1, got[0].Wins)
	require.InDelta(t, 0.5, got[0].WinRate, 1e-9)
	require.Equal(t, 1, got[0].Forfeits)
	require.InDelta(t, 25.0, got[0].MeanMoves, 1e-9)
	require.InDelta(t, 7.0711, got[0].StdDevMoves, 1e-4)
	require.InDelta(t, 1.5, got[0].MeanDepth, 1e-9, "Only the custom player's moves count")
	require.InDelta(t, 75.0, got[0].MeanNodes, 1e-9)
	require.Equal(t, 1, got[0].TimeoutMoves)

	require.Equal(t, "greedy", got[1].Opponent)
	require.InDelta(t, 1.0, got[1].WinRate, 1e-9)
	require.Zero(t, got[1].StdDevMoves, "A single game has no spread")
}

func TestRun(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Games = 2
	cfg.Parallel = 2
	cfg.DepthLimit = 1
	cfg.TimeLimit = time.Second
	cfg.Opponents = []string{"random", "greedy"}
	cfg.OutputDir = t.TempDir()
	cfg.Seed = 11

	dir, summary, err := Run(context.Background(), "smoke", cfg)

	require.NoError(t, err)
	require.Len(t, summary.Opponents, 2)
	for _, s := range summary.Opponents {
		require.Equal(t, 2, s.Games)
	}

	f, err := os.Open(filepath.Join(dir, "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+4, "Header plus one row per game")
	require.Equal(t, "1", rows[1][0], "Rows should be ordered by game")

	raw, err := os.ReadFile(filepath.Join(dir, "summary.yaml"))
	require.NoError(t, err)
	var stored metrics.Summary
	require.NoError(t, yaml.Unmarshal(raw, &stored))
	require.Equal(t, "smoke", stored.Name)
	require.Len(t, stored.Opponents, 2)

	_, err = os.Stat(filepath.Join(dir, "move_records.csv"))
	require.NoError(t, err)
}

func TestRunRejectsUnknownOpponent(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Opponents = []string{"oracle"}
	cfg.OutputDir = t.TempDir()

	_, _, err = Run(context.Background(), "bad", cfg)

	require.ErrorContains(t, err, "unknown opponent")
}

func TestThroughput(t *testing.T) {
	moves := []metrics.MoveMetric{
		{Elapsed: time.Millisecond},
		{Elapsed: 300 * time.Millisecond, SearchMetric: metrics.SearchMetric{Depth: 2, Nodes: 400}},
		{Elapsed: 700 * time.Millisecond, SearchMetric: metrics.SearchMetric{Depth: 1, Nodes: 600}},
	}

	got := throughput(2, moves)

	require.Equal(t, 2, got.DepthLimit)
	require.Equal(t, 2, got.Moves, "Opening moves are not searched")
	require.Equal(t, 1000, got.Nodes)
	require.Equal(t, time.Second, got.Elapsed)
	require.InDelta(t, 1000.0, got.NodesPerSecond, 1e-9)

	require.Zero(t, throughput(1, nil).NodesPerSecond)
}

func TestRunThroughput(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.DepthLimit = 2
	cfg.OutputDir = t.TempDir()
	cfg.Seed = 5

	dir, results, err := RunThroughput(context.Background(), "throughput", cfg)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, r := range results {
		require.Equal(t, i+1, r.DepthLimit)
		require.Positive(t, r.Moves)
		require.Positive(t, r.Nodes)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "throughput.yaml"))
	require.NoError(t, err)
	var stored []metrics.Throughput
	require.NoError(t, yaml.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)
}
