package experiments

import (
	"context"
	"fmt"
	"time"

	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// RunThroughput plays the custom player against itself once per depth limit
// from 1 to cfg.DepthLimit and reports how many nodes per second the search
// expands at each limit. Opening moves are left out of the rates.
func RunThroughput(ctx context.Context, name string, cfg *config.Config) (string, []metrics.Throughput, error) {
	evaluate, err := cfg.Evaluate()
	if err != nil {
		return "", nil, err
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	results := []metrics.Throughput{}

	log.Info().Msg("starting throughput experiment...")

	for depth := 1; depth <= cfg.DepthLimit; depth++ {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("experiment interrupted: %w", err)
		}
		log.Info().Msgf("starting self-play game with depth limit %d...", depth)

		result := selfPlay(cfg, evaluate, depth)
		gameRecords = append(gameRecords, metrics.GameRecord{ID: depth, Opponent: customName, CustomFirst: true, GameMetric: result.Game})
		for _, move := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: depth, MoveMetric: move})
		}

		t := throughput(depth, result.Moves)
		results = append(results, t)
		log.Info().Msgf("depth limit %d: %d searched moves, %.0f nodes/s", depth, t.Moves, t.NodesPerSecond)
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", nil, fmt.Errorf("failed to write move records: %w", err)
	}
	if err := writer.WriteThroughput(results); err != nil {
		return "", nil, fmt.Errorf("failed to write throughput: %w", err)
	}
	log.Info().Msgf("stored throughput records in %s", writer.Dir())
	return writer.Dir(), results, nil
}

func selfPlay(cfg *config.Config, evaluate game.Evaluate, depth int) engine.GameResult {
	var players [2]player.Player
	for _, id := range []game.Player{game.Player1, game.Player2} {
		players[id] = player.NewCustomPlayer(id,
			player.WithDepthLimit(depth),
			player.WithOpeningPlies(cfg.OpeningPlies),
			player.WithEvaluationFn(evaluate),
			player.WithRand(newRand(cfg.Seed, depth, int(id))),
		)
	}
	// Throughput is measured on completed searches, so the clock is not the limit here.
	e := engine.NewLocal(players,
		engine.WithTimeLimit(time.Minute),
		engine.WithNames(customName+"1", customName+"2"),
	)
	return e.Run(game.NewIsolation())
}

func throughput(depth int, moves []metrics.MoveMetric) metrics.Throughput {
	searched := lo.Filter(moves, func(m metrics.MoveMetric, _ int) bool { return m.Depth > 0 })
	nodes := lo.SumBy(searched, func(m metrics.MoveMetric) int { return m.Nodes })
	elapsed := lo.SumBy(searched, func(m metrics.MoveMetric) time.Duration { return m.Elapsed })

	t := metrics.Throughput{DepthLimit: depth, Moves: len(searched), Nodes: nodes, Elapsed: elapsed}
	if elapsed > 0 {
		t.NodesPerSecond = float64(nodes) / elapsed.Seconds()
	}
	return t
}
