package experiments

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"isolation/config"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type matchUp struct {
	id          int
	opponent    string
	customFirst bool
}

// Run plays cfg.Games games of the custom player against every configured
// opponent, alternating who moves first, and stores the records under
// cfg.OutputDir. It returns the directory written to.
func Run(ctx context.Context, name string, cfg *config.Config) (string, metrics.Summary, error) {
	evaluate, err := cfg.Evaluate()
	if err != nil {
		return "", metrics.Summary{}, err
	}
	for _, opponent := range cfg.Opponents {
		if _, ok := player.ByName(opponent, game.Player2, nil); !ok {
			return "", metrics.Summary{}, fmt.Errorf("unknown opponent %q", opponent)
		}
	}

	matchUps := []matchUp{}
	for _, opponent := range cfg.Opponents {
		for i := 0; i < cfg.Games; i++ {
			matchUps = append(matchUps, matchUp{id: len(matchUps) + 1, opponent: opponent, customFirst: i%2 == 0})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(matchUps))

	var mu sync.Mutex
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for _, m := range matchUps {
		m := m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Info().Msgf("starting game %d of %d against %s...", m.id, len(matchUps), m.opponent)

			result := playGame(cfg, evaluate, m)
			record := metrics.GameRecord{ID: m.id, Opponent: m.opponent, CustomFirst: m.customFirst, GameMetric: result.Game}

			mu.Lock()
			defer mu.Unlock()
			gameRecords = append(gameRecords, record)
			for _, move := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: m.id, MoveMetric: move})
			}

			log.Info().Msgf("completed game %d with winner: %s", m.id, record.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", metrics.Summary{}, fmt.Errorf("experiment interrupted: %w", err)
	}

	log.Info().Msgf("completed %s experiment", name)

	slices.SortFunc(gameRecords, func(a, b metrics.GameRecord) int { return a.ID - b.ID })
	slices.SortStableFunc(moveRecords, func(a, b metrics.MoveRecord) int { return a.Game - b.Game })

	summary := metrics.Summary{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Opponents: summarize(cfg.Opponents, gameRecords, moveRecords),
	}
	for _, s := range summary.Opponents {
		log.Info().Msgf("against %s: won %d of %d (%.0f%%)", s.Opponent, s.Wins, s.Games, 100*s.WinRate)
	}

	dir, err := store(name, cfg.OutputDir, gameRecords, moveRecords, summary)
	if err != nil {
		return "", metrics.Summary{}, err
	}
	return dir, summary, nil
}

func playGame(cfg *config.Config, evaluate game.Evaluate, m matchUp) engine.GameResult {
	customID, opponentID := game.Player1, game.Player2
	if !m.customFirst {
		customID, opponentID = opponentID, customID
	}

	custom := player.NewCustomPlayer(customID,
		player.WithDepthLimit(cfg.DepthLimit),
		player.WithOpeningPlies(cfg.OpeningPlies),
		player.WithEvaluationFn(evaluate),
		player.WithRand(newRand(cfg.Seed, m.id, 0)),
	)
	opponent, _ := player.ByName(m.opponent, opponentID, newRand(cfg.Seed, m.id, 1))

	var players [2]player.Player
	var names [2]string
	players[customID], names[customID] = custom, customName
	players[opponentID], names[opponentID] = opponent, m.opponent

	e := engine.NewLocal(players,
		engine.WithTimeLimit(cfg.TimeLimit),
		engine.WithNames(names[0], names[1]),
	)
	return e.Run(game.NewIsolation())
}

// newRand derives a per-game, per-side source from seed, or draws one from
// system entropy when seed is 0.
func newRand(seed uint64, gameID, side int) *rand.Rand {
	if seed == 0 {
		return player.NewRand()
	}
	return rand.New(rand.NewSource(seed + uint64(gameID)*2 + uint64(side)))
}

func store(name, root string, games []metrics.GameRecord, moves []metrics.MoveRecord, summary metrics.Summary) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteSummary(summary); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msgf("stored summary in %s", writer.Dir())
	return writer.Dir(), nil
}
