package experiments

import (
	"isolation/experiments/metrics"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

const customName = "custom"

// summarize aggregates game and move records per opponent, in the order the
// opponents were played.
func summarize(opponents []string, games []metrics.GameRecord, moves []metrics.MoveRecord) []metrics.OpponentSummary {
	movesByGame := lo.GroupBy(moves, func(m metrics.MoveRecord) int { return m.Game })

	summaries := make([]metrics.OpponentSummary, 0, len(opponents))
	for _, opponent := range opponents {
		played := lo.Filter(games, func(g metrics.GameRecord, _ int) bool { return g.Opponent == opponent })
		if len(played) == 0 {
			continue
		}

		wins := lo.Map(played, func(g metrics.GameRecord, _ int) float64 {
			return lo.Ternary(g.Winner == customName, 1.0, 0.0)
		})
		lengths := lo.Map(played, func(g metrics.GameRecord, _ int) float64 { return float64(g.TotalMoves) })

		var depths, nodes []float64
		timeouts := 0
		for _, g := range played {
			customPlayer := lo.Ternary(g.CustomFirst, 0, 1)
			for _, m := range movesByGame[g.ID] {
				if m.Player != customPlayer {
					continue
				}
				if m.TimedOut {
					timeouts++
				}
				if m.Depth > 0 {
					depths = append(depths, float64(m.Depth))
					nodes = append(nodes, float64(m.Nodes))
				}
			}
		}

		summary := metrics.OpponentSummary{
			Opponent:     opponent,
			Games:        len(played),
			Wins:         int(lo.Sum(wins)),
			WinRate:      stat.Mean(wins, nil),
			Forfeits:     lo.CountBy(played, func(g metrics.GameRecord) bool { return g.Forfeit }),
			MeanMoves:    stat.Mean(lengths, nil),
			TimeoutMoves: timeouts,
		}
		if len(lengths) > 1 {
			summary.StdDevMoves = stat.StdDev(lengths, nil)
		}
		if len(depths) > 0 {
			summary.MeanDepth = stat.Mean(depths, nil)
			summary.MeanNodes = stat.Mean(nodes, nil)
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
