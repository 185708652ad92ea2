package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// NoWinner is reported when a game hits the ply cap undecided.
const NoWinner game.Player = -1

type GameResult struct {
	Winner  game.Player
	Forfeit bool // The loser failed to publish a legal action in time
	Final   game.State
	History []game.Action
	Moves   []metrics.MoveMetric
	Game    metrics.GameMetric
}

type Engine interface {
	// Run plays from initial until a player loses or the ply cap is reached
	Run(initial game.State) GameResult
}
