package searcher

import (
	"fmt"
	"math"

	"isolation/experiments/metrics"
	"isolation/game"
)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning,
// scoring positions from the perspective of a fixed player.
type AlphaBeta struct {
	player   game.Player
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func NewAlphaBeta(player game.Player, options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		player:   player,
		evaluate: game.NewMobilityEvaluator().Evaluate,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Search scores every root action to the given depth and returns the first
// action achieving the maximum. Alpha is carried across root siblings but
// beta is never tightened at the root.
func (s *AlphaBeta) Search(state game.State, depth int) (game.Action, float64) {
	if depth < 1 {
		panic(fmt.Sprintf("search depth must be at least 1, got %d", depth))
	}
	if state.TerminalTest() {
		panic("cannot search a terminal state")
	}
	actions := s.actions(state)

	alpha := math.Inf(-1)
	beta := math.Inf(1)
	bestIndex := -1
	bestScore := math.Inf(-1)
	for i, action := range actions {
		v := s.minValue(state.Result(action), depth-1, alpha, beta)
		alpha = max(alpha, v)
		// Keep the first action when every line is a forced loss
		if bestIndex < 0 || v > bestScore {
			bestScore = v
			bestIndex = i
		}
	}
	return actions[bestIndex], bestScore
}

func (s *AlphaBeta) maxValue(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if state.TerminalTest() {
		return state.Utility(s.player)
	}
	if depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state, s.player)
	}

	value := math.Inf(-1)
	for _, action := range s.actions(state) {
		value = max(value, s.minValue(state.Result(action), depth-1, alpha, beta))
		if value >= beta { // beta cut-off
			s.metrics.AddCutoff()
			return value
		}
		alpha = max(alpha, value)
	}
	return value
}

func (s *AlphaBeta) minValue(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()
	if state.TerminalTest() {
		return state.Utility(s.player)
	}
	if depth <= 0 {
		s.metrics.AddEvaluation()
		return s.evaluate(state, s.player)
	}

	value := math.Inf(1)
	for _, action := range s.actions(state) {
		value = min(value, s.maxValue(state.Result(action), depth-1, alpha, beta))
		if value <= alpha { // alpha cut-off
			s.metrics.AddCutoff()
			return value
		}
		beta = min(beta, value)
	}
	return value
}

// Metrics returns a snapshot of the current or last search.
func (s *AlphaBeta) Metrics() metrics.SearchMetric {
	return s.metrics.Complete()
}

func (s *AlphaBeta) actions(state game.State) []game.Action {
	actions := state.Actions()
	if len(actions) == 0 {
		panic(fmt.Sprintf("non-terminal state at ply %d has no actions", state.PlyCount()))
	}
	return actions
}
