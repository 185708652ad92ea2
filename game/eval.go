package game

import (
	"fmt"

	"isolation/meta"

	"github.com/samber/lo"
)

// ZoneWeights values a liberty by the board region it lies in.
type ZoneWeights struct {
	Interior float64
	Edge     float64
	Corner   float64
}

// MobilityEvaluator scores a state as the zone-weighted liberties of the
// player minus OpponentFactor times the zone-weighted liberties of the opponent.
type MobilityEvaluator struct {
	Width          int
	Height         int
	Weights        ZoneWeights
	OpponentFactor float64
}

func NewMobilityEvaluator() MobilityEvaluator {
	return MobilityEvaluator{
		Width:          meta.WIDTH,
		Height:         meta.HEIGHT,
		Weights:        ZoneWeights{Interior: 3, Edge: 2, Corner: 1},
		OpponentFactor: 2,
	}
}

// Weight returns the zone weight of a cell index.
func (e MobilityEvaluator) Weight(cell int) float64 {
	x := cell % (e.Width + 2)
	y := cell / (e.Width + 2)

	if x >= 2 && x <= e.Width-3 && y >= 2 && y <= e.Height-3 {
		return e.Weights.Interior
	}
	nearX := x <= 1 || x >= e.Width-2
	nearY := y <= 1 || y >= e.Height-2
	if nearX && nearY {
		return e.Weights.Corner
	}
	return e.Weights.Edge
}

func (e MobilityEvaluator) weigh(cells []int) float64 {
	return lo.SumBy(cells, e.Weight)
}

func (e MobilityEvaluator) Evaluate(state State, player Player) float64 {
	locs := state.Locs()
	own := e.weigh(state.Liberties(locs[player]))
	opp := e.weigh(state.Liberties(locs[player.Opponent()]))
	return own - e.OpponentFactor*opp
}

// LibertyDifference counts the player's liberties minus the opponent's.
func LibertyDifference(state State, player Player) float64 {
	own, opp := libertyCounts(state, player)
	return own - opp
}

// AggressiveLiberties weighs the opponent's liberties twice.
func AggressiveLiberties(state State, player Player) float64 {
	own, opp := libertyCounts(state, player)
	return own - 2*opp
}

func libertyCounts(state State, player Player) (own, opp float64) {
	locs := state.Locs()
	own = float64(len(state.Liberties(locs[player])))
	opp = float64(len(state.Liberties(locs[player.Opponent()])))
	return own, opp
}

// EvaluatorByName resolves a heuristic by its configuration name.
func EvaluatorByName(name string, mobility MobilityEvaluator) (Evaluate, error) {
	switch name {
	case "", "mobility":
		return mobility.Evaluate, nil
	case "liberties":
		return LibertyDifference, nil
	case "aggressive":
		return AggressiveLiberties, nil
	default:
		return nil, fmt.Errorf("unknown evaluator %q", name)
	}
}
