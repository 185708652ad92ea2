package player

import (
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"
)

// RandomPlayer picks uniformly among the legal actions.
type RandomPlayer struct {
	DataPlayer
	rng *rand.Rand
}

func NewRandomPlayer(id game.Player, rng *rand.Rand) *RandomPlayer {
	if rng == nil {
		rng = NewRand()
	}
	return &RandomPlayer{DataPlayer: DataPlayer{ID: id}, rng: rng}
}

func (p *RandomPlayer) GetAction(state game.State, out Publisher) {
	actions := state.Actions()
	out.Put(actions[p.rng.Intn(len(actions))])
}

// GreedyPlayer maximizes its own liberties one ply ahead.
type GreedyPlayer struct {
	DataPlayer
}

func NewGreedyPlayer(id game.Player) *GreedyPlayer {
	return &GreedyPlayer{DataPlayer: DataPlayer{ID: id}}
}

func (p *GreedyPlayer) GetAction(state game.State, out Publisher) {
	// Ties keep the first action
	out.Put(lo.MaxBy(state.Actions(), func(a, b game.Action) bool {
		return p.liberties(state, a) > p.liberties(state, b)
	}))
}

func (p *GreedyPlayer) liberties(state game.State, action game.Action) int {
	next := state.Result(action)
	return len(next.Liberties(next.Locs()[p.ID]))
}

// MinimaxPlayer searches to a fixed depth with the liberty difference
// heuristic and publishes once.
type MinimaxPlayer struct {
	DataPlayer
	depth  int
	rng    *rand.Rand
	search *searcher.AlphaBeta
}

func NewMinimaxPlayer(id game.Player, depth int, rng *rand.Rand) *MinimaxPlayer {
	if rng == nil {
		rng = NewRand()
	}
	return &MinimaxPlayer{
		DataPlayer: DataPlayer{ID: id},
		depth:      depth,
		rng:        rng,
		search:     searcher.NewAlphaBeta(id, searcher.WithEvaluationFn(game.LibertyDifference)),
	}
}

func (p *MinimaxPlayer) GetAction(state game.State, out Publisher) {
	if state.PlyCount() < meta.OPENING_PLIES {
		actions := state.Actions()
		out.Put(actions[p.rng.Intn(len(actions))])
		return
	}
	action, _ := p.search.Search(state, p.depth)
	out.Put(action)
}

// ByName builds a player from its configuration name.
func ByName(name string, id game.Player, rng *rand.Rand) (Player, bool) {
	switch name {
	case "random":
		return NewRandomPlayer(id, rng), true
	case "greedy":
		return NewGreedyPlayer(id), true
	case "minimax":
		return NewMinimaxPlayer(id, 3, rng), true
	default:
		return nil, false
	}
}
