package player

import (
	"math"
	"sync/atomic"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/searcher"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(p *CustomPlayer)

func WithDepthLimit(depth int) Option {
	return func(p *CustomPlayer) {
		if depth > 0 {
			p.depthLimit = depth
		}
	}
}

func WithOpeningPlies(plies int) Option {
	return func(p *CustomPlayer) {
		if plies >= 0 {
			p.openingPlies = plies
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(p *CustomPlayer) {
		if rng != nil {
			p.rng = rng
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(p *CustomPlayer) {
		if evaluate != nil {
			p.evaluate = evaluate
		}
	}
}

// CustomPlayer plays a random opening, then runs iterative deepening
// alpha-beta search and publishes the best action after every depth.
type CustomPlayer struct {
	DataPlayer
	depthLimit   int
	openingPlies int
	rng          *rand.Rand
	evaluate     game.Evaluate
	// Collector of the latest turn. Every turn gets a fresh one, so an
	// abandoned search cannot add to the next turn's counts.
	metrics atomic.Pointer[metrics.Collector]
}

func NewCustomPlayer(id game.Player, options ...Option) *CustomPlayer {
	p := &CustomPlayer{ // Default values
		DataPlayer:   DataPlayer{ID: id},
		depthLimit:   meta.DEPTH_LIMIT,
		openingPlies: meta.OPENING_PLIES,
		evaluate:     game.NewMobilityEvaluator().Evaluate,
	}
	for _, option := range options {
		option(p)
	}
	if p.rng == nil {
		p.rng = NewRand()
	}
	return p
}

func (p *CustomPlayer) GetAction(state game.State, out Publisher) {
	collector := metrics.NewCollector()
	p.metrics.Store(&collector)

	if state.PlyCount() < p.openingPlies {
		actions := state.Actions()
		out.Put(actions[p.rng.Intn(len(actions))])
		return
	}
	search := searcher.NewAlphaBeta(p.ID,
		searcher.WithEvaluationFn(p.evaluate),
		searcher.WithMetrics(collector),
	)
	search.Deepen(state, p.depthLimit, out.Put)
}

// Metrics reports the search of the current or last turn.
func (p *CustomPlayer) Metrics() metrics.SearchMetric {
	collector := p.metrics.Load()
	if collector == nil {
		return metrics.SearchMetric{}
	}
	return (*collector).Complete()
}

// NewRand returns a random source seeded from the system entropy pool.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64)))
}
