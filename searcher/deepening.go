package searcher

import (
	"fmt"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

// Deepen runs Search at depths 1..maxDepth in order. After each completed
// depth its action supersedes the previous one and is handed to publish, so
// the caller may abandon the search at any time and keep a usable answer.
func (s *AlphaBeta) Deepen(state game.State, maxDepth int, publish func(game.Action)) game.Action {
	if maxDepth < 1 {
		panic(fmt.Sprintf("depth limit must be at least 1, got %d", maxDepth))
	}
	s.metrics.Start()

	var best game.Action
	for depth := 1; depth <= maxDepth; depth++ {
		action, score := s.Search(state, depth)
		best = action
		s.metrics.CompleteDepth(depth)
		log.Debug().Msgf("best action found after %d plies: %v (score %v)", depth, action, score)
		if publish != nil {
			publish(best)
		}
	}
	return best
}
