package searcher

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

type Option func(s *AlphaBeta)

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *AlphaBeta) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *AlphaBeta) {
		if collector != nil {
			s.metrics = collector
		}
	}
}
