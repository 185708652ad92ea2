package engine

import (
	"time"

	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/meta"
	"isolation/player"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *Local)

func WithTimeLimit(limit time.Duration) Option {
	return func(e *Local) {
		if limit > 0 {
			e.timeLimit = limit
		}
	}
}

func WithMaxPlies(plies int) Option {
	return func(e *Local) {
		if plies > 0 {
			e.maxPlies = plies
		}
	}
}

func WithNames(first, second string) Option {
	return func(e *Local) {
		e.names = [2]string{first, second}
	}
}

// Local plays two in-process players against each other, giving each a
// wall clock budget per move.
type Local struct {
	players   [2]player.Player
	names     [2]string
	timeLimit time.Duration
	maxPlies  int
}

func NewLocal(players [2]player.Player, options ...Option) *Local {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	e := &Local{ // Default values
		players:   players,
		names:     [2]string{"player1", "player2"},
		timeLimit: meta.TIME_LIMIT,
		maxPlies:  meta.MAX_PLIES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until a player loses.
func (e *Local) Run(initial game.State) GameResult {
	result := GameResult{Winner: NoWinner}
	result.Game.StartingAgent = e.names[initial.Player()]
	result.Game.StartTime = time.Now()

	state := initial
	for step := 1; !state.TerminalTest() && step <= e.maxPlies; step++ {
		current := state.Player()
		turn := player.RunTimed(e.players[current], state, e.timeLimit)

		move := metrics.MoveMetric{
			Step:         step,
			Player:       int(current),
			Action:       int(turn.Action),
			Elapsed:      turn.Elapsed,
			Publications: turn.Publications,
			TimedOut:     turn.TimedOut,
		}
		if reporter, ok := e.players[current].(interface{ Metrics() metrics.SearchMetric }); ok {
			move.SearchMetric = reporter.Metrics()
		}
		result.Moves = append(result.Moves, move)

		if turn.Err != nil {
			log.Error().Err(turn.Err).Msgf("%s failed at ply %d, forfeiting", e.names[current], state.PlyCount())
			result.Winner, result.Forfeit = current.Opponent(), true
			break
		}
		if !turn.OK || !lo.Contains(state.Actions(), turn.Action) {
			log.Warn().Msgf("%s published no legal action at ply %d (candidate %v, ok %t), forfeiting",
				e.names[current], state.PlyCount(), turn.Action, turn.OK)
			result.Winner, result.Forfeit = current.Opponent(), true
			break
		}

		log.Debug().Msgf("%s played %v after %v", e.names[current], turn.Action, turn.Elapsed)
		result.History = append(result.History, turn.Action)
		state = state.Result(turn.Action)
	}

	if !result.Forfeit && state.TerminalTest() {
		// The player to move is out of liberties
		result.Winner = state.Player().Opponent()
	}
	if result.Winner == NoWinner {
		log.Warn().Msgf("stopped after %d plies without a winner", e.maxPlies)
	}

	result.Final = state
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = len(result.History)
	result.Game.Forfeit = result.Forfeit
	if result.Winner != NoWinner {
		result.Game.Winner = e.names[result.Winner]
		result.Game.Loser = e.names[result.Winner.Opponent()]
	}
	return result
}
