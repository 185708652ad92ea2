package game

// Player identifies one of the two sides. Player1 moves on even plies.
type Player int

const (
	Player1 Player = 0
	Player2 Player = 1
)

func (p Player) Opponent() Player {
	return 1 - p
}

// NoLocation marks a token that has not been placed yet.
const NoLocation = -1

// State should be immutable - Result always returns a new copy
type State interface {
	Actions() []Action
	Result(Action) State
	TerminalTest() bool
	// Utility is only meaningful for terminal states; positive favors player.
	Utility(player Player) float64
	// Liberties lists the open cells a token at loc could move to.
	Liberties(loc int) []int
	Locs() [2]int
	PlyCount() int
	Player() Player
}

// Evaluates a non-terminal state to a heuristic score from player's
// perspective, higher is better.
type Evaluate func(state State, player Player) float64
