package game

import (
	"fmt"
	"math"
	"strings"

	"isolation/meta"
)

// bitboard marks open cells with 1 bits; SIZE (115) fits in two words.
type bitboard [2]uint64

func (b bitboard) isOpen(cell int) bool {
	if cell < 0 || cell >= meta.SIZE {
		return false
	}
	return b[cell/64]&(1<<(uint(cell)%64)) != 0
}

func (b bitboard) block(cell int) bitboard {
	b[cell/64] &^= 1 << (uint(cell) % 64)
	return b
}

func blankBoard() bitboard {
	var b bitboard
	for y := 0; y < meta.HEIGHT; y++ {
		for x := 0; x < meta.WIDTH; x++ {
			cell := y*meta.STRIDE + x
			b[cell/64] |= 1 << (uint(cell) % 64)
		}
	}
	return b
}

// Isolation is the knight's Isolation position. It is a value type: Result
// copies it, so sibling branches never alias.
type Isolation struct {
	board    bitboard
	plyCount int
	locs     [2]int
}

// NewIsolation returns the empty starting position.
func NewIsolation() Isolation {
	return Isolation{
		board: blankBoard(),
		locs:  [2]int{NoLocation, NoLocation},
	}
}

// NewIsolationAt builds a position with the given blocked cells and token
// locations. Token cells are blocked as well.
func NewIsolationAt(plyCount int, locs [2]int, blocked ...int) (Isolation, error) {
	if plyCount < 0 {
		return Isolation{}, fmt.Errorf("ply count %d is negative", plyCount)
	}
	if locs[0] != NoLocation && locs[0] == locs[1] {
		return Isolation{}, fmt.Errorf("both tokens are on cell %d", locs[0])
	}
	for _, player := range []Player{Player1, Player2} {
		// Each player places their token on their first move
		if locs[player] == NoLocation && plyCount > int(player) {
			return Isolation{}, fmt.Errorf("player %d has moved but has no token at ply %d", player+1, plyCount)
		}
	}
	s := NewIsolation()
	s.plyCount = plyCount
	s.locs = locs
	cells := append([]int{locs[0], locs[1]}, blocked...)
	for _, cell := range cells {
		if cell == NoLocation {
			continue
		}
		if !blankBoard().isOpen(cell) {
			return Isolation{}, fmt.Errorf("cell %d is not on the board", cell)
		}
		s.board = s.board.block(cell)
	}
	return s, nil
}

func (s Isolation) Player() Player {
	return Player(s.plyCount % 2)
}

func (s Isolation) PlyCount() int {
	return s.plyCount
}

func (s Isolation) Locs() [2]int {
	return s.locs
}

func (s Isolation) Actions() []Action {
	loc := s.locs[s.Player()]
	if loc == NoLocation {
		open := s.Liberties(NoLocation)
		actions := make([]Action, len(open))
		for i, cell := range open {
			actions[i] = Action(cell)
		}
		return actions
	}
	actions := make([]Action, 0, len(Directions))
	for _, d := range Directions {
		if s.board.isOpen(loc + int(d)) {
			actions = append(actions, d)
		}
	}
	return actions
}

func (s Isolation) Result(action Action) State {
	player := s.Player()
	target := int(action)
	if s.locs[player] != NoLocation {
		target += s.locs[player]
	}
	if !s.board.isOpen(target) {
		panic(fmt.Sprintf("illegal action %v for player %d at ply %d", action, player, s.plyCount))
	}
	next := s
	next.board = s.board.block(target)
	next.locs[player] = target
	next.plyCount++
	return next
}

func (s Isolation) TerminalTest() bool {
	return !s.hasLiberties(s.Player())
}

func (s Isolation) Utility(player Player) float64 {
	if !s.TerminalTest() {
		return 0
	}
	if player == s.Player() {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func (s Isolation) Liberties(loc int) []int {
	if loc == NoLocation {
		open := []int{}
		for cell := 0; cell < meta.SIZE; cell++ {
			if s.board.isOpen(cell) {
				open = append(open, cell)
			}
		}
		return open
	}
	liberties := make([]int, 0, len(Directions))
	for _, d := range Directions {
		if cell := loc + int(d); s.board.isOpen(cell) {
			liberties = append(liberties, cell)
		}
	}
	return liberties
}

func (s Isolation) hasLiberties(player Player) bool {
	loc := s.locs[player]
	if loc == NoLocation {
		return s.board != (bitboard{})
	}
	for _, d := range Directions {
		if s.board.isOpen(loc + int(d)) {
			return true
		}
	}
	return false
}

// String draws the board top row first; "1" and "2" mark the tokens.
func (s Isolation) String() string {
	var sb strings.Builder
	for y := meta.HEIGHT - 1; y >= 0; y-- {
		sb.WriteString("|")
		for x := meta.WIDTH - 1; x >= 0; x-- {
			cell := y*meta.STRIDE + x
			switch {
			case cell == s.locs[Player1]:
				sb.WriteString("1")
			case cell == s.locs[Player2]:
				sb.WriteString("2")
			case s.board.isOpen(cell):
				sb.WriteString(" ")
			default:
				sb.WriteString("-")
			}
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
