package searcher

import (
	"math"

	"isolation/game"

	"golang.org/x/exp/rand"
)

// treeNode is a synthetic game tree node. Values are from Player1's view.
type treeNode struct {
	children []*treeNode
	value    float64 // Heuristic value at the search frontier
	terminal bool
	utility  float64
}

type treeState struct {
	node *treeNode
	ply  int
}

func (s treeState) Actions() []game.Action {
	actions := make([]game.Action, len(s.node.children))
	for i := range s.node.children {
		actions[i] = game.Action(i)
	}
	return actions
}

func (s treeState) Result(action game.Action) game.State {
	return treeState{node: s.node.children[action], ply: s.ply + 1}
}

func (s treeState) TerminalTest() bool {
	return s.node.terminal
}

func (s treeState) Utility(player game.Player) float64 {
	if player == game.Player1 {
		return s.node.utility
	}
	return -s.node.utility
}

func (s treeState) Liberties(loc int) []int {
	return nil
}

func (s treeState) Locs() [2]int {
	return [2]int{game.NoLocation, game.NoLocation}
}

func (s treeState) PlyCount() int {
	return s.ply
}

func (s treeState) Player() game.Player {
	return game.Player(s.ply % 2)
}

func treeValue(state game.State, player game.Player) float64 {
	return state.(treeState).node.value
}

func leaf(value float64) *treeNode {
	return &treeNode{value: value}
}

func win() *treeNode {
	return &treeNode{terminal: true, utility: math.Inf(1)}
}

func loss() *treeNode {
	return &treeNode{terminal: true, utility: math.Inf(-1)}
}

func branch(value float64, children ...*treeNode) *treeNode {
	return &treeNode{value: value, children: children}
}

// randomTree grows a tree whose non-terminal nodes at levels < height always
// have children, so it can be searched to any depth <= height.
func randomTree(r *rand.Rand, height int) *treeNode {
	node := &treeNode{value: float64(r.Intn(21) - 10)}
	if height == 0 {
		return node
	}
	width := 1 + r.Intn(4)
	for i := 0; i < width; i++ {
		if r.Intn(10) == 0 {
			if r.Intn(2) == 0 {
				node.children = append(node.children, win())
			} else {
				node.children = append(node.children, loss())
			}
			continue
		}
		node.children = append(node.children, randomTree(r, height-1))
	}
	return node
}

// minimax is the unpruned reference search.
func minimax(state game.State, depth int, maximizing bool) float64 {
	if state.TerminalTest() {
		return state.Utility(game.Player1)
	}
	if depth <= 0 {
		return treeValue(state, game.Player1)
	}
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	for _, action := range state.Actions() {
		v := minimax(state.Result(action), depth-1, !maximizing)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func referenceSearch(state game.State, depth int) (game.Action, float64) {
	bestIndex := -1
	bestScore := math.Inf(-1)
	actions := state.Actions()
	for i, action := range actions {
		v := minimax(state.Result(action), depth-1, false)
		if bestIndex < 0 || v > bestScore {
			bestIndex = i
			bestScore = v
		}
	}
	return actions[bestIndex], bestScore
}
