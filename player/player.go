package player

import (
	"sync/atomic"

	"isolation/game"
)

// Publisher receives candidate actions. Each Put supersedes the previous one.
type Publisher interface {
	Put(action game.Action)
}

// Player decides on an action for the player to move in state. It must Put
// at least one candidate and may keep improving it until the caller stops
// listening.
type Player interface {
	GetAction(state game.State, out Publisher)
}

// DataPlayer holds what every player carries across turns.
type DataPlayer struct {
	ID game.Player
	// Context is opaque carry-over state, readable on the next turn.
	Context any
}

// Candidate is a single slot with one writer (the player) and one reader
// (the caller). Reads never observe a partially written action.
type Candidate struct {
	action atomic.Pointer[game.Action]
	count  atomic.Int32
}

func (c *Candidate) Put(action game.Action) {
	c.action.Store(&action)
	c.count.Add(1)
}

// Get returns the most recently published action, if any.
func (c *Candidate) Get() (game.Action, bool) {
	action := c.action.Load()
	if action == nil {
		return 0, false
	}
	return *action, true
}

func (c *Candidate) Publications() int {
	return int(c.count.Load())
}
