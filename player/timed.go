package player

import (
	"fmt"
	"time"

	"isolation/game"
)

type TimedResult struct {
	Action       game.Action
	OK           bool // A candidate was published in time
	Publications int
	Elapsed      time.Duration
	TimedOut     bool
	Err          error // The player panicked
}

// RunTimed runs GetAction for at most limit and returns the last candidate
// published by then. A player still running past the limit is abandoned, not
// interrupted; its later publications go to a slot nobody reads.
func RunTimed(p Player, state game.State, limit time.Duration) TimedResult {
	candidate := &Candidate{}
	done := make(chan error, 1)
	start := time.Now()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("player panicked: %v", r)
			}
		}()
		p.GetAction(state, candidate)
		done <- nil
	}()

	result := TimedResult{}
	timer := time.NewTimer(limit)
	defer timer.Stop()
	select {
	case err := <-done:
		result.Err = err
	case <-timer.C:
		result.TimedOut = true
	}
	result.Elapsed = time.Since(start)
	result.Publications = candidate.Publications()
	if result.Err == nil {
		result.Action, result.OK = candidate.Get()
	}
	return result
}
