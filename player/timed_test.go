package player

import (
	"testing"
	"time"

	"isolation/game"

	"github.com/stretchr/testify/require"
)

type funcPlayer func(state game.State, out Publisher)

func (f funcPlayer) GetAction(state game.State, out Publisher) {
	f(state, out)
}

func TestRunTimed(t *testing.T) {
	state := game.NewIsolation()

	t.Run("returns when the player finishes", func(t *testing.T) {
		p := funcPlayer(func(state game.State, out Publisher) {
			out.Put(game.Action(3))
			out.Put(game.Action(4))
		})

		got := RunTimed(p, state, time.Second)

		require.True(t, got.OK)
		require.False(t, got.TimedOut)
		require.Equal(t, game.Action(4), got.Action)
		require.Equal(t, 2, got.Publications)
		require.NoError(t, got.Err)
	})

	t.Run("keeps the last candidate when time runs out", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		p := funcPlayer(func(state game.State, out Publisher) {
			out.Put(game.Action(7))
			<-release
			out.Put(game.Action(8))
		})

		got := RunTimed(p, state, 20*time.Millisecond)

		require.True(t, got.OK)
		require.True(t, got.TimedOut)
		require.Equal(t, game.Action(7), got.Action)
	})

	t.Run("no candidate", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		p := funcPlayer(func(state game.State, out Publisher) {
			<-release
		})

		got := RunTimed(p, state, 10*time.Millisecond)

		require.False(t, got.OK)
		require.True(t, got.TimedOut)
	})

	t.Run("panicking player", func(t *testing.T) {
		p := funcPlayer(func(state game.State, out Publisher) {
			out.Put(game.Action(1))
			panic("boom")
		})

		got := RunTimed(p, state, time.Second)

		require.Error(t, got.Err)
		require.False(t, got.OK, "Candidates from a failed decision are discarded")
	})
}
