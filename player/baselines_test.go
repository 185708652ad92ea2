package player

import (
	"testing"

	"isolation/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomPlayer(t *testing.T) {
	state, err := game.NewIsolationAt(2, [2]int{57, 46})
	require.NoError(t, err)
	p := NewRandomPlayer(game.Player1, rand.New(rand.NewSource(5)))

	for i := 0; i < 20; i++ {
		c := &Candidate{}
		p.GetAction(state, c)
		got, ok := c.Get()
		require.True(t, ok)
		require.Contains(t, state.Actions(), got)
	}
}

func TestGreedyPlayer(t *testing.T) {
	// From the corner, 27 (x1, y2) leads on to more open cells than 15 (x2, y1)
	state, err := game.NewIsolationAt(2, [2]int{0, 57})
	require.NoError(t, err)
	p := NewGreedyPlayer(game.Player1)
	c := &Candidate{}

	p.GetAction(state, c)

	got, ok := c.Get()
	require.True(t, ok)
	want := game.Action(0)
	wantScore := -1
	for _, action := range state.Actions() {
		next := state.Result(action)
		if n := len(next.Liberties(next.Locs()[game.Player1])); n > wantScore {
			want, wantScore = action, n
		}
	}
	require.Equal(t, want, got, "Should maximize its own liberties")
}

func TestMinimaxPlayer(t *testing.T) {
	state, err := game.NewIsolationAt(2, [2]int{81, 27}, 0, 2, 16, 42, 52)
	require.NoError(t, err)
	p := NewMinimaxPlayer(game.Player1, 3, rand.New(rand.NewSource(1)))
	c := &Candidate{}

	p.GetAction(state, c)

	got, _ := c.Get()
	require.Equal(t, game.SSW, got, "Should take the forced win")
	require.Equal(t, 1, c.Publications(), "Fixed depth search publishes once")
}

func TestByName(t *testing.T) {
	for _, name := range []string{"random", "greedy", "minimax"} {
		p, ok := ByName(name, game.Player2, nil)
		require.True(t, ok, name)
		require.NotNil(t, p, name)
	}

	_, ok := ByName("human", game.Player2, nil)
	require.False(t, ok)
}
