package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomatch/game"
)

func TestDirector_PicksSelectableCards(t *testing.T) {
	state, _ := game.NewState(game.NewBoard(1), 1, false)
	state, _ = state.ClickCard(0)

	director := NewDirector(1)
	for i := 0; i < 100; i++ {
		idx, ok := director.Act(state.View())
		require.True(t, ok)
		assert.NotEqual(t, 0, idx)
		assert.True(t, idx > 0 && idx < game.NumCards)
	}
}

func TestDirector_NothingToPick(t *testing.T) {
	director := NewDirector(1)

	idx, ok := director.Pick(nil)
	assert.False(t, ok)
	assert.Equal(t, game.NoCard, idx)
}

func TestDirector_EventuallyWins(t *testing.T) {
	state, _ := game.NewState(game.NewBoard(2), 1, false)
	director := NewDirector(2)

	for clicks := 0; !state.Session.IsWon(); clicks++ {
		require.Less(t, clicks, 100000)

		idx, ok := director.Act(state.View())
		require.True(t, ok)
		state, _ = state.ClickCard(idx)

		if state.Session.Phase == game.MismatchReveal {
			state, _ = state.Handle(game.Event{Kind: game.MismatchHideEvent, Generation: 1})
		}
	}
	assert.Equal(t, game.NumPairs, state.Session.MatchesFound)
}
