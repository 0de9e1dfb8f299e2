package recall

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gomatch/game"
)

// play drives state with director until the game is won, returning the
// number of clicks it took
func play(t *testing.T, director *Director, state game.State, maxClicks int) (game.State, int) {
	t.Helper()

	clicks := 0
	for !state.Session.IsWon() {
		require.Less(t, clicks, maxClicks, "director did not finish: %v", director)

		idx, ok := director.Act(state.View())
		require.True(t, ok)
		state, _ = state.ClickCard(idx)
		clicks++
		director.Observe(state.View())

		if state.Session.Phase == game.MismatchReveal {
			state, _ = state.Handle(game.Event{Kind: game.MismatchHideEvent, Generation: state.Session.Generation})
			director.Observe(state.View())
		}
	}
	return state, clicks
}

func TestDirector_PerfectAfterPreview(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		state, _ := game.NewState(game.NewBoard(seed), 1, true)

		director := NewDirector(seed)
		director.Init(state.View())

		state, _ = state.Handle(game.Event{Kind: game.PreviewEndEvent, Generation: 1})
		director.Observe(state.View())

		state, clicks := play(t, director, state, game.NumCards)
		assert.Equal(t, game.NumCards, clicks, "seed %d", seed)
		assert.Equal(t, game.NumPairs, state.Session.MatchesFound)
	}
}

func TestDirector_WinsWithoutPreview(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		state, _ := game.NewState(game.NewBoard(seed), 1, false)

		director := NewDirector(seed)
		director.Init(state.View())

		// Every card is explored at most once and every pair is then
		// completed in two clicks
		state, _ = play(t, director, state, 2*game.NumCards)
		assert.True(t, state.Session.IsWon())
	}
}

func TestDirector_CompletesPendingPair(t *testing.T) {
	board := game.NewBoard(3)
	state, _ := game.NewState(board, 1, false)

	director := NewDirector(3)
	director.Init(state.View())

	// Show the director both halves of the first card's pair by mismatching
	partner := board.Partner(0)
	other := 1
	if other == partner {
		other = 2
	}
	state, _ = state.ClickCard(partner)
	state, _ = state.ClickCard(other)
	director.Observe(state.View())
	state, _ = state.Handle(game.Event{Kind: game.MismatchHideEvent, Generation: 1})

	state, _ = state.ClickCard(0)
	director.Observe(state.View())

	idx, ok := director.Act(state.View())
	require.True(t, ok)
	assert.Equal(t, partner, idx)
}

func TestDirector_String(t *testing.T) {
	director := NewDirector(0)
	assert.Equal(t, "Recall[0 seen, 0 matched: ]", director.String())
}

func TestDirector_DrivesController(t *testing.T) {
	config := game.NewGameConfig()
	config.Seed = 9
	config.Director = NewDirector(9)
	config.DirectorInterval = 100 * time.Millisecond

	mock := clock.NewMock()
	controller := game.NewController(config, mock)
	controller.Start()
	defer controller.Stop()

	for step := 0; step < 200 && !controller.State().Session.IsWon(); step++ {
		mock.Add(config.DirectorInterval)
		require.Eventually(t, func() bool {
			return controller.Pump() > 0
		}, time.Second, time.Millisecond)
	}

	state := controller.State()
	require.True(t, state.Session.IsWon())
	assert.Equal(t, game.NumPairs, state.Session.MatchesFound)
	assert.False(t, controller.Scheduler().IsRunning(game.DirectorActEvent))
}
