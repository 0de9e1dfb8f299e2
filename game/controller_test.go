package game

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, preview bool) (*Controller, *clock.Mock) {
	t.Helper()

	config := NewGameConfig()
	config.Seed = 1
	config.Preview = preview
	config.Snapshot = &BoardSnapshot{Seed: 7, SerializedBoard: testBoardSerialized}

	mock := clock.NewMock()
	controller := NewController(config, mock)
	controller.Start()
	t.Cleanup(controller.Stop)

	return controller, mock
}

// pumpUntil drains events until cond holds
func pumpUntil(t *testing.T, controller *Controller, cond func(State) bool) int {
	t.Helper()

	processed := 0
	require.Eventually(t, func() bool {
		processed += controller.Pump()
		return cond(controller.State())
	}, eventually, time.Millisecond)
	return processed
}

func TestController_Start(t *testing.T) {
	controller, _ := newTestController(t, false)
	state := controller.State()

	assert.Equal(t, uint64(1), state.Session.Generation)
	assert.Equal(t, AwaitingFirstSelection, state.Session.Phase)
	assert.Equal(t, testBoardSerialized, state.Board.serialize())
	assert.True(t, controller.Scheduler().IsRunning(TickEvent))
}

func TestController_TicksAdvanceElapsed(t *testing.T) {
	controller, mock := newTestController(t, false)

	for i := 1; i <= 5; i++ {
		mock.Add(TickInterval)
		pumpUntil(t, controller, func(state State) bool {
			return state.Session.ElapsedTicks == i
		})
	}
	assert.Equal(t, "0.5s", controller.State().StatusText())
}

func TestController_Preview(t *testing.T) {
	controller, mock := newTestController(t, true)

	assert.Equal(t, MemorizeText, controller.State().StatusText())
	assert.False(t, controller.Scheduler().IsRunning(TickEvent))

	controller.ClickCard(0)
	assert.False(t, controller.State().Board.cards[0].IsRevealed())

	mock.Add(PreviewDuration)
	pumpUntil(t, controller, func(state State) bool {
		return state.Session.Phase == AwaitingFirstSelection
	})

	assert.Equal(t, "0.0s", controller.State().StatusText())
	assert.False(t, controller.State().Session.InputLocked)
	assert.True(t, controller.Scheduler().IsRunning(TickEvent))
}

func TestController_MismatchHidesAfterDelay(t *testing.T) {
	controller, mock := newTestController(t, false)

	controller.ClickCard(0)
	controller.ClickCard(5)

	state := controller.State()
	assert.True(t, state.FaceShown(0))
	assert.True(t, state.FaceShown(5))
	assert.True(t, state.Session.InputLocked)

	// Clicks during the reveal are dropped, not queued
	controller.ClickCard(4)

	mock.Add(MismatchDelay - time.Millisecond)
	controller.Pump()
	assert.Equal(t, MismatchReveal, controller.State().Session.Phase)

	mock.Add(time.Millisecond)
	pumpUntil(t, controller, func(state State) bool {
		return state.Session.Phase == AwaitingFirstSelection
	})

	state = controller.State()
	assert.False(t, state.FaceShown(0))
	assert.False(t, state.FaceShown(5))
	assert.False(t, state.FaceShown(4))
	assert.False(t, state.Session.InputLocked)
	assert.Equal(t, 0, state.Session.MatchesFound)
}

func TestController_RestartAfterWin(t *testing.T) {
	controller, mock := newTestController(t, false)

	mock.Add(3 * TickInterval)
	pumpUntil(t, controller, func(state State) bool {
		return state.Session.ElapsedTicks > 0
	})

	for _, pair := range testPairs {
		controller.ClickCard(pair[0])
		controller.ClickCard(pair[1])
	}

	won := controller.State()
	require.True(t, won.Session.IsWon())
	assert.Equal(t, NumPairs, won.Session.MatchesFound)
	assert.False(t, controller.Scheduler().IsRunning(TickEvent))

	controller.ClickStatus()
	fresh := controller.State()
	assert.Equal(t, uint64(2), fresh.Session.Generation)
	assert.Equal(t, AwaitingFirstSelection, fresh.Session.Phase)
	assert.Equal(t, 0, fresh.Session.MatchesFound)
	assert.Equal(t, 0, fresh.Session.ElapsedTicks)
	assert.Equal(t, 0, fresh.Board.NumMatched())
	assert.True(t, controller.Scheduler().IsRunning(TickEvent))

	for _, pair := range testPairs {
		controller.ClickCard(pair[0])
		controller.ClickCard(pair[1])
	}
	require.True(t, controller.State().Session.IsWon())

	// A card click restarts too
	controller.ClickCard(3)
	assert.Equal(t, uint64(3), controller.State().Session.Generation)
	assert.False(t, controller.State().FaceShown(3))
}

func TestController_RandomBoardsDifferPerGame(t *testing.T) {
	config := NewGameConfig()
	config.Seed = 5
	config.Preview = false

	controller := NewController(config, clock.NewMock())
	controller.Start()
	defer controller.Stop()

	first := controller.State().Board
	assert.Equal(t, int64(5), first.Seed())

	controller.newGame()
	second := controller.State().Board
	assert.NotEqual(t, first.Seed(), second.Seed())
}

func TestController_StaleMismatchIgnoredAfterRestart(t *testing.T) {
	controller, mock := newTestController(t, true)

	mock.Add(PreviewDuration)
	pumpUntil(t, controller, func(state State) bool {
		return state.Session.Phase == AwaitingFirstSelection
	})

	controller.ClickCard(0)
	controller.ClickCard(5)
	require.Equal(t, MismatchReveal, controller.State().Session.Phase)

	// Restart while the mismatch is still showing
	controller.Start()
	before := controller.State()
	require.Equal(t, uint64(2), before.Session.Generation)
	require.Equal(t, Previewing, before.Session.Phase)

	mock.Add(MismatchDelay)
	processed := 0
	require.Eventually(t, func() bool {
		processed += controller.Pump()
		return processed == 1
	}, eventually, time.Millisecond)

	assert.Equal(t, before, controller.State())
}
