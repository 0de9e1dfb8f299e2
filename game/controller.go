package game

import (
	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	"math/rand"
)

// Controller owns the current game and carries out the commands its
// transitions produce. Every method must be called from the same goroutine
// (the window loop); timers reach the game only through Pump.
type Controller struct {
	config    GameConfig
	scheduler *Scheduler
	rand      *rand.Rand
	nextSeed  int64

	state State
	log   *logrus.Entry
}

func NewController(config GameConfig, clk clock.Clock) *Controller {
	return &Controller{
		config:    config,
		scheduler: NewScheduler(clk),
		rand:      rand.New(rand.NewSource(config.Seed)),
		nextSeed:  config.Seed,
		log:       logrus.WithField("component", "controller"),
	}
}

// Start deals the first game
func (controller *Controller) Start() {
	controller.newGame()
}

// Stop halts every repeating timer
func (controller *Controller) Stop() {
	controller.scheduler.Stop()
	if controller.config.Director != nil && !controller.state.Session.IsWon() {
		controller.config.Director.End()
	}
}

func (controller *Controller) State() State {
	return controller.state
}

func (controller *Controller) Scheduler() *Scheduler {
	return controller.scheduler
}

func (controller *Controller) entry() *logrus.Entry {
	return controller.log.WithField("generation", controller.state.Session.Generation)
}

func (controller *Controller) newGame() {
	seed := controller.nextSeed
	controller.nextSeed = controller.rand.Int63()

	board := controller.config.createBoard(seed)
	generation := controller.state.Session.Generation + 1

	controller.scheduler.StopEvery(TickEvent)
	controller.scheduler.StopEvery(DirectorActEvent)

	state, commands := NewState(board, generation, controller.config.Preview)
	controller.apply(state, commands)
}

// ClickCard forwards a click on the card at idx to the game
func (controller *Controller) ClickCard(idx int) {
	prev := controller.state
	next, commands := prev.ClickCard(idx)

	log := controller.entry().WithField("card", idx)
	switch {
	case next.Session.MatchesFound > prev.Session.MatchesFound:
		log.WithField("matches", next.Session.MatchesFound).Debug("pair matched")
	case next.Session.Phase == MismatchReveal && prev.Session.Phase != MismatchReveal:
		log.WithField("cards", next.Session.Mismatch).Debug("mismatch")
	case next.Session.Pending != prev.Session.Pending && next.Session.HasPending():
		log.Debug("card revealed")
	}

	controller.apply(next, commands)
}

// ClickStatus forwards a click on the status text to the game
func (controller *Controller) ClickStatus() {
	controller.apply(controller.state.ClickStatus())
}

// Pump processes every event the scheduler has collected since the last
// call, returning how many there were
func (controller *Controller) Pump() int {
	events := controller.scheduler.Drain()
	for _, event := range events {
		if event.Kind == DirectorActEvent {
			controller.directorAct(event)
			continue
		}

		next, commands := controller.state.Handle(event)
		if event.Kind != TickEvent && event.Generation != controller.state.Session.Generation {
			controller.entry().WithField("event", event.Kind).Debug("dropped stale event")
		}
		controller.apply(next, commands)
	}
	return len(events)
}

func (controller *Controller) directorAct(event Event) {
	director := controller.config.Director
	session := controller.state.Session
	if director == nil || event.Generation != session.Generation {
		return
	}
	if session.InputLocked || session.IsWon() {
		return
	}

	if idx, ok := director.Act(controller.state.View()); ok {
		controller.ClickCard(idx)
	}
}

func (controller *Controller) apply(next State, commands []Command) {
	controller.state = next

	for _, command := range commands {
		switch command.Kind {
		case StartTicker:
			controller.scheduler.Every(command.Delay, command.Event)

		case StopTicker:
			controller.scheduler.StopEvery(TickEvent)

		case Schedule:
			controller.scheduler.After(command.Delay, command.Event)

		case GameStarted:
			controller.entry().WithFields(logrus.Fields{
				"seed":    controller.state.Board.Seed(),
				"preview": controller.config.Preview,
			}).Info("game started")

			if director := controller.config.Director; director != nil {
				director.Init(controller.state.View())
				controller.scheduler.Every(controller.config.DirectorInterval, Event{
					Kind:       DirectorActEvent,
					Generation: controller.state.Session.Generation,
				})
			}

		case GameWon:
			controller.entry().WithFields(logrus.Fields{
				"seed":    controller.state.Board.Seed(),
				"elapsed": controller.state.Session.Elapsed(),
			}).Info("game won")

			if director := controller.config.Director; director != nil {
				controller.scheduler.StopEvery(DirectorActEvent)
				director.End()
				controller.entry().WithField("director", director).Debug("director finished")
			}
			controller.config.onGameEnd(controller.state)

		case NewGame:
			controller.newGame()
			return
		}
	}

	if director := controller.config.Director; director != nil {
		director.Observe(controller.state.View())
	}
}
