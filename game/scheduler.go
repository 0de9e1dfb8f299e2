package game

import (
	"github.com/benbjohnson/clock"
	"github.com/gammazero/deque"
	"sync"
	"time"
)

type EventKind int

const (
	TickEvent EventKind = iota
	PreviewEndEvent
	MismatchHideEvent
	DirectorActEvent
)

var eventKindNames = map[EventKind]string{
	TickEvent:         "tick",
	PreviewEndEvent:   "preview-end",
	MismatchHideEvent: "mismatch-hide",
	DirectorActEvent:  "director-act",
}

func (kind EventKind) String() string {
	return eventKindNames[kind]
}

// Event is a timer notification, stamped with the generation of the game
// that asked for it
type Event struct {
	Kind       EventKind
	Generation uint64
}

type ticker struct {
	ticker *clock.Ticker
	done   chan struct{}
}

// Scheduler turns timers into events. Timer callbacks fire on their own
// goroutines and only enqueue; Drain hands the events to whoever runs the
// game loop.
type Scheduler struct {
	clock clock.Clock

	queueLock sync.Mutex
	queue     deque.Deque

	tickersLock sync.Mutex
	tickers     map[EventKind]*ticker
}

func NewScheduler(clk clock.Clock) *Scheduler {
	return &Scheduler{
		clock:   clk,
		tickers: make(map[EventKind]*ticker),
	}
}

func (scheduler *Scheduler) Clock() clock.Clock {
	return scheduler.clock
}

func (scheduler *Scheduler) push(event Event) {
	scheduler.queueLock.Lock()
	defer scheduler.queueLock.Unlock()

	scheduler.queue.PushBack(event)
}

// Drain removes and returns every pending event, oldest first
func (scheduler *Scheduler) Drain() []Event {
	scheduler.queueLock.Lock()
	defer scheduler.queueLock.Unlock()

	events := make([]Event, 0, scheduler.queue.Len())
	for scheduler.queue.Len() > 0 {
		events = append(events, scheduler.queue.PopFront().(Event))
	}
	return events
}

func (scheduler *Scheduler) Pending() int {
	scheduler.queueLock.Lock()
	defer scheduler.queueLock.Unlock()

	return scheduler.queue.Len()
}

// After enqueues event once delay has passed
func (scheduler *Scheduler) After(delay time.Duration, event Event) {
	scheduler.clock.AfterFunc(delay, func() {
		scheduler.push(event)
	})
}

// Every enqueues event each interval until StopEvery is called for its
// kind. Starting a kind that is already running replaces it.
func (scheduler *Scheduler) Every(interval time.Duration, event Event) {
	scheduler.tickersLock.Lock()
	defer scheduler.tickersLock.Unlock()

	scheduler.stopLocked(event.Kind)

	t := &ticker{
		ticker: scheduler.clock.Ticker(interval),
		done:   make(chan struct{}),
	}
	scheduler.tickers[event.Kind] = t

	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				scheduler.push(event)
			}
		}
	}()
}

func (scheduler *Scheduler) StopEvery(kind EventKind) {
	scheduler.tickersLock.Lock()
	defer scheduler.tickersLock.Unlock()

	scheduler.stopLocked(kind)
}

func (scheduler *Scheduler) stopLocked(kind EventKind) {
	if t, running := scheduler.tickers[kind]; running {
		t.ticker.Stop()
		close(t.done)
		delete(scheduler.tickers, kind)
	}
}

func (scheduler *Scheduler) IsRunning(kind EventKind) bool {
	scheduler.tickersLock.Lock()
	defer scheduler.tickersLock.Unlock()

	_, running := scheduler.tickers[kind]
	return running
}

// Stop halts every repeating timer. One-shot timers still fire; their
// events carry a generation and are dropped by the game if stale.
func (scheduler *Scheduler) Stop() {
	scheduler.tickersLock.Lock()
	defer scheduler.tickersLock.Unlock()

	for kind := range scheduler.tickers {
		scheduler.stopLocked(kind)
	}
}
