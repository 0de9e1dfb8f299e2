package game

import "time"

type CommandKind int

const (
	StartTicker CommandKind = iota
	StopTicker
	Schedule
	GameStarted
	GameWon
	NewGame
)

// Command is a side effect requested by a transition. Transitions never
// touch timers or the outside world themselves; the Controller carries
// commands out.
type Command struct {
	Kind  CommandKind
	Event Event
	Delay time.Duration
}

// State is a whole game: the board and its session. Transitions take a
// State by value and hand back the next one.
type State struct {
	Board   Board
	Session Session
}

// NewState starts a game on board. With preview, every face is shown for
// PreviewDuration before play begins.
func NewState(board Board, generation uint64, preview bool) (State, []Command) {
	state := State{
		Board:   board,
		Session: newSession(generation),
	}

	commands := []Command{{Kind: GameStarted}}
	if preview {
		state.Session.Phase = Previewing
		state.Session.InputLocked = true
		commands = append(commands, Command{
			Kind:  Schedule,
			Event: Event{Kind: PreviewEndEvent, Generation: generation},
			Delay: PreviewDuration,
		})
	} else {
		state.Session.Phase = AwaitingFirstSelection
		commands = append(commands, Command{
			Kind:  StartTicker,
			Event: Event{Kind: TickEvent, Generation: generation},
			Delay: TickInterval,
		})
	}

	return state, commands
}

// FaceShown reports whether the card's face is visible to the player
func (state State) FaceShown(idx int) bool {
	card, ok := state.Board.Card(idx)
	if !ok {
		return false
	}
	return state.Session.Phase == Previewing || card.isRevealed || card.isMatched
}

func (state State) StatusText() string {
	switch state.Session.Phase {
	case Previewing:
		return MemorizeText
	case Won:
		return state.Session.Elapsed() + PlayAgainSuffix
	default:
		return state.Session.Elapsed()
	}
}

// ClickCard handles a click on the card at idx
func (state State) ClickCard(idx int) (State, []Command) {
	session := state.Session

	if session.IsWon() {
		return state, []Command{{Kind: NewGame}}
	}
	if session.InputLocked {
		return state, nil
	}

	card, ok := state.Board.Card(idx)
	if !ok || !card.IsSelectable() {
		return state, nil
	}

	switch session.Phase {
	case AwaitingFirstSelection:
		state.Board.cards[idx].reveal()
		state.Session.Pending = idx
		state.Session.Phase = AwaitingSecondSelection
		return state, nil

	case AwaitingSecondSelection:
		return state.selectSecond(idx)
	}

	return state, nil
}

func (state State) selectSecond(idx int) (State, []Command) {
	first := state.Session.Pending
	if first == idx {
		return state, nil
	}

	state.Board.cards[idx].reveal()
	state.Session.Pending = NoCard

	if state.Board.cards[first].face != state.Board.cards[idx].face {
		state.Session.Phase = MismatchReveal
		state.Session.InputLocked = true
		state.Session.Mismatch = [2]int{first, idx}
		return state, []Command{{
			Kind:  Schedule,
			Event: Event{Kind: MismatchHideEvent, Generation: state.Session.Generation},
			Delay: MismatchDelay,
		}}
	}

	state.Board.cards[first].match()
	state.Board.cards[idx].match()
	state.Session.MatchesFound++

	if state.Session.MatchesFound < NumPairs {
		state.Session.Phase = AwaitingFirstSelection
		return state, nil
	}

	state.Session.Phase = Won
	state.Session.InputLocked = false
	return state, []Command{
		{Kind: StopTicker},
		{Kind: GameWon},
	}
}

// ClickStatus handles a click on the status text; it only restarts a won game
func (state State) ClickStatus() (State, []Command) {
	if state.Session.IsWon() {
		return state, []Command{{Kind: NewGame}}
	}
	return state, nil
}

// Handle applies a scheduled event. Events from another generation are
// dropped without effect.
func (state State) Handle(event Event) (State, []Command) {
	if event.Generation != state.Session.Generation {
		return state, nil
	}

	switch event.Kind {
	case TickEvent:
		return state.tick()
	case PreviewEndEvent:
		return state.endPreview()
	case MismatchHideEvent:
		return state.hideMismatch()
	}
	return state, nil
}

func (state State) tick() (State, []Command) {
	if !state.Session.IsRunning() {
		return state, nil
	}
	state.Session.ElapsedTicks++
	return state, nil
}

func (state State) endPreview() (State, []Command) {
	if state.Session.Phase != Previewing {
		return state, nil
	}

	state.Session.Phase = AwaitingFirstSelection
	state.Session.ElapsedTicks = 0
	state.Session.InputLocked = false
	return state, []Command{{
		Kind:  StartTicker,
		Event: Event{Kind: TickEvent, Generation: state.Session.Generation},
		Delay: TickInterval,
	}}
}

func (state State) hideMismatch() (State, []Command) {
	if state.Session.Phase != MismatchReveal {
		return state, nil
	}

	for _, idx := range state.Session.Mismatch {
		if idx != NoCard {
			state.Board.cards[idx].hide()
		}
	}

	state.Session.Mismatch = [2]int{NoCard, NoCard}
	state.Session.Pending = NoCard
	state.Session.Phase = AwaitingFirstSelection
	state.Session.InputLocked = false
	return state, nil
}

// View exposes the board the way the player sees it
func (state State) View() BoardView {
	view := BoardView{
		Phase:       state.Session.Phase,
		InputLocked: state.Session.InputLocked,
		Pending:     state.Session.Pending,
		Cards:       make([]CardView, NumCards),
	}

	for idx, card := range state.Board.cards {
		cardView := CardView{
			Index:    idx,
			X:        card.X(),
			Y:        card.Y(),
			Revealed: card.isRevealed,
			Matched:  card.isMatched,
		}
		if state.FaceShown(idx) {
			cardView.Face = card.face
			cardView.FaceShown = true
		}
		view.Cards[idx] = cardView
	}
	return view
}
