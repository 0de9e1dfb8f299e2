package game

import "fmt"

// Session is the transient bookkeeping of a single game. It is rebuilt on
// every new game; Generation tells games apart so events scheduled by an
// earlier game can be recognised and dropped.
type Session struct {
	Generation uint64
	Phase      Phase

	ElapsedTicks int
	MatchesFound int

	Pending  int
	Mismatch [2]int

	InputLocked bool
}

func newSession(generation uint64) Session {
	return Session{
		Generation: generation,
		Pending:    NoCard,
		Mismatch:   [2]int{NoCard, NoCard},
	}
}

func (session Session) HasPending() bool {
	return session.Pending != NoCard
}

func (session Session) IsWon() bool {
	return session.Phase == Won
}

// IsRunning reports whether the clock should be counting
func (session Session) IsRunning() bool {
	switch session.Phase {
	case AwaitingFirstSelection, AwaitingSecondSelection, MismatchReveal:
		return true
	default:
		return false
	}
}

func (session Session) Elapsed() string {
	return FormatElapsed(session.ElapsedTicks)
}

// FormatElapsed renders a tick count as seconds with one decimal
func FormatElapsed(ticks int) string {
	seconds := float64(ticks) * TickInterval.Seconds()
	return fmt.Sprintf("%.1fs", seconds)
}
