package game

// CardView is a card as the player sees it. Face is only meaningful when
// FaceShown is set.
type CardView struct {
	Index int
	X, Y  int

	Revealed, Matched bool
	FaceShown         bool
	Face              Symbol
}

type BoardView struct {
	Phase       Phase
	InputLocked bool
	Pending     int
	Cards       []CardView
}

// Selectable returns the indexes of every card a click could turn over
func (view BoardView) Selectable() []int {
	selectable := make([]int, 0, len(view.Cards))
	for _, card := range view.Cards {
		if !card.Revealed && !card.Matched && card.Index != view.Pending {
			selectable = append(selectable, card.Index)
		}
	}
	return selectable
}

type Director interface {
	/**
	 * Initialize the director for a new game
	 */
	Init(BoardView)

	/**
	 * Take note of the board after any change
	 */
	Observe(BoardView)

	/**
	 * Pick the next card to click, if any
	 */
	Act(BoardView) (int, bool)

	/**
	 * Stop acting
	 */
	End()
}

// BaseDirector provides no-op lifecycle methods for directors which only
// care about Act
type BaseDirector struct{}

func (BaseDirector) Init(BoardView)    {}
func (BaseDirector) Observe(BoardView) {}
func (BaseDirector) End()              {}
