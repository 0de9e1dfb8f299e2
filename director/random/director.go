package random

import (
	"github.com/they4kman/gomatch/game"
	"math/rand"
)

// Director turns over face-down cards at random, remembering nothing
type Director struct {
	game.BaseDirector

	rand *rand.Rand
}

func NewDirector(seed int64) *Director {
	return &Director{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (director *Director) Act(view game.BoardView) (int, bool) {
	return director.Pick(view.Selectable())
}

// Pick chooses one of candidates
func (director *Director) Pick(candidates []int) (int, bool) {
	if len(candidates) == 0 {
		return game.NoCard, false
	}
	return candidates[director.rand.Intn(len(candidates))], true
}
