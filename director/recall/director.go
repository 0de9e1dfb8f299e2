package recall

import (
	"fmt"
	"github.com/they4kman/gomatch/director/random"
	"github.com/they4kman/gomatch/game"
	"github.com/they4kman/gomatch/util/collections"
	"sort"
	"strings"
)

// Director remembers every face it has been shown. It completes a pair
// whenever it knows where both halves are, and otherwise explores cards it
// has never seen.
type Director struct {
	random *random.Director

	seenBySymbol map[game.Symbol]collections.Set[int]
	seen         collections.Set[int]
	matched      collections.Set[int]
}

func NewDirector(seed int64) *Director {
	director := &Director{
		random: random.NewDirector(seed),
	}
	director.reset()
	return director
}

func (director *Director) reset() {
	director.seenBySymbol = make(map[game.Symbol]collections.Set[int])
	director.seen = collections.NewSet[int]()
	director.matched = collections.NewSet[int]()
}

func (director *Director) String() string {
	var memory strings.Builder
	for _, symbol := range game.Symbols {
		indexes := sorted(director.seenBySymbol[symbol])
		if len(indexes) == 0 {
			continue
		}
		memory.WriteString(fmt.Sprintf("%s%v ", symbol.Name(), indexes))
	}
	return fmt.Sprintf("Recall[%d seen, %d matched: %s]", director.seen.Len(), director.matched.Len(), strings.TrimSpace(memory.String()))
}

func (director *Director) Init(view game.BoardView) {
	director.reset()
	director.Observe(view)
}

func (director *Director) Observe(view game.BoardView) {
	for _, card := range view.Cards {
		if card.Matched {
			director.matched.Add(card.Index)
		}
		if !card.FaceShown {
			continue
		}

		director.seen.Add(card.Index)
		if _, ok := director.seenBySymbol[card.Face]; !ok {
			director.seenBySymbol[card.Face] = collections.NewSet[int]()
		}
		director.seenBySymbol[card.Face].Add(card.Index)
	}
}

func (director *Director) End() {}

func (director *Director) Act(view game.BoardView) (int, bool) {
	selectable := collections.NewSet(view.Selectable()...)
	if selectable.Len() == 0 {
		return game.NoCard, false
	}

	if view.Pending != game.NoCard {
		pending := view.Cards[view.Pending]
		if pending.FaceShown {
			partners := director.seenBySymbol[pending.Face].Intersection(selectable)
			if idx, ok := first(partners); ok {
				return idx, true
			}
		}
		return director.explore(selectable)
	}

	for _, symbol := range game.Symbols {
		known := director.seenBySymbol[symbol].Difference(director.matched).Intersection(selectable)
		if known.Len() == 2 {
			idx, _ := first(known)
			return idx, true
		}
	}

	return director.explore(selectable)
}

// explore prefers a card never seen before, falling back to any card
func (director *Director) explore(selectable collections.Set[int]) (int, bool) {
	unseen := selectable.Difference(director.seen)
	if unseen.Len() > 0 {
		return director.random.Pick(sorted(unseen))
	}
	return director.random.Pick(sorted(selectable))
}

func first(set collections.Set[int]) (int, bool) {
	indexes := sorted(set)
	if len(indexes) == 0 {
		return game.NoCard, false
	}
	return indexes[0], true
}

func sorted(set collections.Set[int]) []int {
	indexes := set.Items()
	sort.Ints(indexes)
	return indexes
}
