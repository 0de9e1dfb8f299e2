package game

import (
	"github.com/pkg/errors"
	"math/rand"
	"strings"
)

type Board struct {
	seed  int64
	cards [NumCards]Card
}

// NewBoard deals every symbol pair onto the grid, shuffled by seed
func NewBoard(seed int64) Board {
	faces := make([]Symbol, 0, NumCards)
	for _, symbol := range Symbols {
		faces = append(faces, symbol, symbol)
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(faces), func(i, j int) {
		faces[i], faces[j] = faces[j], faces[i]
	})

	board := newBoard(seed)
	for idx, face := range faces {
		board.cards[idx].face = face
	}
	return board
}

// BoardFromFaces lays out faces in row-major order. Every symbol must appear
// exactly twice.
func BoardFromFaces(seed int64, faces []Symbol) (Board, error) {
	if len(faces) != NumCards {
		return Board{}, errors.Errorf("board needs %d cards, got %d", NumCards, len(faces))
	}

	board := newBoard(seed)
	for idx, face := range faces {
		board.cards[idx].face = face
	}

	if err := board.validate(); err != nil {
		return Board{}, err
	}
	return board, nil
}

func newBoard(seed int64) Board {
	board := Board{seed: seed}
	for idx := range board.cards {
		board.cards[idx].idx = idx
	}
	return board
}

func (board Board) validate() error {
	counts := make(map[Symbol]int)
	for _, card := range board.cards {
		if _, known := symbolGlyphs[card.face]; !known {
			return errors.Errorf("unknown symbol %d at %v", card.face, card)
		}
		counts[card.face]++
	}

	for _, symbol := range Symbols {
		if counts[symbol] != 2 {
			return errors.Errorf("symbol %s appears %d times, want 2", symbol.Name(), counts[symbol])
		}
	}

	return nil
}

func (board Board) Seed() int64 {
	return board.seed
}

func (board Board) Card(idx int) (Card, bool) {
	if idx < 0 || idx >= NumCards {
		return Card{}, false
	}
	return board.cards[idx], true
}

func (board Board) CardAt(x, y int) (Card, bool) {
	if x < 0 || y < 0 || x >= GridWidth || y >= GridHeight {
		return Card{}, false
	}
	return board.cards[y*GridWidth+x], true
}

func (board Board) Cards() []Card {
	cards := make([]Card, NumCards)
	copy(cards, board.cards[:])
	return cards
}

// Partner returns the index of the other card bearing the same face
func (board Board) Partner(idx int) int {
	face := board.cards[idx].face
	for _, card := range board.cards {
		if card.idx != idx && card.face == face {
			return card.idx
		}
	}
	return NoCard
}

func (board Board) NumMatched() int {
	matched := 0
	for _, card := range board.cards {
		if card.isMatched {
			matched++
		}
	}
	return matched
}

func (board Board) serialize() string {
	rows := make([]string, GridHeight)
	for y := 0; y < GridHeight; y++ {
		var row strings.Builder
		for x := 0; x < GridWidth; x++ {
			row.WriteString(board.cards[y*GridWidth+x].serialize())
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

func (board Board) String() string {
	return board.serialize()
}
