package game

import (
	"fmt"
	"unicode"
)

type Card struct {
	idx  int
	face Symbol

	isRevealed, isMatched bool
}

func (card Card) String() string {
	return fmt.Sprintf("Card(%v, %v)", card.X(), card.Y())
}

func (card Card) serialize() string {
	code := symbolCodes[card.face]
	if card.isMatched {
		code = unicode.ToUpper(code)
	}
	return string(code)
}

func (card *Card) deserialize(c rune) bool {
	face, ok := symbolFromCode(unicode.ToLower(c))
	if !ok {
		return false
	}

	card.face = face
	card.isMatched = unicode.IsUpper(c)
	card.isRevealed = card.isMatched
	return true
}

func (card Card) Index() int {
	return card.idx
}

func (card Card) X() int {
	return card.idx % GridWidth
}

func (card Card) Y() int {
	return card.idx / GridWidth
}

func (card Card) Face() Symbol {
	return card.face
}

func (card Card) IsRevealed() bool {
	return card.isRevealed
}

func (card Card) IsMatched() bool {
	return card.isMatched
}

// IsSelectable reports whether a click may turn this card over
func (card Card) IsSelectable() bool {
	return !card.isRevealed && !card.isMatched
}

func (card *Card) reveal() {
	if card.isMatched {
		return
	}
	card.isRevealed = true
}

func (card *Card) hide() {
	if card.isMatched {
		return
	}
	card.isRevealed = false
}

func (card *Card) match() {
	card.isRevealed = true
	card.isMatched = true
}
