package game

import "time"

type Symbol int
type Phase int

const (
	Octopus Symbol = iota
	Fish
	Horse
	Elephant
	Camel
	Dinosaur
	Kangaroo
	Hedgehog
)

var Symbols = []Symbol{
	Octopus,
	Fish,
	Horse,
	Elephant,
	Camel,
	Dinosaur,
	Kangaroo,
	Hedgehog,
}

var symbolGlyphs = map[Symbol]string{
	Octopus:  "🐙",
	Fish:     "🐟",
	Horse:    "🐎",
	Elephant: "🐘",
	Camel:    "🐪",
	Dinosaur: "🦕",
	Kangaroo: "🦘",
	Hedgehog: "🦔",
}

var symbolNames = map[Symbol]string{
	Octopus:  "OCTOPUS",
	Fish:     "FISH",
	Horse:    "HORSE",
	Elephant: "ELEPHANT",
	Camel:    "CAMEL",
	Dinosaur: "DINO",
	Kangaroo: "KANGAROO",
	Hedgehog: "HEDGEHOG",
}

// Snapshot codes; upper case marks a matched card
var symbolCodes = map[Symbol]rune{
	Octopus:  'o',
	Fish:     'f',
	Horse:    'h',
	Elephant: 'e',
	Camel:    'c',
	Dinosaur: 'd',
	Kangaroo: 'k',
	Hedgehog: 'g',
}

func (symbol Symbol) Glyph() string {
	return symbolGlyphs[symbol]
}

func (symbol Symbol) Name() string {
	return symbolNames[symbol]
}

func (symbol Symbol) String() string {
	return symbol.Glyph()
}

func symbolFromCode(c rune) (Symbol, bool) {
	for symbol, code := range symbolCodes {
		if code == c {
			return symbol, true
		}
	}
	return 0, false
}

const (
	Previewing Phase = iota
	AwaitingFirstSelection
	AwaitingSecondSelection
	MismatchReveal
	Won
)

var phaseNames = map[Phase]string{
	Previewing:              "previewing",
	AwaitingFirstSelection:  "awaiting-first",
	AwaitingSecondSelection: "awaiting-second",
	MismatchReveal:          "mismatch-reveal",
	Won:                     "won",
}

func (phase Phase) String() string {
	return phaseNames[phase]
}

const (
	GridWidth  = 4
	GridHeight = 4
	NumCards   = GridWidth * GridHeight
	NumPairs   = NumCards / 2

	// Sentinel index for "no card"
	NoCard = -1
)

const (
	TickInterval    = 100 * time.Millisecond
	MismatchDelay   = 500 * time.Millisecond
	PreviewDuration = 2 * time.Second
)

const (
	FaceDownText    = "?"
	MemorizeText    = "Memorize!"
	PlayAgainSuffix = " - Play again?"
)
