package deck

import (
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck is an ordered sequence of cards still to be dealt. Index 0 is the
// next card drawn. Methods never modify the receiver's backing array, so a
// Deck can be shared freely between round values.
type Deck []Card

// Canonical returns the 52 cards in suit-major order, unshuffled
func Canonical() Deck {
	d := make(Deck, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d = append(d, NewCard(suit, rank))
		}
	}
	return d
}

// New creates a standard 52-card deck shuffled with rng
func New(rng *rand.Rand) Deck {
	return Canonical().Shuffle(rng)
}

// Shuffle returns a uniformly permuted copy of the deck using Fisher-Yates
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	out := make(Deck, len(d))
	copy(out, d)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Arrange returns a full deck with top placed first, in order, followed by
// the remaining cards in canonical order. It panics if top repeats a card.
func Arrange(top ...Card) Deck {
	used := make(map[Card]bool, len(top))
	d := make(Deck, 0, Size)
	for _, c := range top {
		if !c.Valid() {
			panic(fmt.Sprintf("deck: invalid card %v", c))
		}
		if used[c] {
			panic(fmt.Sprintf("deck: duplicate card %s", c))
		}
		used[c] = true
		d = append(d, c)
	}
	for _, c := range Canonical() {
		if !used[c] {
			d = append(d, c)
		}
	}
	return d
}

// Draw returns the top card and the deck without it. Drawing from an empty
// deck is a programming error and panics.
func (d Deck) Draw() (Card, Deck) {
	if len(d) == 0 {
		panic("deck: draw from empty deck")
	}
	return d[0], d[1:]
}

// Peek returns the top card without removing it from the deck
func (d Deck) Peek() (Card, bool) {
	if len(d) == 0 {
		return Card{}, false
	}
	return d[0], true
}

// CardsRemaining returns the number of cards left in the deck
func (d Deck) CardsRemaining() int {
	return len(d)
}

// IsEmpty returns true if the deck has no cards left
func (d Deck) IsEmpty() bool {
	return len(d) == 0
}
