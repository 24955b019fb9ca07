package blackjack

import (
	"slices"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Target is the highest total a hand can have without busting
const Target = 21

// Hand is the ordered sequence of cards held by the player or the dealer
type Hand []deck.Card

// PossibleValues returns every distinct total the hand can make, sorted
// ascending. Each Ace independently counts 1 or 11. An empty hand is {0}.
func (h Hand) PossibleValues() []int {
	totals := []int{0}
	for _, card := range h {
		points := card.Rank.Points()
		next := make([]int, 0, len(totals)*len(points))
		for _, t := range totals {
			for _, p := range points {
				next = append(next, t+p)
			}
		}
		slices.Sort(next)
		totals = slices.Compact(next)
	}
	return totals
}

// BestValue returns the highest total not over 21. When every total busts it
// returns the lowest one.
func (h Hand) BestValue() int {
	values := h.PossibleValues()
	best := -1
	for _, v := range values {
		if v <= Target {
			best = v
		}
	}
	if best < 0 {
		return values[0]
	}
	return best
}

// IsBust reports whether every possible total exceeds 21
func (h Hand) IsBust() bool {
	return h.PossibleValues()[0] > Target
}

// IsSoft reports whether more than one total is still live, i.e. at least
// one Ace is counting as 11 without busting.
func (h Hand) IsSoft() bool {
	live := 0
	for _, v := range h.PossibleValues() {
		if v <= Target {
			live++
		}
	}
	return live > 1
}

// String returns the cards separated by spaces, e.g. "A♠ 6♦"
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
