package blackjack

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/stretchr/testify/assert"
)

func hand(s string) Hand {
	return Hand(deck.MustParseCards(s))
}

func TestHandValues(t *testing.T) {
	tests := []struct {
		name   string
		cards  string
		values []int
		best   int
		bust   bool
		soft   bool
	}{
		{name: "empty", cards: "", values: []int{0}, best: 0},
		{name: "single ace", cards: "As", values: []int{1, 11}, best: 11, soft: true},
		{name: "two aces dedup", cards: "As Ah", values: []int{2, 12, 22}, best: 12, soft: true},
		{name: "face cards", cards: "Ks Qh", values: []int{20}, best: 20},
		{name: "face cards bust", cards: "Ks Qh 5d", values: []int{25}, best: 25, bust: true},
		{name: "soft seventeen", cards: "As 6d", values: []int{7, 17}, best: 17, soft: true},
		{name: "ace forced low", cards: "As 9d 5c", values: []int{15, 25}, best: 15},
		{name: "blackjack", cards: "Ad Jc", values: []int{11, 21}, best: 21, soft: true},
		{name: "three aces", cards: "As Ah Ad", values: []int{3, 13, 23, 33}, best: 13, soft: true},
		{name: "four aces and a king", cards: "As Ah Ad Ac Ks", values: []int{14, 24, 34, 44, 54}, best: 14},
		{name: "bust reports lowest", cards: "As Kd Qc 5h", values: []int{26, 36}, best: 26, bust: true},
		{name: "numerals", cards: "2s 3h 4d 10c", values: []int{19}, best: 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.cards)
			assert.Equal(t, tt.values, h.PossibleValues())
			assert.Equal(t, tt.best, h.BestValue())
			assert.Equal(t, tt.bust, h.IsBust())
			assert.Equal(t, tt.soft, h.IsSoft())
		})
	}
}

func TestHandValuesPanicOnInvalidCard(t *testing.T) {
	h := Hand{{Suit: deck.Spades, Rank: deck.Rank(0)}}
	assert.Panics(t, func() { h.PossibleValues() })
}

func TestHandString(t *testing.T) {
	assert.Equal(t, "10♠ 6♦ 5♠", hand("10s 6d 5s").String())
	assert.Equal(t, "", Hand(nil).String())
}
