package blackjack

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lox/blackjack/internal/deck"
)

// Winner is the outcome of a round
type Winner int

const (
	None Winner = iota
	Player
	Dealer
	Tie
)

// String returns the string representation of a winner
func (w Winner) String() string {
	switch w {
	case None:
		return "none"
	case Player:
		return "player"
	case Dealer:
		return "dealer"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Round is the complete state of one round. Winner is None until Over is
// set, and PlayerStands is always true once the round is over.
type Round struct {
	Deck         deck.Deck
	Player       Hand
	Dealer       Hand
	PlayerStands bool
	Over         bool
	Winner       Winner
}

// NewRound shuffles a fresh deck with rng and deals the opening hands
func NewRound(rng *rand.Rand) Round {
	return Deal(deck.New(rng))
}

// Deal deals the opening hands from d: the player receives the first and
// third cards, the dealer the second and fourth. d itself is not modified.
func Deal(d deck.Deck) Round {
	if len(d) < 4 {
		panic(fmt.Sprintf("blackjack: cannot deal from a deck of %d cards", len(d)))
	}
	return Round{
		Deck:   d[4:],
		Player: Hand{d[0], d[2]},
		Dealer: Hand{d[1], d[3]},
		Winner: None,
	}
}

// InProgress reports whether the player can still act
func (r Round) InProgress() bool {
	return !r.Over && !r.PlayerStands
}

// CardsInPlay returns the number of cards across the deck and both hands.
// It stays constant for the life of a round.
func (r Round) CardsInPlay() int {
	return len(r.Deck) + len(r.Player) + len(r.Dealer)
}

// Hit draws one card for the player. A bust ends the round immediately:
// the dealer plays out and the winner is decided. Hitting a round that is
// over, or where the player stands, returns r unchanged.
func Hit(r Round) Round {
	if !r.InProgress() {
		return r
	}
	next := r.clone()
	next.Player = next.draw(next.Player)
	if next.Player.IsBust() {
		next.PlayerStands = true
		next.finish()
	}
	return next
}

// Hold ends the player's turn. The dealer plays out and the winner is
// decided. Holding a round that is over, or where the player already
// stands, returns r unchanged.
func Hold(r Round) Round {
	if !r.InProgress() {
		return r
	}
	next := r.clone()
	next.PlayerStands = true
	next.finish()
	return next
}

// finish runs the dealer to completion and closes the round
func (r *Round) finish() {
	for DealerShouldDraw(r.Dealer) {
		r.Dealer = r.draw(r.Dealer)
	}
	r.Winner = DetermineWinner(r.Player, r.Dealer)
	r.Over = true
}

func (r *Round) draw(h Hand) Hand {
	var card deck.Card
	card, r.Deck = r.Deck.Draw()
	return append(h, card)
}

// clone copies the hands so appends on the result never write into the
// backing arrays of the caller's value. The deck only ever shrinks from the
// front and can be shared.
func (r Round) clone() Round {
	r.Player = slices.Clone(r.Player)
	r.Dealer = slices.Clone(r.Dealer)
	return r
}

// DealerShouldDraw reports whether the dealer must take another card. The
// dealer stands on any 17.
func DealerShouldDraw(h Hand) bool {
	return h.BestValue() < 17 && !h.IsBust()
}

// DetermineWinner decides a round from the two final hands
func DetermineWinner(player, dealer Hand) Winner {
	playerBust, dealerBust := player.IsBust(), dealer.IsBust()
	switch {
	case playerBust && dealerBust:
		return Tie
	case playerBust:
		return Dealer
	case dealerBust:
		return Player
	}

	playerValue, dealerValue := player.BestValue(), dealer.BestValue()
	switch {
	case playerValue > dealerValue:
		return Player
	case dealerValue > playerValue:
		return Dealer
	default:
		return Tie
	}
}

// HandSummary is the display-ready valuation of one hand
type HandSummary struct {
	Cards  Hand
	Values []int
	Best   int
	Bust   bool
	Soft   bool
}

// Summary is everything a view needs to render a round. It is always
// complete; hiding the dealer's hole card is the view's decision.
type Summary struct {
	Player       HandSummary
	Dealer       HandSummary
	PlayerStands bool
	Over         bool
	Winner       Winner
	DeckSize     int
}

// Summary values both hands of r
func (r Round) Summary() Summary {
	return Summary{
		Player:       summarize(r.Player),
		Dealer:       summarize(r.Dealer),
		PlayerStands: r.PlayerStands,
		Over:         r.Over,
		Winner:       r.Winner,
		DeckSize:     len(r.Deck),
	}
}

func summarize(h Hand) HandSummary {
	return HandSummary{
		Cards:  slices.Clone(h),
		Values: h.PossibleValues(),
		Best:   h.BestValue(),
		Bust:   h.IsBust(),
		Soft:   h.IsSoft(),
	}
}
