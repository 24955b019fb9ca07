// Package view holds the presentation rules layered over a blackjack round:
// how much of the dealer's hand to reveal, how points are written, which
// controls are available and what the result line says. Everything here is
// derived from the round on demand and never stored back into it.
package view

import (
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/blackjack"
)

// HiddenCard is shown in place of the dealer's concealed cards
const HiddenCard = "[hidden]"

// Outcome classifies the result line for styling
type Outcome int

const (
	Pending Outcome = iota
	Win
	Lose
	Push
)

// Result is the text shown once a round is over
type Result struct {
	Text    string
	Outcome Outcome
}

// Controls says which actions the player is offered
type Controls struct {
	ShowHit    bool
	HitEnabled bool
	ShowHold   bool
}

// Table is a fully formatted round, ready to draw
type Table struct {
	PlayerCards  string
	PlayerPoints string
	PlayerBust   bool
	DealerCards  string
	DealerPoints string
	DealerBust   bool
	Revealed     bool
	Controls     Controls
	Result       Result
}

// Render formats r
func Render(r blackjack.Round) Table {
	revealed := DealerRevealed(r)
	return Table{
		PlayerCards:  FormatHand(r.Player, true),
		PlayerPoints: PlayerPoints(r),
		PlayerBust:   r.Player.IsBust(),
		DealerCards:  FormatHand(r.Dealer, revealed),
		DealerPoints: DealerPoints(r),
		DealerBust:   revealed && r.Dealer.IsBust(),
		Revealed:     revealed,
		Controls:     AvailableControls(r),
		Result:       ResultOf(r),
	}
}

// DealerRevealed reports whether the dealer's whole hand may be shown
func DealerRevealed(r blackjack.Round) bool {
	return r.PlayerStands || r.Over
}

// VisibleCards splits h into the cards that may be shown and whether the
// rest is concealed. Only the upcard is visible until revealAll.
func VisibleCards(h blackjack.Hand, revealAll bool) (blackjack.Hand, bool) {
	if !revealAll && len(h) > 0 {
		return h[:1], true
	}
	return h, false
}

// FormatHand writes the cards of h. When revealAll is false only the first
// card is shown, followed by a hidden placeholder.
func FormatHand(h blackjack.Hand, revealAll bool) string {
	shown, hidden := VisibleCards(h, revealAll)
	if hidden {
		return shown.String() + " " + HiddenCard
	}
	return shown.String()
}

// PlayerPoints lists every live total while the player is still deciding
// ("7 | 17"), and the single best total once they stand.
func PlayerPoints(r blackjack.Round) string {
	if r.PlayerStands {
		return strconv.Itoa(r.Player.BestValue())
	}
	var live []string
	for _, v := range r.Player.PossibleValues() {
		if v <= blackjack.Target {
			live = append(live, strconv.Itoa(v))
		}
	}
	if len(live) == 0 {
		return strconv.Itoa(r.Player.BestValue())
	}
	return strings.Join(live, " | ")
}

// DealerPoints is "?" while the hand is concealed, or "1 | 11" when the
// upcard is an Ace. Once revealed it is the dealer's best total.
func DealerPoints(r blackjack.Round) string {
	if !DealerRevealed(r) {
		if len(r.Dealer) > 0 && r.Dealer[0].IsAce() {
			return "1 | 11"
		}
		return "?"
	}
	return strconv.Itoa(r.Dealer.BestValue())
}

// AvailableControls derives the player's actions. Hit is disabled, not
// hidden, once the hand reaches 21.
func AvailableControls(r blackjack.Round) Controls {
	return Controls{
		ShowHit:    r.InProgress() && !r.Player.IsBust(),
		HitEnabled: r.InProgress() && r.Player.BestValue() < blackjack.Target,
		ShowHold:   r.InProgress(),
	}
}

// ResultOf returns the result line for r, empty while the round runs
func ResultOf(r blackjack.Round) Result {
	if !r.Over {
		return Result{Outcome: Pending}
	}
	switch r.Winner {
	case blackjack.Player:
		return Result{Text: "You win!", Outcome: Win}
	case blackjack.Dealer:
		return Result{Text: "Dealer wins!", Outcome: Lose}
	case blackjack.Tie:
		return Result{Text: "It's a tie!", Outcome: Push}
	default:
		return Result{Outcome: Pending}
	}
}
