// Package blackjack implements the rules engine for a single-player,
// dealer-vs-player round of Blackjack.
//
// The main type is Round, an immutable-per-step value. Every transition takes
// the current Round and returns the next one; nothing in the package holds
// shared mutable state, so the caller (usually a view) owns the latest value
// and feeds it back on the next call.
//
// # Basic Usage
//
//	r := blackjack.NewRound(randutil.New(seed))
//	r = blackjack.Hit(r)
//	r = blackjack.Hold(r)
//	if r.Over {
//	    fmt.Println(r.Winner)
//	}
//
// Hit and Hold are no-ops on a round that is over or where the player already
// stands, so a view may call them without checking state first.
//
// # Deterministic Testing
//
// The shuffle is the only source of randomness. Pass a seeded RNG to NewRound,
// or deal from an arranged deck for full control over which cards land where:
//
//	r := blackjack.Deal(deck.Arrange(deck.MustParseCards("10s 10h 6d 9c 5s")...))
//
// # Rules
//
//   - Aces count 1 or 11, face cards 10, numerals their face value.
//   - The initial deal alternates player, dealer, player, dealer.
//   - The dealer draws while below 17 and stands on any 17, soft or hard.
//   - If both hands bust the round is a tie.
//   - Reaching 21 does not end the player's turn; only Hold or a bust does.
package blackjack
