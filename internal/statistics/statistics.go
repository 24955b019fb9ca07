package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack/internal/blackjack"
)

// RoundResult is the outcome of one finished round
type RoundResult struct {
	Winner      blackjack.Winner
	PlayerValue int // Player's final best value
	DealerValue int // Dealer's final best value
	PlayerBust  bool
	DealerBust  bool
	PlayerCards int // Cards in the player's final hand
}

// NewRoundResult extracts the result of a finished round
func NewRoundResult(r blackjack.Round) RoundResult {
	return RoundResult{
		Winner:      r.Winner,
		PlayerValue: r.Player.BestValue(),
		DealerValue: r.Dealer.BestValue(),
		PlayerBust:  r.Player.IsBust(),
		DealerBust:  r.Dealer.IsBust(),
		PlayerCards: len(r.Player),
	}
}

// Net scores the round from the player's side: +1 win, -1 loss, 0 tie
func (r RoundResult) Net() float64 {
	switch r.Winner {
	case blackjack.Player:
		return 1
	case blackjack.Dealer:
		return -1
	default:
		return 0
	}
}

// Statistics aggregates round results
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	PlayerWins int
	DealerWins int
	Ties       int

	PlayerBusts int
	DealerBusts int

	// DealerFinal counts dealer standing totals 17..21 at index value-17,
	// with busts at index 5.
	DealerFinal [6]int
}

// Add incorporates a round result
func (s *Statistics) Add(result RoundResult) {
	net := result.Net()
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net

	switch result.Winner {
	case blackjack.Player:
		s.PlayerWins++
	case blackjack.Dealer:
		s.DealerWins++
	case blackjack.Tie:
		s.Ties++
	}

	if result.PlayerBust {
		s.PlayerBusts++
	}
	if result.DealerBust {
		s.DealerBusts++
		s.DealerFinal[5]++
	} else if result.DealerValue >= 17 && result.DealerValue <= blackjack.Target {
		s.DealerFinal[result.DealerValue-17]++
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.PlayerWins += other.PlayerWins
	s.DealerWins += other.DealerWins
	s.Ties += other.Ties
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	for i := range s.DealerFinal {
		s.DealerFinal[i] += other.DealerFinal[i]
	}
}

// Mean returns the average net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the net results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Rate returns n as a fraction of all rounds
func (s *Statistics) Rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}
	if outcomes := s.PlayerWins + s.DealerWins + s.Ties; outcomes != s.Rounds {
		return fmt.Errorf("outcomes (%d) do not match rounds (%d)", outcomes, s.Rounds)
	}
	if net := float64(s.PlayerWins - s.DealerWins); math.Abs(net-s.SumNet) > 1e-6 {
		return fmt.Errorf("net mismatch: wins-losses=%.0f, SumNet=%.6f", net, s.SumNet)
	}
	if s.DealerFinal[5] != s.DealerBusts {
		return fmt.Errorf("dealer bust bucket (%d) does not match dealer busts (%d)",
			s.DealerFinal[5], s.DealerBusts)
	}
	return nil
}
