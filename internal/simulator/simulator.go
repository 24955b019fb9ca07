package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// checkEvery is how many rounds a worker plays between context checks
const checkEvery = 1024

// Strategy decides the player's move on a round in progress
type Strategy interface {
	ShouldHit(r blackjack.Round) bool
}

// Threshold hits while the player's best value is below StandOn
type Threshold struct {
	StandOn int
}

// ShouldHit implements Strategy
func (t Threshold) ShouldHit(r blackjack.Round) bool {
	return r.Player.BestValue() < t.StandOn
}

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Workers  int
	Seed     int64 // 0 picks a seed from Clock
	Strategy Strategy
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Result is the outcome of a simulation run
type Result struct {
	Stats   *statistics.Statistics
	Seed    int64
	Workers int
	Elapsed time.Duration
}

// Simulator plays many independent rounds
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Strategy == nil {
		config.Strategy = Threshold{StandOn: 17}
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rounds. Results depend only on the seed,
// the worker count and the strategy: each worker owns an RNG derived from the
// seed and the per-worker statistics are merged in worker order.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	seed := randutil.Resolve(s.config.Seed, s.config.Clock)
	workers := min(s.config.Workers, s.config.Rounds)
	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("Starting simulation", "rounds", s.config.Rounds, "workers", workers, "seed", seed)

	start := s.config.Clock.Now()
	perWorker := make([]statistics.Statistics, workers)
	perRound, remainder := s.config.Rounds/workers, s.config.Rounds%workers

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		rounds := perRound
		if w < remainder {
			rounds++
		}
		rng := randutil.New(randutil.Derive(seed, w))

		g.Go(func() error {
			return s.runWorker(ctx, rng, rounds, &perWorker[w])
		})
	}

	if err := g.Wait(); err != nil {
		logger.Warn("Simulation stopped", "error", err)
		return nil, fmt.Errorf("simulation interrupted: %w", err)
	}

	stats := &statistics.Statistics{}
	for i := range perWorker {
		stats.Merge(&perWorker[i])
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Now().Sub(start)
	logger.Info("Simulation complete", "rounds", stats.Rounds, "elapsed", elapsed)

	return &Result{
		Stats:   stats,
		Seed:    seed,
		Workers: workers,
		Elapsed: elapsed,
	}, nil
}

func (s *Simulator) runWorker(ctx context.Context, rng *rand.Rand, rounds int, stats *statistics.Statistics) error {
	for i := 0; i < rounds; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		stats.Add(statistics.NewRoundResult(PlayRound(rng, s.config.Strategy)))
	}
	return nil
}

// PlayRound deals a round with rng and plays it to the end with strategy
func PlayRound(rng *rand.Rand, strategy Strategy) blackjack.Round {
	r := blackjack.NewRound(rng)
	for r.InProgress() {
		if strategy.ShouldHit(r) {
			r = blackjack.Hit(r)
		} else {
			r = blackjack.Hold(r)
		}
	}
	return r
}

// PrintSummary writes a human readable report of res to w
func PrintSummary(w io.Writer, res *Result, standOn int) {
	stats := res.Stats
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS (stand on %d) ===\n", standOn)
	fmt.Fprintf(w, "Rounds played: %d (seed %d, %d workers, %s)\n",
		stats.Rounds, res.Seed, res.Workers, res.Elapsed.Round(time.Millisecond))

	fmt.Fprintf(w, "\n=== OUTCOMES ===\n")
	fmt.Fprintf(w, "Player wins: %d (%.2f%%)\n", stats.PlayerWins, stats.Rate(stats.PlayerWins)*100)
	fmt.Fprintf(w, "Dealer wins: %d (%.2f%%)\n", stats.DealerWins, stats.Rate(stats.DealerWins)*100)
	fmt.Fprintf(w, "Ties: %d (%.2f%%)\n", stats.Ties, stats.Rate(stats.Ties)*100)
	fmt.Fprintf(w, "Player busts: %d (%.2f%%)\n", stats.PlayerBusts, stats.Rate(stats.PlayerBusts)*100)

	fmt.Fprintf(w, "\n=== STATISTICAL RESULTS ===\n")
	fmt.Fprintf(w, "Mean: %+.4f per round\n", stats.Mean())
	fmt.Fprintf(w, "Std Dev: %.4f\n", stats.StdDev())
	fmt.Fprintf(w, "Std Error: %.4f\n", stats.StdError())
	fmt.Fprintf(w, "95%% CI: [%+.4f, %+.4f]\n", low, high)

	fmt.Fprintf(w, "\n=== DEALER FINAL TOTALS ===\n")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(w, "%d: %.2f%%\n", 17+i, stats.Rate(stats.DealerFinal[i])*100)
	}
	fmt.Fprintf(w, "Bust: %.2f%%\n", stats.Rate(stats.DealerFinal[5])*100)
}
