// Package simulator plays blackjack rounds headlessly with a fixed
// hit-below-threshold policy and collects outcome statistics.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/AP-2007/Black-Jack/internal/deck"
	"github.com/AP-2007/Black-Jack/internal/game"
	"github.com/AP-2007/Black-Jack/internal/randutil"
	"github.com/AP-2007/Black-Jack/internal/statistics"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	StandOn int   // Player hits while below this total
	Seed    int64 // 0 derives a seed from Clock
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Validate checks the configuration before a run
func (c Config) Validate() error {
	if c.Rounds <= 0 {
		return fmt.Errorf("rounds must be positive, got %d", c.Rounds)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.StandOn < 12 || c.StandOn > game.Blackjack {
		return fmt.Errorf("stand-on must be between 12 and %d, got %d", game.Blackjack, c.StandOn)
	}
	return nil
}

// Simulator runs blackjack round simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers > config.Rounds && config.Rounds > 0 {
		config.Workers = config.Rounds
	}
	return &Simulator{config: config}
}

// Seed returns the seed the run uses, deriving one from the clock on the
// first call when none was configured.
func (s *Simulator) Seed() int64 {
	if s.config.Seed == 0 {
		s.config.Seed = randutil.Seed(s.config.Clock)
	}
	return s.config.Seed
}

// Run plays every configured round and returns the merged results. Each
// worker owns its engine and a shuffle stream derived from the seed, so a
// given seed and worker count always produce the same statistics.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	seed := s.Seed()
	logger := s.config.Logger.WithPrefix("sim")
	start := s.config.Clock.Now()

	logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"workers", s.config.Workers,
		"stand_on", s.config.StandOn,
		"seed", seed)

	results := make([]*statistics.Statistics, s.config.Workers)
	g, ctx := errgroup.WithContext(ctx)

	for w := range s.config.Workers {
		rounds := s.config.Rounds / s.config.Workers
		if w < s.config.Rounds%s.config.Workers {
			rounds++
		}

		g.Go(func() error {
			engine := game.NewEngine(
				game.WithRNG(randutil.New(randutil.Derive(seed, w))),
				game.WithClock(s.config.Clock),
				game.WithLogger(logger.With("worker", w)),
			)

			stats := &statistics.Statistics{}
			for round := 0; round < rounds; round++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				result, err := s.playRound(engine)
				if err != nil {
					return fmt.Errorf("worker %d round %d: %w", w, round+1, err)
				}
				stats.Add(result)
			}
			results[w] = stats

			logger.Debug("Worker finished", "worker", w, "rounds", rounds)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Merge(r)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"mean", fmt.Sprintf("%.4f", stats.Mean()),
		"elapsed", s.config.Clock.Since(start))

	return stats, nil
}

// playRound deals a round and plays it out with the threshold policy
func (s *Simulator) playRound(engine *game.Engine) (statistics.RoundResult, error) {
	if err := engine.StartRound(); err != nil {
		return statistics.RoundResult{}, err
	}
	natural := engine.Snapshot().PlayerValue == game.Blackjack

	for engine.Phase() == game.PhaseInProgress {
		var err error
		if engine.Snapshot().PlayerValue < s.config.StandOn {
			err = engine.Hit()
		} else {
			err = engine.Stand()
		}
		// A short deck still settles the round; anything else is a bug.
		if err != nil && !errors.Is(err, deck.ErrExhausted) {
			return statistics.RoundResult{}, err
		}
	}

	snap := engine.Snapshot()
	return resultFor(snap.Outcome, natural), nil
}

func resultFor(outcome game.Outcome, natural bool) statistics.RoundResult {
	result := statistics.RoundResult{Natural: natural}
	switch outcome.Result() {
	case game.ResultWin:
		result.Net = 1
	case game.ResultLoss:
		result.Net = -1
	}
	result.PlayerBust = outcome == game.OutcomePlayerBust
	result.DealerBust = outcome == game.OutcomeDealerBust
	return result
}

// RunSimulation is a convenience function that creates and runs a simulator
func RunSimulation(ctx context.Context, rounds, workers, standOn int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Rounds:  rounds,
		Workers: workers,
		StandOn: standOn,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
}
