package statistics

import (
	"fmt"
	"math"
)

// RoundResult represents the outcome of a single blackjack round from the
// player's side
type RoundResult struct {
	Net        float64 // +1 win, -1 loss, 0 push
	PlayerBust bool
	DealerBust bool
	Natural    bool // Player was dealt a two-card 21
}

// Statistics tracks simulation statistics
type Statistics struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int

	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	PlayerBusts int // Losses from going over 21
	DealerBusts int // Wins from the dealer going over 21
	Naturals    int // Rounds dealt a two-card 21
}

// Mean returns the mean net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
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

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	return s.rate(s.Wins)
}

// LossRate returns the fraction of rounds lost
func (s *Statistics) LossRate() float64 {
	return s.rate(s.Losses)
}

// PushRate returns the fraction of rounds pushed
func (s *Statistics) PushRate() float64 {
	return s.rate(s.Pushes)
}

func (s *Statistics) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++
	s.SumNet += result.Net
	s.SumNet2 += result.Net * result.Net

	switch {
	case result.Net > 0:
		s.Wins++
	case result.Net < 0:
		s.Losses++
	default:
		s.Pushes++
	}

	if result.PlayerBust {
		s.PlayerBusts++
	}
	if result.DealerBust {
		s.DealerBusts++
	}
	if result.Natural {
		s.Naturals++
	}
}

// Merge folds other into s. Used to combine per-worker statistics.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts
	s.Naturals += other.Naturals
}

// IsLedgerBalanced checks that the net total matches the win and loss counts
func (s *Statistics) IsLedgerBalanced() bool {
	return math.Abs(s.SumNet-float64(s.Wins-s.Losses)) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if total := s.Wins + s.Losses + s.Pushes; total != s.Rounds {
		return fmt.Errorf("results total (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net=%.6f, wins=%d, losses=%d", s.SumNet, s.Wins, s.Losses)
	}

	if s.PlayerBusts > s.Losses {
		return fmt.Errorf("player busts (%d) exceed losses (%d)", s.PlayerBusts, s.Losses)
	}
	if s.DealerBusts > s.Wins {
		return fmt.Errorf("dealer busts (%d) exceed wins (%d)", s.DealerBusts, s.Wins)
	}

	return nil
}
