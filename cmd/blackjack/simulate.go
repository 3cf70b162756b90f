package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/AP-2007/Black-Jack/internal/config"
	"github.com/AP-2007/Black-Jack/internal/simulator"
	"github.com/AP-2007/Black-Jack/internal/statistics"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

type SimulateCmd struct {
	Rounds  int   `short:"n" help:"Number of rounds to simulate (overrides config)"`
	Workers int   `short:"w" help:"Parallel workers (overrides config)"`
	StandOn int   `help:"Player hits below this total and stands at or above it (overrides config)"`
	Seed    int64 `help:"RNG seed (overrides config, 0 for random)"`
	Verbose bool  `short:"V" help:"Verbose logging"`
}

func (s *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig(func(cfg *config.Config) {
		if s.Rounds != 0 {
			cfg.Simulate.Rounds = s.Rounds
		}
		if s.Workers != 0 {
			cfg.Simulate.Workers = s.Workers
		}
		if s.StandOn != 0 {
			cfg.Simulate.StandOn = s.StandOn
		}
		if s.Seed != 0 {
			cfg.Game.Seed = s.Seed
		}
	})
	if err != nil {
		return err
	}

	var logger *log.Logger
	if s.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := quartz.NewReal()
	sim := simulator.New(simulator.Config{
		Rounds:  cfg.Simulate.Rounds,
		Workers: cfg.Simulate.Workers,
		StandOn: cfg.Simulate.StandOn,
		Seed:    cfg.Game.Seed,
		Logger:  logger,
		Clock:   clock,
	})

	fmt.Printf("Starting simulation: %d rounds, stand on %d, %d workers (seed: %d)\n",
		cfg.Simulate.Rounds, cfg.Simulate.StandOn, cfg.Simulate.Workers, sim.Seed())

	start := clock.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printResults(stats, clock.Since(start).Seconds())
	return nil
}

func printResults(stats *statistics.Statistics, seconds float64) {
	low, high := stats.ConfidenceInterval95()

	fmt.Printf("\n=== SIMULATION RESULTS ===\n")
	fmt.Printf("Rounds:  %d\n", stats.Rounds)
	fmt.Printf("Wins:    %d (%.1f%%)\n", stats.Wins, stats.WinRate()*100)
	fmt.Printf("Losses:  %d (%.1f%%)\n", stats.Losses, stats.LossRate()*100)
	fmt.Printf("Pushes:  %d (%.1f%%)\n", stats.Pushes, stats.PushRate()*100)
	fmt.Printf("Player busts: %d  Dealer busts: %d  Naturals: %d\n",
		stats.PlayerBusts, stats.DealerBusts, stats.Naturals)
	fmt.Printf("\nNet per round: %.4f ± %.4f SE\n", stats.Mean(), stats.StdError())
	fmt.Printf("95%% CI: [%.4f, %.4f]\n", low, high)
	if seconds > 0 {
		fmt.Printf("Duration: %.2fs (%.0f rounds/sec)\n", seconds, float64(stats.Rounds)/seconds)
	}
}
