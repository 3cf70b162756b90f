package simulator

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/AP-2007/Black-Jack/internal/game"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

func testConfig(t *testing.T) Config {
	return Config{
		Rounds:  300,
		Workers: 3,
		StandOn: 17,
		Seed:    12345,
		Logger:  log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
		Clock:   quartz.NewMock(t),
	}
}

func TestNew(t *testing.T) {
	config := testConfig(t)
	config.Workers = 1000

	simulator := New(config)
	if simulator == nil {
		t.Fatal("New() returned nil")
	}
	if simulator.config.Workers != 300 {
		t.Errorf("Expected workers clamped to 300, got %d", simulator.config.Workers)
	}
	if simulator.Seed() != 12345 {
		t.Errorf("Expected seed 12345, got %d", simulator.Seed())
	}
}

func TestSeedFromClock(t *testing.T) {
	config := testConfig(t)
	config.Seed = 0

	simulator := New(config)
	seed := simulator.Seed()
	if seed == 0 {
		t.Fatal("Expected a non-zero derived seed")
	}
	if simulator.Seed() != seed {
		t.Error("Expected the derived seed to be stable")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero rounds", func(c *Config) { c.Rounds = 0 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"stand on 11", func(c *Config) { c.StandOn = 11 }, true},
		{"stand on 21", func(c *Config) { c.StandOn = 21 }, false},
		{"stand on 22", func(c *Config) { c.StandOn = 22 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(t)
			tt.mutate(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSimulator_Run(t *testing.T) {
	stats, err := New(testConfig(t)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if stats.Rounds != 300 {
		t.Errorf("Expected 300 rounds, got %d", stats.Rounds)
	}
	if stats.Wins == 0 || stats.Losses == 0 {
		t.Errorf("Expected both wins and losses over 300 rounds, got %+v", stats)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Statistics failed validation: %v", err)
	}
}

func TestSimulator_Reproducible(t *testing.T) {
	first, err := New(testConfig(t)).Run(context.Background())
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := New(testConfig(t)).Run(context.Background())
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if *first != *second {
		t.Errorf("Expected identical statistics for the same seed\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSimulator_StandOn21Busts(t *testing.T) {
	config := testConfig(t)
	config.StandOn = 21

	stats, err := New(config).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// Hitting to 21 busts the player far more often than standing on 17.
	if stats.PlayerBusts == 0 {
		t.Error("Expected player busts when hitting up to 21")
	}
}

func TestSimulator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(testConfig(t)).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestResultFor(t *testing.T) {
	tests := []struct {
		outcome    game.Outcome
		net        float64
		playerBust bool
		dealerBust bool
	}{
		{game.OutcomePlayerBust, -1, true, false},
		{game.OutcomeDealerBust, 1, false, true},
		{game.OutcomeDealerWins, -1, false, false},
		{game.OutcomePlayerWins, 1, false, false},
		{game.OutcomePush, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			result := resultFor(tt.outcome, false)
			if result.Net != tt.net {
				t.Errorf("Expected net %v, got %v", tt.net, result.Net)
			}
			if result.PlayerBust != tt.playerBust || result.DealerBust != tt.dealerBust {
				t.Errorf("Unexpected bust flags: %+v", result)
			}
		})
	}
}

func TestRunSimulation_Convenience(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel})

	stats, err := RunSimulation(context.Background(), 40, 2, 17, 99, logger)
	if err != nil {
		t.Fatalf("RunSimulation failed: %v", err)
	}
	if stats.Rounds != 40 {
		t.Errorf("Expected 40 rounds, got %d", stats.Rounds)
	}
}
