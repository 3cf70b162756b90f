package game

import (
	"io"
	"math/rand/v2"

	"github.com/AP-2007/Black-Jack/internal/deck"
	"github.com/AP-2007/Black-Jack/internal/randutil"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Option configures an Engine during creation.
type Option func(*engineConfig)

// engineConfig holds all configuration for creating an engine.
type engineConfig struct {
	rng    *rand.Rand
	decks  func() *deck.Deck
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
}

// WithRNG shuffles every round's deck with rng. Use randutil.New(seed) for a
// reproducible session.
func WithRNG(rng *rand.Rand) Option {
	return func(c *engineConfig) {
		c.rng = rng
	}
}

// WithDeckSource replaces deck creation entirely. The function is called once
// per round and must return a fresh deck each time. It overrides WithRNG.
//
//	e := game.NewEngine(game.WithDeckSource(func() *deck.Deck {
//	    return deck.NewStacked(deck.MustParseCards("Kh 5s 9d 7c 3h 4s")...)
//	}))
func WithDeckSource(source func() *deck.Deck) Option {
	return func(c *engineConfig) {
		c.decks = source
	}
}

// WithLogger sets the logger. Defaults to a logger that discards output.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithClock sets the clock used for event timestamps and the default seed.
func WithClock(clock quartz.Clock) Option {
	return func(c *engineConfig) {
		c.clock = clock
	}
}

// WithEventBus publishes round events on bus instead of a private one.
func WithEventBus(bus EventBus) Option {
	return func(c *engineConfig) {
		c.bus = bus
	}
}

func buildConfig(opts []Option) *engineConfig {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.decks == nil {
		rng := cfg.rng
		if rng == nil {
			seed := randutil.Seed(cfg.clock)
			cfg.logger.Debug("Seeding shuffle from clock", "seed", seed)
			rng = randutil.New(seed)
		}
		cfg.decks = func() *deck.Deck { return deck.New(rng) }
	}
	return cfg
}
