package game

import (
	"errors"
	"fmt"

	"github.com/AP-2007/Black-Jack/internal/deck"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/qmuntal/stateless"
)

// ErrInvalidTransition is returned when an intent arrives in a phase that
// does not accept it. The engine state is left untouched.
var ErrInvalidTransition = errors.New("invalid transition")

// Engine runs rounds of blackjack between one player and the dealer and
// keeps the session tally. It is not safe for concurrent use; every intent
// completes before returning.
type Engine struct {
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
	decks  func() *deck.Deck
	phase  *stateless.StateMachine

	deck      *deck.Deck
	player    Hand
	dealer    Hand
	outcome   Outcome
	exhausted bool
	round     int
	tally     Tally
}

// NewEngine creates an engine in PhaseIdle. Call StartRound to deal.
func NewEngine(opts ...Option) *Engine {
	cfg := buildConfig(opts)
	logger := cfg.logger.WithPrefix("engine")

	return &Engine{
		logger: logger,
		clock:  cfg.clock,
		bus:    cfg.bus,
		decks:  cfg.decks,
		phase:  newPhaseMachine(logger),
	}
}

// EventBus returns the bus round events are published on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// Phase returns the current round phase
func (e *Engine) Phase() Phase {
	return e.phase.MustState().(Phase)
}

// Tally returns the session's wins and losses
func (e *Engine) Tally() Tally {
	return e.tally
}

// StartRound opens a fresh deck and deals two cards to the player, then two
// to the dealer. Any round in progress is abandoned without scoring.
func (e *Engine) StartRound() error {
	if err := e.phase.Fire(triggerDeal); err != nil {
		return fmt.Errorf("start round: %w", err)
	}

	e.round++
	e.deck = e.decks()
	e.player = Hand{}
	e.dealer = Hand{}
	e.outcome = OutcomeNone
	e.exhausted = false

	e.logger.Info("Starting round",
		"round", e.round,
		"wins", e.tally.Wins,
		"losses", e.tally.Losses)
	e.bus.Publish(NewRoundStartEvent(e.round, e.tally, e.clock.Now()))

	for _, role := range []Role{Player, Player, Dealer, Dealer} {
		if err := e.deal(role); err != nil {
			e.logger.Warn("Deck exhausted during the deal", "round", e.round)
			e.exhausted = true
			if ferr := e.finish(triggerVoid, OutcomeVoid); ferr != nil {
				return ferr
			}
			return fmt.Errorf("start round: %w", err)
		}
	}
	return nil
}

// Restart discards the current round and deals a new one. The tally is kept.
func (e *Engine) Restart() error {
	e.logger.Debug("Restarting", "round", e.round, "phase", e.Phase())
	return e.StartRound()
}

// Hit deals one card to the player. Going over 21 loses the round.
//
// If the deck runs out the round is settled as though the player stood, and
// the returned error wraps deck.ErrExhausted.
func (e *Engine) Hit() error {
	if phase := e.Phase(); phase != PhaseInProgress {
		e.logger.Debug("Ignoring hit", "phase", phase)
		return fmt.Errorf("hit while %s: %w", phase, ErrInvalidTransition)
	}

	if err := e.deal(Player); err != nil {
		e.logger.Warn("Deck exhausted on hit, standing instead", "round", e.round)
		e.exhausted = true
		if serr := e.stand(); serr != nil {
			return fmt.Errorf("hit: %w", serr)
		}
		return fmt.Errorf("hit: %w", err)
	}

	if e.player.IsBust() {
		return e.finish(triggerBust, OutcomePlayerBust)
	}
	return nil
}

// Stand ends the player's turn. The dealer draws until reaching 17 or more
// and the round is settled.
func (e *Engine) Stand() error {
	if phase := e.Phase(); phase != PhaseInProgress {
		e.logger.Debug("Ignoring stand", "phase", phase)
		return fmt.Errorf("stand while %s: %w", phase, ErrInvalidTransition)
	}

	if err := e.stand(); err != nil {
		return fmt.Errorf("stand: %w", err)
	}
	return nil
}

// stand plays out the dealer and settles the round. A short deck stops the
// dealer early; the round is then compared on the cards actually held.
func (e *Engine) stand() error {
	var drawErr error
	for e.dealer.Value() < DealerStandsOn {
		if err := e.deal(Dealer); err != nil {
			e.logger.Warn("Deck exhausted on dealer draw",
				"round", e.round,
				"dealer", e.dealer.Value())
			e.exhausted = true
			drawErr = err
			break
		}
	}

	if err := e.finish(triggerStand, Compare(e.player.Value(), e.dealer.Value())); err != nil {
		return err
	}
	return drawErr
}

func (e *Engine) deal(role Role) error {
	card, err := e.deck.Draw()
	if err != nil {
		return err
	}

	hand := &e.player
	if role == Dealer {
		hand = &e.dealer
	}
	hand.Add(card)

	faceDown := role == Dealer && e.dealer.Len() == 1
	e.bus.Publish(NewCardDealtEvent(e.round, role, card, faceDown, hand.Value(), e.clock.Now()))
	return nil
}

func (e *Engine) finish(t trigger, outcome Outcome) error {
	if err := e.phase.Fire(t); err != nil {
		return fmt.Errorf("resolve round: %w", err)
	}

	e.outcome = outcome
	e.tally.Record(outcome.Result())

	snap := e.Snapshot()
	e.logger.Info("Round resolved",
		"round", e.round,
		"outcome", outcome,
		"player", snap.PlayerValue,
		"dealer", snap.DealerValue,
		"wins", e.tally.Wins,
		"losses", e.tally.Losses)
	e.bus.Publish(NewRoundEndEvent(snap, e.clock.Now()))
	return nil
}

// Snapshot returns a copy of everything a presentation layer needs to draw
// the table.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Round:       e.round,
		Phase:       e.Phase(),
		Player:      e.player.Cards(),
		Dealer:      e.dealer.Cards(),
		PlayerValue: e.player.Value(),
		DealerValue: e.dealer.Value(),
		PlayerSoft:  e.player.IsSoft(),
		Outcome:     e.outcome,
		Tally:       e.tally,
		Exhausted:   e.exhausted,
	}
	if e.deck != nil {
		s.CardsRemaining = e.deck.Remaining()
	}
	return s
}
