// Package game implements a single-player blackjack table against an
// automated dealer.
//
// The main type is Engine, which owns the current round (a fresh deck, the
// player's and dealer's hands, the phase and the outcome) and the session's
// win/loss tally.
//
// # Basic Usage
//
//	e := game.NewEngine(game.WithLogger(logger))
//	if err := e.StartRound(); err != nil {
//	    return err
//	}
//	_ = e.Hit()
//	_ = e.Stand()
//	snap := e.Snapshot()
//	fmt.Println(snap.Message(), snap.Tally.Wins, snap.Tally.Losses)
//
// Intents (StartRound, Hit, Stand, Restart) are the only way state changes.
// Hit and Stand outside PhaseInProgress return ErrInvalidTransition and
// change nothing, so a UI can forward every click without checking first.
//
// # Deterministic Testing
//
// Pass a seeded RNG to get reproducible shuffles:
//
//	e := game.NewEngine(game.WithRNG(randutil.New(42)))
//
// Or stack the deck to choose the exact cards. Cards are dealt player,
// player, dealer, dealer, then in draw order:
//
//	e := game.NewEngine(game.WithDeckSource(func() *deck.Deck {
//	    return deck.NewStacked(deck.MustParseCards("Kh 5s 9d 7c 3h 4s")...)
//	}))
//
// # Rules
//
// The dealer draws below 17 and stands on every 17, soft totals included.
// A natural pays nothing extra; it wins through the plain comparison unless
// the dealer also makes 21.
package game
