package game

import (
	"testing"
	"time"

	"github.com/AP-2007/Black-Jack/internal/deck"
	"github.com/AP-2007/Black-Jack/internal/randutil"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackedEngine returns an engine whose every round deals cards in the given
// order: player, player, dealer, dealer, then draws.
func stackedEngine(t *testing.T, cards string, opts ...Option) *Engine {
	t.Helper()
	stack := deck.MustParseCards(cards)
	opts = append(opts, WithDeckSource(func() *deck.Deck {
		return deck.NewStacked(stack...)
	}))
	e := NewEngine(opts...)
	require.NoError(t, e.StartRound())
	return e
}

func TestStartRoundDeals(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 7c")
	snap := e.Snapshot()

	assert.Equal(t, PhaseInProgress, snap.Phase)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, deck.MustParseCards("Kh 5s"), snap.Player)
	assert.Equal(t, deck.MustParseCards("9d 7c"), snap.Dealer)
	assert.Equal(t, 15, snap.PlayerValue)
	assert.Equal(t, 16, snap.DealerValue)
	assert.False(t, snap.DealerVisible())
	assert.True(t, snap.CanAct())
	assert.Empty(t, snap.Message())
	assert.Equal(t, OutcomeNone, snap.Outcome)
}

func TestNewEngineIsIdle(t *testing.T) {
	t.Parallel()
	e := NewEngine(WithRNG(randutil.New(1)))

	assert.Equal(t, PhaseIdle, e.Phase())
	assert.ErrorIs(t, e.Hit(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Stand(), ErrInvalidTransition)

	snap := e.Snapshot()
	assert.Empty(t, snap.Player)
	assert.Empty(t, snap.Dealer)
	assert.Equal(t, 0, snap.CardsRemaining)
}

func TestHitThenStandDealerWins(t *testing.T) {
	t.Parallel()
	// Player K 5 = 15, hits a 3 for 18. Dealer 9 7 = 16 draws a 4 for 20.
	e := stackedEngine(t, "Kh 5s 9d 7c 3h 4s")

	require.NoError(t, e.Hit())
	snap := e.Snapshot()
	assert.Equal(t, 18, snap.PlayerValue)
	assert.Equal(t, PhaseInProgress, snap.Phase)

	require.NoError(t, e.Stand())
	snap = e.Snapshot()
	assert.Equal(t, PhaseResolved, snap.Phase)
	assert.Equal(t, 20, snap.DealerValue)
	assert.Equal(t, OutcomeDealerWins, snap.Outcome)
	assert.Equal(t, "Dealer Wins.", snap.Message())
	assert.Equal(t, ToneLoss, snap.Tone())
	assert.Equal(t, Tally{Wins: 0, Losses: 1}, snap.Tally)
	assert.True(t, snap.DealerVisible())
}

func TestNaturalWinsOnPlainComparison(t *testing.T) {
	t.Parallel()
	// Dealer 9 7 = 16 draws a 2 and stands on 18.
	e := stackedEngine(t, "Ah Kd 9c 7s 2h")
	require.NoError(t, e.Stand())

	snap := e.Snapshot()
	assert.Equal(t, 21, snap.PlayerValue)
	assert.Equal(t, 18, snap.DealerValue)
	assert.Equal(t, OutcomePlayerWins, snap.Outcome)
	assert.Equal(t, Tally{Wins: 1}, snap.Tally)
}

func TestNaturalPushesAgainstDealer21(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Ah Kd 9c 7s 5h")
	require.NoError(t, e.Stand())

	snap := e.Snapshot()
	assert.Equal(t, 21, snap.DealerValue)
	assert.Equal(t, OutcomePush, snap.Outcome)
	assert.Equal(t, Tally{}, snap.Tally)
}

func TestStandOutcomes(t *testing.T) {
	tests := []struct {
		name        string
		cards       string
		outcome     Outcome
		dealerValue int
		dealerCards int
		tally       Tally
	}{
		{
			name:        "dealer busts",
			cards:       "Kh 8s 9d 7c 6h",
			outcome:     OutcomeDealerBust,
			dealerValue: 22,
			dealerCards: 3,
			tally:       Tally{Wins: 1},
		},
		{
			name:        "player higher, dealer stands on 17",
			cards:       "Kh 9s 9d 8c",
			outcome:     OutcomePlayerWins,
			dealerValue: 17,
			dealerCards: 2,
			tally:       Tally{Wins: 1},
		},
		{
			name:        "push",
			cards:       "Kh 8s Qd 8c",
			outcome:     OutcomePush,
			dealerValue: 18,
			dealerCards: 2,
		},
		{
			name:        "dealer stands on soft 17",
			cards:       "Kh 8s Ad 6c",
			outcome:     OutcomePlayerWins,
			dealerValue: 17,
			dealerCards: 2,
			tally:       Tally{Wins: 1},
		},
		{
			name:        "soft dealer hand turns hard and keeps drawing",
			cards:       "Kh 8s Ad 5c 9h 3s",
			outcome:     OutcomePush,
			dealerValue: 18,
			dealerCards: 4,
		},
		{
			name:        "dealer draws several",
			cards:       "Kh 8s 2d 3c 4h 2s 6d",
			outcome:     OutcomePlayerWins,
			dealerValue: 17,
			dealerCards: 5,
			tally:       Tally{Wins: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := stackedEngine(t, tt.cards)
			require.NoError(t, e.Stand())

			snap := e.Snapshot()
			assert.Equal(t, PhaseResolved, snap.Phase)
			assert.Equal(t, tt.outcome, snap.Outcome)
			assert.Equal(t, tt.dealerValue, snap.DealerValue)
			assert.Len(t, snap.Dealer, tt.dealerCards)
			assert.Equal(t, tt.tally, snap.Tally)
		})
	}
}

func TestHitBust(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 7c Qh")

	require.NoError(t, e.Hit())
	snap := e.Snapshot()
	assert.Equal(t, PhaseResolved, snap.Phase)
	assert.Equal(t, 25, snap.PlayerValue)
	assert.Equal(t, OutcomePlayerBust, snap.Outcome)
	assert.Equal(t, "Bust! Dealer Wins.", snap.Message())
	assert.Equal(t, Tally{Losses: 1}, snap.Tally)
	// The dealer never plays against a bust.
	assert.Len(t, snap.Dealer, 2)
}

func TestResolvedRoundRejectsIntents(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 7c Qh 2c 3c")
	require.NoError(t, e.Hit())
	before := e.Snapshot()
	require.Equal(t, PhaseResolved, before.Phase)

	assert.ErrorIs(t, e.Hit(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Stand(), ErrInvalidTransition)
	assert.ErrorIs(t, e.Hit(), ErrInvalidTransition)

	assert.Equal(t, before, e.Snapshot())
}

func TestRestartKeepsTally(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 7c Qh")
	require.NoError(t, e.Hit())
	require.Equal(t, Tally{Losses: 1}, e.Tally())

	require.NoError(t, e.Restart())
	snap := e.Snapshot()
	assert.Equal(t, PhaseInProgress, snap.Phase)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, OutcomeNone, snap.Outcome)
	assert.Empty(t, snap.Message())
	assert.Len(t, snap.Player, 2)
	assert.Len(t, snap.Dealer, 2)
	assert.Equal(t, Tally{Losses: 1}, snap.Tally)
	assert.False(t, snap.Exhausted)
}

func TestRestartMidRoundDoesNotScore(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 7c 3h")
	require.NoError(t, e.Hit())

	require.NoError(t, e.Restart())
	snap := e.Snapshot()
	assert.Equal(t, Tally{}, snap.Tally)
	assert.Equal(t, deck.MustParseCards("Kh 5s"), snap.Player)
	assert.Equal(t, 1, snap.CardsRemaining)
}

func TestExhaustedOnHitStandsInstead(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 5s 9d 8c")

	err := e.Hit()
	require.ErrorIs(t, err, deck.ErrExhausted)

	snap := e.Snapshot()
	assert.True(t, snap.Exhausted)
	assert.Equal(t, PhaseResolved, snap.Phase)
	assert.Len(t, snap.Player, 2, "hand must hold only cards actually drawn")
	assert.Equal(t, OutcomeDealerWins, snap.Outcome)
	assert.Equal(t, Tally{Losses: 1}, snap.Tally)
}

func TestExhaustedDuringDealerDraw(t *testing.T) {
	t.Parallel()
	e := stackedEngine(t, "Kh 9s 9d 5c")

	err := e.Stand()
	require.ErrorIs(t, err, deck.ErrExhausted)

	snap := e.Snapshot()
	assert.True(t, snap.Exhausted)
	assert.Equal(t, PhaseResolved, snap.Phase)
	assert.Equal(t, 14, snap.DealerValue)
	assert.Equal(t, OutcomePlayerWins, snap.Outcome)
	assert.Equal(t, Tally{Wins: 1}, snap.Tally)
}

func TestExhaustedDuringDealVoidsRound(t *testing.T) {
	t.Parallel()
	stack := deck.MustParseCards("Kh 9s 9d")
	e := NewEngine(WithDeckSource(func() *deck.Deck { return deck.NewStacked(stack...) }))

	err := e.StartRound()
	require.ErrorIs(t, err, deck.ErrExhausted)

	snap := e.Snapshot()
	assert.Equal(t, PhaseResolved, snap.Phase)
	assert.Equal(t, OutcomeVoid, snap.Outcome)
	assert.Len(t, snap.Dealer, 1)
	assert.Equal(t, Tally{}, snap.Tally)
	assert.ErrorIs(t, e.Hit(), ErrInvalidTransition)
}

func TestEveryRoundGetsAFreshDeck(t *testing.T) {
	t.Parallel()
	e := NewEngine(WithRNG(randutil.New(5)))
	for range 10 {
		require.NoError(t, e.StartRound())
		assert.Equal(t, deck.Size-4, e.Snapshot().CardsRemaining)
	}
}

// Plays many seeded rounds with varying player policies and checks the
// invariants that must hold for every round.
func TestRoundInvariants(t *testing.T) {
	t.Parallel()
	e := NewEngine(WithRNG(randutil.New(2024)))

	var wins, losses, pushes int
	for round := range 2000 {
		require.NoError(t, e.StartRound())
		standOn := 12 + round%8

		for e.Phase() == PhaseInProgress && e.Snapshot().PlayerValue < standOn {
			require.NoError(t, e.Hit())
		}
		if e.Phase() == PhaseInProgress {
			require.NoError(t, e.Stand())
		}

		snap := e.Snapshot()
		require.Equal(t, PhaseResolved, snap.Phase)
		require.False(t, snap.Exhausted)

		// No card appears twice across both hands.
		seen := map[deck.Card]bool{}
		for _, c := range append(snap.Player, snap.Dealer...) {
			require.False(t, seen[c], "round %d dealt %s twice", round, c)
			seen[c] = true
		}
		assert.Equal(t, deck.Size-len(seen), snap.CardsRemaining)

		if snap.Outcome == OutcomePlayerBust {
			assert.Greater(t, snap.PlayerValue, 21)
			assert.Len(t, snap.Dealer, 2)
		} else {
			assert.LessOrEqual(t, snap.PlayerValue, 21)
			// Dealer stopped at 17 or more and never drew once there.
			assert.GreaterOrEqual(t, snap.DealerValue, 17)
			if n := len(snap.Dealer); n > 2 {
				assert.Less(t, Value(snap.Dealer[:n-1]), 17)
			}
			assert.Equal(t, Compare(snap.PlayerValue, snap.DealerValue), snap.Outcome)
		}

		switch snap.Outcome.Result() {
		case ResultWin:
			wins++
		case ResultLoss:
			losses++
		case ResultPush:
			pushes++
		default:
			t.Fatalf("round %d resolved without a result: %s", round, snap.Outcome)
		}
		require.Equal(t, Tally{Wins: wins, Losses: losses}, snap.Tally)
	}
	assert.Equal(t, 2000, wins+losses+pushes)
}

func TestEngineEvents(t *testing.T) {
	t.Parallel()
	clock := quartz.NewMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock.Set(now)

	var events []GameEvent
	bus := NewEventBus()
	bus.Subscribe(SubscriberFunc(func(ev GameEvent) { events = append(events, ev) }))

	e := stackedEngine(t, "Kh 5s 9d 7c 3h 4s", WithClock(clock), WithEventBus(bus))
	require.NoError(t, e.Hit())
	require.NoError(t, e.Stand())

	var types []EventType
	for _, ev := range events {
		types = append(types, ev.EventType())
		assert.Equal(t, now, ev.Timestamp())
	}
	assert.Equal(t, []EventType{
		EventTypeRoundStart,
		EventTypeCardDealt, EventTypeCardDealt, // player
		EventTypeCardDealt, EventTypeCardDealt, // dealer
		EventTypeCardDealt, // hit
		EventTypeCardDealt, // dealer draw
		EventTypeRoundEnd,
	}, types)

	hole := events[3].(CardDealtEvent)
	assert.Equal(t, Dealer, hole.Role)
	assert.True(t, hole.FaceDown)
	assert.False(t, events[4].(CardDealtEvent).FaceDown)
	assert.False(t, events[1].(CardDealtEvent).FaceDown)

	end := events[len(events)-1].(RoundEndEvent)
	assert.Equal(t, OutcomeDealerWins, end.Outcome)
	assert.Equal(t, 18, end.PlayerValue)
	assert.Equal(t, 20, end.DealerValue)
	assert.Equal(t, Tally{Losses: 1}, end.Tally)
}
