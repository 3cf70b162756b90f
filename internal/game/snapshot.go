package game

import "github.com/AP-2007/Black-Jack/internal/deck"

// Snapshot is a read-only copy of the table at one moment.
type Snapshot struct {
	Round          int
	Phase          Phase
	Player         []deck.Card
	Dealer         []deck.Card
	PlayerValue    int
	PlayerSoft     bool
	DealerValue    int // withheld from the player until DealerVisible
	Outcome        Outcome
	Tally          Tally
	Exhausted      bool
	CardsRemaining int
}

// DealerVisible reports whether the dealer's hole card and total may be shown.
func (s Snapshot) DealerVisible() bool {
	return s.Phase == PhaseResolved
}

// CanAct reports whether hit and stand are accepted.
func (s Snapshot) CanAct() bool {
	return s.Phase == PhaseInProgress
}

// Message returns the outcome text, empty while the round is in progress.
func (s Snapshot) Message() string {
	return s.Outcome.Message()
}

// Tone returns the color category of Message.
func (s Snapshot) Tone() Tone {
	return s.Outcome.Tone()
}
