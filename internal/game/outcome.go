package game

// Outcome is how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerBust
	OutcomeDealerBust
	OutcomeDealerWins
	OutcomePlayerWins
	OutcomePush
	// OutcomeVoid marks a round that could not be dealt. It is never scored.
	OutcomeVoid
)

// Result is the outcome from the player's side.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
	ResultPush
)

// Tone is the color category a presentation layer uses for the outcome message.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneWin
	ToneLoss
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerBust:
		return "player_bust"
	case OutcomeDealerBust:
		return "dealer_bust"
	case OutcomeDealerWins:
		return "dealer_wins"
	case OutcomePlayerWins:
		return "player_wins"
	case OutcomePush:
		return "push"
	case OutcomeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the player.
func (o Outcome) Message() string {
	switch o {
	case OutcomePlayerBust:
		return "Bust! Dealer Wins."
	case OutcomeDealerBust:
		return "Dealer Busts! You Win!"
	case OutcomeDealerWins:
		return "Dealer Wins."
	case OutcomePlayerWins:
		return "You Win!"
	case OutcomePush:
		return "Push! It's a Tie."
	case OutcomeVoid:
		return "Deck exhausted. Round void."
	default:
		return ""
	}
}

// Result maps the outcome to a win, loss or push.
func (o Outcome) Result() Result {
	switch o {
	case OutcomeDealerBust, OutcomePlayerWins:
		return ResultWin
	case OutcomePlayerBust, OutcomeDealerWins:
		return ResultLoss
	case OutcomePush:
		return ResultPush
	default:
		return ResultNone
	}
}

// Tone returns the color category for the outcome message.
func (o Outcome) Tone() Tone {
	switch o.Result() {
	case ResultWin:
		return ToneWin
	case ResultLoss:
		return ToneLoss
	default:
		return ToneNeutral
	}
}

// String returns the string representation of a result
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	case ResultPush:
		return "push"
	default:
		return "none"
	}
}

// Compare settles a round once the dealer has finished drawing.
func Compare(playerValue, dealerValue int) Outcome {
	switch {
	case playerValue > Blackjack:
		return OutcomePlayerBust
	case dealerValue > Blackjack:
		return OutcomeDealerBust
	case dealerValue > playerValue:
		return OutcomeDealerWins
	case dealerValue < playerValue:
		return OutcomePlayerWins
	default:
		return OutcomePush
	}
}

// Tally counts wins and losses across rounds. Pushes are not counted.
type Tally struct {
	Wins   int
	Losses int
}

// Record adds a result to the tally.
func (t *Tally) Record(r Result) {
	switch r {
	case ResultWin:
		t.Wins++
	case ResultLoss:
		t.Losses++
	}
}
