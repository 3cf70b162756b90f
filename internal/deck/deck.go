package deck

import (
	"errors"
	"math/rand/v2"
)

// Size is the number of cards in a standard deck.
const Size = 52

// ErrExhausted is returned when drawing from an empty deck.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered sequence of cards dealt from the end.
type Deck struct {
	cards []Card
}

// New creates a standard 52-card deck shuffled with rng.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}

	d := &Deck{cards: Standard()}

	// Fisher-Yates
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// NewStacked creates a deck that deals exactly the given cards, first card
// first. It does not check for duplicates.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Standard returns the 52 cards of a deck in suit then rank order.
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Draw removes and returns the next card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}

	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}
