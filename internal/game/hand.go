package game

import (
	"strings"

	"github.com/AP-2007/Black-Jack/internal/deck"
)

const (
	// Blackjack is the best possible hand value.
	Blackjack = 21
	// DealerStandsOn is the value at which the dealer stops drawing. It applies
	// to soft totals too.
	DealerStandsOn = 17
)

// Role identifies who holds a hand.
type Role int

const (
	Player Role = iota
	Dealer
)

// String returns the string representation of a role
func (r Role) String() string {
	switch r {
	case Player:
		return "Player"
	case Dealer:
		return "Dealer"
	default:
		return "Unknown"
	}
}

// Hand is an ordered, append-only collection of cards.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards.
func NewHand(cards ...deck.Card) Hand {
	h := Hand{}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held.
func (h Hand) Len() int {
	return len(h.cards)
}

// Value returns the hand's blackjack value.
func (h Hand) Value() int {
	return Value(h.cards)
}

// IsSoft reports whether an ace in the hand is still counted as 11.
func (h Hand) IsSoft() bool {
	_, soft := score(h.cards)
	return soft
}

// IsBust reports whether the hand is over 21.
func (h Hand) IsBust() bool {
	return h.Value() > Blackjack
}

// IsNatural reports whether the hand is a two-card 21.
func (h Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.Value() == Blackjack
}

// String returns the cards separated by spaces (e.g., "A♠ K♥")
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Value scores cards with every ace at 11, then counts aces as 1 one at a
// time while the total is over 21.
func Value(cards []deck.Card) int {
	total, _ := score(cards)
	return total
}

func score(cards []deck.Card) (int, bool) {
	total, aces := 0, 0
	for _, c := range cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}
