package game

import (
	"fmt"
	"strings"

	"github.com/AP-2007/Black-Jack/internal/deck"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	RevealHoleCard bool // Show the dealer's face-down card (for logs, never the table view)
	ShowValues     bool // Append the player's running total
}

// EventFormatter provides centralized formatting for round events
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format formats any round event. Unknown events format as an empty string.
func (ef *EventFormatter) Format(event GameEvent) string {
	switch e := event.(type) {
	case RoundStartEvent:
		return ef.FormatRoundStart(e)
	case CardDealtEvent:
		return ef.FormatCardDealt(e)
	case RoundEndEvent:
		return ef.FormatRoundEnd(e)
	default:
		return ""
	}
}

// FormatRoundStart formats a round start event
func (ef *EventFormatter) FormatRoundStart(event RoundStartEvent) string {
	return fmt.Sprintf("*** ROUND #%d ***", event.Round)
}

// FormatCardDealt formats a single dealt card
func (ef *EventFormatter) FormatCardDealt(event CardDealtEvent) string {
	if event.FaceDown && !ef.opts.RevealHoleCard {
		return fmt.Sprintf("%s: dealt a card face down", event.Role)
	}

	text := fmt.Sprintf("%s: dealt %s", event.Role, event.Card)
	if ef.opts.ShowValues && event.Role == Player {
		text += fmt.Sprintf(" (%d)", event.Value)
	}
	return text
}

// FormatRoundEnd formats the settled round with both hands revealed
func (ef *EventFormatter) FormatRoundEnd(event RoundEndEvent) string {
	var sb strings.Builder
	if event.Exhausted {
		sb.WriteString("Deck exhausted, round settled on the cards held\n")
	}
	fmt.Fprintf(&sb, "Dealer shows %s (%d)\n", formatCards(event.Dealer), event.DealerValue)
	fmt.Fprintf(&sb, "Player holds %s (%d)\n", formatCards(event.Player), event.PlayerValue)
	fmt.Fprintf(&sb, "%s  [W %d / L %d]", event.Outcome.Message(), event.Tally.Wins, event.Tally.Losses)
	return sb.String()
}

func formatCards(cards []deck.Card) string {
	return NewHand(cards...).String()
}
