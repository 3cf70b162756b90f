package game

import (
	"time"

	"github.com/AP-2007/Black-Jack/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeCardDealt  EventType = "card_dealt"
	EventTypeRoundEnd   EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published when a fresh deck is opened for a new round
type RoundStartEvent struct {
	Round     int
	Tally     Tally
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event
func NewRoundStartEvent(round int, tally Tally, at time.Time) RoundStartEvent {
	return RoundStartEvent{
		Round:     round,
		Tally:     tally,
		timestamp: at,
	}
}

// CardDealtEvent is published for every card that leaves the deck
type CardDealtEvent struct {
	Round int
	Role  Role
	Card  deck.Card
	// FaceDown is set for the dealer's hole card. Subscribers showing the
	// event to the player must not reveal Card or Value.
	FaceDown  bool
	Value     int
	timestamp time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// NewCardDealtEvent creates a new card dealt event
func NewCardDealtEvent(round int, role Role, card deck.Card, faceDown bool, value int, at time.Time) CardDealtEvent {
	return CardDealtEvent{
		Round:     round,
		Role:      role,
		Card:      card,
		FaceDown:  faceDown,
		Value:     value,
		timestamp: at,
	}
}

// RoundEndEvent is published when a round is resolved
type RoundEndEvent struct {
	Round       int
	Outcome     Outcome
	Player      []deck.Card
	Dealer      []deck.Card
	PlayerValue int
	DealerValue int
	Tally       Tally
	Exhausted   bool
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundEndEvent creates a new round end event from a resolved snapshot
func NewRoundEndEvent(s Snapshot, at time.Time) RoundEndEvent {
	return RoundEndEvent{
		Round:       s.Round,
		Outcome:     s.Outcome,
		Player:      s.Player,
		Dealer:      s.Dealer,
		PlayerValue: s.PlayerValue,
		DealerValue: s.DealerValue,
		Tally:       s.Tally,
		Exhausted:   s.Exhausted,
		timestamp:   at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to an EventSubscriber
type SubscriberFunc func(event GameEvent)

// OnEvent calls f(event)
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on
// the publisher's goroutine, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Subscribers must be
// comparable; SubscriberFunc values cannot be unsubscribed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
