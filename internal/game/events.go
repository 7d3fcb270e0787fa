package game

import (
	"time"

	"github.com/lox/wargame/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeGameStart EventType = "game_start"
	EventTypeTurn      EventType = "turn"
	EventTypeGameOver  EventType = "game_over"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published when hands are dealt
type GameStartEvent struct {
	Rules     Rules
	Player    []deck.Card
	Computer  []deck.Card
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(rules Rules, player, computer []deck.Card) GameStartEvent {
	return GameStartEvent{
		Rules:     rules,
		Player:    append([]deck.Card(nil), player...),
		Computer:  append([]deck.Card(nil), computer...),
		timestamp: time.Now(),
	}
}

// TurnEvent is published after every resolved turn
type TurnEvent struct {
	Result    TurnResult
	timestamp time.Time
}

func (e TurnEvent) EventType() EventType { return EventTypeTurn }
func (e TurnEvent) Timestamp() time.Time { return e.timestamp }

// NewTurnEvent creates a new turn event
func NewTurnEvent(result TurnResult) TurnEvent {
	return TurnEvent{Result: result, timestamp: time.Now()}
}

// GameOverEvent is published once, when a turn ends the game
type GameOverEvent struct {
	Winner    Side
	Stats     Stats
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// NewGameOverEvent creates a new game over event
func NewGameOverEvent(winner Side, stats Stats) GameOverEvent {
	return GameOverEvent{Winner: winner, Stats: stats, timestamp: time.Now()}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(event GameEvent)

// OnEvent calls f(event).
func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
