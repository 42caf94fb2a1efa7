package events

import (
	"context"
	"sync"

	"tokenbot/domain/entities"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange  EventType = "balance_change"
	EventTypeAccountCreated EventType = "account_created"
	EventTypeItemPurchased  EventType = "item_purchased"
	EventTypeQuizStarted    EventType = "quiz_started"
	EventTypeQuizResolved   EventType = "quiz_resolved"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	DiscordID       int64
	GuildID         int64
	OldBalance      int64
	NewBalance      int64
	TransactionType entities.TransactionType
	ChangeAmount    int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// AccountCreatedEvent represents a new account creation
type AccountCreatedEvent struct {
	DiscordID int64
	GuildID   int64
	Username  string
}

func (e AccountCreatedEvent) Type() EventType {
	return EventTypeAccountCreated
}

// ItemPurchasedEvent represents a shop purchase
type ItemPurchasedEvent struct {
	DiscordID int64
	GuildID   int64
	Category  entities.ItemCategory
	ItemName  string
	Price     int64
}

func (e ItemPurchasedEvent) Type() EventType {
	return EventTypeItemPurchased
}

// QuizStartedEvent represents a quiz session opening
type QuizStartedEvent struct {
	GuildID          int64
	SessionID        string
	StarterDiscordID int64
}

func (e QuizStartedEvent) Type() EventType {
	return EventTypeQuizStarted
}

// QuizResolvedEvent represents a quiz session reaching a terminal state
type QuizResolvedEvent struct {
	GuildID         int64
	SessionID       string
	Kind            entities.QuizResolutionKind
	WinnerDiscordID int64
	Prize           int64
}

func (e QuizResolvedEvent) Type() EventType {
	return EventTypeQuizResolved
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe registers a handler for an event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish dispatches an event to all registered handlers
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	ctx := context.Background()
	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("Event handler panicked for %s: %v", event.Type(), r)
				}
			}()
			handler(ctx, event)
		}()
	}
	return nil
}
