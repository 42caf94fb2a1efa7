package interfaces

import (
	"context"
	"time"

	"tokenbot/domain/entities"
	"tokenbot/domain/events"
)

// AccountRepository defines the interface for account data access.
// Implementations are scoped to a single guild.
type AccountRepository interface {
	// GetByDiscordID retrieves an account by Discord ID, or nil if absent
	GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error)

	// GetByDiscordIDForUpdate retrieves an account and row-locks it for the
	// remainder of the enclosing transaction. Required before any balance
	// check that gates a debit, so concurrent spenders serialize
	GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*entities.Account, error)

	// GetOrCreate retrieves an account, creating it with a zero balance if absent
	GetOrCreate(ctx context.Context, discordID int64, username string) (*entities.Account, error)

	// AdjustBalance applies a delta atomically, clamping the result at zero,
	// and returns the new balance. It never rejects for business rules;
	// insufficient-funds checks belong to the caller.
	AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error)

	// SetLastDaily stamps the last daily claim time
	SetLastDaily(ctx context.Context, discordID int64, claimedAt time.Time) error

	// SetLastQuiz stamps the quiz cooldown time (applied to the quiz starter)
	SetLastQuiz(ctx context.Context, discordID int64, startedAt time.Time) error

	// GetTopByBalance returns the richest accounts in descending balance order
	GetTopByBalance(ctx context.Context, limit int) ([]*entities.Account, error)
}

// InventoryRepository defines the interface for inventory data access.
// Implementations are scoped to a single guild. No removal operation exists:
// items are permanent once purchased.
type InventoryRepository interface {
	// AddItem increments the stored quantity, creating the entry if absent
	AddItem(ctx context.Context, discordID int64, category entities.ItemCategory, itemName string, quantity int64) error

	// ListByUser returns all items owned by a user
	ListByUser(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error)

	// HasItem reports whether the user owns at least one of the item
	HasItem(ctx context.Context, discordID int64, category entities.ItemCategory, itemName string) (bool, error)
}

// BalanceHistoryRepository defines the interface for balance history tracking
type BalanceHistoryRepository interface {
	// Record creates a new balance history entry
	Record(ctx context.Context, history *entities.BalanceHistory) error

	// GetByUser returns balance history for a specific user, newest first
	GetByUser(ctx context.Context, discordID int64, limit int) ([]*entities.BalanceHistory, error)
}

// QuizQuestionRepository defines the interface for the trivia question bank
type QuizQuestionRepository interface {
	// GetRandom draws one question uniformly at random
	GetRandom(ctx context.Context) (*entities.QuizQuestion, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}
