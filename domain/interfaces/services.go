package interfaces

import (
	"context"

	"tokenbot/domain/entities"
)

// UserService defines the interface for account operations
type UserService interface {
	// GetOrCreateAccount retrieves an existing account or creates one lazily
	GetOrCreateAccount(ctx context.Context, discordID int64, username string) (*entities.Account, error)

	// Transfer moves amount from sender to recipient atomically: both legs
	// apply or neither does
	Transfer(ctx context.Context, fromDiscordID, toDiscordID, amount int64, toUsername string) (*entities.TransferResult, error)

	// GetLeaderboard returns the richest accounts, best first
	GetLeaderboard(ctx context.Context, limit int) ([]*entities.Account, error)

	// Grant credits tokens outside the reward flow (owner/admin only)
	Grant(ctx context.Context, discordID int64, amount int64) (int64, error)
}

// EconomyService defines the interface for the reward engine
type EconomyService interface {
	// ClaimDaily credits the daily reward if the cooldown window has elapsed
	ClaimDaily(ctx context.Context, discordID int64) (*entities.DailyRewardResult, error)

	// FlipCoin wagers a stake on a coin flip, applying inventory modifiers
	FlipCoin(ctx context.Context, discordID int64, stake int64) (*entities.FlipResult, error)

	// Work credits a small uncooled payout
	Work(ctx context.Context, discordID int64) (*entities.WorkResult, error)
}

// ShopService defines the interface for shop operations
type ShopService interface {
	// Purchase buys a catalog item: debits the price and increments inventory
	Purchase(ctx context.Context, discordID int64, category, itemName string) (*entities.PurchaseResult, error)
}

// QuizService defines the interface for quiz orchestration
type QuizService interface {
	// StartQuiz opens a session for the guild if none is live and the
	// starter's cooldown window has elapsed (bypassCooldown skips the gate)
	StartQuiz(ctx context.Context, guildID, starterDiscordID int64, bypassCooldown bool) (*entities.QuizSession, error)

	// SubmitAnswer checks a candidate answer against the live session.
	// A nil resolution with nil error means the submission did not match or
	// no session is live; a non-nil resolution means this submission won the
	// race, credited the prize, and stamped the starter's cooldown.
	SubmitAnswer(ctx context.Context, guildID, userDiscordID int64, username, text string) (*entities.QuizResolution, error)

	// ExpireSession resolves a session by timeout if it is still live.
	// Late expiry of an already-resolved session is a no-op (nil, nil).
	ExpireSession(ctx context.Context, guildID int64, sessionID string) (*entities.QuizResolution, error)
}
