package entities

import (
	"time"
)

// Account represents a user's token balance and cooldown state within a guild
type Account struct {
	DiscordID int64      `db:"discord_id"`
	GuildID   int64      `db:"guild_id"`
	Username  string     `db:"username"`
	Balance   int64      `db:"balance"`
	LastDaily *time.Time `db:"last_daily"`
	LastQuiz  *time.Time `db:"last_quiz"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// HasSufficientBalance checks if the account can cover an amount
func (a *Account) HasSufficientBalance(amount int64) bool {
	return a.Balance >= amount
}

// CanClaimDaily reports whether the daily reward window has elapsed as of the given time
func (a *Account) CanClaimDaily(asOf time.Time, window time.Duration) bool {
	if a.LastDaily == nil {
		return true
	}
	return asOf.Sub(*a.LastDaily) >= window
}

// DailyCooldownRemaining returns how long until the next daily claim is allowed
func (a *Account) DailyCooldownRemaining(asOf time.Time, window time.Duration) time.Duration {
	if a.LastDaily == nil {
		return 0
	}
	remaining := window - asOf.Sub(*a.LastDaily)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanStartQuiz reports whether the quiz cooldown window has elapsed as of the given time.
// The cooldown is stamped against the quiz starter, not the eventual winner.
func (a *Account) CanStartQuiz(asOf time.Time, window time.Duration) bool {
	if a.LastQuiz == nil {
		return true
	}
	return asOf.Sub(*a.LastQuiz) >= window
}

// QuizCooldownRemaining returns how long until the account may start another quiz
func (a *Account) QuizCooldownRemaining(asOf time.Time, window time.Duration) time.Duration {
	if a.LastQuiz == nil {
		return 0
	}
	remaining := window - asOf.Sub(*a.LastQuiz)
	if remaining < 0 {
		return 0
	}
	return remaining
}
