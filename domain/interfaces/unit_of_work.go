package interfaces

import "context"

// UnitOfWork bundles guild-scoped repositories over a single database
// transaction. Either every write inside it commits or none do.
type UnitOfWork interface {
	// Begin starts the transaction and creates the scoped repositories
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction. Safe to defer: calling it after
	// a successful Commit is a no-op.
	Rollback() error

	AccountRepository() AccountRepository
	InventoryRepository() InventoryRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	QuizQuestionRepository() QuizQuestionRepository
}

// UnitOfWorkFactory creates units of work scoped to a guild
type UnitOfWorkFactory interface {
	CreateForGuild(guildID int64) UnitOfWork
}
