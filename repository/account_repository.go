package repository

import (
	"context"
	"fmt"
	"time"

	"tokenbot/database"
	"tokenbot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// AccountRepository implements the AccountRepository interface
type AccountRepository struct {
	q       Queryable
	guildID int64
}

// NewAccountRepository creates an account repository over the connection pool
func NewAccountRepository(db *database.DB, guildID int64) *AccountRepository {
	return &AccountRepository{q: db.Pool, guildID: guildID}
}

// NewAccountRepositoryScoped creates an account repository with a transaction and guild scope
func NewAccountRepositoryScoped(tx Queryable, guildID int64) *AccountRepository {
	return &AccountRepository{
		q:       tx,
		guildID: guildID,
	}
}

// GetByDiscordID retrieves an account by Discord ID in the current guild.
// Returns nil without error when no account exists.
func (r *AccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*entities.Account, error) {
	return r.getByDiscordID(ctx, discordID, "")
}

// GetByDiscordIDForUpdate retrieves an account and row-locks it for the
// remainder of the enclosing transaction. Balance checks that gate a
// subsequent debit must use this variant so concurrent spenders serialize
// instead of both passing the check against the same stale balance.
func (r *AccountRepository) GetByDiscordIDForUpdate(ctx context.Context, discordID int64) (*entities.Account, error) {
	return r.getByDiscordID(ctx, discordID, "FOR UPDATE")
}

func (r *AccountRepository) getByDiscordID(ctx context.Context, discordID int64, locking string) (*entities.Account, error) {
	// locking is "" or "FOR UPDATE", never user input
	query := fmt.Sprintf(`
		SELECT discord_id, guild_id, username, balance, last_daily, last_quiz, created_at, updated_at
		FROM accounts
		WHERE discord_id = $1 AND guild_id = $2
		%s
	`, locking)

	var account entities.Account
	err := r.q.QueryRow(ctx, query, discordID, r.guildID).Scan(
		&account.DiscordID,
		&account.GuildID,
		&account.Username,
		&account.Balance,
		&account.LastDaily,
		&account.LastQuiz,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d in guild %d: %w", discordID, r.guildID, err)
	}

	return &account, nil
}

// GetOrCreate retrieves an account, creating it with a zero balance if absent.
// The username is refreshed on every call so display names stay current.
func (r *AccountRepository) GetOrCreate(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	query := `
		INSERT INTO accounts (discord_id, guild_id, username)
		VALUES ($1, $2, $3)
		ON CONFLICT (discord_id, guild_id)
		DO UPDATE SET username = EXCLUDED.username, updated_at = NOW()
		RETURNING discord_id, guild_id, username, balance, last_daily, last_quiz, created_at, updated_at
	`

	var account entities.Account
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, username).Scan(
		&account.DiscordID,
		&account.GuildID,
		&account.Username,
		&account.Balance,
		&account.LastDaily,
		&account.LastQuiz,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create account %d in guild %d: %w", discordID, r.guildID, err)
	}

	return &account, nil
}

// AdjustBalance applies a delta atomically in a single statement and returns
// the new balance. Debits larger than the balance clamp at zero rather than
// failing; callers enforce sufficient-funds rules before debiting.
func (r *AccountRepository) AdjustBalance(ctx context.Context, discordID int64, delta int64) (int64, error) {
	query := `
		UPDATE accounts
		SET balance = GREATEST(balance + $1, 0), updated_at = NOW()
		WHERE discord_id = $2 AND guild_id = $3
		RETURNING balance
	`

	var newBalance int64
	err := r.q.QueryRow(ctx, query, delta, discordID, r.guildID).Scan(&newBalance)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("account %d not found in guild %d", discordID, r.guildID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for account %d in guild %d: %w", discordID, r.guildID, err)
	}

	return newBalance, nil
}

// SetLastDaily stamps the last daily claim time
func (r *AccountRepository) SetLastDaily(ctx context.Context, discordID int64, claimedAt time.Time) error {
	return r.setTimestamp(ctx, "last_daily", discordID, claimedAt)
}

// SetLastQuiz stamps the quiz cooldown time
func (r *AccountRepository) SetLastQuiz(ctx context.Context, discordID int64, startedAt time.Time) error {
	return r.setTimestamp(ctx, "last_quiz", discordID, startedAt)
}

func (r *AccountRepository) setTimestamp(ctx context.Context, column string, discordID int64, ts time.Time) error {
	// column is one of the two fixed names above, never user input
	query := fmt.Sprintf(`
		UPDATE accounts
		SET %s = $1, updated_at = NOW()
		WHERE discord_id = $2 AND guild_id = $3
	`, column)

	result, err := r.q.Exec(ctx, query, ts, discordID, r.guildID)
	if err != nil {
		return fmt.Errorf("failed to set %s for account %d in guild %d: %w", column, discordID, r.guildID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found in guild %d", discordID, r.guildID)
	}

	return nil
}

// GetTopByBalance returns the richest accounts in descending balance order
func (r *AccountRepository) GetTopByBalance(ctx context.Context, limit int) ([]*entities.Account, error) {
	query := `
		SELECT discord_id, guild_id, username, balance, last_daily, last_quiz, created_at, updated_at
		FROM accounts
		WHERE guild_id = $1
		ORDER BY balance DESC, discord_id ASC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, r.guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top accounts in guild %d: %w", r.guildID, err)
	}
	defer rows.Close()

	var accounts []*entities.Account
	for rows.Next() {
		var account entities.Account
		err := rows.Scan(
			&account.DiscordID,
			&account.GuildID,
			&account.Username,
			&account.Balance,
			&account.LastDaily,
			&account.LastQuiz,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
