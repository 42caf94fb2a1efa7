package services

import (
	"context"
	"fmt"

	"tokenbot/domain/entities"
	"tokenbot/domain/events"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/utils"
)

type userService struct {
	accountRepo        interfaces.AccountRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
}

// NewUserService creates a new user service
func NewUserService(
	accountRepo interfaces.AccountRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.UserService {
	return &userService{
		accountRepo:        accountRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
	}
}

func (s *userService) GetOrCreateAccount(ctx context.Context, discordID int64, username string) (*entities.Account, error) {
	existing, err := s.accountRepo.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	account, err := s.accountRepo.GetOrCreate(ctx, discordID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.eventPublisher.Publish(events.AccountCreatedEvent{
		DiscordID: account.DiscordID,
		GuildID:   account.GuildID,
		Username:  username,
	}); err != nil {
		// Event delivery is best-effort; the account itself is persisted
		return account, nil
	}

	return account, nil
}

// Transfer moves amount from sender to recipient. Both repositories come from
// the same unit of work, so the debit and credit commit or roll back together.
func (s *userService) Transfer(ctx context.Context, fromDiscordID, toDiscordID, amount int64, toUsername string) (*entities.TransferResult, error) {
	if amount <= 0 {
		return nil, entities.ErrInvalidAmount
	}
	if fromDiscordID == toDiscordID {
		return nil, entities.ErrSelfTransfer
	}

	// Row lock so two concurrent transfers cannot both pass the funds check
	// against the same balance
	sender, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, fromDiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender account: %w", err)
	}
	if sender == nil {
		return nil, entities.ErrAccountNotFound
	}
	if !sender.HasSufficientBalance(amount) {
		return nil, &entities.InsufficientFundsError{Have: sender.Balance, Need: amount}
	}

	recipient, err := s.accountRepo.GetOrCreate(ctx, toDiscordID, toUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient account: %w", err)
	}

	senderBalance, err := s.accountRepo.AdjustBalance(ctx, fromDiscordID, -amount)
	if err != nil {
		return nil, fmt.Errorf("failed to debit sender: %w", err)
	}

	recipientBalance, err := s.accountRepo.AdjustBalance(ctx, toDiscordID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit recipient: %w", err)
	}

	fromHistory := &entities.BalanceHistory{
		DiscordID:       fromDiscordID,
		GuildID:         sender.GuildID,
		BalanceBefore:   sender.Balance,
		BalanceAfter:    senderBalance,
		ChangeAmount:    -amount,
		TransactionType: entities.TransactionTypeTransferOut,
		TransactionMetadata: map[string]any{
			"recipient_discord_id": toDiscordID,
			"transfer_amount":      amount,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, fromHistory); err != nil {
		return nil, fmt.Errorf("failed to record sender balance change: %w", err)
	}

	toHistory := &entities.BalanceHistory{
		DiscordID:       toDiscordID,
		GuildID:         recipient.GuildID,
		BalanceBefore:   recipient.Balance,
		BalanceAfter:    recipientBalance,
		ChangeAmount:    amount,
		TransactionType: entities.TransactionTypeTransferIn,
		TransactionMetadata: map[string]any{
			"sender_discord_id": fromDiscordID,
			"transfer_amount":   amount,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, toHistory); err != nil {
		return nil, fmt.Errorf("failed to record recipient balance change: %w", err)
	}

	return &entities.TransferResult{
		Amount:             amount,
		RecipientDiscordID: toDiscordID,
		SenderNewBalance:   senderBalance,
	}, nil
}

func (s *userService) GetLeaderboard(ctx context.Context, limit int) ([]*entities.Account, error) {
	if limit <= 0 {
		limit = 10
	}
	accounts, err := s.accountRepo.GetTopByBalance(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return accounts, nil
}

func (s *userService) Grant(ctx context.Context, discordID int64, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, entities.ErrInvalidAmount
	}

	account, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return 0, entities.ErrAccountNotFound
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, discordID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to credit grant: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       discordID,
		GuildID:         account.GuildID,
		BalanceBefore:   account.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    amount,
		TransactionType: entities.TransactionTypeAdminGrant,
		TransactionMetadata: map[string]any{
			"grant_amount": amount,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return 0, fmt.Errorf("failed to record grant: %w", err)
	}

	return newBalance, nil
}
