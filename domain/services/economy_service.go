package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"tokenbot/config"
	"tokenbot/domain/entities"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/utils"
)

type economyService struct {
	accountRepo        interfaces.AccountRepository
	inventoryRepo      interfaces.InventoryRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
	catalog            *entities.Catalog
	rng                *rand.Rand
}

// NewEconomyService creates a new economy service. The random source is
// injected so tests can fix outcomes deterministically.
func NewEconomyService(
	accountRepo interfaces.AccountRepository,
	inventoryRepo interfaces.InventoryRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
	catalog *entities.Catalog,
	rng *rand.Rand,
) interfaces.EconomyService {
	return &economyService{
		accountRepo:        accountRepo,
		inventoryRepo:      inventoryRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
		catalog:            catalog,
		rng:                rng,
	}
}

func (s *economyService) ClaimDaily(ctx context.Context, discordID int64) (*entities.DailyRewardResult, error) {
	cfg := config.Get()

	// Row lock so concurrent claims serialize on the cooldown check
	account, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, entities.ErrAccountNotFound
	}

	now := time.Now()
	if !account.CanClaimDaily(now, cfg.DailyCooldown) {
		return nil, &entities.CooldownActiveError{
			Operation: "daily",
			Remaining: account.DailyCooldownRemaining(now, cfg.DailyCooldown),
		}
	}

	effects, err := resolveEffects(ctx, s.inventoryRepo, s.catalog, discordID)
	if err != nil {
		return nil, err
	}

	base := cfg.DailyRewardMin + s.rng.Int63n(cfg.DailyRewardMax-cfg.DailyRewardMin+1)
	total := base
	for _, bonus := range effects.petBonuses {
		total += bonus.Amount
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, discordID, total)
	if err != nil {
		return nil, fmt.Errorf("failed to credit daily reward: %w", err)
	}
	if err := s.accountRepo.SetLastDaily(ctx, discordID, now); err != nil {
		return nil, fmt.Errorf("failed to record daily claim: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       discordID,
		GuildID:         account.GuildID,
		BalanceBefore:   account.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    total,
		TransactionType: entities.TransactionTypeDailyReward,
		TransactionMetadata: map[string]any{
			"base_amount": base,
			"pet_bonus":   total - base,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return nil, fmt.Errorf("failed to record daily reward: %w", err)
	}

	return &entities.DailyRewardResult{
		BaseAmount:  base,
		PetBonuses:  effects.petBonuses,
		TotalAmount: total,
		NewBalance:  newBalance,
	}, nil
}

func (s *economyService) FlipCoin(ctx context.Context, discordID int64, stake int64) (*entities.FlipResult, error) {
	if stake <= 0 {
		return nil, entities.ErrInvalidAmount
	}

	// Row lock so the funds check and the debit see the same balance even
	// under concurrent spends
	account, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, entities.ErrAccountNotFound
	}
	if !account.HasSufficientBalance(stake) {
		return nil, &entities.InsufficientFundsError{Have: account.Balance, Need: stake}
	}

	effects, err := resolveEffects(ctx, s.inventoryRepo, s.catalog, discordID)
	if err != nil {
		return nil, err
	}

	winChance := 50 + int(effects.luckBoost)
	won := effects.guaranteedWin || s.rng.Intn(100) < winChance

	result := &entities.FlipResult{
		Won:           won,
		Stake:         stake,
		GuaranteedWin: effects.guaranteedWin,
		WinChance:     winChance,
	}

	var delta int64
	var transactionType entities.TransactionType
	metadata := map[string]any{
		"stake":      stake,
		"win_chance": winChance,
		"guaranteed": effects.guaranteedWin,
	}

	if won {
		delta = stake
		transactionType = entities.TransactionTypeFlipWin
	} else {
		// Refund artifacts credit back a fraction of the lost stake in the
		// same transaction as the debit
		result.Refund = stake * effects.refundRate / 100
		delta = -stake + result.Refund
		transactionType = entities.TransactionTypeFlipLoss
		metadata["refund"] = result.Refund
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, discordID, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to settle flip: %w", err)
	}
	result.NewBalance = newBalance

	history := &entities.BalanceHistory{
		DiscordID:           discordID,
		GuildID:             account.GuildID,
		BalanceBefore:       account.Balance,
		BalanceAfter:        newBalance,
		ChangeAmount:        delta,
		TransactionType:     transactionType,
		TransactionMetadata: metadata,
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return nil, fmt.Errorf("failed to record flip: %w", err)
	}

	return result, nil
}

func (s *economyService) Work(ctx context.Context, discordID int64) (*entities.WorkResult, error) {
	cfg := config.Get()

	// Row lock so the history row's before/after balances stay consistent
	account, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, entities.ErrAccountNotFound
	}

	amount := cfg.WorkRewardMin + s.rng.Int63n(cfg.WorkRewardMax-cfg.WorkRewardMin+1)

	newBalance, err := s.accountRepo.AdjustBalance(ctx, discordID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit work reward: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       discordID,
		GuildID:         account.GuildID,
		BalanceBefore:   account.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    amount,
		TransactionType: entities.TransactionTypeWork,
		TransactionMetadata: map[string]any{
			"work_amount": amount,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return nil, fmt.Errorf("failed to record work reward: %w", err)
	}

	return &entities.WorkResult{Amount: amount, NewBalance: newBalance}, nil
}
