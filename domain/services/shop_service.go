package services

import (
	"context"
	"fmt"

	"tokenbot/domain/entities"
	"tokenbot/domain/events"
	"tokenbot/domain/interfaces"
	"tokenbot/domain/utils"
)

type shopService struct {
	accountRepo        interfaces.AccountRepository
	inventoryRepo      interfaces.InventoryRepository
	balanceHistoryRepo interfaces.BalanceHistoryRepository
	eventPublisher     interfaces.EventPublisher
	catalog            *entities.Catalog
}

// NewShopService creates a new shop service
func NewShopService(
	accountRepo interfaces.AccountRepository,
	inventoryRepo interfaces.InventoryRepository,
	balanceHistoryRepo interfaces.BalanceHistoryRepository,
	eventPublisher interfaces.EventPublisher,
	catalog *entities.Catalog,
) interfaces.ShopService {
	return &shopService{
		accountRepo:        accountRepo,
		inventoryRepo:      inventoryRepo,
		balanceHistoryRepo: balanceHistoryRepo,
		eventPublisher:     eventPublisher,
		catalog:            catalog,
	}
}

func (s *shopService) Purchase(ctx context.Context, discordID int64, category, itemName string) (*entities.PurchaseResult, error) {
	if !s.catalog.HasCategory(category) {
		return nil, entities.ErrUnknownCategory
	}
	item, ok := s.catalog.Lookup(category, itemName)
	if !ok {
		return nil, entities.ErrUnknownItem
	}

	// Row lock so the funds check and the debit see the same balance
	account, err := s.accountRepo.GetByDiscordIDForUpdate(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account == nil {
		return nil, entities.ErrAccountNotFound
	}
	if !account.HasSufficientBalance(item.Price) {
		return nil, &entities.InsufficientFundsError{Have: account.Balance, Need: item.Price}
	}

	newBalance, err := s.accountRepo.AdjustBalance(ctx, discordID, -item.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to debit purchase: %w", err)
	}

	if err := s.inventoryRepo.AddItem(ctx, discordID, item.Category, item.Name, 1); err != nil {
		return nil, fmt.Errorf("failed to add item to inventory: %w", err)
	}

	history := &entities.BalanceHistory{
		DiscordID:       discordID,
		GuildID:         account.GuildID,
		BalanceBefore:   account.Balance,
		BalanceAfter:    newBalance,
		ChangeAmount:    -item.Price,
		TransactionType: entities.TransactionTypePurchase,
		TransactionMetadata: map[string]any{
			"category":  item.Category.String(),
			"item_name": item.Name,
			"price":     item.Price,
		},
	}
	if err := utils.RecordBalanceChange(ctx, s.balanceHistoryRepo, s.eventPublisher, history); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	if err := s.eventPublisher.Publish(events.ItemPurchasedEvent{
		DiscordID: discordID,
		GuildID:   account.GuildID,
		Category:  item.Category,
		ItemName:  item.Name,
		Price:     item.Price,
	}); err != nil {
		// Purchase already committed; event delivery is best-effort
		return &entities.PurchaseResult{Item: item, NewBalance: newBalance}, nil
	}

	return &entities.PurchaseResult{Item: item, NewBalance: newBalance}, nil
}
