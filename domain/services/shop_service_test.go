package services

import (
	"context"
	"testing"

	"tokenbot/config"
	"tokenbot/domain/entities"
	"tokenbot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupShopTest(t *testing.T) (*testhelpers.MockAccountRepository, *testhelpers.MockInventoryRepository, *testhelpers.MockBalanceHistoryRepository, *testhelpers.MockEventPublisher) {
	config.SetTestConfig(config.NewTestConfig())
	t.Cleanup(config.ResetConfig)

	return &testhelpers.MockAccountRepository{},
		&testhelpers.MockInventoryRepository{},
		&testhelpers.MockBalanceHistoryRepository{},
		&testhelpers.MockEventPublisher{}
}

func TestShopService_Purchase(t *testing.T) {
	ctx := context.Background()
	catalog := entities.DefaultCatalog()

	t.Run("unknown category", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		_, err := service.Purchase(ctx, 123456, "mounts", "High Roller")
		assert.ErrorIs(t, err, entities.ErrUnknownCategory)
	})

	t.Run("unknown item", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		_, err := service.Purchase(ctx, 123456, "roles", "Nonexistent Role")
		assert.ErrorIs(t, err, entities.ErrUnknownItem)
	})

	t.Run("unknown account", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		accountRepo.On("GetByDiscordIDForUpdate", ctx, int64(999999)).Return(nil, nil)

		_, err := service.Purchase(ctx, 999999, "roles", "High Roller")
		assert.ErrorIs(t, err, entities.ErrAccountNotFound)
	})

	t.Run("insufficient funds leaves balance untouched", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		account := &entities.Account{DiscordID: 123456, GuildID: 1, Balance: 100}
		accountRepo.On("GetByDiscordIDForUpdate", ctx, int64(123456)).Return(account, nil)

		_, err := service.Purchase(ctx, 123456, "roles", "High Roller")
		require.Error(t, err)
		assert.True(t, entities.IsInsufficientFunds(err))
		accountRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything)
		inventoryRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("successful purchase debits and stores the item", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		account := &entities.Account{DiscordID: 123456, GuildID: 1, Balance: 600000}
		accountRepo.On("GetByDiscordIDForUpdate", ctx, int64(123456)).Return(account, nil)
		accountRepo.On("AdjustBalance", ctx, int64(123456), int64(-500000)).Return(int64(100000), nil)
		inventoryRepo.On("AddItem", ctx, int64(123456), entities.CategoryRoles, "High Roller", int64(1)).Return(nil)
		historyRepo.On("Record", ctx, mock.MatchedBy(func(h *entities.BalanceHistory) bool {
			return h.TransactionType == entities.TransactionTypePurchase && h.ChangeAmount == -500000
		})).Return(nil)
		publisher.On("Publish", mock.Anything).Return(nil)

		result, err := service.Purchase(ctx, 123456, "roles", "High Roller")
		require.NoError(t, err)

		assert.Equal(t, "High Roller", result.Item.Name)
		assert.Equal(t, int64(100000), result.NewBalance)
		accountRepo.AssertExpectations(t)
		inventoryRepo.AssertExpectations(t)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		accountRepo, inventoryRepo, historyRepo, publisher := setupShopTest(t)
		service := NewShopService(accountRepo, inventoryRepo, historyRepo, publisher, catalog)

		account := &entities.Account{DiscordID: 123456, GuildID: 1, Balance: 300000}
		accountRepo.On("GetByDiscordIDForUpdate", ctx, int64(123456)).Return(account, nil)
		accountRepo.On("AdjustBalance", ctx, int64(123456), int64(-200000)).Return(int64(100000), nil)
		inventoryRepo.On("AddItem", ctx, int64(123456), entities.CategoryPets, "Rabbit's Foot", int64(1)).Return(nil)
		historyRepo.On("Record", ctx, mock.Anything).Return(nil)
		publisher.On("Publish", mock.Anything).Return(nil)

		result, err := service.Purchase(ctx, 123456, "PETS", "rabbit's foot")
		require.NoError(t, err)

		// The catalog's canonical name is stored, not the user's spelling
		assert.Equal(t, "Rabbit's Foot", result.Item.Name)
	})
}
