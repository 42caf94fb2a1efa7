package testutil

import (
	"time"

	"tokenbot/domain/entities"
)

// CreateTestAccount creates a test account with default values
func CreateTestAccount(discordID, guildID int64, username string) *entities.Account {
	now := time.Now()
	return &entities.Account{
		DiscordID: discordID,
		GuildID:   guildID,
		Username:  username,
		Balance:   100000,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestBalanceHistory creates a test balance history entry
func CreateTestBalanceHistory(discordID, guildID int64, transactionType entities.TransactionType) *entities.BalanceHistory {
	return &entities.BalanceHistory{
		DiscordID:       discordID,
		GuildID:         guildID,
		BalanceBefore:   100000,
		BalanceAfter:    90000,
		ChangeAmount:    -10000,
		TransactionType: transactionType,
		TransactionMetadata: map[string]any{
			"test": true,
		},
		CreatedAt: time.Now(),
	}
}
