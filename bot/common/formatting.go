package common

import (
	"fmt"
	"strings"
	"time"

	"tokenbot/domain/entities"
	"tokenbot/domain/utils"
)

// FormatDuration renders a duration as a compact human-readable string
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "now"
	}

	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDailyResult renders a daily claim outcome
func FormatDailyResult(result *entities.DailyRewardResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎁 You claimed your daily reward of **%s**!", utils.FormatTokens(result.BaseAmount))
	for _, bonus := range result.PetBonuses {
		fmt.Fprintf(&b, "\n🐾 %s added a bonus of **%s**!", bonus.ItemName, utils.FormatTokens(bonus.Amount))
	}
	fmt.Fprintf(&b, "\nYour balance is now **%s**.", utils.FormatTokens(result.NewBalance))
	return b.String()
}

// FormatFlipResult renders a coin flip outcome
func FormatFlipResult(result *entities.FlipResult) string {
	if result.Won {
		msg := fmt.Sprintf("🪙 The coin lands in your favor! You won **%s**.", utils.FormatTokens(result.Stake))
		if result.GuaranteedWin {
			msg += " Your artifact made sure of it. 😉"
		}
		return msg + fmt.Sprintf("\nYour balance is now **%s**.", utils.FormatTokens(result.NewBalance))
	}

	msg := fmt.Sprintf("🪙 The coin betrays you. You lost **%s**.", utils.FormatTokens(result.Stake))
	if result.Refund > 0 {
		msg += fmt.Sprintf(" Insurance refunded **%s**.", utils.FormatTokens(result.Refund))
	}
	return msg + fmt.Sprintf("\nYour balance is now **%s**.", utils.FormatTokens(result.NewBalance))
}

// FormatWorkResult renders a work payout
func FormatWorkResult(result *entities.WorkResult) string {
	return fmt.Sprintf("💼 You put in an honest shift and earned **%s**.\nYour balance is now **%s**.",
		utils.FormatTokens(result.Amount), utils.FormatTokens(result.NewBalance))
}

// FormatPurchaseResult renders a successful purchase
func FormatPurchaseResult(result *entities.PurchaseResult) string {
	return fmt.Sprintf("🛒 You bought **%s** for **%s**.\nYour balance is now **%s**.",
		result.Item.Name, utils.FormatTokens(result.Item.Price), utils.FormatTokens(result.NewBalance))
}

// FormatTransferResult renders a completed transfer
func FormatTransferResult(result *entities.TransferResult) string {
	return fmt.Sprintf("💸 Sent **%s** to <@%d>.\nYour balance is now **%s**.",
		utils.FormatTokens(result.Amount), result.RecipientDiscordID, utils.FormatTokens(result.SenderNewBalance))
}

// FormatShopCatalog renders the full catalog grouped by category
func FormatShopCatalog(catalog *entities.Catalog) string {
	var b strings.Builder
	b.WriteString("🏪 **Token Shop**\n")
	for _, category := range catalog.Categories() {
		fmt.Fprintf(&b, "\n__%s__\n", titleCase(category.String()))
		for _, item := range catalog.ItemsInCategory(category) {
			fmt.Fprintf(&b, "• **%s** — %s\n  %s\n", item.Name, utils.FormatTokens(item.Price), item.Description)
		}
	}
	b.WriteString("\nBuy with `/buy category item`.")
	return b.String()
}

// FormatInventory renders a user's owned items
func FormatInventory(items []*entities.InventoryItem) string {
	if len(items) == 0 {
		return "🎒 Your inventory is empty. Visit `/shop` to change that."
	}

	grouped := make(map[entities.ItemCategory][]*entities.InventoryItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}

	var b strings.Builder
	b.WriteString("🎒 **Your Inventory**\n")
	for _, category := range []entities.ItemCategory{entities.CategoryRoles, entities.CategoryTitles, entities.CategoryPets, entities.CategoryArtifacts} {
		owned := grouped[category]
		if len(owned) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n__%s__\n", titleCase(category.String()))
		for _, item := range owned {
			fmt.Fprintf(&b, "• %s\n", item.DisplayName())
		}
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatLeaderboard renders the richest accounts
func FormatLeaderboard(accounts []*entities.Account) string {
	if len(accounts) == 0 {
		return "The leaderboard is empty. Someone has to earn the first token."
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var b strings.Builder
	b.WriteString("🏆 **Token Leaderboard**\n")
	for idx, account := range accounts {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		fmt.Fprintf(&b, "%s **%s** — %s\n", rank, account.Username, utils.FormatTokens(account.Balance))
	}
	return b.String()
}
