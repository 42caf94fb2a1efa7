package entities

import (
	"fmt"
	"time"
)

// InventoryItem represents an owned shop item within a guild.
// Items are permanent perks: quantities only ever increase, and no removal
// operation exists (guaranteed-win and insurance artifacts are checked for
// presence, never consumed).
type InventoryItem struct {
	DiscordID int64        `db:"discord_id"`
	GuildID   int64        `db:"guild_id"`
	Category  ItemCategory `db:"category"`
	ItemName  string       `db:"item_name"`
	Quantity  int64        `db:"quantity"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// DisplayName returns the item name with a quantity suffix for multiples
func (i *InventoryItem) DisplayName() string {
	if i.Quantity > 1 {
		return fmt.Sprintf("%s (x%d)", i.ItemName, i.Quantity)
	}
	return i.ItemName
}
