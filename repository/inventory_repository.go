package repository

import (
	"context"
	"fmt"

	"tokenbot/database"
	"tokenbot/domain/entities"
)

// InventoryRepository implements the InventoryRepository interface
type InventoryRepository struct {
	q       Queryable
	guildID int64
}

// NewInventoryRepository creates an inventory repository over the connection pool
func NewInventoryRepository(db *database.DB, guildID int64) *InventoryRepository {
	return &InventoryRepository{q: db.Pool, guildID: guildID}
}

// NewInventoryRepositoryScoped creates an inventory repository with a transaction and guild scope
func NewInventoryRepositoryScoped(tx Queryable, guildID int64) *InventoryRepository {
	return &InventoryRepository{
		q:       tx,
		guildID: guildID,
	}
}

// AddItem increments the stored quantity, creating the entry if absent
func (r *InventoryRepository) AddItem(ctx context.Context, discordID int64, category entities.ItemCategory, itemName string, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	query := `
		INSERT INTO inventory_items (discord_id, guild_id, category, item_name, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (discord_id, guild_id, category, item_name)
		DO UPDATE SET quantity = inventory_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`

	_, err := r.q.Exec(ctx, query, discordID, r.guildID, category.String(), itemName, quantity)
	if err != nil {
		return fmt.Errorf("failed to add item %q for account %d in guild %d: %w", itemName, discordID, r.guildID, err)
	}

	return nil
}

// ListByUser returns all items owned by a user, oldest purchase first
func (r *InventoryRepository) ListByUser(ctx context.Context, discordID int64) ([]*entities.InventoryItem, error) {
	query := `
		SELECT discord_id, guild_id, category, item_name, quantity, created_at, updated_at
		FROM inventory_items
		WHERE discord_id = $1 AND guild_id = $2
		ORDER BY created_at ASC
	`

	rows, err := r.q.Query(ctx, query, discordID, r.guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory for account %d in guild %d: %w", discordID, r.guildID, err)
	}
	defer rows.Close()

	var items []*entities.InventoryItem
	for rows.Next() {
		var item entities.InventoryItem
		var category string
		err := rows.Scan(
			&item.DiscordID,
			&item.GuildID,
			&category,
			&item.ItemName,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		item.Category = entities.ItemCategory(category)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inventory items: %w", err)
	}

	return items, nil
}

// HasItem reports whether the user owns at least one of the item
func (r *InventoryRepository) HasItem(ctx context.Context, discordID int64, category entities.ItemCategory, itemName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM inventory_items
			WHERE discord_id = $1 AND guild_id = $2 AND category = $3 AND item_name = $4
		)
	`

	var exists bool
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, category.String(), itemName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check item %q for account %d in guild %d: %w", itemName, discordID, r.guildID, err)
	}

	return exists, nil
}
