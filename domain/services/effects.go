package services

import (
	"context"
	"fmt"

	"tokenbot/domain/entities"
	"tokenbot/domain/interfaces"
)

// ownedEffects aggregates the gameplay modifiers granted by a user's inventory
type ownedEffects struct {
	guaranteedWin bool
	luckBoost     int64 // percentage points added to the base win chance
	refundRate    int64 // percent of a lost stake refunded
	petBonuses    []entities.PetBonus
}

// resolveEffects reads a user's inventory and maps owned items onto their
// catalog effects. Unknown items (e.g. removed from a later catalog revision)
// carry no effect.
func resolveEffects(ctx context.Context, inventoryRepo interfaces.InventoryRepository, catalog *entities.Catalog, discordID int64) (*ownedEffects, error) {
	items, err := inventoryRepo.ListByUser(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	effects := &ownedEffects{}
	for _, owned := range items {
		item, ok := catalog.Lookup(owned.Category.String(), owned.ItemName)
		if !ok {
			continue
		}
		switch item.Effect.Kind {
		case entities.EffectGuaranteedWin:
			effects.guaranteedWin = true
		case entities.EffectLuckBoost:
			if item.Effect.Value > effects.luckBoost {
				effects.luckBoost = item.Effect.Value
			}
		case entities.EffectRefund:
			if item.Effect.Value > effects.refundRate {
				effects.refundRate = item.Effect.Value
			}
		case entities.EffectDailyBonus:
			effects.petBonuses = append(effects.petBonuses, entities.PetBonus{
				ItemName: item.Name,
				Amount:   item.Effect.Value,
			})
		}
	}
	return effects, nil
}
