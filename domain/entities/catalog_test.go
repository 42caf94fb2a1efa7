package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Lookup(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("exact name", func(t *testing.T) {
		item, ok := catalog.Lookup("roles", "High Roller")
		require.True(t, ok)
		assert.Equal(t, int64(500000), item.Price)
	})

	t.Run("case-insensitive name and category", func(t *testing.T) {
		item, ok := catalog.Lookup("ARTIFACTS", "lucky coin")
		require.True(t, ok)
		assert.Equal(t, "Lucky Coin", item.Name)
		assert.Equal(t, EffectGuaranteedWin, item.Effect.Kind)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		_, ok := catalog.Lookup(" pets ", "  Phoenix ")
		assert.True(t, ok)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, ok := catalog.Lookup("roles", "Nonexistent")
		assert.False(t, ok)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, ok := catalog.Lookup("mounts", "High Roller")
		assert.False(t, ok)
	})
}

func TestDefaultCatalog_HasCategory(t *testing.T) {
	catalog := DefaultCatalog()

	for _, category := range []string{"roles", "titles", "pets", "artifacts"} {
		assert.True(t, catalog.HasCategory(category), category)
	}
	assert.True(t, catalog.HasCategory("ROLES"))
	assert.False(t, catalog.HasCategory("mounts"))
}

func TestDefaultCatalog_ItemsInCategory(t *testing.T) {
	catalog := DefaultCatalog()

	roles := catalog.ItemsInCategory(CategoryRoles)
	require.Len(t, roles, 4)
	// Catalog order is stable for display
	assert.Equal(t, "High Roller", roles[0].Name)
	assert.Equal(t, "The Jackpot", roles[3].Name)

	titles := catalog.ItemsInCategory(CategoryTitles)
	assert.Len(t, titles, 5)

	pets := catalog.ItemsInCategory(CategoryPets)
	assert.Len(t, pets, 4)

	artifacts := catalog.ItemsInCategory(CategoryArtifacts)
	assert.Len(t, artifacts, 3)
}

func TestDefaultCatalog_Effects(t *testing.T) {
	catalog := DefaultCatalog()

	rabbit, ok := catalog.Lookup("pets", "Rabbit's Foot")
	require.True(t, ok)
	assert.Equal(t, EffectLuckBoost, rabbit.Effect.Kind)
	assert.Equal(t, int64(5), rabbit.Effect.Value)

	insurance, ok := catalog.Lookup("artifacts", "Insurance")
	require.True(t, ok)
	assert.Equal(t, EffectRefund, insurance.Effect.Kind)
	assert.Equal(t, int64(10), insurance.Effect.Value)

	role, ok := catalog.Lookup("roles", "Quiz Master")
	require.True(t, ok)
	assert.False(t, role.HasEffect())
}
