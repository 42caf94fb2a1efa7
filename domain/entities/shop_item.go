package entities

// ItemCategory identifies a shop category
type ItemCategory string

const (
	CategoryRoles     ItemCategory = "roles"
	CategoryTitles    ItemCategory = "titles"
	CategoryPets      ItemCategory = "pets"
	CategoryArtifacts ItemCategory = "artifacts"
)

// String returns the string representation of the category
func (c ItemCategory) String() string {
	return string(c)
}

// EffectKind identifies the gameplay effect an item grants
type EffectKind string

const (
	// EffectNone marks cosmetic items with no gameplay effect
	EffectNone EffectKind = ""
	// EffectDailyBonus adds a flat amount to every daily claim
	EffectDailyBonus EffectKind = "daily_bonus"
	// EffectLuckBoost improves coin flip odds by a percentage
	EffectLuckBoost EffectKind = "luck_boost"
	// EffectGuaranteedWin forces coin flips to win
	EffectGuaranteedWin EffectKind = "guaranteed_win"
	// EffectRefund returns a fraction of lost stakes
	EffectRefund EffectKind = "refund"
)

// ItemEffect describes the gameplay modifier attached to a shop item.
// Value carries the effect magnitude: a flat token amount for daily bonuses,
// a percentage point boost for luck, a percent refund rate for insurance.
type ItemEffect struct {
	Kind  EffectKind
	Value int64
}

// ShopItem is an entry in the static shop catalog
type ShopItem struct {
	Category    ItemCategory
	Name        string
	Price       int64
	Description string
	Effect      ItemEffect
}

// HasEffect reports whether the item carries a gameplay effect
func (s *ShopItem) HasEffect() bool {
	return s.Effect.Kind != EffectNone
}
