package entities

import "strings"

// Catalog is the immutable shop inventory, keyed by normalized category and
// item name so lookups are case-insensitive.
type Catalog struct {
	items map[ItemCategory]map[string]*ShopItem
	order map[ItemCategory][]string
}

// DefaultCatalog returns the standard shop catalog
func DefaultCatalog() *Catalog {
	c := &Catalog{
		items: make(map[ItemCategory]map[string]*ShopItem),
		order: make(map[ItemCategory][]string),
	}

	for _, item := range defaultShopItems {
		c.add(item)
	}
	return c
}

func (c *Catalog) add(item ShopItem) {
	category := item.Category
	if c.items[category] == nil {
		c.items[category] = make(map[string]*ShopItem)
	}
	stored := item
	c.items[category][normalizeKey(item.Name)] = &stored
	c.order[category] = append(c.order[category], item.Name)
}

// Lookup finds an item by category and name, matching case-insensitively
func (c *Catalog) Lookup(category, name string) (*ShopItem, bool) {
	byName, ok := c.items[ItemCategory(normalizeKey(category))]
	if !ok {
		return nil, false
	}
	item, ok := byName[normalizeKey(name)]
	return item, ok
}

// HasCategory reports whether the category exists in the catalog
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.items[ItemCategory(normalizeKey(category))]
	return ok
}

// Categories returns all catalog categories in display order
func (c *Catalog) Categories() []ItemCategory {
	return []ItemCategory{CategoryRoles, CategoryTitles, CategoryPets, CategoryArtifacts}
}

// ItemsInCategory returns the items of a category in catalog order
func (c *Catalog) ItemsInCategory(category ItemCategory) []*ShopItem {
	names := c.order[category]
	items := make([]*ShopItem, 0, len(names))
	for _, name := range names {
		items = append(items, c.items[category][normalizeKey(name)])
	}
	return items
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var defaultShopItems = []ShopItem{
	// Roles
	{Category: CategoryRoles, Name: "High Roller", Price: 500000, Description: "Gives you a special role to show off your wealth."},
	{Category: CategoryRoles, Name: "Quiz Master", Price: 1000000, Description: "A role for those who prove their intelligence."},
	{Category: CategoryRoles, Name: "The Millionaire", Price: 2500000, Description: "A role that signifies you've broken the bank."},
	{Category: CategoryRoles, Name: "The Jackpot", Price: 5000000, Description: "The ultimate role for the luckiest players."},

	// Titles
	{Category: CategoryTitles, Name: "The Lucky", Price: 100000, Description: "A title for the fortunate ones."},
	{Category: CategoryTitles, Name: "The Unlucky", Price: 150000, Description: "A title for those with bad luck."},
	{Category: CategoryTitles, Name: "The All-In", Price: 1000000, Description: "For those who risk everything."},
	{Category: CategoryTitles, Name: "The Risk Taker", Price: 750000, Description: "For the brave gamblers."},
	{Category: CategoryTitles, Name: "High Stakes", Price: 500000, Description: "For high-stakes players."},

	// Pets
	{Category: CategoryPets, Name: "Rabbit's Foot", Price: 200000, Description: "Grants a small luck boost to your coin flips.",
		Effect: ItemEffect{Kind: EffectLuckBoost, Value: 5}},
	{Category: CategoryPets, Name: "Golden Dragon", Price: 1500000, Description: "Grants a daily bonus of 10,000 T.",
		Effect: ItemEffect{Kind: EffectDailyBonus, Value: 10000}},
	{Category: CategoryPets, Name: "Fortune Cat", Price: 3000000, Description: "Grants a large daily bonus of 50,000 T.",
		Effect: ItemEffect{Kind: EffectDailyBonus, Value: 50000}},
	{Category: CategoryPets, Name: "Phoenix", Price: 10000000, Description: "Grants a massive daily bonus of 100,000 T.",
		Effect: ItemEffect{Kind: EffectDailyBonus, Value: 100000}},

	// Artifacts
	{Category: CategoryArtifacts, Name: "Lucky Coin", Price: 50000, Description: "Guarantees a win on your coin flips.",
		Effect: ItemEffect{Kind: EffectGuaranteedWin}},
	{Category: CategoryArtifacts, Name: "The Cheat", Price: 250000, Description: "Guarantees a win on your gambles.",
		Effect: ItemEffect{Kind: EffectGuaranteedWin}},
	{Category: CategoryArtifacts, Name: "Insurance", Price: 1000000, Description: "Refunds your money if you lose your bet (10% refund rate).",
		Effect: ItemEffect{Kind: EffectRefund, Value: 10}},
}
