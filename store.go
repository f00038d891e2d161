package main

// Rarity levels for cosmetic items
const (
	RarityCommon    = 0
	RarityRare      = 1
	RarityEpic      = 2
	RarityLegendary = 3
)

// ItemType distinguishes different cosmetic categories
const (
	ItemSkin  = "skin"
	ItemTrail = "trail"
)

// StoreItem represents a purchasable cosmetic item
type StoreItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`    // "skin" or "trail"
	Rarity  int    `json:"rarity"`  // 0=common, 1=rare, 2=epic, 3=legendary
	Price   int    `json:"price"`   // in credits
	Color1  string `json:"color1"`  // primary color (hex)
	Color2  string `json:"color2"`  // secondary color (hex), used for trail/accent
	Preview string `json:"preview"` // description for UI
}

// StoreCatalog is the full list of purchasable items
var StoreCatalog = []StoreItem{
	// Suit skins - Common (50-100 credits)
	{ID: "skin_rust", Name: "Rustbucket", Type: ItemSkin, Rarity: RarityCommon, Price: 50, Color1: "#aa5522", Color2: "#663311", Preview: "Weathered scrapyard plating"},
	{ID: "skin_moss", Name: "Mossback", Type: ItemSkin, Rarity: RarityCommon, Price: 50, Color1: "#33cc33", Color2: "#006600", Preview: "Overgrown green armor"},
	{ID: "skin_cobalt", Name: "Cobalt", Type: ItemSkin, Rarity: RarityCommon, Price: 50, Color1: "#3399ff", Color2: "#0044aa", Preview: "Cold blue alloy"},
	{ID: "skin_ember", Name: "Ember", Type: ItemSkin, Rarity: RarityCommon, Price: 75, Color1: "#ff8833", Color2: "#cc4400", Preview: "Furnace orange tones"},
	{ID: "skin_violet", Name: "Violet", Type: ItemSkin, Rarity: RarityCommon, Price: 75, Color1: "#aa44ff", Color2: "#6600cc", Preview: "Royal purple finish"},

	// Suit skins - Rare (150-250 credits)
	{ID: "skin_gold", Name: "Gilded", Type: ItemSkin, Rarity: RarityRare, Price: 150, Color1: "#ffcc00", Color2: "#aa8800", Preview: "Gleaming gold plating"},
	{ID: "skin_frost", Name: "Frost", Type: ItemSkin, Rarity: RarityRare, Price: 150, Color1: "#88ddff", Color2: "#44aacc", Preview: "Frozen crystal coating"},
	{ID: "skin_toxic", Name: "Toxic", Type: ItemSkin, Rarity: RarityRare, Price: 200, Color1: "#88ff00", Color2: "#44aa00", Preview: "Radioactive green glow"},

	// Suit skins - Epic (400-600 credits)
	{ID: "skin_shadow", Name: "Shadow", Type: ItemSkin, Rarity: RarityEpic, Price: 400, Color1: "#333344", Color2: "#111122", Preview: "Nearly invisible dark suit"},
	{ID: "skin_inferno", Name: "Inferno", Type: ItemSkin, Rarity: RarityEpic, Price: 500, Color1: "#ff4400", Color2: "#ff8800", Preview: "Burning flame pattern"},

	// Suit skins - Legendary (1000+ credits)
	{ID: "skin_prism", Name: "Prism", Type: ItemSkin, Rarity: RarityLegendary, Price: 1000, Color1: "#ff44ff", Color2: "#4444ff", Preview: "Swirling spectral colors"},

	// Jump trail effects
	{ID: "trail_spark", Name: "Spark Trail", Type: ItemTrail, Rarity: RarityCommon, Price: 75, Color1: "#ffcc00", Color2: "#ffffff", Preview: "Scattered welding sparks"},
	{ID: "trail_smoke", Name: "Smoke Trail", Type: ItemTrail, Rarity: RarityCommon, Price: 75, Color1: "#777777", Color2: "#333333", Preview: "Puffs of engine smoke"},
	{ID: "trail_neon", Name: "Neon Trail", Type: ItemTrail, Rarity: RarityRare, Price: 200, Color1: "#00ff88", Color2: "#00ffcc", Preview: "Bright neon glow"},
	{ID: "trail_plasma", Name: "Plasma Trail", Type: ItemTrail, Rarity: RarityRare, Price: 200, Color1: "#aa44ff", Color2: "#ff44aa", Preview: "Crackling plasma energy"},
	{ID: "trail_rainbow", Name: "Rainbow Trail", Type: ItemTrail, Rarity: RarityEpic, Price: 500, Color1: "#ff0000", Color2: "#0000ff", Preview: "Shifts through all colors"},
	{ID: "trail_void", Name: "Void Trail", Type: ItemTrail, Rarity: RarityLegendary, Price: 1000, Color1: "#220044", Color2: "#000000", Preview: "Dark matter distortion"},
}

// StoreCatalogMap provides O(1) lookup by item ID
var StoreCatalogMap map[string]StoreItem

func init() {
	StoreCatalogMap = make(map[string]StoreItem, len(StoreCatalog))
	for _, item := range StoreCatalog {
		StoreCatalogMap[item.ID] = item
	}
}

// CreditsPerMatch returns the base credits earned for a match
func CreditsPerMatch(kills, assists int, won bool) int {
	credits := 30 + kills*5 + assists*2
	if won {
		credits += 25
	}
	return credits
}
