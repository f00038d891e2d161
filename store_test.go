package main

import "testing"

func TestStoreCatalogIntegrity(t *testing.T) {
	if len(StoreCatalog) == 0 {
		t.Fatal("the catalog must not be empty")
	}

	seen := map[string]bool{}
	for _, item := range StoreCatalog {
		if seen[item.ID] {
			t.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true

		if item.Price <= 0 {
			t.Errorf("%s: items must cost something, price=%d", item.ID, item.Price)
		}
		if item.Type != ItemSkin && item.Type != ItemTrail {
			t.Errorf("%s: unknown item type %q", item.ID, item.Type)
		}
		if item.Rarity < RarityCommon || item.Rarity > RarityLegendary {
			t.Errorf("%s: rarity out of range: %d", item.ID, item.Rarity)
		}
		if item.Name == "" || item.Color1 == "" {
			t.Errorf("%s: items need a name and a primary color", item.ID)
		}
	}

	for id, item := range StoreCatalogMap {
		if id != item.ID {
			t.Errorf("map key %q does not match item id %q", id, item.ID)
		}
	}
	if len(StoreCatalogMap) != len(StoreCatalog) {
		t.Errorf("map and list sizes differ: %d vs %d", len(StoreCatalogMap), len(StoreCatalog))
	}
}

func TestCreditsPerMatch(t *testing.T) {
	if got := CreditsPerMatch(0, 0, false); got != 30 {
		t.Errorf("showing up pays the base rate, got %d", got)
	}
	if got := CreditsPerMatch(4, 3, false); got != 30+20+6 {
		t.Errorf("kills and assists pay out, got %d", got)
	}
	if got := CreditsPerMatch(4, 3, true); got != 30+20+6+25 {
		t.Errorf("winning adds the bonus, got %d", got)
	}
}

func TestPurchaseFlow(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("buyer", "", "h")
	item := StoreCatalogMap["skin_rust"]

	db.AddCredits(id, item.Price-1)
	if ok, _ := db.SpendCredits(id, item.Price); ok {
		t.Error("one credit short must not buy the item")
	}

	db.AddCredits(id, 1)
	ok, err := db.SpendCredits(id, item.Price)
	if err != nil || !ok {
		t.Fatalf("purchase should clear: %v %v", ok, err)
	}
	db.AddUnlock(id, item.ID)

	unlocks, _ := db.GetUnlocks(id)
	if len(unlocks) != 1 || unlocks[0] != item.ID {
		t.Errorf("purchase should land in unlocks, got %v", unlocks)
	}
	if c, _ := db.GetCredits(id); c != 0 {
		t.Errorf("the full price is deducted, balance=%d", c)
	}
}
