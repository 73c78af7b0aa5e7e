package achievements

import (
	"testing"

	"github.com/cardfolio/backend/internal/models"
)

func TestCatalogKeysAreUnique(t *testing.T) {
	catalog := NewCatalog()

	seen := make(map[string]bool)
	for _, def := range catalog.All() {
		if def.Type == "" {
			t.Error("definition with empty type key")
		}
		if seen[def.Type] {
			t.Errorf("duplicate type key: %s", def.Type)
		}
		seen[def.Type] = true
	}
}

func TestCatalogSize(t *testing.T) {
	catalog := NewCatalog()
	if catalog.Len() < 100 {
		t.Errorf("catalog has %d definitions, want at least 100", catalog.Len())
	}
}

func TestCatalogDefinitionsAreWellFormed(t *testing.T) {
	catalog := NewCatalog()

	validCategories := map[models.AchievementCategory]bool{
		models.CategoryCollection: true,
		models.CategorySocial:     true,
		models.CategoryTrading:    true,
		models.CategorySpecial:    true,
	}
	validRarities := map[models.AchievementRarity]bool{
		models.AchievementCommon:    true,
		models.AchievementUncommon:  true,
		models.AchievementRare:      true,
		models.AchievementEpic:      true,
		models.AchievementLegendary: true,
	}

	for _, def := range catalog.All() {
		if def.Name == "" || def.Description == "" {
			t.Errorf("%s: missing name or description", def.Type)
		}
		if !validCategories[def.Category] {
			t.Errorf("%s: invalid category %q", def.Type, def.Category)
		}
		if !validRarities[def.Rarity] {
			t.Errorf("%s: invalid rarity %q", def.Type, def.Rarity)
		}
		if def.Points <= 0 {
			t.Errorf("%s: non-positive points %d", def.Type, def.Points)
		}

		req := def.Requirement
		switch req.Kind {
		case models.ReqFlag:
			if req.Flag == "" {
				t.Errorf("%s: flag requirement without flag name", def.Type)
			}
		case models.ReqThemedCount:
			if req.Theme == "" {
				t.Errorf("%s: themed requirement without theme", def.Type)
			}
			if req.Target < 1 {
				t.Errorf("%s: themed requirement target %f below 1", def.Type, req.Target)
			}
		default:
			if req.Target < 1 {
				t.Errorf("%s: requirement target %f below 1", def.Type, req.Target)
			}
		}
	}
}

func TestCatalogGet(t *testing.T) {
	catalog := NewCatalog()

	def, ok := catalog.Get("collector_50")
	if !ok {
		t.Fatal("collector_50 not found")
	}
	if def.Requirement.Kind != models.ReqUniqueCards || def.Requirement.Target != 50 {
		t.Errorf("collector_50 requirement = %+v, want unique_cards >= 50", def.Requirement)
	}

	if _, ok := catalog.Get("does_not_exist"); ok {
		t.Error("Get(does_not_exist) returned ok")
	}
}

func TestCatalogFilters(t *testing.T) {
	catalog := NewCatalog()

	total := 0
	for _, cat := range []models.AchievementCategory{
		models.CategoryCollection, models.CategorySocial,
		models.CategoryTrading, models.CategorySpecial,
	} {
		defs := catalog.ByCategory(cat)
		if len(defs) == 0 {
			t.Errorf("no definitions in category %s", cat)
		}
		for _, def := range defs {
			if def.Category != cat {
				t.Errorf("ByCategory(%s) returned %s with category %s", cat, def.Type, def.Category)
			}
		}
		total += len(defs)
	}
	if total != catalog.Len() {
		t.Errorf("category filters cover %d definitions, catalog has %d", total, catalog.Len())
	}

	for _, def := range catalog.ByRarity(models.AchievementLegendary) {
		if def.Rarity != models.AchievementLegendary {
			t.Errorf("ByRarity(legendary) returned %s with rarity %s", def.Type, def.Rarity)
		}
	}
}
