package achievements

import (
	"reflect"
	"testing"

	"github.com/cardfolio/backend/internal/models"
)

func unlockedSet(types ...string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

func contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

func TestEvaluateThresholdBoundaries(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		name      string
		unique    int
		satisfied bool
	}{
		{"just below threshold", 49, false},
		{"exact match counts", 50, true},
		{"well above threshold", 1000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := models.ExtendedStats{}
			ext.UniqueCards = tt.unique

			result := Evaluate(catalog, ext, nil)
			if got := contains(result.NewlyUnlocked, "collector_50"); got != tt.satisfied {
				t.Errorf("collector_50 unlocked = %v with %d unique cards, want %v", got, tt.unique, tt.satisfied)
			}
		})
	}
}

func TestEvaluateExactCountIsStrict(t *testing.T) {
	catalog := NewCatalog()

	for _, tc := range []struct {
		total     int
		satisfied bool
	}{
		{776, false},
		{777, true},
		{778, false},
	} {
		ext := models.ExtendedStats{}
		ext.TotalCards = tc.total

		result := Evaluate(catalog, ext, nil)
		if got := contains(result.NewlyUnlocked, "lucky_777"); got != tc.satisfied {
			t.Errorf("lucky_777 unlocked = %v at %d cards, want %v", got, tc.total, tc.satisfied)
		}
	}
}

func TestEvaluateFlags(t *testing.T) {
	catalog := NewCatalog()

	ext := models.ExtendedStats{
		Flags: map[string]bool{"eeveelution_complete": true},
	}

	result := Evaluate(catalog, ext, nil)
	if !contains(result.NewlyUnlocked, "eeveelution_complete") {
		t.Error("eeveelution_complete not unlocked with flag set")
	}
	if contains(result.NewlyUnlocked, "all_types_collected") {
		t.Error("all_types_collected unlocked without flag")
	}
}

func TestEvaluateThemedCounts(t *testing.T) {
	catalog := NewCatalog()

	ext := models.ExtendedStats{
		ThemedCounts: map[string]int{"type:fire": 10, "name:pikachu": 9},
	}

	result := Evaluate(catalog, ext, nil)
	if !contains(result.NewlyUnlocked, "fire_type_10") {
		t.Error("fire_type_10 not unlocked with 10 fire cards")
	}
	if contains(result.NewlyUnlocked, "pikachu_10") {
		t.Error("pikachu_10 unlocked with only 9 pikachu cards")
	}
}

func TestEvaluateRevocation(t *testing.T) {
	catalog := NewCatalog()

	// User previously unlocked collector_50 but has dropped to 40
	// unique cards after selling.
	ext := models.ExtendedStats{}
	ext.UniqueCards = 40

	result := Evaluate(catalog, ext, unlockedSet("collector_50", "collector_25"))

	if !contains(result.Revoked, "collector_50") {
		t.Errorf("collector_50 not revoked at 40 unique cards, revoked = %v", result.Revoked)
	}
	if !contains(result.StillUnlocked, "collector_25") {
		t.Error("collector_25 should remain unlocked at 40 unique cards")
	}
	if contains(result.NewlyUnlocked, "collector_25") {
		t.Error("collector_25 reported as newly unlocked despite being previously unlocked")
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	catalog := NewCatalog()

	ext := models.ExtendedStats{
		Friends:         12,
		CompletedTrades: 6,
		LoginStreak:     8,
	}
	ext.UniqueCards = 60
	ext.TotalCards = 120
	ext.TotalValueEUR = 300

	first := Evaluate(catalog, ext, nil)

	previously := unlockedSet(first.NewlyUnlocked...)
	second := Evaluate(catalog, ext, previously)

	if len(second.NewlyUnlocked) != 0 {
		t.Errorf("second pass newly unlocked = %v, want none", second.NewlyUnlocked)
	}
	if len(second.Revoked) != 0 {
		t.Errorf("second pass revoked = %v, want none", second.Revoked)
	}
	if !reflect.DeepEqual(second.StillUnlocked, first.NewlyUnlocked) {
		t.Errorf("second pass still unlocked = %v, want %v", second.StillUnlocked, first.NewlyUnlocked)
	}
}

func TestEvaluateEmptyStats(t *testing.T) {
	catalog := NewCatalog()

	result := Evaluate(catalog, models.ExtendedStats{}, nil)
	if len(result.NewlyUnlocked) != 0 {
		t.Errorf("empty stats unlocked %v, want none (minimum targets start at 1)", result.NewlyUnlocked)
	}
}

func TestEvaluateUnknownKindFailsClosed(t *testing.T) {
	// A catalog with one bad definition must not block the others.
	catalog := &Catalog{
		defs: []models.AchievementDefinition{
			{Type: "bogus", Name: "Bogus", Description: "x", Category: models.CategorySpecial, Rarity: models.AchievementCommon, Points: 10,
				Requirement: models.Requirement{Kind: models.RequirementKind("teleport_count"), Target: 1}},
			{Type: "good", Name: "Good", Description: "x", Category: models.CategoryCollection, Rarity: models.AchievementCommon, Points: 10,
				Requirement: models.Requirement{Kind: models.ReqCards, Target: 1}},
		},
	}
	catalog.byType = map[string]*models.AchievementDefinition{
		"bogus": &catalog.defs[0],
		"good":  &catalog.defs[1],
	}

	ext := models.ExtendedStats{}
	ext.TotalCards = 5

	result := Evaluate(catalog, ext, nil)
	if contains(result.NewlyUnlocked, "bogus") {
		t.Error("unknown requirement kind evaluated as satisfied")
	}
	if !contains(result.NewlyUnlocked, "good") {
		t.Error("valid definition not evaluated after malformed one")
	}
}

func TestEvaluatePartialCountersDefaultToZero(t *testing.T) {
	catalog := NewCatalog()

	// Social counters unavailable: only collection stats present. Maps
	// nil on purpose.
	ext := models.ExtendedStats{}
	ext.UniqueCards = 10
	ext.TotalCards = 10

	result := Evaluate(catalog, ext, nil)
	if !contains(result.NewlyUnlocked, "collector_10") {
		t.Error("collection achievement blocked by missing social counters")
	}
	if contains(result.NewlyUnlocked, "friend_1") {
		t.Error("friend_1 unlocked with missing friend counter")
	}
}
