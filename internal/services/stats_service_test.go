package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/cardfolio/backend/internal/models"
	"github.com/cardfolio/backend/internal/valuation"
)

// mapLookup is an in-memory CardLookup for aggregator tests.
type mapLookup map[string]*models.Card

func (m mapLookup) Lookup(cardID string) (*models.Card, bool) {
	card, ok := m[cardID]
	return card, ok
}

func testLookup() mapLookup {
	return mapLookup{
		"base1-4": {
			ID: "base1-4", Name: "Charizard", Rarity: "rare_holo", SetID: "base1",
			Prices: models.PriceQuotes{AverageEUR: 100.00},
		},
		"base1-58": {
			ID: "base1-58", Name: "Pikachu", Rarity: "common", SetID: "base1",
			Prices: models.PriceQuotes{AverageEUR: 10.00},
		},
		"swsh1-50": {
			ID: "swsh1-50", Name: "Sobble", Rarity: "common", SetID: "swsh1",
			Prices: models.PriceQuotes{AverageEUR: 0.50},
		},
	}
}

func TestAggregateTotals(t *testing.T) {
	lookup := testLookup()
	now := time.Now()

	items := []models.CollectionItem{
		{CardID: "base1-4", Quantity: 1, Condition: models.ConditionMint, Variant: models.VariantHolo, AddedAt: now},
		{CardID: "base1-58", Quantity: 2, Condition: models.ConditionMint, Variant: models.VariantNormal, AddedAt: now.Add(-time.Hour)},
		{CardID: "base1-58", Quantity: 1, Condition: models.ConditionDamaged, Variant: models.VariantNormal, AddedAt: now.Add(-2 * time.Hour)},
		{CardID: "swsh1-50", Quantity: 4, Condition: models.ConditionNearMint, Variant: models.VariantReverseHolo, AddedAt: now.Add(-3 * time.Hour)},
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())

	if stats.TotalCards != 8 {
		t.Errorf("TotalCards = %d, want 8", stats.TotalCards)
	}
	if stats.UniqueCards != 3 {
		t.Errorf("UniqueCards = %d, want 3", stats.UniqueCards)
	}
	if stats.SetsTouched != 2 {
		t.Errorf("SetsTouched = %d, want 2", stats.SetsTouched)
	}
	if stats.RareCards != 1 {
		t.Errorf("RareCards = %d, want 1", stats.RareCards)
	}

	// 1x100x1.00 + 2x10x1.00 + 1x10x0.30 + 4x0.50x0.95 (reverse falls
	// back to standard quote)
	want := 100.00 + 20.00 + 3.00 + 1.90
	if diff := stats.TotalValueEUR - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("TotalValueEUR = %f, want %f", stats.TotalValueEUR, want)
	}

	wantAvg := want / 8
	if diff := stats.AverageCardValueEUR - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("AverageCardValueEUR = %f, want %f", stats.AverageCardValueEUR, wantAvg)
	}
}

func TestAggregateBreakdownsSumToTotal(t *testing.T) {
	lookup := testLookup()

	items := []models.CollectionItem{
		{CardID: "base1-4", Quantity: 3, Condition: models.ConditionMint, Variant: models.VariantHolo},
		{CardID: "base1-58", Quantity: 5, Condition: models.ConditionLightlyPlayed, Variant: models.VariantNormal},
		{CardID: "missing-card", Quantity: 2, Condition: models.ConditionNearMint, Variant: models.VariantNormal},
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())

	breakdowns := map[string]map[string]models.BreakdownBucket{
		"rarity":    stats.RarityBreakdown,
		"condition": stats.ConditionBreakdown,
		"variant":   stats.VariantBreakdown,
		"set":       stats.SetBreakdown,
	}

	for axis, breakdown := range breakdowns {
		sum := 0
		pctSum := 0.0
		for _, bucket := range breakdown {
			sum += bucket.Count
			pctSum += bucket.Percentage
		}
		if sum != stats.TotalCards {
			t.Errorf("%s breakdown counts sum to %d, want %d", axis, sum, stats.TotalCards)
		}
		if diff := pctSum - 100.0; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s breakdown percentages sum to %f, want 100", axis, pctSum)
		}
	}
}

func TestAggregateMissingCardDegradesGracefully(t *testing.T) {
	lookup := testLookup()

	items := []models.CollectionItem{
		{CardID: "missing-card", Quantity: 3, Condition: models.ConditionMint, Variant: models.VariantNormal},
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())

	if stats.TotalCards != 3 {
		t.Errorf("TotalCards = %d, want 3 (missing card still counts toward units)", stats.TotalCards)
	}
	if stats.TotalValueEUR != 0 {
		t.Errorf("TotalValueEUR = %f, want 0 (missing card excluded from value)", stats.TotalValueEUR)
	}
	if bucket := stats.RarityBreakdown["unknown"]; bucket.Count != 3 {
		t.Errorf("unknown rarity bucket count = %d, want 3", bucket.Count)
	}
	if bucket := stats.SetBreakdown["unknown"]; bucket.Count != 3 {
		t.Errorf("unknown set bucket count = %d, want 3", bucket.Count)
	}
}

func TestAggregateEmptyCollection(t *testing.T) {
	stats := Aggregate(nil, testLookup(), valuation.DefaultConfig())

	if stats.TotalCards != 0 || stats.UniqueCards != 0 || stats.TotalValueEUR != 0 ||
		stats.AverageCardValueEUR != 0 || stats.SetsTouched != 0 || stats.RareCards != 0 {
		t.Errorf("empty collection produced non-zero stats: %+v", stats)
	}

	if stats.RarityBreakdown == nil || stats.ConditionBreakdown == nil ||
		stats.VariantBreakdown == nil || stats.SetBreakdown == nil {
		t.Error("empty collection produced nil breakdown maps")
	}
	if stats.TopValueCards == nil || stats.RecentAdditions == nil {
		t.Error("empty collection produced nil lists")
	}
	if len(stats.TopValueCards) != 0 || len(stats.RecentAdditions) != 0 {
		t.Error("empty collection produced non-empty lists")
	}
}

func TestAggregateTopValueOrdering(t *testing.T) {
	lookup := testLookup()

	items := []models.CollectionItem{
		{CardID: "swsh1-50", Quantity: 1, Condition: models.ConditionMint, Variant: models.VariantNormal},
		{CardID: "base1-4", Quantity: 1, Condition: models.ConditionMint, Variant: models.VariantHolo},
		{CardID: "base1-58", Quantity: 3, Condition: models.ConditionMint, Variant: models.VariantNormal},
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())

	if len(stats.TopValueCards) != 3 {
		t.Fatalf("TopValueCards length = %d, want 3", len(stats.TopValueCards))
	}
	if stats.TopValueCards[0].CardID != "base1-4" {
		t.Errorf("top holding = %s, want base1-4", stats.TopValueCards[0].CardID)
	}
	if stats.TopValueCards[1].CardID != "base1-58" {
		t.Errorf("second holding = %s, want base1-58", stats.TopValueCards[1].CardID)
	}
	for i := 1; i < len(stats.TopValueCards); i++ {
		if stats.TopValueCards[i].TotalValueEUR > stats.TopValueCards[i-1].TotalValueEUR {
			t.Error("TopValueCards not sorted by extended value descending")
		}
	}
}

func TestAggregateTopValueTiesBreakByCardID(t *testing.T) {
	lookup := mapLookup{}
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("tie-%d", i)
		lookup[id] = &models.Card{ID: id, Name: id, Prices: models.PriceQuotes{AverageEUR: 5.00}}
	}

	// Insert in reverse so the tie-break has to reorder.
	var items []models.CollectionItem
	for i := 4; i >= 0; i-- {
		items = append(items, models.CollectionItem{
			CardID: fmt.Sprintf("tie-%d", i), Quantity: 1,
			Condition: models.ConditionMint, Variant: models.VariantNormal,
		})
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())
	for i, entry := range stats.TopValueCards {
		want := fmt.Sprintf("tie-%d", i)
		if entry.CardID != want {
			t.Errorf("TopValueCards[%d] = %s, want %s", i, entry.CardID, want)
		}
	}
}

func TestAggregateRecentAdditionsOrderingAndTruncation(t *testing.T) {
	lookup := mapLookup{}
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var items []models.CollectionItem
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("c-%02d", i)
		lookup[id] = &models.Card{ID: id, Name: id}
		items = append(items, models.CollectionItem{
			CardID: id, Quantity: 1,
			Condition: models.ConditionNearMint, Variant: models.VariantNormal,
			AddedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	stats := Aggregate(items, lookup, valuation.DefaultConfig())

	if len(stats.RecentAdditions) != 10 {
		t.Fatalf("RecentAdditions length = %d, want 10", len(stats.RecentAdditions))
	}
	if stats.RecentAdditions[0].CardID != "c-14" {
		t.Errorf("most recent addition = %s, want c-14", stats.RecentAdditions[0].CardID)
	}
	for i := 1; i < len(stats.RecentAdditions); i++ {
		if stats.RecentAdditions[i].AddedAt.After(stats.RecentAdditions[i-1].AddedAt) {
			t.Error("RecentAdditions not sorted by AddedAt descending")
		}
	}
}
