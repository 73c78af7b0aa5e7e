package valuation

import (
	"testing"

	"github.com/cardfolio/backend/internal/models"
)

func TestUnitValueScalesByCondition(t *testing.T) {
	cfg := DefaultConfig()
	card := &models.Card{
		ID:     "base1-58",
		Prices: models.PriceQuotes{AverageEUR: 10.00},
	}

	tests := []struct {
		condition models.Condition
		expected  float64
	}{
		{models.ConditionMint, 10.00},
		{models.ConditionNearMint, 9.50},
		{models.ConditionLightlyPlayed, 8.50},
		{models.ConditionModeratelyPlayed, 7.00},
		{models.ConditionHeavilyPlayed, 5.00},
		{models.ConditionDamaged, 3.00},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			item := &models.CollectionItem{Variant: models.VariantNormal, Condition: tt.condition, Quantity: 1}
			got := UnitValue(item, card, cfg)
			if got != tt.expected {
				t.Errorf("UnitValue(%s) = %f, want %f", tt.condition, got, tt.expected)
			}
		})
	}
}

func TestUnitValueMonotonicInCondition(t *testing.T) {
	cfg := DefaultConfig()
	card := &models.Card{
		ID:     "base1-4",
		Prices: models.PriceQuotes{AverageEUR: 123.45},
	}

	prev := -1.0
	conditions := models.AllConditions()
	// Walk from worst to best; value must never decrease.
	for i := len(conditions) - 1; i >= 0; i-- {
		item := &models.CollectionItem{Variant: models.VariantHolo, Condition: conditions[i], Quantity: 1}
		v := UnitValue(item, card, cfg)
		if v < prev {
			t.Errorf("UnitValue(%s) = %f, decreased from %f", conditions[i], v, prev)
		}
		prev = v
	}
}

func TestExtendedValue(t *testing.T) {
	cfg := DefaultConfig()
	card := &models.Card{
		ID:     "base1-58",
		Prices: models.PriceQuotes{AverageEUR: 10.00},
	}
	item := &models.CollectionItem{
		Variant:   models.VariantNormal,
		Condition: models.ConditionMint,
		Quantity:  2,
	}

	if got := ExtendedValue(item, card, cfg); got != 20.00 {
		t.Errorf("ExtendedValue = %f, want 20.00", got)
	}
}

func TestAveragePerCard(t *testing.T) {
	if got := AveragePerCard(120.0, 10); got != 12.0 {
		t.Errorf("AveragePerCard(120, 10) = %f, want 12", got)
	}
	if got := AveragePerCard(120.0, 0); got != 0 {
		t.Errorf("AveragePerCard(120, 0) = %f, want 0", got)
	}
}
