package valuation

import (
	"testing"

	"github.com/cardfolio/backend/internal/models"
)

func testCard() *models.Card {
	return &models.Card{
		ID:   "base1-4",
		Name: "Charizard",
		Prices: models.PriceQuotes{
			AverageEUR:             100.00,
			LowEUR:                 80.00,
			TrendEUR:               110.00,
			ReverseAverageEUR:      150.00,
			ReverseLowEUR:          120.00,
			ReverseTrendEUR:        160.00,
			FirstEditionAverageUSD: 500.00,
			FirstEditionLowUSD:     400.00,
			FirstEditionTrendUSD:   550.00,
		},
	}
}

func TestResolvePrice(t *testing.T) {
	cfg := Config{FirstEditionMultiplier: 2.5, USDToEURRate: 0.92}
	card := testCard()

	tests := []struct {
		name     string
		variant  models.Variant
		kind     PriceKind
		expected float64
	}{
		{"normal average", models.VariantNormal, PriceAverage, 100.00},
		{"normal low", models.VariantNormal, PriceLow, 80.00},
		{"normal trend", models.VariantNormal, PriceTrend, 110.00},
		{"holo uses standard quote", models.VariantHolo, PriceAverage, 100.00},
		{"reverse holo average", models.VariantReverseHolo, PriceAverage, 150.00},
		{"reverse holo low", models.VariantReverseHolo, PriceLow, 120.00},
		{"reverse holo trend", models.VariantReverseHolo, PriceTrend, 160.00},
		{"poke ball pattern falls back to standard", models.VariantPokeBall, PriceAverage, 100.00},
		{"master ball pattern falls back to standard", models.VariantMasterBall, PriceTrend, 110.00},
		{"first edition converts USD quote", models.VariantFirstEdition, PriceAverage, 500.00 * 0.92},
		{"first edition low converts USD quote", models.VariantFirstEdition, PriceLow, 400.00 * 0.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePrice(card, tt.variant, tt.kind, cfg)
			if got != tt.expected {
				t.Errorf("ResolvePrice(%s, %s) = %f, want %f", tt.variant, tt.kind, got, tt.expected)
			}
		})
	}
}

func TestResolvePriceReverseFallsBackToStandard(t *testing.T) {
	cfg := DefaultConfig()
	card := &models.Card{
		ID: "swsh1-50",
		Prices: models.PriceQuotes{
			AverageEUR: 4.20,
			LowEUR:     3.00,
			TrendEUR:   4.50,
			// No reverse quotes available.
		},
	}

	for _, kind := range []PriceKind{PriceAverage, PriceLow, PriceTrend} {
		got := ResolvePrice(card, models.VariantReverseHolo, kind, cfg)
		want := ResolvePrice(card, models.VariantNormal, kind, cfg)
		if got != want {
			t.Errorf("reverse %s = %f, want standard fallback %f", kind, got, want)
		}
	}
}

func TestResolvePriceFirstEditionEstimate(t *testing.T) {
	cfg := Config{FirstEditionMultiplier: 2.5, USDToEURRate: 0.92}
	card := &models.Card{
		ID: "base1-58",
		Prices: models.PriceQuotes{
			AverageEUR: 10.00,
			// No first-edition quotes available.
		},
	}

	got := ResolvePrice(card, models.VariantFirstEdition, PriceAverage, cfg)
	if got != 25.00 {
		t.Errorf("first edition estimate = %f, want 2.5 x standard = 25.00", got)
	}
}

func TestResolvePriceAbsentDataDegradesToZero(t *testing.T) {
	cfg := DefaultConfig()
	card := &models.Card{ID: "empty"}

	for _, variant := range models.AllVariants() {
		if got := ResolvePrice(card, variant, PriceAverage, cfg); got != 0 {
			t.Errorf("ResolvePrice(%s) with no quotes = %f, want 0", variant, got)
		}
	}

	if got := ResolvePrice(nil, models.VariantNormal, PriceAverage, cfg); got != 0 {
		t.Errorf("ResolvePrice(nil card) = %f, want 0", got)
	}
}
