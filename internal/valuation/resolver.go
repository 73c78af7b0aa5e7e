// Package valuation turns ownership records into euro values: it
// resolves a single market price per (card, variant, price kind) and
// scales it by the card's physical condition.
package valuation

import (
	"github.com/cardfolio/backend/internal/models"
)

// PriceKind selects which quotation field to read from a price bundle.
type PriceKind string

const (
	PriceAverage PriceKind = "average"
	PriceLow     PriceKind = "low"
	PriceTrend   PriceKind = "trend"
)

// Config carries the pricing heuristics that are business policy rather
// than market data. The first-edition multiplier and the USD rate are
// deliberately configuration, not constants: neither is derived from
// data and both are pending product-owner confirmation.
type Config struct {
	// FirstEditionMultiplier estimates a first-edition price as a
	// multiple of the standard quote when no dedicated quote exists.
	FirstEditionMultiplier float64

	// USDToEURRate converts first-edition quotes, which the market feed
	// denominates in USD, into the EUR the rest of the system uses.
	USDToEURRate float64
}

// DefaultConfig returns the standard pricing heuristics.
func DefaultConfig() Config {
	return Config{
		FirstEditionMultiplier: 2.5,
		USDToEURRate:           0.92,
	}
}

// ResolvePrice returns a single price in EUR for the card under the
// requested variant and price kind. It never fails: absent data
// degrades to 0 or to the standard-variant quote.
//
// Fallback rules:
//   - normal/holo: the standard quote for the kind (holo cards carry
//     their holo pricing in the standard quote).
//   - reverse_holo: the reverse quote for the kind, falling back to the
//     standard quote when the reverse quote is absent.
//   - pattern variants (poke ball, master ball): always the standard
//     quote, no dedicated market data exists.
//   - first_edition: the dedicated first-edition quote converted from
//     USD; when absent, estimated as FirstEditionMultiplier times the
//     standard quote.
func ResolvePrice(card *models.Card, variant models.Variant, kind PriceKind, cfg Config) float64 {
	if card == nil {
		return 0
	}

	standard := standardQuote(card.Prices, kind)

	switch {
	case variant == models.VariantReverseHolo:
		if reverse := reverseQuote(card.Prices, kind); reverse > 0 {
			return reverse
		}
		return standard

	case variant.IsPatternVariant():
		return standard

	case variant == models.VariantFirstEdition:
		if firstEd := firstEditionQuote(card.Prices, kind); firstEd > 0 {
			return firstEd * cfg.USDToEURRate
		}
		return standard * cfg.FirstEditionMultiplier

	default:
		return standard
	}
}

func standardQuote(p models.PriceQuotes, kind PriceKind) float64 {
	switch kind {
	case PriceLow:
		return p.LowEUR
	case PriceTrend:
		return p.TrendEUR
	default:
		return p.AverageEUR
	}
}

func reverseQuote(p models.PriceQuotes, kind PriceKind) float64 {
	switch kind {
	case PriceLow:
		return p.ReverseLowEUR
	case PriceTrend:
		return p.ReverseTrendEUR
	default:
		return p.ReverseAverageEUR
	}
}

func firstEditionQuote(p models.PriceQuotes, kind PriceKind) float64 {
	switch kind {
	case PriceLow:
		return p.FirstEditionLowUSD
	case PriceTrend:
		return p.FirstEditionTrendUSD
	default:
		return p.FirstEditionAverageUSD
	}
}
