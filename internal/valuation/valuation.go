package valuation

import (
	"github.com/cardfolio/backend/internal/models"
)

// UnitValue is the per-copy value of an ownership record in EUR: the
// resolved average price for the record's variant scaled by its
// condition multiplier.
func UnitValue(item *models.CollectionItem, card *models.Card, cfg Config) float64 {
	return ResolvePrice(card, item.Variant, PriceAverage, cfg) * models.ConditionMultiplier(item.Condition)
}

// ExtendedValue is the record's unit value times its quantity.
func ExtendedValue(item *models.CollectionItem, card *models.Card, cfg Config) float64 {
	return UnitValue(item, card, cfg) * float64(item.Quantity)
}

// AveragePerCard divides a total value by a unit count, returning 0 for
// an empty collection instead of dividing by zero.
func AveragePerCard(totalValueEUR float64, totalCards int) float64 {
	if totalCards == 0 {
		return 0
	}
	return totalValueEUR / float64(totalCards)
}
