package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/models"
	"github.com/cardfolio/backend/internal/valuation"
)

// topListSize bounds the top-value and recent-additions lists.
const topListSize = 10

// unknownBucket receives units whose card is missing from the catalog,
// so breakdown counts still sum to the total.
const unknownBucket = "unknown"

// StatsService computes collection statistics snapshots.
type StatsService struct {
	db      *gorm.DB
	catalog *CardCatalog
	pricing valuation.Config
}

func NewStatsService(db *gorm.DB, catalog *CardCatalog, pricing valuation.Config) *StatsService {
	return &StatsService{db: db, catalog: catalog, pricing: pricing}
}

// ComputeStats loads the user's full record set and aggregates it.
func (s *StatsService) ComputeStats(userID string) (models.CollectionStats, error) {
	var items []models.CollectionItem
	if err := s.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return models.CollectionStats{}, err
	}

	stats := Aggregate(items, s.catalog, s.pricing)

	metrics.StatsComputationsTotal.Inc()
	metrics.CollectionCardsTotal.WithLabelValues(userID).Set(float64(stats.TotalCards))
	metrics.CollectionValueEUR.WithLabelValues(userID).Set(stats.TotalValueEUR)

	return stats, nil
}

// Aggregate turns a set of ownership records into a statistics
// snapshot. Pure: safe to call concurrently for different users and
// repeatedly for the same one.
//
// Records whose card is missing from the lookup still count toward unit
// totals and land in the "unknown" rarity/set buckets, but contribute
// nothing to value sums. An empty record set yields all-zero fields
// with empty, non-nil maps and slices.
func Aggregate(items []models.CollectionItem, lookup CardLookup, pricing valuation.Config) models.CollectionStats {
	stats := models.CollectionStats{
		RarityBreakdown:    make(map[string]models.BreakdownBucket),
		ConditionBreakdown: make(map[string]models.BreakdownBucket),
		VariantBreakdown:   make(map[string]models.BreakdownBucket),
		SetBreakdown:       make(map[string]models.BreakdownBucket),
		TopValueCards:      []models.TopValueEntry{},
		RecentAdditions:    []models.RecentAddition{},
	}

	uniqueCards := make(map[string]bool)
	setsTouched := make(map[string]bool)

	type holding struct {
		item  models.CollectionItem
		card  *models.Card
		value float64
	}
	holdings := make([]holding, 0, len(items))

	for i := range items {
		item := items[i]
		qty := item.Quantity

		stats.TotalCards += qty
		uniqueCards[item.CardID] = true

		card, ok := lookup.Lookup(item.CardID)

		rarityKey := unknownBucket
		setKey := unknownBucket
		var value float64

		if ok {
			value = valuation.ExtendedValue(&item, card, pricing)
			stats.TotalValueEUR += value

			if card.Rarity != "" {
				rarityKey = card.Rarity
			}
			if card.SetID != "" {
				setKey = card.SetID
				setsTouched[card.SetID] = true
			}
			if isRareRarity(card.Rarity) {
				stats.RareCards += qty
			}
		}

		addToBucket(stats.RarityBreakdown, rarityKey, qty, value)
		addToBucket(stats.ConditionBreakdown, string(item.Condition), qty, value)
		addToBucket(stats.VariantBreakdown, string(item.Variant), qty, value)
		addToBucket(stats.SetBreakdown, setKey, qty, value)

		holdings = append(holdings, holding{item: item, card: card, value: value})
	}

	stats.UniqueCards = len(uniqueCards)
	stats.SetsTouched = len(setsTouched)
	stats.AverageCardValueEUR = valuation.AveragePerCard(stats.TotalValueEUR, stats.TotalCards)

	finalizePercentages(stats.RarityBreakdown, stats.TotalCards)
	finalizePercentages(stats.ConditionBreakdown, stats.TotalCards)
	finalizePercentages(stats.VariantBreakdown, stats.TotalCards)
	finalizePercentages(stats.SetBreakdown, stats.TotalCards)

	// Top holdings by extended value, card id breaking ties for a
	// stable order.
	sort.SliceStable(holdings, func(i, j int) bool {
		if holdings[i].value != holdings[j].value {
			return holdings[i].value > holdings[j].value
		}
		return holdings[i].item.CardID < holdings[j].item.CardID
	})
	for _, h := range holdings {
		if len(stats.TopValueCards) == topListSize {
			break
		}
		name := ""
		if h.card != nil {
			name = h.card.Name
		}
		stats.TopValueCards = append(stats.TopValueCards, models.TopValueEntry{
			CardID:        h.item.CardID,
			Name:          name,
			Variant:       h.item.Variant,
			Condition:     h.item.Condition,
			Quantity:      h.item.Quantity,
			UnitValueEUR:  valuation.UnitValue(&h.item, h.card, pricing),
			TotalValueEUR: h.value,
		})
	}

	// Most recent additions by acquisition time.
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].item.AddedAt.After(holdings[j].item.AddedAt)
	})
	for _, h := range holdings {
		if len(stats.RecentAdditions) == topListSize {
			break
		}
		name := ""
		if h.card != nil {
			name = h.card.Name
		}
		stats.RecentAdditions = append(stats.RecentAdditions, models.RecentAddition{
			CardID:   h.item.CardID,
			Name:     name,
			Variant:  h.item.Variant,
			Quantity: h.item.Quantity,
			AddedAt:  h.item.AddedAt,
		})
	}

	return stats
}

func addToBucket(breakdown map[string]models.BreakdownBucket, key string, count int, value float64) {
	bucket := breakdown[key]
	bucket.Count += count
	bucket.ValueEUR += value
	breakdown[key] = bucket
}

func finalizePercentages(breakdown map[string]models.BreakdownBucket, total int) {
	if total == 0 {
		return
	}
	for key, bucket := range breakdown {
		bucket.Percentage = float64(bucket.Count) / float64(total) * 100
		breakdown[key] = bucket
	}
}

// isRareRarity reports whether a rarity tag counts as rare for
// achievement purposes: anything above the two base tiers.
func isRareRarity(rarity string) bool {
	switch rarity {
	case "", "common", "uncommon":
		return false
	}
	return true
}
