package services

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/models"
)

// CardLookup resolves card reference data by id. The aggregator and the
// counters service depend on this seam rather than on the database.
type CardLookup interface {
	Lookup(cardID string) (*models.Card, bool)
}

// CardCatalog is the read-only card reference store: database-backed
// with an LRU cache in front, since stats computation hits the same
// cards over and over.
type CardCatalog struct {
	db    *gorm.DB
	cache *lru.Cache[string, *models.Card]
}

func NewCardCatalog(db *gorm.DB, cacheSize int) (*CardCatalog, error) {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, *models.Card](cacheSize)
	if err != nil {
		return nil, err
	}
	return &CardCatalog{db: db, cache: cache}, nil
}

// Lookup returns the card for an id, or ok=false when the catalog has
// no such card.
func (c *CardCatalog) Lookup(cardID string) (*models.Card, bool) {
	if card, ok := c.cache.Get(cardID); ok {
		metrics.CardCacheHits.Inc()
		return card, true
	}
	metrics.CardCacheMisses.Inc()

	var card models.Card
	if err := c.db.First(&card, "id = ?", cardID).Error; err != nil {
		return nil, false
	}

	c.cache.Add(cardID, &card)
	return &card, true
}

// LookupBatch resolves a batch of ids in one query, warming the cache.
// Missing ids are simply absent from the result map.
func (c *CardCatalog) LookupBatch(cardIDs []string) map[string]*models.Card {
	found := make(map[string]*models.Card, len(cardIDs))

	var misses []string
	for _, id := range cardIDs {
		if card, ok := c.cache.Get(id); ok {
			metrics.CardCacheHits.Inc()
			found[id] = card
		} else {
			misses = append(misses, id)
		}
	}

	if len(misses) == 0 {
		return found
	}
	metrics.CardCacheMisses.Add(float64(len(misses)))

	var cards []models.Card
	if err := c.db.Where("id IN ?", misses).Find(&cards).Error; err != nil {
		return found
	}
	for i := range cards {
		card := cards[i]
		c.cache.Add(card.ID, &card)
		found[card.ID] = &card
	}

	return found
}

// Invalidate drops a card from the cache after its prices change.
func (c *CardCatalog) Invalidate(cardID string) {
	c.cache.Remove(cardID)
}
