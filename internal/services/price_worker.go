package services

import (
	"context"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/models"
)

// PriceWorker periodically refreshes card quotes from the market feed.
// Each batch prefers user-requested refreshes, then collected cards
// that have never been priced, then the cards with the stalest quotes.
type PriceWorker struct {
	db             *gorm.DB
	market         *MarketClient
	catalog        *CardCatalog
	updateInterval time.Duration
	batchSize      int

	// Priority queue for user-requested refreshes
	urgentQueue []string
	urgentMu    sync.Mutex

	mu             sync.RWMutex
	lastUpdateTime time.Time
	cardsUpdated   int
}

// PriceWorkerStatus is the worker state exposed by the API.
type PriceWorkerStatus struct {
	LastUpdateTime time.Time `json:"last_update_time"`
	NextUpdateTime time.Time `json:"next_update_time"`
	CardsUpdated   int       `json:"cards_updated"`
	BatchSize      int       `json:"batch_size"`
	QueueSize      int       `json:"queue_size"`
}

func NewPriceWorker(db *gorm.DB, market *MarketClient, catalog *CardCatalog, interval time.Duration, batchSize int) *PriceWorker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &PriceWorker{
		db:             db,
		market:         market,
		catalog:        catalog,
		updateInterval: interval,
		batchSize:      batchSize,
	}
}

// QueueRefresh adds a card to the high-priority refresh queue and
// returns its 1-indexed queue position.
func (w *PriceWorker) QueueRefresh(cardID string) int {
	w.urgentMu.Lock()
	defer w.urgentMu.Unlock()

	for i, id := range w.urgentQueue {
		if id == cardID {
			return i + 1
		}
	}
	w.urgentQueue = append(w.urgentQueue, cardID)
	metrics.PriceQueueSize.Set(float64(len(w.urgentQueue)))
	log.Printf("Price worker: queued refresh for card %s (queue size: %d)", cardID, len(w.urgentQueue))
	return len(w.urgentQueue)
}

// GetQueueSize returns the current urgent queue size.
func (w *PriceWorker) GetQueueSize() int {
	w.urgentMu.Lock()
	defer w.urgentMu.Unlock()
	return len(w.urgentQueue)
}

// Start runs the refresh loop until the context is cancelled.
func (w *PriceWorker) Start(ctx context.Context) {
	log.Printf("Price worker started: refreshing up to %d cards every %v", w.batchSize, w.updateInterval)

	if updated, err := w.UpdateBatch(ctx); err != nil {
		log.Printf("Price worker: initial batch update failed: %v", err)
	} else if updated > 0 {
		log.Printf("Price worker: initial batch updated %d cards", updated)
	}

	ticker := time.NewTicker(w.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Price worker stopping...")
			return
		case <-ticker.C:
			if updated, err := w.UpdateBatch(ctx); err != nil {
				log.Printf("Price worker: batch update failed: %v", err)
			} else if updated > 0 {
				log.Printf("Price worker: batch updated %d cards", updated)
			}
		}
	}
}

// UpdateBatch selects a batch of cards by refresh priority, fetches
// fresh quotes, and writes them back.
func (w *PriceWorker) UpdateBatch(ctx context.Context) (int, error) {
	var cardIDs []string
	seen := make(map[string]bool)

	// Priority 1: user-requested refreshes.
	w.urgentMu.Lock()
	urgentIDs := w.urgentQueue
	if len(urgentIDs) > w.batchSize {
		urgentIDs = urgentIDs[:w.batchSize]
		w.urgentQueue = w.urgentQueue[w.batchSize:]
	} else {
		w.urgentQueue = nil
	}
	metrics.PriceQueueSize.Set(float64(len(w.urgentQueue)))
	w.urgentMu.Unlock()

	for _, id := range urgentIDs {
		if !seen[id] {
			cardIDs = append(cardIDs, id)
			seen[id] = true
		}
	}

	// Priority 2: collected cards that were never priced.
	if remaining := w.batchSize - len(cardIDs); remaining > 0 {
		var ids []string
		err := w.db.Raw(`
			SELECT DISTINCT c.id FROM cards c
			INNER JOIN collection_items ci ON ci.card_id = c.id
			WHERE c.price_updated_at IS NULL
			LIMIT ?`, remaining).Scan(&ids).Error
		if err != nil {
			log.Printf("Price worker: failed to select unpriced cards: %v", err)
		}
		for _, id := range ids {
			if !seen[id] {
				cardIDs = append(cardIDs, id)
				seen[id] = true
			}
		}
	}

	// Priority 3: collected cards with the stalest quotes.
	if remaining := w.batchSize - len(cardIDs); remaining > 0 {
		var ids []string
		err := w.db.Raw(`
			SELECT DISTINCT c.id FROM cards c
			INNER JOIN collection_items ci ON ci.card_id = c.id
			WHERE c.price_updated_at IS NOT NULL
			ORDER BY c.price_updated_at ASC
			LIMIT ?`, remaining).Scan(&ids).Error
		if err != nil {
			log.Printf("Price worker: failed to select stale cards: %v", err)
		}
		for _, id := range ids {
			if !seen[id] {
				cardIDs = append(cardIDs, id)
				seen[id] = true
			}
		}
	}

	if len(cardIDs) == 0 {
		return 0, nil
	}

	return w.refreshCards(ctx, cardIDs)
}

// RefreshNow fetches quotes for the given cards immediately, bypassing
// the queue. Used by the on-demand refresh endpoint.
func (w *PriceWorker) RefreshNow(ctx context.Context, cardIDs []string) (int, error) {
	return w.refreshCards(ctx, cardIDs)
}

func (w *PriceWorker) refreshCards(ctx context.Context, cardIDs []string) (int, error) {
	start := time.Now()

	quotes, err := w.market.FetchQuotes(ctx, cardIDs)
	if err != nil {
		return 0, err
	}

	updated := 0
	now := time.Now()
	for cardID, q := range quotes {
		err := w.db.Model(&models.Card{}).Where("id = ?", cardID).
			Updates(map[string]interface{}{
				"price_average_eur":               q.AverageEUR,
				"price_low_eur":                   q.LowEUR,
				"price_trend_eur":                 q.TrendEUR,
				"price_reverse_average_eur":       q.ReverseAverageEUR,
				"price_reverse_low_eur":           q.ReverseLowEUR,
				"price_reverse_trend_eur":         q.ReverseTrendEUR,
				"price_first_edition_average_usd": q.FirstEditionAverageUSD,
				"price_first_edition_low_usd":     q.FirstEditionLowUSD,
				"price_first_edition_trend_usd":   q.FirstEditionTrendUSD,
				"price_updated_at":                now,
			}).Error
		if err != nil {
			log.Printf("Price worker: failed to save quotes for %s: %v", cardID, err)
			continue
		}
		w.catalog.Invalidate(cardID)
		updated++
	}

	w.mu.Lock()
	w.cardsUpdated += updated
	w.lastUpdateTime = now
	w.mu.Unlock()

	metrics.PriceUpdatesTotal.Add(float64(updated))
	metrics.PriceBatchDuration.Observe(time.Since(start).Seconds())

	return updated, nil
}

// GetStatus returns the worker state for the status endpoint.
func (w *PriceWorker) GetStatus() PriceWorkerStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return PriceWorkerStatus{
		LastUpdateTime: w.lastUpdateTime,
		NextUpdateTime: w.lastUpdateTime.Add(w.updateInterval),
		CardsUpdated:   w.cardsUpdated,
		BatchSize:      w.batchSize,
		QueueSize:      w.GetQueueSize(),
	}
}
