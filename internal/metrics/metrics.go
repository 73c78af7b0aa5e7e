// Package metrics provides Prometheus metrics for the Cardfolio
// backend. Scrape these at /metrics for Grafana dashboards and
// alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardfolio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardfolio_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Achievement Metrics
	AchievementEvaluationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_achievement_evaluations_total",
			Help: "Total number of achievement evaluation passes",
		},
	)

	AchievementUnlocksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_achievement_unlocks_total",
			Help: "Total number of achievements unlocked",
		},
	)

	AchievementRevocationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_achievement_revocations_total",
			Help: "Total number of achievements revoked",
		},
	)

	AchievementEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cardfolio_achievement_evaluation_duration_seconds",
			Help:    "Time taken for one full achievement evaluation pass",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Collection Metrics
	CollectionCardsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cardfolio_collection_cards_total",
			Help: "Total number of cards in a user's collection",
		},
		[]string{"user"},
	)

	CollectionValueEUR = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cardfolio_collection_value_eur",
			Help: "Estimated collection value in EUR",
		},
		[]string{"user"},
	)

	StatsComputationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_stats_computations_total",
			Help: "Total number of collection stats computations",
		},
	)

	// Card Catalog Metrics
	CardCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_card_cache_hits_total",
			Help: "Card lookup cache hit count",
		},
	)

	CardCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_card_cache_misses_total",
			Help: "Card lookup cache miss count",
		},
	)

	// Price Worker Metrics
	PriceUpdatesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_price_updates_total",
			Help: "Total number of card price quotes updated",
		},
	)

	PriceQueueSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cardfolio_price_queue_size",
			Help: "Number of cards waiting in the priority refresh queue",
		},
	)

	PriceBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cardfolio_price_batch_duration_seconds",
			Help:    "Time taken to process a price refresh batch",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	MarketRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardfolio_market_requests_total",
			Help: "Total number of market price API requests made",
		},
	)

	MarketErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardfolio_market_errors_total",
			Help: "Market price API errors by type",
		},
		[]string{"type"}, // "network", "api", "parse"
	)
)
