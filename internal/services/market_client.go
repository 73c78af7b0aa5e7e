package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/models"
)

const marketDefaultTimeout = 10 * time.Second

// MarketClient fetches card price quotes from the market feed API.
// Requests are rate limited client-side to stay inside the feed's
// per-minute quota.
type MarketClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// marketQuoteResponse is the feed's response for a quote query.
type marketQuoteResponse struct {
	Success bool              `json:"success"`
	Data    []marketCardQuote `json:"data"`
	Error   string            `json:"error,omitempty"`
}

// marketCardQuote carries the raw quote set for one card.
type marketCardQuote struct {
	CardID               string  `json:"card_id"`
	AverageEUR           float64 `json:"average_eur"`
	LowEUR               float64 `json:"low_eur"`
	TrendEUR             float64 `json:"trend_eur"`
	ReverseAverageEUR    float64 `json:"reverse_average_eur"`
	ReverseLowEUR        float64 `json:"reverse_low_eur"`
	ReverseTrendEUR      float64 `json:"reverse_trend_eur"`
	FirstEditionAvgUSD   float64 `json:"first_edition_average_usd"`
	FirstEditionLowUSD   float64 `json:"first_edition_low_usd"`
	FirstEditionTrendUSD float64 `json:"first_edition_trend_usd"`
}

// NewMarketClient creates a market feed client limited to
// requestsPerMin upstream calls.
func NewMarketClient(baseURL, apiKey string, requestsPerMin int) *MarketClient {
	if requestsPerMin <= 0 {
		requestsPerMin = 30
	}
	return &MarketClient{
		client:  &http.Client{Timeout: marketDefaultTimeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMin)/60.0), requestsPerMin),
	}
}

// FetchQuotes fetches the current quote set for a batch of card IDs.
// The returned map contains an entry per card the feed knows about;
// cards the feed has no data for are simply absent.
func (c *MarketClient) FetchQuotes(ctx context.Context, cardIDs []string) (map[string]models.PriceQuotes, error) {
	if len(cardIDs) == 0 {
		return map[string]models.PriceQuotes{}, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	params := url.Values{}
	for _, id := range cardIDs {
		params.Add("card_id", id)
	}
	reqURL := fmt.Sprintf("%s/quotes?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	metrics.MarketRequestsTotal.Inc()

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.MarketErrorsTotal.WithLabelValues("network").Inc()
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.MarketErrorsTotal.WithLabelValues("api").Inc()
		return nil, fmt.Errorf("market feed error: status %d", resp.StatusCode)
	}

	var quoteResp marketQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quoteResp); err != nil {
		metrics.MarketErrorsTotal.WithLabelValues("parse").Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !quoteResp.Success {
		metrics.MarketErrorsTotal.WithLabelValues("api").Inc()
		if quoteResp.Error != "" {
			return nil, fmt.Errorf("market feed error: %s", quoteResp.Error)
		}
		return nil, fmt.Errorf("market feed returned unsuccessful response")
	}

	quotes := make(map[string]models.PriceQuotes, len(quoteResp.Data))
	for _, q := range quoteResp.Data {
		quotes[q.CardID] = models.PriceQuotes{
			AverageEUR:             q.AverageEUR,
			LowEUR:                 q.LowEUR,
			TrendEUR:               q.TrendEUR,
			ReverseAverageEUR:      q.ReverseAverageEUR,
			ReverseLowEUR:          q.ReverseLowEUR,
			ReverseTrendEUR:        q.ReverseTrendEUR,
			FirstEditionAverageUSD: q.FirstEditionAvgUSD,
			FirstEditionLowUSD:     q.FirstEditionLowUSD,
			FirstEditionTrendUSD:   q.FirstEditionTrendUSD,
		}
	}
	return quotes, nil
}
