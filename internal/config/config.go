// Package config loads runtime configuration from environment
// variables with sane defaults for local development.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration for the server.
type Config struct {
	Port        string
	DBPath      string
	CORSOrigins []string

	// Pricing heuristics. The first-edition multiplier and the USD rate
	// are business policy pending product confirmation, which is why
	// they live here and not as constants.
	FirstEditionMultiplier float64
	USDToEURRate           float64

	// Market price feed client.
	MarketAPIBaseURL      string
	MarketAPIKey          string
	MarketRequestsPerMin  int
	PriceRefreshInterval  time.Duration
	PriceRefreshBatchSize int

	// Card lookup cache.
	CardCacheSize int

	// LaunchDate anchors the early-adopter achievement flag.
	LaunchDate time.Time
}

const defaultLaunchDate = "2024-03-01"

// Load reads configuration from the environment (CARDFOLIO_ prefix)
// with defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("cardfolio")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db_path", "./cardfolio.db")
	v.SetDefault("cors_origins", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("first_edition_multiplier", 2.5)
	v.SetDefault("usd_to_eur_rate", 0.92)
	v.SetDefault("market_api_base_url", "https://api.cardmarket-feed.io/v1")
	v.SetDefault("market_api_key", "")
	v.SetDefault("market_requests_per_min", 30)
	v.SetDefault("price_refresh_interval", "15m")
	v.SetDefault("price_refresh_batch_size", 50)
	v.SetDefault("card_cache_size", 1024)
	v.SetDefault("launch_date", defaultLaunchDate)

	launchDate, err := time.Parse("2006-01-02", v.GetString("launch_date"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:                   v.GetString("port"),
		DBPath:                 v.GetString("db_path"),
		CORSOrigins:            splitOrigins(v.GetString("cors_origins")),
		FirstEditionMultiplier: v.GetFloat64("first_edition_multiplier"),
		USDToEURRate:           v.GetFloat64("usd_to_eur_rate"),
		MarketAPIBaseURL:       v.GetString("market_api_base_url"),
		MarketAPIKey:           v.GetString("market_api_key"),
		MarketRequestsPerMin:   v.GetInt("market_requests_per_min"),
		PriceRefreshInterval:   v.GetDuration("price_refresh_interval"),
		PriceRefreshBatchSize:  v.GetInt("price_refresh_batch_size"),
		CardCacheSize:          v.GetInt("card_cache_size"),
		LaunchDate:             launchDate,
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
