package models

import (
	"time"
)

type Supertype string

const (
	SupertypePokemon Supertype = "pokemon"
	SupertypeTrainer Supertype = "trainer"
	SupertypeEnergy  Supertype = "energy"
)

// PriceQuotes holds the market quotations for a card. Standard and
// reverse-holo quotes come from the EUR market feed; first-edition
// quotes come from a USD feed and need conversion before use.
type PriceQuotes struct {
	AverageEUR float64 `json:"average_eur"`
	LowEUR     float64 `json:"low_eur"`
	TrendEUR   float64 `json:"trend_eur"`

	ReverseAverageEUR float64 `json:"reverse_average_eur"`
	ReverseLowEUR     float64 `json:"reverse_low_eur"`
	ReverseTrendEUR   float64 `json:"reverse_trend_eur"`

	FirstEditionAverageUSD float64 `json:"first_edition_average_usd"`
	FirstEditionLowUSD     float64 `json:"first_edition_low_usd"`
	FirstEditionTrendUSD   float64 `json:"first_edition_trend_usd"`
}

type Card struct {
	ID             string      `json:"id" gorm:"primaryKey"`
	Name           string      `json:"name" gorm:"not null;index"`
	Supertype      Supertype   `json:"supertype" gorm:"index"`
	Types          []string    `json:"types" gorm:"serializer:json"`
	Rarity         string      `json:"rarity" gorm:"index"`
	SetID          string      `json:"set_id" gorm:"index"`
	SetName        string      `json:"set_name"`
	SetSeries      string      `json:"set_series"`
	Generation     int         `json:"generation"`
	CardNumber     string      `json:"card_number"`
	ImageURL       string      `json:"image_url"`
	Prices         PriceQuotes `json:"prices" gorm:"embedded;embeddedPrefix:price_"`
	PriceUpdatedAt *time.Time  `json:"price_updated_at"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type CardSearchResult struct {
	Cards      []Card `json:"cards"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
}
