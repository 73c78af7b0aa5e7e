package models

import (
	"time"
)

// CollectionItem is one ownership record: a (card, variant, condition)
// stack a user holds. Multiple records may reference the same card with
// different variants or conditions; they are merged only when
// aggregating, never at storage time.
type CollectionItem struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	CardID    string    `json:"card_id" gorm:"not null;index"`
	Card      Card      `json:"card" gorm:"foreignKey:CardID"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	Condition Condition `json:"condition" gorm:"default:'near_mint'"`
	Variant   Variant   `json:"variant" gorm:"default:'normal'"`
	AddedAt   time.Time `json:"added_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BreakdownBucket is one classification bucket in a stats breakdown.
type BreakdownBucket struct {
	Count      int     `json:"count"`
	ValueEUR   float64 `json:"value_eur"`
	Percentage float64 `json:"percentage"`
}

// TopValueEntry is one entry in the most-valuable-holdings list.
type TopValueEntry struct {
	CardID        string    `json:"card_id"`
	Name          string    `json:"name"`
	Variant       Variant   `json:"variant"`
	Condition     Condition `json:"condition"`
	Quantity      int       `json:"quantity"`
	UnitValueEUR  float64   `json:"unit_value_eur"`
	TotalValueEUR float64   `json:"total_value_eur"`
}

// RecentAddition is one entry in the most-recently-added list.
type RecentAddition struct {
	CardID   string    `json:"card_id"`
	Name     string    `json:"name"`
	Variant  Variant   `json:"variant"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"added_at"`
}

// CollectionStats is the derived snapshot of a user's collection. It is
// computed on demand and never persisted. Every numeric field is zero
// and every map/slice non-nil for an empty collection, so consumers can
// render it unconditionally.
type CollectionStats struct {
	TotalCards          int     `json:"total_cards"`
	UniqueCards         int     `json:"unique_cards"`
	TotalValueEUR       float64 `json:"total_value_eur"`
	AverageCardValueEUR float64 `json:"average_card_value_eur"`
	SetsTouched         int     `json:"sets_touched"`
	RareCards           int     `json:"rare_cards"`

	RarityBreakdown    map[string]BreakdownBucket `json:"rarity_breakdown"`
	ConditionBreakdown map[string]BreakdownBucket `json:"condition_breakdown"`
	VariantBreakdown   map[string]BreakdownBucket `json:"variant_breakdown"`
	SetBreakdown       map[string]BreakdownBucket `json:"set_breakdown"`

	TopValueCards   []TopValueEntry  `json:"top_value_cards"`
	RecentAdditions []RecentAddition `json:"recent_additions"`
}

// ExtendedStats is the full input to achievement evaluation: collection
// statistics merged with social and activity counters supplied by
// collaborators. Counters that are unavailable stay at their zero
// values so collection-only achievements still evaluate correctly.
type ExtendedStats struct {
	CollectionStats

	Friends              int `json:"friends"`
	CompletedTrades      int `json:"completed_trades"`
	LoginStreak          int `json:"login_streak"`
	ActiveDays30         int `json:"active_days_30"`
	CardsAddedToday      int `json:"cards_added_today"`
	TradesCompletedToday int `json:"trades_completed_today"`

	ThemedCounts map[string]int  `json:"themed_counts"`
	Flags        map[string]bool `json:"flags"`
}

type AddToCollectionRequest struct {
	CardID    string    `json:"card_id" binding:"required"`
	Quantity  int       `json:"quantity"`
	Condition Condition `json:"condition"`
	Variant   Variant   `json:"variant"`
}

type UpdateCollectionRequest struct {
	Quantity  *int       `json:"quantity"`
	Condition *Condition `json:"condition"`
	Variant   *Variant   `json:"variant"`
}
