package models

import (
	"time"
)

// AchievementCategory groups achievements for display.
type AchievementCategory string

const (
	CategoryCollection AchievementCategory = "collection"
	CategorySocial     AchievementCategory = "social"
	CategoryTrading    AchievementCategory = "trading"
	CategorySpecial    AchievementCategory = "special"
)

// AchievementRarity is the display tier of an achievement.
type AchievementRarity string

const (
	AchievementCommon    AchievementRarity = "common"
	AchievementUncommon  AchievementRarity = "uncommon"
	AchievementRare      AchievementRarity = "rare"
	AchievementEpic      AchievementRarity = "epic"
	AchievementLegendary AchievementRarity = "legendary"
)

// RequirementKind selects which predicate evaluates a requirement.
type RequirementKind string

const (
	// Threshold kinds: satisfied when the stat is >= Target.
	ReqUniqueCards          RequirementKind = "unique_cards"
	ReqCards                RequirementKind = "cards"
	ReqCollectionValueEUR   RequirementKind = "collection_value_eur"
	ReqRareCards            RequirementKind = "rare_cards"
	ReqFriends              RequirementKind = "friends"
	ReqCompletedTrades      RequirementKind = "completed_trades"
	ReqLoginStreak          RequirementKind = "login_streak"
	ReqActiveDays30         RequirementKind = "active_days_30"
	ReqDailyCardsAdded      RequirementKind = "daily_cards_added"
	ReqDailyTradesCompleted RequirementKind = "daily_trades_completed"
	ReqThemedCount          RequirementKind = "themed_count"

	// Exact kinds: satisfied only on strict equality with Target.
	ReqExactCards       RequirementKind = "exact_cards"
	ReqExactUniqueCards RequirementKind = "exact_unique_cards"

	// Flag kind: satisfied when the named boolean flag is true.
	ReqFlag RequirementKind = "flag"
)

// Requirement is the declarative predicate of an achievement
// definition. Target is the numeric goal for threshold and exact kinds;
// Theme names the themed counter for themed_count; Flag names the
// boolean flag for flag kinds.
type Requirement struct {
	Kind   RequirementKind `json:"kind"`
	Target float64         `json:"target,omitempty"`
	Theme  string          `json:"theme,omitempty"`
	Flag   string          `json:"flag,omitempty"`
}

// AchievementDefinition is one immutable catalog entry. Type keys are
// stable across releases: the catalog is append-only and existing keys
// never change meaning.
type AchievementDefinition struct {
	Type        string              `json:"type"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Rarity      AchievementRarity   `json:"rarity"`
	Points      int                 `json:"points"`
	Requirement Requirement         `json:"requirement"`
	Hidden      bool                `json:"hidden,omitempty"`
}

// UnlockedAchievement is the persisted unlock state: one row per
// (user, achievement type) currently considered unlocked. Mutated only
// through the evaluator's diff.
type UnlockedAchievement struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          string    `json:"user_id" gorm:"not null;uniqueIndex:idx_user_achievement"`
	AchievementType string    `json:"achievement_type" gorm:"not null;uniqueIndex:idx_user_achievement"`
	UnlockedAt      time.Time `json:"unlocked_at"`
}

// AchievementWithStatus pairs a definition with a user's unlock state
// for listing.
type AchievementWithStatus struct {
	AchievementDefinition
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
