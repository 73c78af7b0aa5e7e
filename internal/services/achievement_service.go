package services

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/achievements"
	"github.com/cardfolio/backend/internal/metrics"
	"github.com/cardfolio/backend/internal/models"
)

// AchievementCheckResult is the persisted outcome of one evaluation run.
type AchievementCheckResult struct {
	NewlyUnlocked []models.AchievementDefinition `json:"newly_unlocked"`
	Revoked       []models.AchievementDefinition `json:"revoked"`
	TotalUnlocked int                            `json:"total_unlocked"`
	TotalPoints   int                            `json:"total_points"`
}

// AchievementService recomputes a user's achievement state from scratch
// on every check and persists the diff against the stored unlock rows.
type AchievementService struct {
	db       *gorm.DB
	catalog  *achievements.Catalog
	stats    *StatsService
	counters *CountersService
}

func NewAchievementService(db *gorm.DB, catalog *achievements.Catalog, stats *StatsService, counters *CountersService) *AchievementService {
	return &AchievementService{db: db, catalog: catalog, stats: stats, counters: counters}
}

// RunCheck evaluates the full catalog for a user and stores the diff.
// Unlocks and revocations are applied in one transaction so a crash
// cannot leave the stored state half-updated.
func (s *AchievementService) RunCheck(userID string) (*AchievementCheckResult, error) {
	start := time.Now()

	stats, err := s.stats.ComputeStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute collection stats: %w", err)
	}
	ext := s.buildExtendedStats(userID, stats)

	previouslyUnlocked, err := s.unlockedSet(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}

	result := achievements.Evaluate(s.catalog, ext, previouslyUnlocked)

	if err := s.persistDiff(userID, result); err != nil {
		return nil, fmt.Errorf("failed to persist achievement diff: %w", err)
	}

	metrics.AchievementEvaluationsTotal.Inc()
	metrics.AchievementUnlocksTotal.Add(float64(len(result.NewlyUnlocked)))
	metrics.AchievementRevocationsTotal.Add(float64(len(result.Revoked)))
	metrics.AchievementEvaluationDuration.Observe(time.Since(start).Seconds())

	if len(result.NewlyUnlocked) > 0 || len(result.Revoked) > 0 {
		log.Printf("Achievements: user %s unlocked %d, revoked %d", userID, len(result.NewlyUnlocked), len(result.Revoked))
	}

	check := &AchievementCheckResult{
		NewlyUnlocked: s.resolveDefinitions(result.NewlyUnlocked),
		Revoked:       s.resolveDefinitions(result.Revoked),
	}
	for _, typeKey := range append(result.NewlyUnlocked, result.StillUnlocked...) {
		check.TotalUnlocked++
		if def, ok := s.catalog.Get(typeKey); ok {
			check.TotalPoints += def.Points
		}
	}
	return check, nil
}

// ListWithStatus returns the catalog annotated with the user's unlock
// state. Hidden achievements are omitted until unlocked.
func (s *AchievementService) ListWithStatus(userID string) ([]models.AchievementWithStatus, error) {
	var rows []models.UnlockedAchievement
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load unlocked achievements: %w", err)
	}
	unlockedAt := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		unlockedAt[row.AchievementType] = row.UnlockedAt
	}

	out := make([]models.AchievementWithStatus, 0, s.catalog.Len())
	for _, def := range s.catalog.All() {
		at, unlocked := unlockedAt[def.Type]
		if def.Hidden && !unlocked {
			continue
		}
		entry := models.AchievementWithStatus{
			AchievementDefinition: def,
			Unlocked:              unlocked,
		}
		if unlocked {
			entry.UnlockedAt = &at
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *AchievementService) buildExtendedStats(userID string, stats models.CollectionStats) models.ExtendedStats {
	counters := s.counters.GetExtendedCounters(userID)
	return models.ExtendedStats{
		CollectionStats:      stats,
		Friends:              counters.Friends,
		CompletedTrades:      counters.CompletedTrades,
		LoginStreak:          counters.LoginStreak,
		ActiveDays30:         counters.ActiveDays30,
		CardsAddedToday:      counters.CardsAddedToday,
		TradesCompletedToday: counters.TradesCompletedToday,
		ThemedCounts:         counters.ThemedCounts,
		Flags:                counters.Flags,
	}
}

func (s *AchievementService) unlockedSet(userID string) (map[string]bool, error) {
	var rows []models.UnlockedAchievement
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(rows))
	for _, row := range rows {
		set[row.AchievementType] = true
	}
	return set, nil
}

func (s *AchievementService) persistDiff(userID string, result achievements.EvaluationResult) error {
	if len(result.NewlyUnlocked) == 0 && len(result.Revoked) == 0 {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, typeKey := range result.NewlyUnlocked {
			row := models.UnlockedAchievement{
				UserID:          userID,
				AchievementType: typeKey,
				UnlockedAt:      now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if len(result.Revoked) > 0 {
			err := tx.Where("user_id = ? AND achievement_type IN ?", userID, result.Revoked).
				Delete(&models.UnlockedAchievement{}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *AchievementService) resolveDefinitions(typeKeys []string) []models.AchievementDefinition {
	defs := make([]models.AchievementDefinition, 0, len(typeKeys))
	for _, typeKey := range typeKeys {
		if def, ok := s.catalog.Get(typeKey); ok {
			defs = append(defs, *def)
		}
	}
	return defs
}
