package database

import (
	"log"

	"gorm.io/gorm"
)

// RunMigrations runs custom data migrations after schema changes.
func RunMigrations(db *gorm.DB) error {
	if err := normalizeCollectionDefaults(db); err != nil {
		return err
	}
	if err := dedupeUnlockedAchievements(db); err != nil {
		return err
	}
	return nil
}

// normalizeCollectionDefaults backfills NULL/empty variant and
// condition values left behind by older clients that did not send them.
func normalizeCollectionDefaults(db *gorm.DB) error {
	if !db.Migrator().HasTable("collection_items") {
		return nil
	}

	result := db.Exec(`UPDATE collection_items SET variant = 'normal' WHERE variant IS NULL OR variant = ''`)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Normalized variant on %d collection items", result.RowsAffected)
	}

	result = db.Exec(`UPDATE collection_items SET condition = 'near_mint' WHERE condition IS NULL OR condition = ''`)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Normalized condition on %d collection items", result.RowsAffected)
	}

	return nil
}

// dedupeUnlockedAchievements removes duplicate unlock rows predating
// the unique (user_id, achievement_type) index, keeping the earliest
// unlock of each pair.
func dedupeUnlockedAchievements(db *gorm.DB) error {
	if !db.Migrator().HasTable("unlocked_achievements") {
		return nil
	}

	result := db.Exec(`
		DELETE FROM unlocked_achievements
		WHERE id NOT IN (
			SELECT MIN(id)
			FROM unlocked_achievements
			GROUP BY user_id, achievement_type
		)
	`)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("Cleaned up %d duplicate unlocked achievements", result.RowsAffected)
	}

	return nil
}
