package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/cardfolio/backend/internal/models"
)

const dayFormat = "2006-01-02"

// trackedNames are the creatures with dedicated themed achievements.
var trackedNames = []string{"pikachu", "eevee", "charizard", "mewtwo", "snorlax", "magikarp"}

// energyTypes are the card types the type-themed achievements count.
var energyTypes = []string{
	"fire", "water", "grass", "lightning", "psychic", "fighting",
	"darkness", "metal", "dragon", "fairy", "colorless",
}

// eeveelutionNames must all be owned for the eeveelution flag.
var eeveelutionNames = []string{
	"eevee", "vaporeon", "jolteon", "flareon", "espeon",
	"umbreon", "leafeon", "glaceon", "sylveon",
}

// classicSetIDs must all be touched for the classic-sets flag.
var classicSetIDs = []string{"base1", "base2", "base3", "base4", "base5"}

// starterNames must all be owned for the starter-squad flag.
var starterNames = []string{"bulbasaur", "charmander", "squirtle"}

// ExtendedCounters is the social/activity snapshot merged into
// CollectionStats before achievement evaluation.
type ExtendedCounters struct {
	Friends              int
	CompletedTrades      int
	LoginStreak          int
	ActiveDays30         int
	CardsAddedToday      int
	TradesCompletedToday int
	ThemedCounts         map[string]int
	Flags                map[string]bool
}

// CountersService assembles the extended counters from the social and
// activity tables. Each counter degrades to 0/false on failure so the
// collection-only achievements keep evaluating when a counter source is
// unavailable.
type CountersService struct {
	db         *gorm.DB
	catalog    *CardCatalog
	launchDate time.Time
}

func NewCountersService(db *gorm.DB, catalog *CardCatalog, launchDate time.Time) *CountersService {
	return &CountersService{db: db, catalog: catalog, launchDate: launchDate}
}

// GetExtendedCounters returns the full counters snapshot for a user.
func (s *CountersService) GetExtendedCounters(userID string) ExtendedCounters {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counters := ExtendedCounters{
		Friends:              s.countFriends(userID),
		CompletedTrades:      s.countCompletedTrades(userID),
		LoginStreak:          s.loginStreak(userID, now),
		ActiveDays30:         s.activeDays30(userID, now),
		CardsAddedToday:      s.cardsAddedSince(userID, startOfDay),
		TradesCompletedToday: s.tradesCompletedSince(userID, startOfDay),
	}
	counters.ThemedCounts, counters.Flags = s.themedCountsAndFlags(userID)
	counters.Flags["early_adopter"] = s.isEarlyAdopter(userID)

	return counters
}

func (s *CountersService) countFriends(userID string) int {
	var count int64
	if err := s.db.Model(&models.Friendship{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		log.Printf("Counters: failed to count friends for %s: %v", userID, err)
		return 0
	}
	return int(count)
}

func (s *CountersService) countCompletedTrades(userID string) int {
	var count int64
	err := s.db.Model(&models.Trade{}).
		Where("status = ? AND (proposer_id = ? OR receiver_id = ?)", models.TradeStatusCompleted, userID, userID).
		Count(&count).Error
	if err != nil {
		log.Printf("Counters: failed to count trades for %s: %v", userID, err)
		return 0
	}
	return int(count)
}

// loginStreak counts consecutive login days ending today, or ending
// yesterday when the user has not logged in yet today.
func (s *CountersService) loginStreak(userID string, now time.Time) int {
	var events []models.LoginEvent
	if err := s.db.Where("user_id = ?", userID).Order("day DESC").Find(&events).Error; err != nil {
		log.Printf("Counters: failed to load logins for %s: %v", userID, err)
		return 0
	}
	days := make([]string, 0, len(events))
	for _, ev := range events {
		days = append(days, ev.Day)
	}
	return streakFromDays(days, now)
}

// streakFromDays counts consecutive days in a descending-ordered day
// list, anchored at today (or yesterday when today is absent).
func streakFromDays(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expected := today
	if days[0] != today.Format(dayFormat) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if day != expected.Format(dayFormat) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func (s *CountersService) activeDays30(userID string, now time.Time) int {
	cutoff := now.AddDate(0, 0, -30).Format(dayFormat)
	var count int64
	err := s.db.Model(&models.LoginEvent{}).
		Where("user_id = ? AND day >= ?", userID, cutoff).
		Count(&count).Error
	if err != nil {
		log.Printf("Counters: failed to count active days for %s: %v", userID, err)
		return 0
	}
	return int(count)
}

func (s *CountersService) cardsAddedSince(userID string, since time.Time) int {
	var total int
	err := s.db.Model(&models.CollectionItem{}).
		Where("user_id = ? AND added_at >= ?", userID, since).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	if err != nil {
		log.Printf("Counters: failed to sum cards added today for %s: %v", userID, err)
		return 0
	}
	return total
}

func (s *CountersService) tradesCompletedSince(userID string, since time.Time) int {
	var count int64
	err := s.db.Model(&models.Trade{}).
		Where("status = ? AND (proposer_id = ? OR receiver_id = ?) AND completed_at >= ?",
			models.TradeStatusCompleted, userID, userID, since).
		Count(&count).Error
	if err != nil {
		log.Printf("Counters: failed to count trades today for %s: %v", userID, err)
		return 0
	}
	return int(count)
}

func (s *CountersService) isEarlyAdopter(userID string) bool {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return false
	}
	return user.CreatedAt.Before(s.launchDate.AddDate(0, 1, 0))
}

// themedCountsAndFlags scans the user's collection once and derives
// every themed counter and collection-derived flag from it.
func (s *CountersService) themedCountsAndFlags(userID string) (map[string]int, map[string]bool) {
	counts := make(map[string]int)
	flags := make(map[string]bool)

	var items []models.CollectionItem
	if err := s.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		log.Printf("Counters: failed to load collection for %s: %v", userID, err)
		return counts, flags
	}

	cardIDs := make([]string, 0, len(items))
	for _, item := range items {
		cardIDs = append(cardIDs, item.CardID)
	}
	cards := s.catalog.LookupBatch(cardIDs)

	ownedNames := make(map[string]bool)
	ownedTypes := make(map[string]bool)
	ownedSets := make(map[string]bool)

	for _, item := range items {
		qty := item.Quantity

		switch item.Variant {
		case models.VariantHolo, models.VariantReverseHolo, models.VariantFirstEdition:
			counts["variant:"+string(item.Variant)] += qty
		}

		card, ok := cards[item.CardID]
		if !ok {
			continue
		}

		name := strings.ToLower(card.Name)
		for _, tracked := range trackedNames {
			if strings.Contains(name, tracked) {
				counts["name:"+tracked] += qty
			}
		}
		for _, creature := range eeveelutionNames {
			if strings.Contains(name, creature) {
				ownedNames[creature] = true
			}
		}
		for _, starter := range starterNames {
			if strings.Contains(name, starter) {
				ownedNames[starter] = true
			}
		}

		for _, cardType := range card.Types {
			key := strings.ToLower(cardType)
			counts["type:"+key] += qty
			ownedTypes[key] = true
		}

		switch card.Supertype {
		case models.SupertypeTrainer, models.SupertypeEnergy:
			counts["supertype:"+string(card.Supertype)] += qty
		}

		if card.Generation > 0 {
			counts[fmt.Sprintf("gen:%d", card.Generation)] += qty
		}

		if card.SetID != "" {
			ownedSets[card.SetID] = true
		}
	}

	counts["sets_touched"] = len(ownedSets)

	flags["eeveelution_complete"] = allOwned(ownedNames, eeveelutionNames)
	flags["starter_squad"] = allOwned(ownedNames, starterNames)
	flags["all_types_collected"] = allOwned(ownedTypes, energyTypes)
	flags["classic_sets_complete"] = allOwned(ownedSets, classicSetIDs)

	return counts, flags
}

func allOwned(owned map[string]bool, required []string) bool {
	for _, key := range required {
		if !owned[key] {
			return false
		}
	}
	return true
}
