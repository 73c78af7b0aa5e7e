package achievements

import (
	"log"

	"github.com/cardfolio/backend/internal/models"
)

// EvaluationResult is the diff produced by one evaluation pass. Slices
// are ordered by catalog position and never nil.
type EvaluationResult struct {
	NewlyUnlocked []string `json:"newly_unlocked"`
	Revoked       []string `json:"revoked"`
	StillUnlocked []string `json:"still_unlocked"`
}

// Evaluate re-checks every catalog definition against the extended
// stats snapshot and diffs the result against the previously unlocked
// set. Achievements are evaluated from scratch each time: revocation
// (a user dropping below a threshold after removing cards) falls out of
// re-running the same predicates, with no incremental state to corrupt.
func Evaluate(catalog *Catalog, ext models.ExtendedStats, previouslyUnlocked map[string]bool) EvaluationResult {
	result := EvaluationResult{
		NewlyUnlocked: []string{},
		Revoked:       []string{},
		StillUnlocked: []string{},
	}

	satisfied := make(map[string]bool, catalog.Len())
	for _, def := range catalog.All() {
		if requirementSatisfied(def, ext) {
			satisfied[def.Type] = true
			if previouslyUnlocked[def.Type] {
				result.StillUnlocked = append(result.StillUnlocked, def.Type)
			} else {
				result.NewlyUnlocked = append(result.NewlyUnlocked, def.Type)
			}
		}
	}

	// Revocations in catalog order too, so output is deterministic.
	for _, def := range catalog.All() {
		if previouslyUnlocked[def.Type] && !satisfied[def.Type] {
			result.Revoked = append(result.Revoked, def.Type)
		}
	}

	return result
}

// requirementSatisfied dispatches one definition to its predicate. A
// malformed definition (unknown kind, missing target, missing theme or
// flag key) fails closed: it is logged as a configuration error and
// treated as unsatisfied so the rest of the catalog still evaluates.
func requirementSatisfied(def models.AchievementDefinition, ext models.ExtendedStats) bool {
	req := def.Requirement

	switch req.Kind {
	case models.ReqUniqueCards, models.ReqCards, models.ReqCollectionValueEUR,
		models.ReqRareCards, models.ReqFriends, models.ReqCompletedTrades,
		models.ReqLoginStreak, models.ReqActiveDays30,
		models.ReqDailyCardsAdded, models.ReqDailyTradesCompleted:
		if req.Target <= 0 {
			log.Printf("achievement catalog: %s has no target for kind %s, treating as unsatisfied", def.Type, req.Kind)
			return false
		}
		return thresholdStat(req.Kind, ext) >= req.Target

	case models.ReqThemedCount:
		if req.Theme == "" || req.Target <= 0 {
			log.Printf("achievement catalog: %s has malformed themed requirement, treating as unsatisfied", def.Type)
			return false
		}
		return float64(ext.ThemedCounts[req.Theme]) >= req.Target

	case models.ReqExactCards:
		if req.Target <= 0 {
			log.Printf("achievement catalog: %s has no target for kind %s, treating as unsatisfied", def.Type, req.Kind)
			return false
		}
		return float64(ext.TotalCards) == req.Target

	case models.ReqExactUniqueCards:
		if req.Target <= 0 {
			log.Printf("achievement catalog: %s has no target for kind %s, treating as unsatisfied", def.Type, req.Kind)
			return false
		}
		return float64(ext.UniqueCards) == req.Target

	case models.ReqFlag:
		if req.Flag == "" {
			log.Printf("achievement catalog: %s has no flag name, treating as unsatisfied", def.Type)
			return false
		}
		return ext.Flags[req.Flag]

	default:
		log.Printf("achievement catalog: %s has unknown requirement kind %q, treating as unsatisfied", def.Type, req.Kind)
		return false
	}
}

func thresholdStat(kind models.RequirementKind, ext models.ExtendedStats) float64 {
	switch kind {
	case models.ReqUniqueCards:
		return float64(ext.UniqueCards)
	case models.ReqCards:
		return float64(ext.TotalCards)
	case models.ReqCollectionValueEUR:
		return ext.TotalValueEUR
	case models.ReqRareCards:
		return float64(ext.RareCards)
	case models.ReqFriends:
		return float64(ext.Friends)
	case models.ReqCompletedTrades:
		return float64(ext.CompletedTrades)
	case models.ReqLoginStreak:
		return float64(ext.LoginStreak)
	case models.ReqActiveDays30:
		return float64(ext.ActiveDays30)
	case models.ReqDailyCardsAdded:
		return float64(ext.CardsAddedToday)
	case models.ReqDailyTradesCompleted:
		return float64(ext.TradesCompletedToday)
	}
	return 0
}
