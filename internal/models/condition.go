package models

// Condition is the physical wear grade of an owned card.
type Condition string

const (
	ConditionMint             Condition = "mint"
	ConditionNearMint         Condition = "near_mint"
	ConditionLightlyPlayed    Condition = "lightly_played"
	ConditionModeratelyPlayed Condition = "moderately_played"
	ConditionHeavilyPlayed    Condition = "heavily_played"
	ConditionDamaged          Condition = "damaged"
)

// conditionMultipliers scales a card's market value by its wear grade.
var conditionMultipliers = map[Condition]float64{
	ConditionMint:             1.00,
	ConditionNearMint:         0.95,
	ConditionLightlyPlayed:    0.85,
	ConditionModeratelyPlayed: 0.70,
	ConditionHeavilyPlayed:    0.50,
	ConditionDamaged:          0.30,
}

// ConditionMultiplier returns the value-scaling factor for a condition.
// Unknown conditions are priced as near mint - we give the record the
// benefit of the doubt rather than zeroing its value.
func ConditionMultiplier(c Condition) float64 {
	if m, ok := conditionMultipliers[c]; ok {
		return m
	}
	return conditionMultipliers[ConditionNearMint]
}

// AllConditions returns all valid conditions, best grade first.
func AllConditions() []Condition {
	return []Condition{
		ConditionMint,
		ConditionNearMint,
		ConditionLightlyPlayed,
		ConditionModeratelyPlayed,
		ConditionHeavilyPlayed,
		ConditionDamaged,
	}
}

// IsValidCondition reports whether c is one of the known grades.
func IsValidCondition(c Condition) bool {
	_, ok := conditionMultipliers[c]
	return ok
}
