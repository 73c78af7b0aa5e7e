package models

import (
	"testing"
)

func TestConditionMultiplier(t *testing.T) {
	tests := []struct {
		name      string
		condition Condition
		expected  float64
	}{
		{"mint", ConditionMint, 1.00},
		{"near mint", ConditionNearMint, 0.95},
		{"lightly played", ConditionLightlyPlayed, 0.85},
		{"moderately played", ConditionModeratelyPlayed, 0.70},
		{"heavily played", ConditionHeavilyPlayed, 0.50},
		{"damaged", ConditionDamaged, 0.30},
		{"unknown defaults to near mint", Condition("graded"), 0.95},
		{"empty defaults to near mint", Condition(""), 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConditionMultiplier(tt.condition); got != tt.expected {
				t.Errorf("ConditionMultiplier(%s) = %f, want %f", tt.condition, got, tt.expected)
			}
		})
	}
}

func TestConditionMultiplierMonotonic(t *testing.T) {
	conditions := AllConditions()
	for i := 1; i < len(conditions); i++ {
		a := ConditionMultiplier(conditions[i-1])
		b := ConditionMultiplier(conditions[i])
		if b > a {
			t.Errorf("multiplier for %s (%f) exceeds better grade %s (%f)", conditions[i], b, conditions[i-1], a)
		}
	}
}

func TestIsValidVariant(t *testing.T) {
	for _, v := range AllVariants() {
		if !IsValidVariant(v) {
			t.Errorf("IsValidVariant(%s) = false, want true", v)
		}
	}
	if IsValidVariant(Variant("shadowless")) {
		t.Error("IsValidVariant(shadowless) = true, want false")
	}
}

func TestIsPatternVariant(t *testing.T) {
	if !VariantPokeBall.IsPatternVariant() || !VariantMasterBall.IsPatternVariant() {
		t.Error("ball stamp variants should be pattern variants")
	}
	if VariantReverseHolo.IsPatternVariant() {
		t.Error("reverse holo is not a pattern variant")
	}
}
