package models

// Variant is a physical print distinction of the same catalog card that
// can carry its own market price.
type Variant string

const (
	VariantNormal       Variant = "normal"
	VariantHolo         Variant = "holo"
	VariantReverseHolo  Variant = "reverse_holo"
	VariantPokeBall     Variant = "poke_ball"
	VariantMasterBall   Variant = "master_ball"
	VariantFirstEdition Variant = "first_edition"
)

// AllVariants returns all valid print variants.
func AllVariants() []Variant {
	return []Variant{
		VariantNormal,
		VariantHolo,
		VariantReverseHolo,
		VariantPokeBall,
		VariantMasterBall,
		VariantFirstEdition,
	}
}

// IsValidVariant reports whether v is one of the known variants.
func IsValidVariant(v Variant) bool {
	switch v {
	case VariantNormal, VariantHolo, VariantReverseHolo,
		VariantPokeBall, VariantMasterBall, VariantFirstEdition:
		return true
	}
	return false
}

// IsPatternVariant reports whether v is a pattern print (poke ball /
// master ball stamps). No dedicated market data exists for patterns, so
// pricing always falls back to the standard quote.
func (v Variant) IsPatternVariant() bool {
	return v == VariantPokeBall || v == VariantMasterBall
}
