package model

import "time"

// SkillFactors deltas d'ajustement pour un niveau de jeu donné
type SkillFactors struct {
	Overall int            `json:"overall"`
	Metrics map[string]int `json:"metrics,omitempty"`
}

// AdjustmentFactors deltas signés appliqués en lecture aux scores bruts.
// Document global, possédé par le rôle admin, lisible par tous.
type AdjustmentFactors struct {
	Overall      int                         `json:"overall"`
	Metrics      map[string]int              `json:"metrics,omitempty"`
	BySkillLevel map[SkillLevel]SkillFactors `json:"bySkillLevel,omitempty"`

	SampleSize  int       `json:"sampleSize"` // nombre d'avis too_high+too_low agrégés
	GeneratedAt time.Time `json:"generatedAt"`
}
