package model

import "time"

// Verdict avis d'un utilisateur sur un score produit par le modèle
type Verdict string

const (
	VerdictTooHigh  Verdict = "too_high"
	VerdictTooLow   Verdict = "too_low"
	VerdictAccurate Verdict = "accurate"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictTooHigh, VerdictTooLow, VerdictAccurate:
		return true
	}
	return false
}

// TargetOverall cible du feedback portant sur le score global
const TargetOverall = "overall"

// Feedback avis d'un utilisateur sur une métrique d'une analyse.
// Une seule entrée par (swing, utilisateur, cible): une réécriture écrase.
type Feedback struct {
	ID                 string     `json:"id,omitempty"`
	SwingID            string     `json:"swingId"`
	UserID             string     `json:"userId"`
	TargetMetric       string     `json:"targetMetric"` // "overall" ou une clé du catalogue
	Verdict            Verdict    `json:"verdict"`
	SkillLevelSnapshot SkillLevel `json:"skillLevelSnapshot"`
	CreatedAt          time.Time  `json:"createdAt,omitempty"`
	UpdatedAt          time.Time  `json:"updatedAt,omitempty"`
}

// Tally comptage agrégé; Total ne compte que too_high + too_low
type Tally struct {
	TooHigh int `json:"too_high"`
	TooLow  int `json:"too_low"`
	Total   int `json:"total"`
}

// MetricTally comptage par métrique, stratifié par niveau
type MetricTally struct {
	Tally
	BySkillLevel map[SkillLevel]Tally `json:"bySkillLevel,omitempty"`
}

// FeedbackSummary forme consommée par le moteur d'ajustement
type FeedbackSummary struct {
	Overall      Tally                  `json:"overall"`
	ByMetric     map[string]MetricTally `json:"byMetric"`
	BySkillLevel map[SkillLevel]Tally   `json:"bySkillLevel"`
}
