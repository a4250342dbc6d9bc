package model

import "time"

// UserStats statistiques dérivées, une par utilisateur.
// Recalculées intégralement depuis l'ensemble des swings "self" à chaque
// mutation, jamais mises à jour partiellement.
type UserStats struct {
	TotalSwings     int                `json:"totalSwings"`
	AverageScore    float64            `json:"averageScore"`
	BestScore       float64            `json:"bestScore"`
	Improvement     float64            `json:"improvement"` // dernier - premier score "self"
	ClubUsage       map[string]int     `json:"clubUsage,omitempty"`
	Outcomes        map[string]int     `json:"outcomes,omitempty"`
	Improvements    map[string]float64 `json:"improvements,omitempty"` // par métrique, >= 5 swings
	ConsecutiveDays int                `json:"consecutiveDays"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
