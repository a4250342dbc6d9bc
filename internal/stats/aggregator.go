// Package stats dérive les statistiques par utilisateur depuis l'ensemble
// de ses swings "self". Le calcul est une fonction pure de l'ensemble
// courant: chaque recalcul est complet, jamais incrémental.
package stats

import (
	"sort"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
)

// minSwingsForMetricTrends nombre de swings requis pour publier les
// progressions par métrique
const minSwingsForMetricTrends = 5

// Compute dérive les statistiques depuis les swings d'un utilisateur.
// Seuls les swings "self" comptent. Le calendrier des séries est UTC.
func Compute(swings []model.SwingAnalysis, now time.Time) model.UserStats {
	self := make([]model.SwingAnalysis, 0, len(swings))
	for _, s := range swings {
		if s.SwingOwnership == model.OwnershipSelf {
			self = append(self, s)
		}
	}

	stats := model.UserStats{
		ClubUsage: map[string]int{},
		Outcomes:  map[string]int{},
		UpdatedAt: now.UTC(),
	}

	if len(self) == 0 {
		return stats
	}

	// Ordre chronologique par date de swing, id croissant en cas d'égalité
	sort.Slice(self, func(i, j int) bool {
		if !self[i].RecordedTimestamp.Equal(self[j].RecordedTimestamp) {
			return self[i].RecordedTimestamp.Before(self[j].RecordedTimestamp)
		}
		return self[i].ID < self[j].ID
	})

	stats.TotalSwings = len(self)

	var sum float64
	for _, s := range self {
		sum += s.OverallScore
		if s.OverallScore > stats.BestScore {
			stats.BestScore = s.OverallScore
		}
		if s.ClubName != "" {
			stats.ClubUsage[s.ClubName]++
		}
		if s.Outcome != nil {
			stats.Outcomes[string(*s.Outcome)]++
		}
	}
	stats.AverageScore = sum / float64(len(self))

	first, last := self[0], self[len(self)-1]
	stats.Improvement = last.OverallScore - first.OverallScore

	if len(self) >= minSwingsForMetricTrends {
		stats.Improvements = make(map[string]float64, catalog.Count())
		for _, key := range catalog.Keys() {
			stats.Improvements[key] = last.Metrics[key] - first.Metrics[key]
		}
	}

	stats.ConsecutiveDays = consecutiveDays(self, now)

	return stats
}

// consecutiveDays longueur de la série de jours calendaires distincts se
// terminant aujourd'hui (UTC). Si le swing le plus récent n'est pas
// d'aujourd'hui, la série vaut 0. Plusieurs swings le même jour comptent
// pour un.
func consecutiveDays(self []model.SwingAnalysis, now time.Time) int {
	days := make(map[string]bool, len(self))
	for _, s := range self {
		days[s.RecordedTimestamp.UTC().Format("2006-01-02")] = true
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if !days[today.Format("2006-01-02")] {
		return 0
	}

	streak := 0
	for day := today; days[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}
