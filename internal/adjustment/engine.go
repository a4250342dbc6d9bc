// Package adjustment calibre les scores bruts du modèle à partir du
// feedback agrégé des utilisateurs. Calcul pur, aucune I/O.
package adjustment

import (
	"math"
	"time"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
)

// Seuils et amplitudes maximales par dimension
const (
	overallMinTotal = 5
	overallMaxAdj   = 3

	overallSkillMinTotal   = 3
	overallSkillMaxAdj     = 4
	overallSkillMaxAdjProf = 2

	metricMinTotal = 3
	metricMaxAdj   = 4

	metricSkillMinTotal   = 2
	metricSkillMaxAdj     = 5
	metricSkillMaxAdjProf = 2
)

// computeDelta calcule le delta signé pour une dimension.
// Un consensus "trop haut" produit un delta négatif, "trop bas" un positif.
// L'intensité sature à maxAdjustment dès qu'une proportion atteint 75%.
func computeDelta(tooHigh, tooLow, total, maxAdjustment, minTotal int) int {
	if total < minTotal || total <= 0 {
		return 0
	}
	hp := float64(tooHigh) / float64(total)
	lp := float64(tooLow) / float64(total)

	if math.Abs(hp-lp) < 0.2 {
		return 0
	}
	if hp > 0.5 && hp > 1.5*lp {
		return -int(math.Round(float64(maxAdjustment) * math.Min(1, (hp-0.5)*4)))
	}
	if lp > 0.5 && lp > 1.5*hp {
		return int(math.Round(float64(maxAdjustment) * math.Min(1, (lp-0.5)*4)))
	}
	return 0
}

func overallSkillMax(level model.SkillLevel) int {
	if level == model.SkillPro {
		return overallSkillMaxAdjProf
	}
	return overallSkillMaxAdj
}

func metricSkillMax(level model.SkillLevel) int {
	if level == model.SkillPro {
		return metricSkillMaxAdjProf
	}
	return metricSkillMaxAdj
}

// ComputeFactors transforme un résumé de feedback en facteurs d'ajustement
func ComputeFactors(s model.FeedbackSummary) model.AdjustmentFactors {
	factors := model.AdjustmentFactors{
		Overall:      computeDelta(s.Overall.TooHigh, s.Overall.TooLow, s.Overall.Total, overallMaxAdj, overallMinTotal),
		Metrics:      map[string]int{},
		BySkillLevel: map[model.SkillLevel]model.SkillFactors{},
		GeneratedAt:  time.Now().UTC(),
	}

	sample := s.Overall.Total
	for key, t := range s.ByMetric {
		sample += t.Total
		if d := computeDelta(t.TooHigh, t.TooLow, t.Total, metricMaxAdj, metricMinTotal); d != 0 {
			factors.Metrics[key] = d
		}
	}

	for _, level := range model.SkillLevels {
		sf := model.SkillFactors{Metrics: map[string]int{}}
		if t, ok := s.BySkillLevel[level]; ok {
			sf.Overall = computeDelta(t.TooHigh, t.TooLow, t.Total, overallSkillMax(level), overallSkillMinTotal)
		}
		for key, mt := range s.ByMetric {
			if t, ok := mt.BySkillLevel[level]; ok {
				if d := computeDelta(t.TooHigh, t.TooLow, t.Total, metricSkillMax(level), metricSkillMinTotal); d != 0 {
					sf.Metrics[key] = d
				}
			}
		}
		if sf.Overall != 0 || len(sf.Metrics) > 0 {
			factors.BySkillLevel[level] = sf
		}
	}

	factors.SampleSize = sample
	return factors
}

// Apply renseigne la vue ajustée d'une analyse: facteur global + facteur
// stratifié par niveau, sommés puis bornés à [0,100]. Les valeurs brutes
// stockées ne sont jamais modifiées.
func Apply(a *model.SwingAnalysis, f *model.AdjustmentFactors, skill model.SkillLevel) {
	if a == nil || f == nil {
		return
	}

	var skillFactors model.SkillFactors
	if f.BySkillLevel != nil {
		skillFactors = f.BySkillLevel[skill]
	}

	adjusted := clamp(a.OverallScore + float64(f.Overall) + float64(skillFactors.Overall))
	a.AdjustedOverallScore = &adjusted

	a.AdjustedMetrics = make(map[string]float64, len(a.Metrics))
	for key, raw := range a.Metrics {
		delta := f.Metrics[key] + skillFactors.Metrics[key]
		a.AdjustedMetrics[key] = clamp(raw + float64(delta))
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
