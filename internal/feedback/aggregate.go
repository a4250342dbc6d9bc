// Package feedback agrège les avis des utilisateurs sur les scores du
// modèle dans la forme consommée par le moteur d'ajustement.
package feedback

import (
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
)

func tallyAdd(t *model.Tally, verdict model.Verdict) {
	// "accurate" est informatif: il n'entre pas dans les comptages
	switch verdict {
	case model.VerdictTooHigh:
		t.TooHigh++
		t.Total++
	case model.VerdictTooLow:
		t.TooLow++
		t.Total++
	}
}

// Aggregate compile l'ensemble du feedback: global, par métrique, et
// stratifié par niveau de jeu à chaque granularité.
func Aggregate(items []model.Feedback) model.FeedbackSummary {
	summary := model.FeedbackSummary{
		ByMetric:     map[string]model.MetricTally{},
		BySkillLevel: map[model.SkillLevel]model.Tally{},
	}

	for _, f := range items {
		if !f.Verdict.Valid() {
			continue
		}

		level := f.SkillLevelSnapshot

		if f.TargetMetric == model.TargetOverall {
			tallyAdd(&summary.Overall, f.Verdict)
			if level.Valid() {
				t := summary.BySkillLevel[level]
				tallyAdd(&t, f.Verdict)
				summary.BySkillLevel[level] = t
			}
			continue
		}

		mt, ok := summary.ByMetric[f.TargetMetric]
		if !ok {
			mt = model.MetricTally{BySkillLevel: map[model.SkillLevel]model.Tally{}}
		}
		tallyAdd(&mt.Tally, f.Verdict)
		if level.Valid() {
			t := mt.BySkillLevel[level]
			tallyAdd(&t, f.Verdict)
			mt.BySkillLevel[level] = t
		}
		summary.ByMetric[f.TargetMetric] = mt
	}

	return summary
}
