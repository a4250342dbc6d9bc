package feedback

import (
	"testing"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fb(target string, verdict model.Verdict, level model.SkillLevel) model.Feedback {
	return model.Feedback{
		SwingID:            "swing-1",
		UserID:             "user-1",
		TargetMetric:       target,
		Verdict:            verdict,
		SkillLevelSnapshot: level,
	}
}

func TestAggregateOverall(t *testing.T) {
	items := []model.Feedback{
		fb(model.TargetOverall, model.VerdictTooHigh, model.SkillAmateur),
		fb(model.TargetOverall, model.VerdictTooHigh, model.SkillPro),
		fb(model.TargetOverall, model.VerdictTooLow, model.SkillBeginner),
		// "accurate" n'entre pas dans le total
		fb(model.TargetOverall, model.VerdictAccurate, model.SkillAmateur),
	}

	s := Aggregate(items)

	assert.Equal(t, model.Tally{TooHigh: 2, TooLow: 1, Total: 3}, s.Overall)
	assert.Equal(t, model.Tally{TooHigh: 1, TooLow: 0, Total: 1}, s.BySkillLevel[model.SkillPro])
	assert.Equal(t, model.Tally{TooHigh: 0, TooLow: 1, Total: 1}, s.BySkillLevel[model.SkillBeginner])
}

func TestAggregateByMetric(t *testing.T) {
	items := []model.Feedback{
		fb("tempo", model.VerdictTooHigh, model.SkillPro),
		fb("tempo", model.VerdictTooHigh, model.SkillPro),
		fb("tempo", model.VerdictTooLow, model.SkillAmateur),
		fb("grip", model.VerdictAccurate, model.SkillAmateur),
	}

	s := Aggregate(items)

	require.Contains(t, s.ByMetric, "tempo")
	tempo := s.ByMetric["tempo"]
	assert.Equal(t, model.Tally{TooHigh: 2, TooLow: 1, Total: 3}, tempo.Tally)
	assert.Equal(t, model.Tally{TooHigh: 2, TooLow: 0, Total: 2}, tempo.BySkillLevel[model.SkillPro])

	// Un avis "accurate" crée l'entrée mais ne compte pas
	grip := s.ByMetric["grip"]
	assert.Zero(t, grip.Total)

	// Le feedback par métrique ne touche pas le comptage global
	assert.Zero(t, s.Overall.Total)
}

func TestAggregateSkipsInvalidInput(t *testing.T) {
	items := []model.Feedback{
		fb(model.TargetOverall, model.Verdict("way_off"), model.SkillAmateur),
		fb("tempo", model.VerdictTooHigh, model.SkillLevel("ninja")),
	}

	s := Aggregate(items)

	assert.Zero(t, s.Overall.Total)
	// Verdict valide mais niveau inconnu: compté globalement, pas par niveau
	assert.Equal(t, 1, s.ByMetric["tempo"].Total)
	assert.Empty(t, s.ByMetric["tempo"].BySkillLevel)
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	assert.Zero(t, s.Overall)
	assert.Empty(t, s.ByMetric)
	assert.Empty(t, s.BySkillLevel)
}
