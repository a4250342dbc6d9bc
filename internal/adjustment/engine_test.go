package adjustment

import (
	"testing"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name     string
		tooHigh  int
		tooLow   int
		total    int
		max      int
		minTotal int
		want     int
	}{
		{"strong too-high consensus saturates", 8, 2, 10, 3, 5, -3},
		{"strong too-low consensus saturates", 2, 8, 10, 3, 5, 3},
		{"split feedback cancels out", 5, 5, 10, 3, 5, 0},
		{"below minimum sample", 4, 0, 4, 3, 5, 0},
		{"narrow margin ignored", 6, 5, 11, 3, 5, 0},
		{"moderate consensus partial delta", 6, 4, 10, 3, 5, 0}, // 60/40 ne passe pas le ratio 1.5x
		{"partial consensus partial delta", 7, 3, 10, 3, 5, -2},
		{"unanimous too high", 10, 0, 10, 4, 3, -4},
		{"empty", 0, 0, 0, 3, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeDelta(tt.tooHigh, tt.tooLow, tt.total, tt.max, tt.minTotal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDeltaNeverExceedsMax(t *testing.T) {
	for high := 0; high <= 20; high++ {
		for low := 0; low+high <= 20; low++ {
			d := computeDelta(high, low, high+low, 3, 1)
			assert.LessOrEqual(t, d, 3)
			assert.GreaterOrEqual(t, d, -3)
		}
	}
}

func TestComputeDeltaMonotonicity(t *testing.T) {
	// À tooHigh et total constants, plus de tooLow ne baisse jamais le delta
	const total = 20
	for high := 0; high <= total; high++ {
		prev := computeDelta(high, 0, total, 3, 1)
		for low := 1; high+low <= total; low++ {
			d := computeDelta(high, low, total, 3, 1)
			assert.GreaterOrEqual(t, d, prev, "tooHigh=%d tooLow=%d", high, low)
			prev = d
		}
	}
}

func TestComputeFactors(t *testing.T) {
	summary := model.FeedbackSummary{
		Overall: model.Tally{TooHigh: 8, TooLow: 2, Total: 10},
		ByMetric: map[string]model.MetricTally{
			"tempo": {
				Tally: model.Tally{TooHigh: 3, TooLow: 0, Total: 3},
				BySkillLevel: map[model.SkillLevel]model.Tally{
					model.SkillPro: {TooHigh: 2, TooLow: 0, Total: 2},
				},
			},
			"grip": {
				// Sous le seuil par métrique
				Tally: model.Tally{TooHigh: 2, TooLow: 0, Total: 2},
			},
		},
		BySkillLevel: map[model.SkillLevel]model.Tally{
			model.SkillBeginner: {TooHigh: 0, TooLow: 4, Total: 4},
		},
	}

	f := ComputeFactors(summary)

	assert.Equal(t, -3, f.Overall)
	assert.Equal(t, map[string]int{"tempo": -4}, f.Metrics)
	assert.Equal(t, 15, f.SampleSize)
	assert.False(t, f.GeneratedAt.IsZero())

	// Les pros ont une amplitude réduite
	pro, ok := f.BySkillLevel[model.SkillPro]
	require.True(t, ok)
	assert.Equal(t, -2, pro.Metrics["tempo"])

	// Les débutants trouvent les scores trop bas
	beginner, ok := f.BySkillLevel[model.SkillBeginner]
	require.True(t, ok)
	assert.Equal(t, 4, beginner.Overall)
}

func TestComputeFactorsEmptySummary(t *testing.T) {
	f := ComputeFactors(model.FeedbackSummary{})

	assert.Zero(t, f.Overall)
	assert.Empty(t, f.Metrics)
	assert.Empty(t, f.BySkillLevel)
	assert.Zero(t, f.SampleSize)
}

func TestApply(t *testing.T) {
	factors := &model.AdjustmentFactors{
		Overall: -3,
		Metrics: map[string]int{"tempo": -4},
		BySkillLevel: map[model.SkillLevel]model.SkillFactors{
			model.SkillPro: {Overall: -2, Metrics: map[string]int{"tempo": -2}},
		},
	}

	a := &model.SwingAnalysis{
		OverallScore: 80,
		Metrics:      map[string]float64{"tempo": 70, "grip": 65},
	}

	Apply(a, factors, model.SkillPro)

	require.NotNil(t, a.AdjustedOverallScore)
	assert.Equal(t, 75.0, *a.AdjustedOverallScore)
	assert.Equal(t, 64.0, a.AdjustedMetrics["tempo"])
	assert.Equal(t, 65.0, a.AdjustedMetrics["grip"])

	// Les valeurs brutes restent intactes
	assert.Equal(t, 80.0, a.OverallScore)
	assert.Equal(t, 70.0, a.Metrics["tempo"])
}

func TestApplyClampsToRange(t *testing.T) {
	factors := &model.AdjustmentFactors{
		Overall: -3,
		Metrics: map[string]int{"grip": 4},
	}

	a := &model.SwingAnalysis{
		OverallScore: 1,
		Metrics:      map[string]float64{"grip": 99},
	}

	Apply(a, factors, model.SkillAmateur)

	assert.Equal(t, 0.0, *a.AdjustedOverallScore)
	assert.Equal(t, 100.0, a.AdjustedMetrics["grip"])
}

func TestApplyNilFactorsIsNoop(t *testing.T) {
	a := &model.SwingAnalysis{OverallScore: 50}
	Apply(a, nil, model.SkillAmateur)
	assert.Nil(t, a.AdjustedOverallScore)
}
