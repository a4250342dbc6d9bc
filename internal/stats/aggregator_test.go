package stats

import (
	"testing"
	"time"

	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

func swing(id string, day time.Time, score float64, club string, outcome *model.ShotOutcome) model.SwingAnalysis {
	return model.SwingAnalysis{
		ID:                id,
		SwingOwnership:    model.OwnershipSelf,
		RecordedTimestamp: day,
		OverallScore:      score,
		ClubName:          club,
		Outcome:           outcome,
		Metrics:           map[string]float64{"tempo": score},
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, testNow)

	assert.Zero(t, s.TotalSwings)
	assert.Zero(t, s.AverageScore)
	assert.Zero(t, s.BestScore)
	assert.Zero(t, s.ConsecutiveDays)
	assert.Equal(t, testNow, s.UpdatedAt)
}

func TestComputeBasics(t *testing.T) {
	fade := model.OutcomeFade
	swings := []model.SwingAnalysis{
		swing("b", testNow.AddDate(0, 0, -1), 70, "7 Iron", nil),
		swing("a", testNow.AddDate(0, 0, -2), 60, "Driver", &fade),
		swing("c", testNow, 80, "7 Iron", nil),
	}

	s := Compute(swings, testNow)

	assert.Equal(t, 3, s.TotalSwings)
	assert.InDelta(t, 70.0, s.AverageScore, 0.001)
	assert.Equal(t, 80.0, s.BestScore)
	// Dernier moins premier dans l'ordre chronologique
	assert.Equal(t, 20.0, s.Improvement)
	assert.Equal(t, map[string]int{"7 Iron": 2, "Driver": 1}, s.ClubUsage)
	assert.Equal(t, map[string]int{"fade": 1}, s.Outcomes)
	// Pas assez de swings pour les tendances par métrique
	assert.Nil(t, s.Improvements)
}

func TestComputeIgnoresNonSelfSwings(t *testing.T) {
	pro := swing("p", testNow, 95, "Driver", nil)
	pro.SwingOwnership = model.OwnershipPro
	other := swing("o", testNow, 90, "Driver", nil)
	other.SwingOwnership = model.OwnershipOther

	swings := []model.SwingAnalysis{
		pro, other,
		swing("s", testNow, 65, "Putter", nil),
	}

	s := Compute(swings, testNow)

	assert.Equal(t, 1, s.TotalSwings)
	assert.Equal(t, 65.0, s.BestScore)
	assert.Equal(t, map[string]int{"Putter": 1}, s.ClubUsage)
}

func TestComputeMetricTrendsRequireFiveSwings(t *testing.T) {
	var swings []model.SwingAnalysis
	for i := 0; i < 5; i++ {
		sw := swing(string(rune('a'+i)), testNow.AddDate(0, 0, i-4), float64(60+i*5), "", nil)
		sw.Metrics = map[string]float64{"tempo": float64(50 + i*4)}
		swings = append(swings, sw)
	}

	s := Compute(swings, testNow)

	require.NotNil(t, s.Improvements)
	assert.InDelta(t, 16.0, s.Improvements["tempo"], 0.001)
	// Les clés du catalogue absentes des deux bornes donnent zéro
	assert.Zero(t, s.Improvements["grip"])
}

func TestComputeTieBreakOnSameTimestamp(t *testing.T) {
	ts := testNow.Add(-time.Hour)
	swings := []model.SwingAnalysis{
		swing("b", ts, 90, "", nil),
		swing("a", ts, 40, "", nil),
	}

	s := Compute(swings, testNow)

	// À timestamp égal, l'id départage: "a" est premier
	assert.Equal(t, 50.0, s.Improvement)
}

func TestConsecutiveDays(t *testing.T) {
	t.Run("streak ending today", func(t *testing.T) {
		swings := []model.SwingAnalysis{
			swing("a", testNow.AddDate(0, 0, -2), 60, "", nil),
			swing("b", testNow.AddDate(0, 0, -1), 60, "", nil),
			swing("c", testNow, 60, "", nil),
			// Deux swings le même jour comptent pour un
			swing("d", testNow.Add(-2*time.Hour), 60, "", nil),
		}
		s := Compute(swings, testNow)
		assert.Equal(t, 3, s.ConsecutiveDays)
	})

	t.Run("no swing today resets to zero", func(t *testing.T) {
		swings := []model.SwingAnalysis{
			swing("a", testNow.AddDate(0, 0, -2), 60, "", nil),
			swing("b", testNow.AddDate(0, 0, -1), 60, "", nil),
		}
		s := Compute(swings, testNow)
		assert.Zero(t, s.ConsecutiveDays)
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		swings := []model.SwingAnalysis{
			swing("a", testNow.AddDate(0, 0, -3), 60, "", nil),
			swing("b", testNow, 60, "", nil),
		}
		s := Compute(swings, testNow)
		assert.Equal(t, 1, s.ConsecutiveDays)
	})
}

func TestComputeIsIdempotent(t *testing.T) {
	swings := []model.SwingAnalysis{
		swing("a", testNow.AddDate(0, 0, -1), 55, "Driver", nil),
		swing("b", testNow, 75, "7 Iron", nil),
	}

	first := Compute(swings, testNow)
	second := Compute(swings, testNow)

	assert.Equal(t, first, second)
}
