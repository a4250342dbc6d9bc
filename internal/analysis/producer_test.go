package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/GolfGuruApp/SwingAI-backend/internal/catalog"
	model "github.com/GolfGuruApp/SwingAI-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	content string
	err     error
}

func (f *fakeModel) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return f.content, f.err
}

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testVideo() model.VideoInput {
	return model.VideoInput{Kind: model.VideoKindFile, FileName: "swing.mp4", Size: 1024}
}

func validModelContent(t *testing.T) string {
	t.Helper()
	metrics := map[string]float64{}
	for _, key := range catalog.Keys() {
		metrics[key] = 72
	}
	payload := map[string]interface{}{
		"overallScore":    68,
		"metrics":         metrics,
		"recommendations": []string{"Keep your head still through impact."},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestProduceFromModel(t *testing.T) {
	client := &fakeModel{content: validModelContent(t)}
	p := NewProducer(client, WithClock(func() time.Time { return fixedNow }))

	a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
	require.NoError(t, err)

	assert.False(t, a.SourceIsFallback)
	assert.Equal(t, 68.0, a.OverallScore)
	assert.Len(t, a.Metrics, catalog.Count())
	assert.Equal(t, fixedNow, a.AnalysisTimestamp)
	assert.Equal(t, fixedNow, a.RecordedTimestamp)
	assert.Equal(t, model.OwnershipSelf, a.SwingOwnership)
}

func TestProduceFallsBackOnModelError(t *testing.T) {
	client := &fakeModel{err: errors.New("connection reset")}
	p := NewProducer(client, WithClock(func() time.Time { return fixedNow }))

	a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
	require.NoError(t, err)

	assert.True(t, a.SourceIsFallback)
	assert.Len(t, a.Metrics, catalog.Count())
	assert.NotEmpty(t, a.Recommendations)
}

func TestProduceFallsBackOnMalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "the swing looks great, about an 80 overall"},
		{"missing metrics", `{"overallScore": 70, "metrics": {}, "recommendations": ["ok"]}`},
		{"no recommendations", func() string {
			metrics := map[string]float64{}
			for _, key := range catalog.Keys() {
				metrics[key] = 50
			}
			raw, _ := json.Marshal(map[string]interface{}{"overallScore": 50, "metrics": metrics, "recommendations": []string{}})
			return string(raw)
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProducer(&fakeModel{content: tt.content})

			a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
			require.NoError(t, err)
			assert.True(t, a.SourceIsFallback)
		})
	}
}

func TestProduceWithoutClientUsesFallback(t *testing.T) {
	p := NewProducer(nil)

	a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
	require.NoError(t, err)
	assert.True(t, a.SourceIsFallback)
}

func TestProduceClampsOutOfRangeScores(t *testing.T) {
	metrics := map[string]float64{}
	for _, key := range catalog.Keys() {
		metrics[key] = 150
	}
	raw, err := json.Marshal(map[string]interface{}{
		"overallScore": -12, "metrics": metrics, "recommendations": []string{"ok"},
	})
	require.NoError(t, err)

	p := NewProducer(&fakeModel{content: string(raw)})

	a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
	require.NoError(t, err)

	assert.False(t, a.SourceIsFallback)
	assert.Equal(t, 0.0, a.OverallScore)
	for _, key := range catalog.Keys() {
		assert.Equal(t, 100.0, a.Metrics[key])
	}
}

func TestProduceDropsUnknownMetricKeys(t *testing.T) {
	metrics := map[string]float64{"launchAngle": 88}
	for _, key := range catalog.Keys() {
		metrics[key] = 60
	}
	raw, err := json.Marshal(map[string]interface{}{
		"overallScore": 60, "metrics": metrics, "recommendations": []string{"ok"},
	})
	require.NoError(t, err)

	p := NewProducer(&fakeModel{content: string(raw)})

	a, err := p.Produce(context.Background(), testVideo(), model.SwingMetadata{})
	require.NoError(t, err)

	assert.NotContains(t, a.Metrics, "launchAngle")
	assert.Len(t, a.Metrics, catalog.Count())
}

func TestProduceMetadataStamping(t *testing.T) {
	recorded := time.Date(2026, 2, 1, 18, 0, 0, 0, time.FixedZone("CET", 3600))
	name := "Rory McIlroy"
	meta := model.SwingMetadata{
		SwingOwnership:    model.OwnershipPro,
		ProGolferName:     &name,
		ClubName:          "Driver",
		RecordedTimestamp: &recorded,
	}

	p := NewProducer(&fakeModel{content: validModelContent(t)}, WithClock(func() time.Time { return fixedNow }))

	a, err := p.Produce(context.Background(), testVideo(), meta)
	require.NoError(t, err)

	assert.Equal(t, model.OwnershipPro, a.SwingOwnership)
	require.NotNil(t, a.ProGolferName)
	assert.Equal(t, name, *a.ProGolferName)
	assert.Equal(t, "Driver", a.ClubName)
	// La date fournie est normalisée en UTC
	assert.Equal(t, recorded.UTC(), a.RecordedTimestamp)
}

func TestProduceHostedVideoExtractsID(t *testing.T) {
	video := model.VideoInput{
		Kind:      model.VideoKindHosted,
		HostedURL: "https://www.youtube.com/watch?v=abc12345678",
	}

	p := NewProducer(&fakeModel{content: validModelContent(t)})

	a, err := p.Produce(context.Background(), video, model.SwingMetadata{})
	require.NoError(t, err)

	assert.True(t, a.IsHostedVideo)
	assert.Equal(t, "abc12345678", a.HostedVideoID)
}

func TestFallbackIsDeterministic(t *testing.T) {
	video := testVideo()
	meta := model.SwingMetadata{ClubName: "7 Iron"}

	first := Fallback(video, meta)
	second := Fallback(video, meta)

	assert.Equal(t, first.Metrics, second.Metrics)
	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

func TestFallbackRespectsBounds(t *testing.T) {
	a := Fallback(testVideo(), model.SwingMetadata{})

	assert.Len(t, a.Metrics, catalog.Count())
	for key, score := range a.Metrics {
		assert.GreaterOrEqual(t, score, 40.0, key)
		assert.LessOrEqual(t, score, 95.0, key)
	}
	assert.GreaterOrEqual(t, a.OverallScore, 45.0)
	assert.LessOrEqual(t, a.OverallScore, 90.0)
	assert.Len(t, a.Recommendations, 3)
	assert.True(t, a.SourceIsFallback)
}
