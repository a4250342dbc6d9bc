package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysSortedAndComplete(t *testing.T) {
	keys := Keys()

	assert.Len(t, keys, Count())
	assert.IsIncreasing(t, keys)

	for _, key := range keys {
		assert.True(t, Has(key))
	}
}

func TestLookupKnownKey(t *testing.T) {
	e := Lookup("tempo")

	assert.Equal(t, "tempo", e.Key)
	assert.Equal(t, "Tempo", e.Title)
	assert.Equal(t, CategoryClub, e.Category)
	assert.InDelta(t, 1.0/float64(Count()), e.Weight, 1e-9)
}

func TestLookupUnknownKeySynthesizesEntry(t *testing.T) {
	e := Lookup("launchAngle")

	assert.Equal(t, "launchAngle", e.Key)
	assert.Equal(t, CategoryGeneral, e.Category)
	assert.NotEmpty(t, e.Description)
	assert.False(t, Has("launchAngle"))
}

func TestWeightsSumToOne(t *testing.T) {
	var sum float64
	for _, key := range Keys() {
		sum += Lookup(key).Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#f59e0b", CategoryColor(CategoryClub))
	assert.Equal(t, "#6b7280", CategoryColor(Category("unknown")))
}

func TestScoreColorThresholds(t *testing.T) {
	assert.Equal(t, "#22c55e", ScoreColor(80))
	assert.Equal(t, "#eab308", ScoreColor(79.9))
	assert.Equal(t, "#eab308", ScoreColor(60))
	assert.Equal(t, "#ef4444", ScoreColor(59.9))
}
