package oddsmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineProbabilities(t *testing.T) {
	assert.InDelta(t, 0.25, CombineProbabilities([]float64{0.5, 0.5}), 1e-9)
	assert.InDelta(t, 0.125, CombineProbabilities([]float64{0.5, 0.5, 0.5}), 1e-9)
	assert.Equal(t, 1.0, CombineProbabilities(nil))
	assert.Equal(t, 1.0, CombineProbabilities([]float64{}))
}

func TestExpectedValue(t *testing.T) {
	// Fair coin at even money breaks even.
	assert.InDelta(t, 0.0, ExpectedValue(0.5, 2.0, 10), 1e-9)
	// 60% win at even money on $10: 0.6*10 - 0.4*10 = 2.
	assert.InDelta(t, 2.0, ExpectedValue(0.6, 2.0, 10), 1e-9)
	// 40% win at even money loses.
	assert.InDelta(t, -2.0, ExpectedValue(0.4, 2.0, 10), 1e-9)
}

func TestZScores(t *testing.T) {
	scores := ZScores([]float64{1, 2, 3})
	assert.Len(t, scores, 3)
	assert.InDelta(t, 0.0, scores[1], 1e-9)
	assert.InDelta(t, -scores[0], scores[2], 1e-9)
}

func TestZScoresConstantInput(t *testing.T) {
	scores := ZScores([]float64{5, 5, 5})
	for _, s := range scores {
		assert.Equal(t, 0.0, s)
	}
}

func TestZScoresEmpty(t *testing.T) {
	assert.Nil(t, ZScores(nil))
}
