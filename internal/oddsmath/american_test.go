package oddsmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		odds     int
		expected float64
	}{
		{"Positive underdog", 150, 0.4},
		{"Even money", 100, 0.5},
		{"Negative favorite", -200, 0.6667},
		{"Heavy favorite", -110, 0.5238},
		{"Long shot", 500, 0.1667},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prob, err := ImpliedProbability(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, prob, 0.0001)
		})
	}
}

func TestImpliedProbabilityZeroOdds(t *testing.T) {
	_, err := ImpliedProbability(0)
	assert.ErrorIs(t, err, ErrInvalidOdds)
}

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		odds     int
		expected float64
	}{
		{"Positive", 150, 2.5},
		{"Even", 100, 2.0},
		{"Negative", -150, 1.6667},
		{"Heavy favorite", -400, 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec, err := AmericanToDecimal(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, dec, 0.0001)
		})
	}
}

func TestDecimalToAmerican(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		expected int
	}{
		{"Underdog", 2.5, 150},
		{"Even", 2.0, 100},
		{"Favorite", 1.5, -200},
		{"Heavy favorite", 1.25, -400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			american, err := DecimalToAmerican(tt.decimal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, american)
		})
	}
}

func TestDecimalToAmericanInvalid(t *testing.T) {
	for _, decimal := range []float64{1.0, 0.5, 0, -2} {
		_, err := DecimalToAmerican(decimal)
		assert.ErrorIs(t, err, ErrInvalidOdds, "decimal %v", decimal)
	}
}

func TestOddsRoundTrip(t *testing.T) {
	for _, odds := range []int{-500, -200, -110, 100, 150, 300} {
		dec, err := AmericanToDecimal(odds)
		require.NoError(t, err)
		back, err := DecimalToAmerican(dec)
		require.NoError(t, err)
		// Truncation toward zero can lose at most one point.
		assert.InDelta(t, odds, back, 1, "odds %d", odds)
	}
}

func TestClampProbability(t *testing.T) {
	assert.Equal(t, 0.01, ClampProbability(0.001))
	assert.Equal(t, 0.01, ClampProbability(-0.5))
	assert.Equal(t, 0.99, ClampProbability(1.2))
	assert.Equal(t, 0.55, ClampProbability(0.55))
}
