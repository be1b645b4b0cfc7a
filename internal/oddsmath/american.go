// Package oddsmath provides conversions between American odds, decimal odds,
// and implied probability, plus the aggregate statistics used by the scoring
// engine.
package oddsmath

import "errors"

// ErrInvalidOdds reports odds outside the representable range: zero American
// odds, or decimal odds at or below 1.0. Conversions never guess a default for
// malformed prices.
var ErrInvalidOdds = errors.New("invalid odds")

// ImpliedProbability converts American odds to the probability the bookmaker
// price implies. Zero odds are not a valid price.
func ImpliedProbability(american int) (float64, error) {
	if american == 0 {
		return 0, ErrInvalidOdds
	}
	if american > 0 {
		return 100.0 / (float64(american) + 100.0), nil
	}
	return float64(-american) / (float64(-american) + 100.0), nil
}

// AmericanToDecimal converts American odds to decimal odds.
// +150 -> 2.50, -150 -> 1.667
func AmericanToDecimal(american int) (float64, error) {
	if american == 0 {
		return 0, ErrInvalidOdds
	}
	if american > 0 {
		return (float64(american) / 100.0) + 1.0, nil
	}
	return (100.0 / float64(-american)) + 1.0, nil
}

// DecimalToAmerican converts decimal odds to American odds, truncating toward
// zero. Decimal odds at or below 1.0 carry no payout and are rejected.
func DecimalToAmerican(decimal float64) (int, error) {
	if decimal <= 1.0 {
		return 0, ErrInvalidOdds
	}
	if decimal >= 2.0 {
		return int((decimal - 1.0) * 100.0), nil
	}
	return int(-100.0 / (decimal - 1.0)), nil
}

// ClampProbability bounds a probability to [0.01, 0.99]. Adjusted leg
// probabilities stay inside this range so combined parlay probabilities never
// degenerate to 0 or 1.
func ClampProbability(p float64) float64 {
	if p < 0.01 {
		return 0.01
	}
	if p > 0.99 {
		return 0.99
	}
	return p
}
