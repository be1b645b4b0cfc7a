package oddsmath

import "math"

// CombineProbabilities multiplies independent leg probabilities into a parlay
// probability. Legs are treated as independent; correlated legs are out of
// scope. An empty input yields the multiplicative identity 1.0.
func CombineProbabilities(probabilities []float64) float64 {
	total := 1.0
	for _, p := range probabilities {
		total *= p
	}
	return total
}

// ExpectedValue returns the average profit for a stake at the given win
// probability and decimal odds.
func ExpectedValue(probability, decimalOdds, stake float64) float64 {
	return (probability * (decimalOdds - 1.0) * stake) - ((1.0 - probability) * stake)
}

// ZScores normalizes values against their population mean and standard
// deviation. A zero-variance input uses a standard deviation of 1 so constant
// sequences map to all zeros instead of dividing by zero.
func ZScores(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	stdDev := 1.0
	if variance > 0 {
		stdDev = math.Sqrt(variance)
	}

	scores := make([]float64, len(values))
	for i, v := range values {
		scores[i] = (v - mean) / stdDev
	}
	return scores
}
