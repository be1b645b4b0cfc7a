// Package scoring combines implied and adjusted leg probabilities with the
// adjustment audit trail into a per-leg value score, an overall score, an
// expected value, and a categorical verdict.
package scoring

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/oddsmath"
)

// Weights control how much each signal contributes to a leg's value score.
// Expected value dominates; the qualitative signals together can swing a score
// by up to roughly 0.5.
type Weights struct {
	EV      float64 `json:"ev_weight"`
	Injury  float64 `json:"injury_weight"`
	History float64 `json:"history_weight"`
	Market  float64 `json:"market_weight"`
}

// DefaultWeights returns the standard signal weighting.
func DefaultWeights() Weights {
	return Weights{EV: 0.5, Injury: 0.2, History: 0.15, Market: 0.15}
}

// Verdict thresholds on the overall value score.
const (
	strongValueThreshold   = 0.15
	moderateValueThreshold = 0.05
	highRiskThreshold      = -0.1
)

// Note-scan signal increments.
const (
	injurySignalStep  = 0.1
	historySignalStep = 0.1
	marketSignalStep  = 0.05
)

// Engine scores legs and aggregates them into an EvaluationResult.
type Engine struct {
	weights Weights
	logger  *logrus.Logger
}

// NewEngine creates a scoring engine.
func NewEngine(weights Weights, logger *logrus.Logger) *Engine {
	return &Engine{weights: weights, logger: logger}
}

// AnalysisContext holds the deterministic analysis a narrative layer can build
// on without recomputing anything.
type AnalysisContext struct {
	Parlay              *models.Parlay
	LegScores           map[string]models.LegScore
	OverallScore        float64
	ExpectedValue       *float64
	CombinedProbability *float64
	Rationale           []string
	Verdict             string
}

// ScoreLeg derives the per-signal breakdown for one leg: the EV contribution
// of the adjustment relative to the odds-implied probability, plus qualitative
// signals scanned from the leg's notes.
func (e *Engine) ScoreLeg(leg *models.BetLeg) (models.LegScore, error) {
	impliedProb, err := leg.ImpliedProbability()
	if err != nil {
		return models.LegScore{}, err
	}

	baseline := impliedProb
	if leg.BaselineProbability != nil {
		baseline = *leg.BaselineProbability
	}
	adjusted := baseline
	if leg.AdjustedProbability != nil {
		adjusted = *leg.AdjustedProbability
	}

	evContribution := 0.0
	if impliedProb != 0 {
		evContribution = (adjusted - impliedProb) / impliedProb
	}

	var injurySignal, historySignal, marketSignal float64
	for _, note := range leg.Notes {
		lowered := strings.ToLower(note)
		if strings.Contains(lowered, "injury multiplier") || strings.Contains(lowered, "missing") {
			injurySignal += injurySignalStep
		}
		if strings.Contains(lowered, "historical") {
			historySignal += historySignalStep
		}
		if strings.Contains(lowered, "line movement") || strings.Contains(lowered, "best price") {
			marketSignal += marketSignalStep
		}
	}

	return models.LegScore{
		EV:           evContribution,
		Injury:       injurySignal,
		History:      historySignal,
		Market:       marketSignal,
		ImpliedProb:  impliedProb,
		AdjustedProb: adjusted,
	}, nil
}

// valueScore collapses a breakdown into one scalar with the engine's weights.
func (e *Engine) valueScore(score models.LegScore) float64 {
	return score.EV*e.weights.EV +
		score.Injury*e.weights.Injury +
		score.History*e.weights.History +
		score.Market*e.weights.Market
}

// classifyVerdict maps an overall score and expected value onto a verdict
// label, evaluated in priority order.
func classifyVerdict(overallScore float64, expectedValue *float64) string {
	ev := 0.0
	if expectedValue != nil {
		ev = *expectedValue
	}
	switch {
	case overallScore > strongValueThreshold && ev > 0:
		return models.VerdictStrongValue
	case overallScore > moderateValueThreshold:
		return models.VerdictModerateValue
	case overallScore < highRiskThreshold:
		return models.VerdictHighRisk
	default:
		return models.VerdictNeutral
	}
}

// AnalysisContext scores every leg and aggregates the parlay-wide statistics,
// rationale, and verdict.
func (e *Engine) AnalysisContext(parlay *models.Parlay) (*AnalysisContext, error) {
	combinedProbability := parlay.CombinedProbability()
	combinedDecimalOdds, err := parlay.CombinedDecimalOdds()
	if err != nil {
		return nil, err
	}

	var expectedValue *float64
	if combinedProbability != nil {
		ev := oddsmath.ExpectedValue(*combinedProbability, combinedDecimalOdds, parlay.Stake)
		expectedValue = &ev
	}

	legScores := make(map[string]models.LegScore, len(parlay.Legs))
	var valueScores []float64
	var rationale []string
	for _, leg := range parlay.Legs {
		score, err := e.ScoreLeg(leg)
		if err != nil {
			return nil, err
		}
		legScores[leg.LegID] = score
		valueScores = append(valueScores, e.valueScore(score))
		rationale = append(rationale,
			fmt.Sprintf("Leg %s %s: adjusted probability %.2f%%", leg.LegID, leg.Description, score.AdjustedProb*100))
		for _, note := range leg.Notes {
			rationale = append(rationale, "  - "+note)
		}
	}

	overallScore := 0.0
	if len(valueScores) > 0 {
		sum := 0.0
		for _, v := range valueScores {
			sum += v
		}
		overallScore = sum / float64(len(valueScores))
	}

	if expectedValue != nil {
		rationale = append(rationale, fmt.Sprintf("Combined expected value: $%.2f", *expectedValue))
	}
	if combinedProbability != nil {
		rationale = append(rationale, fmt.Sprintf("Parlay hit probability: %.2f%%", *combinedProbability*100))
	}

	return &AnalysisContext{
		Parlay:              parlay,
		LegScores:           legScores,
		OverallScore:        overallScore,
		ExpectedValue:       expectedValue,
		CombinedProbability: combinedProbability,
		Rationale:           rationale,
		Verdict:             classifyVerdict(overallScore, expectedValue),
	}, nil
}

// Evaluate scores a parlay into a complete EvaluationResult.
func (e *Engine) Evaluate(parlay *models.Parlay) (*models.EvaluationResult, error) {
	analysis, err := e.AnalysisContext(parlay)
	if err != nil {
		return nil, err
	}

	e.logger.WithFields(logrus.Fields{
		"overall_score": analysis.OverallScore,
		"verdict":       analysis.Verdict,
	}).Debug("Parlay scored")

	return &models.EvaluationResult{
		OverallValueScore:   analysis.OverallScore,
		Verdict:             analysis.Verdict,
		ExpectedValue:       analysis.ExpectedValue,
		CombinedProbability: analysis.CombinedProbability,
		Rationale:           analysis.Rationale,
		LegBreakdown:        analysis.LegScores,
	}, nil
}
