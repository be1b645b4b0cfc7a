package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/parlay-advisor/internal/llm"
	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/scoring"
)

// NarrativeAdvisor computes the deterministic analysis first, then asks a
// language model to explain it. The generated prose replaces the rationale
// only; scores, verdict, and probabilities always come from the scoring
// engine. Any generation failure falls back to the deterministic rationale.
type NarrativeAdvisor struct {
	engine *scoring.Engine
	client llm.Client
	logger *logrus.Logger
}

// NewNarrativeAdvisor creates a narrative advisor.
func NewNarrativeAdvisor(engine *scoring.Engine, client llm.Client, logger *logrus.Logger) *NarrativeAdvisor {
	return &NarrativeAdvisor{engine: engine, client: client, logger: logger}
}

// Evaluate scores the parlay deterministically and enriches the rationale with
// generated analysis.
func (a *NarrativeAdvisor) Evaluate(ctx context.Context, parlay *models.Parlay) (*models.EvaluationResult, error) {
	analysis, err := a.engine.AnalysisContext(parlay)
	if err != nil {
		return nil, err
	}

	rationale := analysis.Rationale
	narrative, err := a.client.GenerateText(ctx, buildPrompt(analysis))
	if err != nil {
		a.logger.WithError(err).Error("Narrative generation failed, falling back to deterministic rationale")
	} else {
		rationale = []string{narrative}
	}

	return &models.EvaluationResult{
		OverallValueScore:   analysis.OverallScore,
		Verdict:             analysis.Verdict,
		ExpectedValue:       analysis.ExpectedValue,
		CombinedProbability: analysis.CombinedProbability,
		Rationale:           rationale,
		LegBreakdown:        analysis.LegScores,
	}, nil
}

// buildPrompt renders the deterministic analysis into a prompt that instructs
// the model to explain the numbers, not recompute them.
func buildPrompt(analysis *scoring.AnalysisContext) string {
	var b strings.Builder

	b.WriteString("You are an expert NFL betting advisor. Explain the value of a parlay bet ")
	b.WriteString("based on PRE-CALCULATED mathematical data. Do not recalculate probabilities; ")
	b.WriteString("trust the provided numbers.\n\n")

	b.WriteString("PARLAY SUMMARY:\n")
	fmt.Fprintf(&b, "- Verdict: %s\n", analysis.Verdict)
	fmt.Fprintf(&b, "- Value Score: %.2f (scale -1.0 to 1.0)\n", analysis.OverallScore)
	if analysis.ExpectedValue != nil {
		fmt.Fprintf(&b, "- Expected Value: $%.2f\n", *analysis.ExpectedValue)
	}
	if analysis.CombinedProbability != nil {
		fmt.Fprintf(&b, "- Combined Hit Probability: %.2f%%\n", *analysis.CombinedProbability*100)
	}

	b.WriteString("\nLEGS DETAIL:\n")
	for _, leg := range analysis.Parlay.Legs {
		score := analysis.LegScores[leg.LegID]
		fmt.Fprintf(&b, "\nLeg %s: %s\n", leg.LegID, leg.Description)
		fmt.Fprintf(&b, "  - Implied Probability (Odds): %.1f%%\n", score.ImpliedProb*100)
		fmt.Fprintf(&b, "  - Adjusted Probability (Model): %.1f%%\n", score.AdjustedProb*100)
		fmt.Fprintf(&b, "  - Difference: %+.1f%%\n", (score.AdjustedProb-score.ImpliedProb)*100)
		if len(leg.Notes) > 0 {
			b.WriteString("  - Signals:\n")
			for _, note := range leg.Notes {
				fmt.Fprintf(&b, "    * %s\n", note)
			}
		}
	}

	b.WriteString("\nTASK:\n")
	b.WriteString("Write a concise, professional analysis of this parlay. ")
	b.WriteString("Start with a clear recommendation, explain why the model adjusted each ")
	b.WriteString("notable leg (refer to the signals), and state whether the expected value ")
	b.WriteString("justifies the risk. Keep it under 200 words, Markdown formatted.\n")

	return b.String()
}
