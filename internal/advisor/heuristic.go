package advisor

import (
	"context"

	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/scoring"
)

// HeuristicAdvisor is the deterministic advisor: the scoring engine's output,
// nothing else.
type HeuristicAdvisor struct {
	engine *scoring.Engine
}

// NewHeuristicAdvisor creates a deterministic advisor over a scoring engine.
func NewHeuristicAdvisor(engine *scoring.Engine) *HeuristicAdvisor {
	return &HeuristicAdvisor{engine: engine}
}

// Evaluate scores the parlay.
func (a *HeuristicAdvisor) Evaluate(ctx context.Context, parlay *models.Parlay) (*models.EvaluationResult, error) {
	_ = ctx
	return a.engine.Evaluate(parlay)
}
