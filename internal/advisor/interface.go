// Package advisor defines the advisor capability: produce an EvaluationResult
// from a fully adjusted parlay. Two implementations share the interface: a
// deterministic heuristic advisor, and a narrative advisor that layers
// generated prose on top of the same deterministic scores.
package advisor

import (
	"context"

	"github.com/yourusername/parlay-advisor/internal/models"
)

// Advisor evaluates an adjusted parlay.
type Advisor interface {
	Evaluate(ctx context.Context, parlay *models.Parlay) (*models.EvaluationResult, error)
}
