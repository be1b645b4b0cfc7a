package adjuster

import (
	"fmt"
	"math"

	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/oddsmath"
)

// historicalEdgeScale converts the deviation of a head-to-head win rate from
// an even split into a modest multiplier: a 10-0 record yields 1.15.
const historicalEdgeScale = 0.3

// historicalDeadZone suppresses multipliers within 1% of neutral so thin
// samples do not produce noisy micro-adjustments.
const historicalDeadZone = 0.01

// HistoricalAdjuster shifts a leg's probability based on the head-to-head
// record between the leg's target team and its opponent.
type HistoricalAdjuster struct {
	headToHeadRecord map[string]int
}

// NewHistoricalAdjuster creates an adjuster over a win-count record keyed by
// team name.
func NewHistoricalAdjuster(headToHeadRecord map[string]int) *HistoricalAdjuster {
	return &HistoricalAdjuster{headToHeadRecord: headToHeadRecord}
}

// AdjustLeg derives a multiplier from the target team's historical win rate,
// applies it to the leg's baseline probability, and returns the clamped
// result. Returns nil when the leg has no baseline probability, the record has
// no games for the target team, or the multiplier falls inside the dead-zone.
// Appends a record summary note and a multiplier note as a side effect.
func (a *HistoricalAdjuster) AdjustLeg(leg *models.BetLeg, targetTeam string) *float64 {
	if leg.BaselineProbability == nil {
		return nil
	}
	if targetTeam == "" {
		return nil
	}
	teamWins, ok := a.headToHeadRecord[targetTeam]
	if !ok {
		return nil
	}

	totalGames := 0
	for _, wins := range a.headToHeadRecord {
		totalGames += wins
	}
	if totalGames == 0 {
		return nil
	}

	winRate := float64(teamWins) / float64(totalGames)
	multiplier := 1.0 + (winRate-0.5)*historicalEdgeScale
	if math.Abs(multiplier-1.0) < historicalDeadZone {
		return nil
	}

	leg.AddNote(fmt.Sprintf("Historical edge: %s %d-%d over opponent", targetTeam, teamWins, totalGames-teamWins))
	leg.AddNote(fmt.Sprintf("Historical multiplier applied: %.2f", multiplier))
	adjusted := oddsmath.ClampProbability(*leg.BaselineProbability * multiplier)
	return &adjusted
}
