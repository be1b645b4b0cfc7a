// Package adjuster implements the per-leg probability adjustment strategies.
//
// Adjusters are not idempotent: running one twice compounds its multiplier.
// The orchestrator calls each adjuster at most once per leg per evaluation.
package adjuster

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/oddsmath"
)

const injuryStepSize = 0.05

var keyDefensivePositions = map[string]bool{
	"CB": true, "DB": true, "FS": true, "SS": true, "S": true,
	"LB": true, "DE": true, "DT": true, "EDGE": true,
}

var offensiveSkillPositions = map[string]bool{
	"QB": true, "RB": true, "WR": true, "TE": true,
}

// InjuryAdjuster shifts a leg's probability based on the injury report. An
// injured opposing defender helps the leg; an injured offensive teammate of
// the leg's player hurts it.
type InjuryAdjuster struct {
	injuries []datasource.InjuryRecord
	logger   *logrus.Logger
}

// NewInjuryAdjuster creates an adjuster over a raw injury feed.
func NewInjuryAdjuster(injuries []datasource.InjuryRecord, logger *logrus.Logger) *InjuryAdjuster {
	return &InjuryAdjuster{injuries: injuries, logger: logger}
}

func isKeyDefender(inj datasource.InjuryRecord) bool {
	return keyDefensivePositions[inj.Position]
}

func isOffensiveStar(inj datasource.InjuryRecord) bool {
	return offensiveSkillPositions[inj.Position]
}

// AdjustLeg accumulates 0.05 multiplier steps across all matching injury
// records, applies the net multiplier to the leg's baseline probability, and
// returns the clamped result. Returns nil when the leg has no baseline
// probability or the net multiplier is effectively 1.0. Appends the
// qualitative notes and a summary note to the leg as a side effect.
//
// An empty opponentTeam scans records for every team.
func (a *InjuryAdjuster) AdjustLeg(leg *models.BetLeg, opponentTeam string) *float64 {
	if leg.BaselineProbability == nil {
		a.logger.WithField("leg_id", leg.LegID).
			Debug("Skipping injury adjustment: no baseline probability")
		return nil
	}

	multiplier := 1.0
	var adjustments []string
	for _, injury := range a.injuries {
		if opponentTeam != "" && injury.Team != opponentTeam {
			continue
		}
		if injury.Status != "Out" && injury.Status != "Doubtful" {
			continue
		}
		switch {
		case isKeyDefender(injury) && leg.Player != nil && leg.Player.Team != injury.Team:
			multiplier += injuryStepSize
			adjustments = append(adjustments,
				fmt.Sprintf("Opponent missing key defender %s (%s)", injury.Name, injury.Position))
		case isOffensiveStar(injury) && leg.Player != nil && leg.Player.Team == injury.Team:
			multiplier -= injuryStepSize
			adjustments = append(adjustments,
				fmt.Sprintf("%s's teammate %s (%s) is out", leg.Player.Name, injury.Name, injury.Position))
		}
	}

	multiplier = math.Max(0.05, multiplier)
	if math.Abs(multiplier-1.0) <= 1e-6 {
		return nil
	}

	for _, note := range adjustments {
		leg.AddNote(note)
	}
	adjusted := oddsmath.ClampProbability(*leg.BaselineProbability * multiplier)
	leg.AddNote(fmt.Sprintf("Injury multiplier applied: %.2f", multiplier))
	return &adjusted
}
