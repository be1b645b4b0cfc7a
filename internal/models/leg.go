package models

import (
	"github.com/yourusername/parlay-advisor/internal/oddsmath"
)

// Metadata keys read by the evaluation orchestrator.
const (
	MetaPlayerName   = "player_name"
	MetaOpponentTeam = "opponent_team"
	MetaMarketKey    = "market_key"
)

// BetLeg is a single proposition within a parlay.
//
// BaselineProbability is the probability an adjuster starts from; it defaults
// to the odds-implied probability and is overwritten with each adjuster's
// output so later adjusters compound on the adjusted figure.
// AdjustedProbability is nil until the first adjustment pass completes.
// Notes is an append-only audit trail of every adjustment applied, in
// application order; it is never reordered or deduplicated.
//
// A leg is mutated in place during one evaluation pass and is not safe for
// concurrent use.
type BetLeg struct {
	LegID               string            `json:"leg_id"`
	Description         string            `json:"description"`
	OddsAmerican        int               `json:"odds_american"`
	MarketType          string            `json:"market_type"`
	Team                string            `json:"team,omitempty"`
	Player              *Player           `json:"player,omitempty"`
	BaselineProbability *float64          `json:"baseline_probability,omitempty"`
	AdjustedProbability *float64          `json:"adjusted_probability,omitempty"`
	Notes               []string          `json:"notes,omitempty"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

// ImpliedProbability returns the probability implied by the leg's American
// odds. Fails for zero odds rather than defaulting.
func (l *BetLeg) ImpliedProbability() (float64, error) {
	return oddsmath.ImpliedProbability(l.OddsAmerican)
}

// AddNote appends an explanatory note to the leg's audit trail.
func (l *BetLeg) AddNote(note string) {
	l.Notes = append(l.Notes, note)
}

// MetadataValue returns the metadata value for key, or "" when absent.
func (l *BetLeg) MetadataValue(key string) string {
	if l.Metadata == nil {
		return ""
	}
	return l.Metadata[key]
}
