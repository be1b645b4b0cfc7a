package models

// Parlay is an ordered, non-empty sequence of bet legs with a positive stake.
// Derived quantities are computed on demand from the legs' current state and
// never cached.
type Parlay struct {
	Legs  []*BetLeg `json:"legs"`
	Stake float64   `json:"stake"`
}

// CombinedProbability multiplies the adjusted probabilities of every leg.
// Returns nil when any leg has no adjusted probability yet.
func (p *Parlay) CombinedProbability() *float64 {
	probability := 1.0
	for _, leg := range p.Legs {
		if leg.AdjustedProbability == nil {
			return nil
		}
		probability *= *leg.AdjustedProbability
	}
	return &probability
}

// CombinedDecimalOdds multiplies the decimal odds implied by each leg's
// American price. Fails if any leg carries zero odds.
func (p *Parlay) CombinedDecimalOdds() (float64, error) {
	decimalOdds := 1.0
	for _, leg := range p.Legs {
		implied, err := leg.ImpliedProbability()
		if err != nil {
			return 0, err
		}
		decimalOdds *= 1.0 / implied
	}
	return decimalOdds, nil
}

// PotentialPayout returns the profit on the stake if every leg wins.
func (p *Parlay) PotentialPayout() (float64, error) {
	odds, err := p.CombinedDecimalOdds()
	if err != nil {
		return 0, err
	}
	return p.Stake * (odds - 1.0), nil
}
