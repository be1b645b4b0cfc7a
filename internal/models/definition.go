package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParlayDefinition is the external input format for a parlay. Legs is required
// and non-empty; Stake defaults to 1.0 when omitted.
type ParlayDefinition struct {
	Stake float64         `json:"stake" validate:"gte=0"`
	Legs  []LegDefinition `json:"legs" validate:"required,min=1,dive"`
}

// LegDefinition is the external input format for one leg. Odds must be a
// nonzero American price.
type LegDefinition struct {
	ID                  string            `json:"id" validate:"required"`
	Description         string            `json:"description" validate:"required"`
	Odds                int               `json:"odds" validate:"required"`
	Market              string            `json:"market"`
	Team                string            `json:"team"`
	BaselineProbability *float64          `json:"baseline_probability" validate:"omitempty,gte=0.01,lte=0.99"`
	Metadata            map[string]string `json:"metadata"`
}

var definitionValidator = validator.New()

// ParseParlayDefinition decodes a parlay definition from JSON, failing with
// ErrMalformedParlay on structurally invalid input before any evaluation runs.
func ParseParlayDefinition(data []byte) (*ParlayDefinition, error) {
	var def ParlayDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedParlay, err)
	}
	return &def, nil
}

// BuildParlay validates a definition and constructs the parlay it describes.
// Missing required fields (legs, id, odds, description) surface immediately as
// ErrMalformedParlay.
func BuildParlay(def *ParlayDefinition) (*Parlay, error) {
	if err := definitionValidator.Struct(def); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			return nil, fmt.Errorf("%w: %s", ErrMalformedParlay, describeFieldErrors(fieldErrors))
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedParlay, err)
	}

	legs := make([]*BetLeg, 0, len(def.Legs))
	for _, entry := range def.Legs {
		market := entry.Market
		if market == "" {
			market = "custom"
		}
		legs = append(legs, &BetLeg{
			LegID:               entry.ID,
			Description:         entry.Description,
			OddsAmerican:        entry.Odds,
			MarketType:          market,
			Team:                entry.Team,
			BaselineProbability: entry.BaselineProbability,
			Metadata:            entry.Metadata,
		})
	}

	stake := def.Stake
	if stake == 0 {
		stake = 1.0
	}

	return &Parlay{Legs: legs, Stake: stake}, nil
}

func describeFieldErrors(fieldErrors validator.ValidationErrors) string {
	msg := ""
	for i, fieldError := range fieldErrors {
		if i > 0 {
			msg += "; "
		}
		switch fieldError.Tag() {
		case "required":
			msg += fmt.Sprintf("field '%s' is required", fieldError.StructField())
		case "min":
			msg += fmt.Sprintf("field '%s' needs at least %s entries", fieldError.StructField(), fieldError.Param())
		default:
			msg += fmt.Sprintf("field '%s' failed '%s' validation", fieldError.StructField(), fieldError.Tag())
		}
	}
	return msg
}
