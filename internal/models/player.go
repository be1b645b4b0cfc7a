// Package models defines the core data model for parlay evaluation: players,
// bet legs, parlays, and evaluation results.
package models

// Player identifies an NFL player referenced by a bet leg. Players are owned by
// the orchestrator's directory cache and shared by reference; legs never copy
// or mutate them.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	IsInjured    bool   `json:"is_injured"`
	InjuryStatus string `json:"injury_status,omitempty"`
}
