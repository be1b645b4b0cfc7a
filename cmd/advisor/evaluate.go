package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yourusername/parlay-advisor/internal/models"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a parlay definition once and print the verdict",
	RunE:  runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	parlay, err := loadParlay()
	if err != nil {
		return err
	}

	orc, _ := buildOrchestrator()
	result, err := orc.Evaluate(context.Background(), parlay)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	renderResult(cmd.OutOrStdout(), parlay, result)
	return nil
}

// loadParlay reads and validates the parlay definition file, applying the
// stake override when set.
func loadParlay() (*models.Parlay, error) {
	data, err := os.ReadFile(parlayFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read parlay file: %w", err)
	}

	def, err := models.ParseParlayDefinition(data)
	if err != nil {
		return nil, err
	}
	if stake > 0 {
		def.Stake = stake
	}

	return models.BuildParlay(def)
}
