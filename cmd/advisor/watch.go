package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/scheduler"
)

var watchSchedule string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-evaluate a parlay on a schedule, tracking line movement",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "*/15 * * * *", "Cron expression for re-evaluation runs (UTC)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(parlayFile)
	if err != nil {
		return fmt.Errorf("failed to read parlay file: %w", err)
	}
	def, err := models.ParseParlayDefinition(data)
	if err != nil {
		return err
	}
	if stake > 0 {
		def.Stake = stake
	}
	// Fail on a bad definition before the first scheduled run.
	if _, err := models.BuildParlay(def); err != nil {
		return err
	}

	orc, providers := buildOrchestrator()

	out := cmd.OutOrStdout()
	watcher := scheduler.NewWatcher(orc, providers.Prices, def, func(parlay *models.Parlay, result *models.EvaluationResult) {
		renderResult(out, parlay, result)
	}, appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLog.Info("Watching parlay, press Ctrl+C to stop")
	return watcher.Start(ctx, watchSchedule)
}
