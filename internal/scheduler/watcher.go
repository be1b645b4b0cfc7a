// Package scheduler provides the watch mode: periodic re-evaluation of a
// parlay definition on a cron schedule, with best-price movement tracked
// between runs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/evaluator"
	"github.com/yourusername/parlay-advisor/internal/models"
)

// ResultFunc receives each watch run's result.
type ResultFunc func(parlay *models.Parlay, result *models.EvaluationResult)

// Watcher re-evaluates a parlay definition on a schedule. Adjusters compound
// when re-applied, so every run rebuilds a fresh parlay from the definition
// instead of re-evaluating a mutated one. Between runs the watcher tracks each
// leg's best available price and injects a line movement note when it shifts,
// which feeds the scoring engine's market signal.
type Watcher struct {
	orchestrator *evaluator.Orchestrator
	prices       datasource.MarketPriceProvider
	definition   *models.ParlayDefinition
	onResult     ResultFunc

	cron       *cron.Cron
	lastPrices map[string]int // leg ID -> last seen best American price
	mu         sync.Mutex
	running    bool

	logger *logrus.Logger
}

// NewWatcher creates a watcher over a parlay definition.
func NewWatcher(orc *evaluator.Orchestrator, prices datasource.MarketPriceProvider, def *models.ParlayDefinition, onResult ResultFunc, log *logrus.Logger) *Watcher {
	return &Watcher{
		orchestrator: orc,
		prices:       prices,
		definition:   def,
		onResult:     onResult,
		cron:         cron.New(cron.WithLocation(time.UTC)),
		lastPrices:   make(map[string]int),
		logger:       log,
	}
}

// Start schedules runs at the given cron expression and fires one run
// immediately. Blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context, cronExpression string) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher is already running")
	}
	w.running = true
	w.mu.Unlock()

	if _, err := w.cron.AddFunc(cronExpression, func() { w.runOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule watch job: %w", err)
	}

	w.logger.WithField("schedule", cronExpression).Info("Parlay watch started")
	w.runOnce(ctx)
	w.cron.Start()

	<-ctx.Done()
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
	return nil
}

// runOnce rebuilds the parlay, injects line movement notes, evaluates, and
// reports the result.
func (w *Watcher) runOnce(ctx context.Context) {
	parlay, err := models.BuildParlay(w.definition)
	if err != nil {
		w.logger.WithError(err).Error("Watch run skipped: definition no longer builds")
		return
	}

	w.noteLineMovement(ctx, parlay)

	result, err := w.orchestrator.Evaluate(ctx, parlay)
	if err != nil {
		w.logger.WithError(err).Error("Watch run evaluation failed")
		return
	}

	if w.onResult != nil {
		w.onResult(parlay, result)
	}
}

// noteLineMovement compares each leg's current best price against the prior
// run and records a movement note on shift. Price fetch failures leave the
// prior price in place for the next comparison.
func (w *Watcher) noteLineMovement(ctx context.Context, parlay *models.Parlay) {
	for _, leg := range parlay.Legs {
		playerName := leg.MetadataValue(models.MetaPlayerName)
		if playerName == "" {
			continue
		}

		best, err := w.prices.BestPlayerPropPrice(ctx, playerName, leg.MetadataValue(models.MetaMarketKey))
		if err != nil || best == nil {
			continue
		}

		if previous, seen := w.lastPrices[leg.LegID]; seen && previous != best.Price {
			leg.AddNote(fmt.Sprintf("Line movement: best price moved from %+d to %+d", previous, best.Price))
			w.logger.WithFields(logrus.Fields{
				"leg_id": leg.LegID,
				"from":   previous,
				"to":     best.Price,
			}).Info("Line movement detected")
		}
		w.lastPrices[leg.LegID] = best.Price
	}
}
