// Package evaluator sequences the full parlay evaluation: player resolution,
// the adjustment chain (injuries, then historical, then market annotation),
// and scoring. Every external fetch is fault-isolated; a degraded feed means
// fewer adjustments, never a failed evaluation.
package evaluator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/parlay-advisor/internal/adjuster"
	"github.com/yourusername/parlay-advisor/internal/advisor"
	"github.com/yourusername/parlay-advisor/internal/config"
	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/logger"
	"github.com/yourusername/parlay-advisor/internal/metrics"
	"github.com/yourusername/parlay-advisor/internal/models"
)

// Adjuster names used in audit logs and metrics labels.
const (
	injuryAdjusterName     = "injury"
	historicalAdjusterName = "historical"
)

// Providers holds the external data collaborators.
type Providers struct {
	Players    datasource.PlayerDirectoryProvider
	Injuries   datasource.InjuryProvider
	HeadToHead datasource.HeadToHeadProvider
	Prices     datasource.MarketPriceProvider
}

// Orchestrator coordinates data fetching, leg adjustments, and scoring for
// one evaluation flow. Not safe for concurrent use: the player directory and
// head-to-head memo are instance-scoped and accessed without locking.
type Orchestrator struct {
	cfg       *config.Config
	providers Providers
	advisor   advisor.Advisor

	useLiveData bool

	playerDirectory map[string]*models.Player // keyed by lowercased name
	injuryAdjuster  *adjuster.InjuryAdjuster

	h2hCache   *cache.Cache
	h2hMaxSize int
	h2hHits    uint64
	h2hMisses  uint64

	logger *logrus.Logger
	audit  *logger.AuditLogger
}

// NewOrchestrator creates an orchestrator. The advisor decides how results are
// rendered (deterministic or narrative); adjustments are identical either way.
func NewOrchestrator(cfg *config.Config, providers Providers, adv advisor.Advisor, log *logrus.Logger) *Orchestrator {
	ttl := cfg.CacheTTL()
	return &Orchestrator{
		cfg:         cfg,
		providers:   providers,
		advisor:     adv,
		useLiveData: cfg.Features.LiveDataEnabled,
		h2hCache:    cache.New(ttl, 2*ttl),
		h2hMaxSize:  cfg.Advisor.CacheMaxSize,
		logger:      log,
		audit:       logger.NewAuditLogger(log),
	}
}

// Evaluate runs the adjustment chain over the parlay's legs in order, then
// delegates to the advisor. Fails only on structurally invalid input (zero
// odds); degraded data feeds degrade the result instead.
func (o *Orchestrator) Evaluate(ctx context.Context, parlay *models.Parlay) (*models.EvaluationResult, error) {
	runID := uuid.New().String()
	start := time.Now()

	o.audit.LogEvaluationStart(runID, len(parlay.Legs), parlay.Stake, o.useLiveData)

	if err := o.applyAdjustments(ctx, runID, parlay); err != nil {
		return nil, err
	}

	result, err := o.advisor.Evaluate(ctx, parlay)
	if err != nil {
		return nil, err
	}

	metrics.EvaluationsTotal.Inc()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	metrics.LastOverallValueScore.Set(result.OverallValueScore)
	o.audit.LogVerdict(runID, result.Verdict, result.OverallValueScore, result.ExpectedValue)

	return result, nil
}

// applyAdjustments walks the legs in their original order. Adjusters are not
// idempotent, so each runs at most once per leg; each successful adjustment
// overwrites both probability fields so the next adjuster compounds on the
// adjusted figure.
func (o *Orchestrator) applyAdjustments(ctx context.Context, runID string, parlay *models.Parlay) error {
	o.attachPlayers(ctx, runID, parlay.Legs)
	o.loadInjuries(ctx, runID)

	for _, leg := range parlay.Legs {
		if leg.BaselineProbability == nil {
			implied, err := leg.ImpliedProbability()
			if err != nil {
				return fmt.Errorf("leg %s: %w", leg.LegID, err)
			}
			leg.BaselineProbability = &implied
		}

		opponentTeam := leg.MetadataValue(models.MetaOpponentTeam)
		targetTeam := leg.Team
		if targetTeam == "" && leg.Player != nil {
			targetTeam = leg.Player.Team
		}

		if o.injuryAdjuster != nil && opponentTeam != "" {
			if adjusted := o.injuryAdjuster.AdjustLeg(leg, opponentTeam); adjusted != nil {
				o.recordAdjustment(runID, leg, injuryAdjusterName, adjusted)
			}
		}

		if leg.AdjustedProbability == nil {
			leg.AdjustedProbability = leg.BaselineProbability
		}

		if targetTeam != "" && opponentTeam != "" && o.useLiveData {
			record := o.headToHeadRecord(ctx, runID, targetTeam, opponentTeam)
			historical := adjuster.NewHistoricalAdjuster(record)
			if adjusted := historical.AdjustLeg(leg, targetTeam); adjusted != nil {
				o.recordAdjustment(runID, leg, historicalAdjusterName, adjusted)
			}
		}

		if o.useLiveData && leg.MetadataValue(models.MetaPlayerName) != "" {
			o.annotateMarketPrice(ctx, runID, leg)
		}
	}

	return nil
}

// recordAdjustment overwrites both probability fields with the adjuster's
// output and records the change.
func (o *Orchestrator) recordAdjustment(runID string, leg *models.BetLeg, name string, adjusted *float64) {
	before := *leg.BaselineProbability
	leg.AdjustedProbability = adjusted
	leg.BaselineProbability = adjusted
	metrics.AdjustmentsAppliedTotal.WithLabelValues(name).Inc()
	o.audit.LogAdjustment(runID, leg.LegID, name, before, *adjusted)
}

// attachPlayers resolves each leg's player reference by case-insensitive name
// lookup. The directory loads once per orchestrator; a failed load is retried
// on the next evaluation.
func (o *Orchestrator) attachPlayers(ctx context.Context, runID string, legs []*models.BetLeg) {
	if o.playerDirectory == nil && o.useLiveData {
		players, err := o.providers.Players.ListPlayers(ctx)
		if err != nil {
			metrics.DataSourceErrorsTotal.WithLabelValues("players").Inc()
			o.audit.LogDataSourceFailure(runID, "players", err)
		} else {
			o.playerDirectory = make(map[string]*models.Player, len(players))
			for _, record := range players {
				player := &models.Player{
					ID:       record.ID,
					Name:     record.Name,
					Team:     record.Team,
					Position: record.Position,
				}
				o.playerDirectory[strings.ToLower(record.Name)] = player
			}
		}
	}

	for _, leg := range legs {
		playerName := leg.MetadataValue(models.MetaPlayerName)
		if playerName == "" || leg.Player != nil {
			continue
		}
		if player, ok := o.playerDirectory[strings.ToLower(playerName)]; ok {
			leg.Player = player
		} else {
			o.logger.WithFields(logrus.Fields{
				"run_id": runID,
				"player": playerName,
			}).Debug("Player not found in directory")
		}
	}
}

// loadInjuries builds the injury adjuster once per orchestrator. A failed
// fetch yields an adjuster over an empty feed, which never matches anything.
func (o *Orchestrator) loadInjuries(ctx context.Context, runID string) {
	if o.injuryAdjuster != nil || !o.useLiveData {
		return
	}
	injuries, err := o.providers.Injuries.ListInjuries(ctx, o.cfg.SportsData.Season)
	if err != nil {
		metrics.DataSourceErrorsTotal.WithLabelValues("injuries").Inc()
		o.audit.LogDataSourceFailure(runID, "injuries", err)
		injuries = nil
	}
	o.injuryAdjuster = adjuster.NewInjuryAdjuster(injuries, o.logger)
}

// headToHeadRecord fetches the win-count record for a team pair, memoized on
// the unordered pair for the lifetime of the orchestrator. Failed lookups
// memoize a zero record so one run never hammers a failing feed; the zero
// record's empty sample makes the historical adjuster a no-op.
func (o *Orchestrator) headToHeadRecord(ctx context.Context, runID, teamA, teamB string) map[string]int {
	key := pairKey(teamA, teamB)
	if cached, found := o.h2hCache.Get(key); found {
		o.h2hHits++
		o.updateCacheRatio()
		return cached.(map[string]int)
	}
	o.h2hMisses++
	o.updateCacheRatio()

	record, err := o.providers.HeadToHead.HeadToHead(ctx, teamA, teamB)
	if err != nil {
		metrics.DataSourceErrorsTotal.WithLabelValues("head_to_head").Inc()
		o.audit.LogDataSourceFailure(runID, "head_to_head", err)
		record = map[string]int{teamA: 0, teamB: 0}
	}

	if o.h2hCache.ItemCount() >= o.h2hMaxSize {
		o.h2hCache.DeleteExpired()
	}
	o.h2hCache.SetDefault(key, record)
	return record
}

// pairKey builds an order-insensitive cache key for a team pair.
func pairKey(teamA, teamB string) string {
	if teamB < teamA {
		teamA, teamB = teamB, teamA
	}
	return teamA + "|" + teamB
}

func (o *Orchestrator) updateCacheRatio() {
	total := o.h2hHits + o.h2hMisses
	if total > 0 {
		metrics.HeadToHeadCacheHitRatio.Set(float64(o.h2hHits) / float64(total))
	}
}

// annotateMarketPrice attaches the best available bookmaker price as an
// informational note. Never alters probabilities; failures are logged at
// debug and ignored.
func (o *Orchestrator) annotateMarketPrice(ctx context.Context, runID string, leg *models.BetLeg) {
	playerName := leg.MetadataValue(models.MetaPlayerName)
	market := leg.MetadataValue(models.MetaMarketKey)

	best, err := o.providers.Prices.BestPlayerPropPrice(ctx, playerName, market)
	if err != nil {
		metrics.DataSourceErrorsTotal.WithLabelValues("market_prices").Inc()
		o.logger.WithFields(logrus.Fields{
			"run_id": runID,
			"leg_id": leg.LegID,
		}).WithError(err).Debug("Failed to fetch market price")
		return
	}
	if best == nil {
		return
	}

	bookmaker := best.Bookmaker
	if bookmaker == "" {
		bookmaker = "unknown"
	}
	marketKey := best.Market
	if marketKey == "" {
		marketKey = "market"
	}
	leg.AddNote(fmt.Sprintf("Best price available: %s %s at %+d", bookmaker, marketKey, best.Price))
}
