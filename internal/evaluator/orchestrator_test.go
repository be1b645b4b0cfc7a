package evaluator

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/parlay-advisor/internal/advisor"
	"github.com/yourusername/parlay-advisor/internal/config"
	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/models"
	"github.com/yourusername/parlay-advisor/internal/scoring"
)

type fakeProviders struct {
	players    []datasource.PlayerRecord
	injuries   []datasource.InjuryRecord
	headToHead map[string]int
	price      *datasource.MarketPrice
	failAll    bool

	headToHeadCalls int
}

func (f *fakeProviders) ListPlayers(ctx context.Context) ([]datasource.PlayerRecord, error) {
	if f.failAll {
		return nil, fmt.Errorf("players feed down")
	}
	return f.players, nil
}

func (f *fakeProviders) ListInjuries(ctx context.Context, season int) ([]datasource.InjuryRecord, error) {
	if f.failAll {
		return nil, fmt.Errorf("injuries feed down")
	}
	return f.injuries, nil
}

func (f *fakeProviders) HeadToHead(ctx context.Context, teamA, teamB string) (map[string]int, error) {
	f.headToHeadCalls++
	if f.failAll {
		return nil, fmt.Errorf("scores feed down")
	}
	record := map[string]int{teamA: 0, teamB: 0}
	for team, wins := range f.headToHead {
		record[team] = wins
	}
	return record, nil
}

func (f *fakeProviders) BestPlayerPropPrice(ctx context.Context, playerName, market string) (*datasource.MarketPrice, error) {
	if f.failAll {
		return nil, fmt.Errorf("odds feed down")
	}
	return f.price, nil
}

func testConfig() *config.Config {
	return &config.Config{
		SportsData: config.SportsDataConfig{Season: 2025, LookbackYears: 5},
		Advisor: config.AdvisorConfig{
			EVWeight: 0.5, InjuryWeight: 0.2, HistoryWeight: 0.15, MarketWeight: 0.15,
			CacheTTLSeconds: 300, CacheMaxSize: 16,
		},
		Features: config.FeaturesConfig{LiveDataEnabled: true},
	}
}

func newTestOrchestrator(cfg *config.Config, fakes *fakeProviders) *Orchestrator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	engine := scoring.NewEngine(scoring.DefaultWeights(), logger)
	providers := Providers{Players: fakes, Injuries: fakes, HeadToHead: fakes, Prices: fakes}
	return NewOrchestrator(cfg, providers, advisor.NewHeuristicAdvisor(engine), logger)
}

func propParlay() *models.Parlay {
	return &models.Parlay{
		Legs: []*models.BetLeg{{
			LegID:        "leg-1",
			Description:  "Patrick Mahomes over 274.5 passing yards",
			OddsAmerican: -115,
			Metadata: map[string]string{
				models.MetaPlayerName:   "Patrick Mahomes",
				models.MetaOpponentTeam: "BUF",
				models.MetaMarketKey:    "player_pass_yds",
			},
		}},
		Stake: 10,
	}
}

func TestEvaluateFullAdjustmentChain(t *testing.T) {
	fakes := &fakeProviders{
		players: []datasource.PlayerRecord{
			{ID: "1", Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
		},
		injuries: []datasource.InjuryRecord{
			{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"},
		},
		headToHead: map[string]int{"KC": 7, "BUF": 3},
		price:      &datasource.MarketPrice{Bookmaker: "DraftKings", Market: "player_pass_yds", Price: -105},
	}
	orc := newTestOrchestrator(testConfig(), fakes)

	parlay := propParlay()
	result, err := orc.Evaluate(context.Background(), parlay)
	require.NoError(t, err)

	leg := parlay.Legs[0]
	require.NotNil(t, leg.Player)
	assert.Equal(t, "KC", leg.Player.Team)

	// implied 0.534884 * 1.05 (injury) * 1.06 (historical)
	require.NotNil(t, leg.AdjustedProbability)
	assert.InDelta(t, 0.595326, *leg.AdjustedProbability, 1e-5)

	assert.Equal(t, []string{
		"Opponent missing key defender Star Corner (CB)",
		"Injury multiplier applied: 1.05",
		"Historical edge: KC 7-3 over opponent",
		"Historical multiplier applied: 1.06",
		"Best price available: DraftKings player_pass_yds at -105",
	}, leg.Notes)

	require.NotNil(t, result.ExpectedValue)
	assert.NotEqual(t, models.VerdictHighRisk, result.Verdict)
}

func TestEvaluateAllFeedsFailing(t *testing.T) {
	fakes := &fakeProviders{failAll: true}
	orc := newTestOrchestrator(testConfig(), fakes)

	parlay := propParlay()
	result, err := orc.Evaluate(context.Background(), parlay)
	require.NoError(t, err, "feed failures must not abort the evaluation")

	leg := parlay.Legs[0]
	implied, iErr := leg.ImpliedProbability()
	require.NoError(t, iErr)
	require.NotNil(t, leg.AdjustedProbability)
	assert.InDelta(t, implied, *leg.AdjustedProbability, 1e-9)
	assert.Empty(t, leg.Notes)
	require.NotNil(t, result.CombinedProbability)
}

func TestEvaluateLiveDataDisabled(t *testing.T) {
	fakes := &fakeProviders{
		players:  []datasource.PlayerRecord{{ID: "1", Name: "Patrick Mahomes", Team: "KC", Position: "QB"}},
		injuries: []datasource.InjuryRecord{{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"}},
	}
	cfg := testConfig()
	cfg.Features.LiveDataEnabled = false
	orc := newTestOrchestrator(cfg, fakes)

	parlay := propParlay()
	_, err := orc.Evaluate(context.Background(), parlay)
	require.NoError(t, err)

	leg := parlay.Legs[0]
	assert.Nil(t, leg.Player)
	assert.Empty(t, leg.Notes)
	assert.Equal(t, 0, fakes.headToHeadCalls)
}

func TestEvaluateZeroOddsLegFails(t *testing.T) {
	orc := newTestOrchestrator(testConfig(), &fakeProviders{})

	parlay := &models.Parlay{
		Legs:  []*models.BetLeg{{LegID: "leg-1", Description: "bad leg", OddsAmerican: 0}},
		Stake: 10,
	}
	_, err := orc.Evaluate(context.Background(), parlay)
	assert.Error(t, err)
}

func TestHeadToHeadMemoized(t *testing.T) {
	fakes := &fakeProviders{headToHead: map[string]int{"KC": 5, "BUF": 5}}
	orc := newTestOrchestrator(testConfig(), fakes)

	buildParlay := func() *models.Parlay {
		return &models.Parlay{
			Legs: []*models.BetLeg{
				{
					LegID: "leg-1", Description: "Chiefs moneyline", OddsAmerican: -150, Team: "KC",
					Metadata: map[string]string{models.MetaOpponentTeam: "BUF"},
				},
				{
					LegID: "leg-2", Description: "Bills moneyline", OddsAmerican: 120, Team: "BUF",
					Metadata: map[string]string{models.MetaOpponentTeam: "KC"},
				},
			},
			Stake: 10,
		}
	}

	_, err := orc.Evaluate(context.Background(), buildParlay())
	require.NoError(t, err)
	assert.Equal(t, 1, fakes.headToHeadCalls, "unordered team pair fetched once")

	// A second evaluation on the same orchestrator reuses the memo.
	_, err = orc.Evaluate(context.Background(), buildParlay())
	require.NoError(t, err)
	assert.Equal(t, 1, fakes.headToHeadCalls)
}

func TestPairKeyOrderInsensitive(t *testing.T) {
	assert.Equal(t, pairKey("KC", "BUF"), pairKey("BUF", "KC"))
}
