package scheduler

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/models"
)

type fakePrices struct {
	price *datasource.MarketPrice
}

func (f *fakePrices) BestPlayerPropPrice(ctx context.Context, playerName, market string) (*datasource.MarketPrice, error) {
	return f.price, nil
}

func testWatcher(prices datasource.MarketPriceProvider) *Watcher {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewWatcher(nil, prices, nil, nil, logger)
}

func watchedParlay() *models.Parlay {
	return &models.Parlay{
		Legs: []*models.BetLeg{{
			LegID:        "leg-1",
			Description:  "Patrick Mahomes over 274.5 passing yards",
			OddsAmerican: -115,
			Metadata: map[string]string{
				models.MetaPlayerName: "Patrick Mahomes",
				models.MetaMarketKey:  "player_pass_yds",
			},
		}},
		Stake: 10,
	}
}

func TestNoteLineMovementFirstRunSilent(t *testing.T) {
	prices := &fakePrices{price: &datasource.MarketPrice{Price: -115}}
	w := testWatcher(prices)

	parlay := watchedParlay()
	w.noteLineMovement(context.Background(), parlay)
	assert.Empty(t, parlay.Legs[0].Notes, "no prior price to compare against")
}

func TestNoteLineMovementOnShift(t *testing.T) {
	prices := &fakePrices{price: &datasource.MarketPrice{Price: -115}}
	w := testWatcher(prices)

	w.noteLineMovement(context.Background(), watchedParlay())

	prices.price = &datasource.MarketPrice{Price: -105}
	parlay := watchedParlay()
	w.noteLineMovement(context.Background(), parlay)

	assert.Equal(t, []string{"Line movement: best price moved from -115 to -105"}, parlay.Legs[0].Notes)
}

func TestNoteLineMovementStablePrice(t *testing.T) {
	prices := &fakePrices{price: &datasource.MarketPrice{Price: 120}}
	w := testWatcher(prices)

	w.noteLineMovement(context.Background(), watchedParlay())
	parlay := watchedParlay()
	w.noteLineMovement(context.Background(), parlay)
	assert.Empty(t, parlay.Legs[0].Notes)
}

func TestNoteLineMovementSkipsLegsWithoutPlayer(t *testing.T) {
	prices := &fakePrices{price: &datasource.MarketPrice{Price: -110}}
	w := testWatcher(prices)

	parlay := &models.Parlay{
		Legs:  []*models.BetLeg{{LegID: "leg-1", Description: "Chiefs moneyline", OddsAmerican: -150}},
		Stake: 10,
	}
	w.noteLineMovement(context.Background(), parlay)
	w.noteLineMovement(context.Background(), parlay)
	assert.Empty(t, parlay.Legs[0].Notes)
}
