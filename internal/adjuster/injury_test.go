package adjuster

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func propLeg(baseline float64) *models.BetLeg {
	return &models.BetLeg{
		LegID:               "leg-1",
		Description:         "Patrick Mahomes over 274.5 passing yards",
		OddsAmerican:        -115,
		BaselineProbability: &baseline,
		Player:              &models.Player{Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
	}
}

func TestInjuryAdjusterOpposingDefenderOut(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	adjusted := adj.AdjustLeg(leg, "BUF")
	require.NotNil(t, adjusted)
	assert.InDelta(t, 0.525, *adjusted, 1e-9)
	assert.Equal(t, []string{
		"Opponent missing key defender Star Corner (CB)",
		"Injury multiplier applied: 1.05",
	}, leg.Notes)
}

func TestInjuryAdjusterTeammateOut(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "KC", Name: "Top Receiver", Position: "WR", Status: "Out"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	adjusted := adj.AdjustLeg(leg, "KC")
	require.NotNil(t, adjusted)
	assert.InDelta(t, 0.475, *adjusted, 1e-9)
	assert.Equal(t, []string{
		"Patrick Mahomes's teammate Top Receiver (WR) is out",
		"Injury multiplier applied: 0.95",
	}, leg.Notes)
}

func TestInjuryAdjusterStepsAccumulate(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "BUF", Name: "Corner One", Position: "CB", Status: "Out"},
		{Team: "BUF", Name: "Edge Rusher", Position: "EDGE", Status: "Doubtful"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	adjusted := adj.AdjustLeg(leg, "BUF")
	require.NotNil(t, adjusted)
	assert.InDelta(t, 0.55, *adjusted, 1e-9)
	assert.Len(t, leg.Notes, 3)
	assert.Equal(t, "Injury multiplier applied: 1.10", leg.Notes[2])
}

func TestInjuryAdjusterIgnoresQuestionable(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Questionable"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	assert.Nil(t, adj.AdjustLeg(leg, "BUF"))
	assert.Empty(t, leg.Notes)
}

func TestInjuryAdjusterIgnoresOtherTeams(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "DAL", Name: "Star Corner", Position: "CB", Status: "Out"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	assert.Nil(t, adj.AdjustLeg(leg, "BUF"))
}

func TestInjuryAdjusterNoBaseline(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.5)
	leg.BaselineProbability = nil
	assert.Nil(t, adj.AdjustLeg(leg, "BUF"))
	assert.Empty(t, leg.Notes)
}

func TestInjuryAdjusterClampsResult(t *testing.T) {
	injuries := []datasource.InjuryRecord{
		{Team: "BUF", Name: "Star Corner", Position: "CB", Status: "Out"},
	}
	adj := NewInjuryAdjuster(injuries, testLogger())

	leg := propLeg(0.97)
	adjusted := adj.AdjustLeg(leg, "BUF")
	require.NotNil(t, adjusted)
	assert.Equal(t, 0.99, *adjusted)
}
