package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const sportsDataSource = "sportsdata"

// SportsDataClient fetches NFL reference data from SportsDataIO: the player
// directory, injury reports, and the historical scores used to build
// head-to-head records. Implements PlayerDirectoryProvider, InjuryProvider,
// and HeadToHeadProvider.
type SportsDataClient struct {
	httpClient    *RateLimitedHTTPClient
	baseURL       string
	apiKey        string
	season        int
	lookbackYears int
	enabled       bool
	logger        *logrus.Logger
}

type sportsDataPlayer struct {
	PlayerID int    `json:"PlayerID"`
	Name     string `json:"Name"`
	Team     string `json:"Team"`
	Position string `json:"Position"`
}

type sportsDataInjury struct {
	Team     string `json:"Team"`
	Name     string `json:"Name"`
	Position string `json:"Position"`
	Status   string `json:"Status"`
}

type sportsDataGame struct {
	HomeTeam  string `json:"HomeTeam"`
	AwayTeam  string `json:"AwayTeam"`
	HomeScore int    `json:"HomeScore"`
	AwayScore int    `json:"AwayScore"`
}

// NewSportsDataClient creates a new SportsDataIO client.
func NewSportsDataClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, season, lookbackYears int, enabled bool, logger *logrus.Logger) *SportsDataClient {
	if baseURL == "" {
		baseURL = "https://api.sportsdata.io/v3/nfl"
	}
	if lookbackYears <= 0 {
		lookbackYears = 5
	}
	return &SportsDataClient{
		httpClient:    httpClient,
		baseURL:       baseURL,
		apiKey:        apiKey,
		season:        season,
		lookbackYears: lookbackYears,
		enabled:       enabled,
		logger:        logger,
	}
}

func (c *SportsDataClient) get(ctx context.Context, endpoint string, out interface{}) error {
	if !c.enabled {
		return NewDataSourceError(sportsDataSource, ErrCodeNetworkError, "data source is disabled", ErrFeedDisabled)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return NewDataSourceError(sportsDataSource, ErrCodeNetworkError, "failed to create request", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.WithFields(logrus.Fields{
		"source":   sportsDataSource,
		"endpoint": endpoint,
	}).Debug("Fetching reference data")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return NewDataSourceError(sportsDataSource, ErrCodeNetworkError, "request failed", err)
	}
	defer resp.Body.Close()

	if err := checkFeedStatus(sportsDataSource, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewDataSourceError(sportsDataSource, ErrCodeInvalidData, "failed to parse response", err)
	}
	return nil
}

// resolveSeason picks the explicit season, then the configured one, then the
// current calendar year.
func (c *SportsDataClient) resolveSeason(season int) int {
	if season > 0 {
		return season
	}
	if c.season > 0 {
		return c.season
	}
	return time.Now().Year()
}

// ListPlayers retrieves the full player directory.
func (c *SportsDataClient) ListPlayers(ctx context.Context) ([]PlayerRecord, error) {
	var raw []sportsDataPlayer
	if err := c.get(ctx, "scores/json/Players", &raw); err != nil {
		return nil, err
	}

	players := make([]PlayerRecord, 0, len(raw))
	for _, p := range raw {
		if p.Name == "" || p.Team == "" {
			continue
		}
		players = append(players, PlayerRecord{
			ID:       strconv.Itoa(p.PlayerID),
			Name:     p.Name,
			Team:     p.Team,
			Position: p.Position,
		})
	}
	return players, nil
}

// ListInjuries retrieves injury reports for a season.
func (c *SportsDataClient) ListInjuries(ctx context.Context, season int) ([]InjuryRecord, error) {
	var raw []sportsDataInjury
	endpoint := fmt.Sprintf("scores/json/Injuries/%d", c.resolveSeason(season))
	if err := c.get(ctx, endpoint, &raw); err != nil {
		return nil, err
	}

	injuries := make([]InjuryRecord, 0, len(raw))
	for _, inj := range raw {
		injuries = append(injuries, InjuryRecord(inj))
	}
	return injuries, nil
}

// HeadToHead builds a win-count record for a team pair from the final scores
// of the configured lookback window of seasons.
func (c *SportsDataClient) HeadToHead(ctx context.Context, teamA, teamB string) (map[string]int, error) {
	currentSeason := c.resolveSeason(0)
	record := map[string]int{teamA: 0, teamB: 0}

	for season := currentSeason - c.lookbackYears; season <= currentSeason; season++ {
		var games []sportsDataGame
		endpoint := fmt.Sprintf("scores/json/Scores/%d", season)
		if err := c.get(ctx, endpoint, &games); err != nil {
			return nil, err
		}
		for _, game := range games {
			if !isMatchup(game, teamA, teamB) {
				continue
			}
			if game.HomeTeam == teamA {
				if game.HomeScore > game.AwayScore {
					record[teamA]++
				} else {
					record[teamB]++
				}
			} else {
				if game.AwayScore > game.HomeScore {
					record[teamA]++
				} else {
					record[teamB]++
				}
			}
		}
	}
	return record, nil
}

func isMatchup(game sportsDataGame, teamA, teamB string) bool {
	return (game.HomeTeam == teamA && game.AwayTeam == teamB) ||
		(game.HomeTeam == teamB && game.AwayTeam == teamA)
}
