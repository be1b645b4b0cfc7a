package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const oddsAPISource = "odds_api"

// OddsAPIClient fetches bookmaker odds from The Odds API. Implements
// MarketPriceProvider.
type OddsAPIClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	sportKey   string
	region     string
	markets    string
	enabled    bool
	logger     *logrus.Logger
}

// OddsEvent is one event with bookmaker odds attached.
type OddsEvent struct {
	ID         string          `json:"id"`
	HomeTeam   string          `json:"home_team"`
	AwayTeam   string          `json:"away_team"`
	Bookmakers []OddsBookmaker `json:"bookmakers"`
}

// OddsBookmaker is one bookmaker's markets for an event.
type OddsBookmaker struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Markets []OddsMarket `json:"markets"`
}

// OddsMarket is one market (e.g. player_pass_yds) at a bookmaker.
type OddsMarket struct {
	Key      string        `json:"key"`
	Outcomes []OddsOutcome `json:"outcomes"`
}

// OddsOutcome is one priced outcome within a market. Description carries the
// player name on player prop markets.
type OddsOutcome struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       int              `json:"price"`
	Point       *decimal.Decimal `json:"point"`
}

// NewOddsAPIClient creates a new Odds API client.
func NewOddsAPIClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey, sportKey, region, markets string, enabled bool, logger *logrus.Logger) *OddsAPIClient {
	if baseURL == "" {
		baseURL = "https://api.the-odds-api.com/v4"
	}
	return &OddsAPIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		sportKey:   sportKey,
		region:     region,
		markets:    markets,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchOdds retrieves current odds for every upcoming event in the configured
// sport, region, and markets.
func (c *OddsAPIClient) FetchOdds(ctx context.Context) ([]OddsEvent, error) {
	if !c.enabled {
		return nil, NewDataSourceError(oddsAPISource, ErrCodeNetworkError, "data source is disabled", ErrFeedDisabled)
	}

	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("regions", c.region)
	query.Set("markets", c.markets)
	query.Set("oddsFormat", "american")
	endpoint := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, c.sportKey, query.Encode())

	c.logger.WithFields(logrus.Fields{
		"source": oddsAPISource,
		"sport":  c.sportKey,
	}).Debug("Fetching bookmaker odds")

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return nil, NewDataSourceError(oddsAPISource, ErrCodeNetworkError, "failed to fetch odds", err)
	}
	defer resp.Body.Close()

	if err := checkFeedStatus(oddsAPISource, resp); err != nil {
		return nil, err
	}

	var events []OddsEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, NewDataSourceError(oddsAPISource, ErrCodeInvalidData, "failed to parse odds response", err)
	}
	return events, nil
}

// BestPlayerPropPrice scans every bookmaker's markets for the highest American
// price on an outcome naming the player. A "" market matches any market key.
func (c *OddsAPIClient) BestPlayerPropPrice(ctx context.Context, playerName, market string) (*MarketPrice, error) {
	events, err := c.FetchOdds(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(playerName)
	var best *MarketPrice
	for _, event := range events {
		for _, bookmaker := range event.Bookmakers {
			for _, m := range bookmaker.Markets {
				if market != "" && m.Key != market {
					continue
				}
				for _, outcome := range m.Outcomes {
					name := outcome.Description
					if name == "" {
						name = outcome.Name
					}
					if name == "" || !strings.Contains(strings.ToLower(name), needle) {
						continue
					}
					if best == nil || outcome.Price > best.Price {
						best = &MarketPrice{
							EventID:   event.ID,
							Bookmaker: bookmaker.Title,
							Market:    m.Key,
							Price:     outcome.Price,
							Point:     outcome.Point,
							Outcome:   name,
						}
					}
				}
			}
		}
	}
	return best, nil
}

// checkFeedStatus maps non-200 responses onto the data source error taxonomy.
func checkFeedStatus(source string, resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return NewDataSourceError(source, ErrCodeAuthenticationFailed, "invalid API key", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewDataSourceError(source, ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	case resp.StatusCode == http.StatusNotFound:
		return NewDataSourceError(source, ErrCodeNotFound, "resource not found", nil)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return NewDataSourceError(source, ErrCodeServerError,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}
}
