// Package datasource provides clients for the external data feeds the advisor
// draws on: player directories, injury reports, historical results, and
// bookmaker odds. All providers are fault-isolated at the orchestrator
// boundary; a failing feed degrades the evaluation instead of aborting it.
package datasource

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// PlayerDirectoryProvider lists the active player directory.
type PlayerDirectoryProvider interface {
	// ListPlayers retrieves the full player directory.
	ListPlayers(ctx context.Context) ([]PlayerRecord, error)
}

// InjuryProvider lists current injury reports.
type InjuryProvider interface {
	// ListInjuries retrieves injury reports for a season. A zero season means
	// the provider's configured or current season.
	ListInjuries(ctx context.Context, season int) ([]InjuryRecord, error)
}

// HeadToHeadProvider reports historical results between two teams.
type HeadToHeadProvider interface {
	// HeadToHead returns win counts keyed by team name for the pair.
	HeadToHead(ctx context.Context, teamA, teamB string) (map[string]int, error)
}

// MarketPriceProvider finds the best available bookmaker price for a player
// proposition.
type MarketPriceProvider interface {
	// BestPlayerPropPrice scans available markets for the best American price
	// on the named player. A "" market matches any market. Returns nil when no
	// offer matches.
	BestPlayerPropPrice(ctx context.Context, playerName, market string) (*MarketPrice, error)
}

// PlayerRecord is a normalized player directory entry.
type PlayerRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	Position string `json:"position"`
}

// InjuryRecord is a normalized injury report entry.
type InjuryRecord struct {
	Team     string `json:"team"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

// MarketPrice is the best offer found for a player proposition. Point carries
// the prop line (e.g. 250.5 passing yards) when the market has one; decimal
// avoids float drift on half-point lines.
type MarketPrice struct {
	EventID   string           `json:"event_id"`
	Bookmaker string           `json:"bookmaker"`
	Market    string           `json:"market"`
	Price     int              `json:"price"`
	Point     *decimal.Decimal `json:"point,omitempty"`
	Outcome   string           `json:"outcome"`
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e DataSourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

var (
	// ErrFeedDisabled reports a provider that is configured off; callers treat
	// it like any other unavailable feed.
	ErrFeedDisabled = errors.New("data source disabled")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
