// Package config provides configuration management for the parlay advisor.
// All configuration is an explicit, passed-in object; core logic never reads
// the process environment directly.
package config

import "time"

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	OddsAPI    OddsAPIConfig    `mapstructure:"odds_api" validate:"required"`
	SportsData SportsDataConfig `mapstructure:"sportsdata" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"`
	HTTP       HTTPConfig       `mapstructure:"http" validate:"required"`
	Advisor    AdvisorConfig    `mapstructure:"advisor" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
	Features   FeaturesConfig   `mapstructure:"features"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// OddsAPIConfig configures The Odds API feed.
type OddsAPIConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey   string `mapstructure:"api_key"`
	SportKey string `mapstructure:"sport_key" validate:"required"`
	Region   string `mapstructure:"region" validate:"required"`
	Markets  string `mapstructure:"markets" validate:"required"`
}

// SportsDataConfig configures the SportsDataIO feed.
type SportsDataConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey        string `mapstructure:"api_key"`
	Season        int    `mapstructure:"season" validate:"omitempty,min=2000,max=2100"`
	LookbackYears int    `mapstructure:"lookback_years" validate:"required,min=1,max=20"`
}

// LLMConfig configures the narrative advisor's text-generation backend.
type LLMConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// HTTPConfig tunes the shared outbound HTTP client.
type HTTPConfig struct {
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"required,gt=0"`
}

// AdvisorConfig tunes scoring and the orchestrator's caches.
type AdvisorConfig struct {
	EVWeight           float64 `mapstructure:"ev_weight" validate:"required,gt=0,lte=1"`
	InjuryWeight       float64 `mapstructure:"injury_weight" validate:"required,gt=0,lte=1"`
	HistoryWeight      float64 `mapstructure:"history_weight" validate:"required,gt=0,lte=1"`
	MarketWeight       float64 `mapstructure:"market_weight" validate:"required,gt=0,lte=1"`
	CacheTTLSeconds    int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheMaxSize       int     `mapstructure:"cache_max_size" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// FeaturesConfig represents feature flags
type FeaturesConfig struct {
	LiveDataEnabled  bool `mapstructure:"live_data_enabled"`
	NarrativeEnabled bool `mapstructure:"narrative_enabled"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// HTTPTimeout returns the outbound request timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// CacheTTL returns the head-to-head memo TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Advisor.CacheTTLSeconds) * time.Second
}
