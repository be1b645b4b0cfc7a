package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "PARLAY_ADVISOR"

// Load reads and parses the configuration from file and environment variables.
// ${VAR_NAME} placeholders in the YAML file are expanded before parsing.
// A missing file is not an error; defaults and environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "parlay-advisor")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("odds_api.sport_key", "americanfootball_nfl")
	v.SetDefault("odds_api.region", "us")
	v.SetDefault("odds_api.markets", "player_props")

	v.SetDefault("sportsdata.lookback_years", 5)

	v.SetDefault("llm.model", "gemini-1.5-flash")

	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.rate_limit", 5.0)

	v.SetDefault("advisor.ev_weight", 0.5)
	v.SetDefault("advisor.injury_weight", 0.2)
	v.SetDefault("advisor.history_weight", 0.15)
	v.SetDefault("advisor.market_weight", 0.15)
	v.SetDefault("advisor.cache_ttl_seconds", 300)
	v.SetDefault("advisor.cache_max_size", 16)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("features.live_data_enabled", true)
	v.SetDefault("features.narrative_enabled", false)
}
