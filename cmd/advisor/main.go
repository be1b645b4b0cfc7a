// Package main provides the entry point for the parlay value advisor CLI.
package main

import (
	"context"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/parlay-advisor/internal/advisor"
	"github.com/yourusername/parlay-advisor/internal/config"
	"github.com/yourusername/parlay-advisor/internal/datasource"
	"github.com/yourusername/parlay-advisor/internal/evaluator"
	"github.com/yourusername/parlay-advisor/internal/llm"
	"github.com/yourusername/parlay-advisor/internal/logger"
	"github.com/yourusername/parlay-advisor/internal/metrics"
	"github.com/yourusername/parlay-advisor/internal/scoring"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	parlayFile  string
	stake       float64
	noLiveData  bool
	narrative   bool
	verbose     bool

	cfg    *config.Config
	appLog *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "advisor",
	Short: "Estimate the value of an NFL parlay",
	Long: `Parlay value advisor: converts bookmaker odds into probabilities, adjusts
them with injury and head-to-head signals, and scores the parlay into a
verdict and expected value.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{evaluateCmd, watchCmd} {
		cmd.Flags().StringVarP(&parlayFile, "parlay", "p", "", "Path to a parlay definition JSON file")
		cmd.Flags().Float64Var(&stake, "stake", 0, "Override the stake amount defined in the parlay file")
		cmd.Flags().BoolVar(&noLiveData, "disable-live-data", false, "Skip API calls and rely only on the parlay file")
		cmd.Flags().BoolVar(&narrative, "narrative", false, "Generate a narrative analysis on top of the deterministic scores")
		_ = cmd.MarkFlagRequired("parlay")
	}

	rootCmd.AddCommand(evaluateCmd, watchCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("advisor %s (%s, built %s)\n", Version, GitCommit, BuildDate)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// setup loads configuration, overlays secrets, and prepares logging.
func setup() error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			log.Fatal("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(context.Background(), cfg, region, secretName); err != nil {
			return err
		}
	}

	if noLiveData {
		cfg.Features.LiveDataEnabled = false
	}
	if narrative {
		cfg.Features.NarrativeEnabled = true
	}
	if verbose {
		cfg.App.LogLevel = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	appLog.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"live_data":   cfg.Features.LiveDataEnabled,
	}).Debug("Parlay advisor configured")

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.Serve(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
				appLog.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	return nil
}

// buildOrchestrator wires the HTTP client, feed providers, advisor, and
// orchestrator from the loaded configuration.
func buildOrchestrator() (*evaluator.Orchestrator, evaluator.Providers) {
	httpCfg := datasource.DefaultHTTPClientConfig()
	httpCfg.Timeout = cfg.HTTPTimeout()
	httpCfg.MaxRetries = cfg.HTTP.MaxRetries
	httpCfg.RateLimit = cfg.HTTP.RateLimit
	httpClient := datasource.NewRateLimitedHTTPClient(httpCfg, appLog)

	oddsClient := datasource.NewOddsAPIClient(
		httpClient,
		cfg.OddsAPI.BaseURL,
		cfg.OddsAPI.APIKey,
		cfg.OddsAPI.SportKey,
		cfg.OddsAPI.Region,
		cfg.OddsAPI.Markets,
		cfg.Features.LiveDataEnabled,
		appLog,
	)
	sportsDataClient := datasource.NewSportsDataClient(
		httpClient,
		cfg.SportsData.BaseURL,
		cfg.SportsData.APIKey,
		cfg.SportsData.Season,
		cfg.SportsData.LookbackYears,
		cfg.Features.LiveDataEnabled,
		appLog,
	)

	weights := scoring.Weights{
		EV:      cfg.Advisor.EVWeight,
		Injury:  cfg.Advisor.InjuryWeight,
		History: cfg.Advisor.HistoryWeight,
		Market:  cfg.Advisor.MarketWeight,
	}
	engine := scoring.NewEngine(weights, appLog)

	var adv advisor.Advisor = advisor.NewHeuristicAdvisor(engine)
	if cfg.Features.NarrativeEnabled {
		llmClient := llm.NewGeminiClient(httpClient, cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model, appLog)
		adv = advisor.NewNarrativeAdvisor(engine, llmClient, appLog)
	}

	providers := evaluator.Providers{
		Players:    sportsDataClient,
		Injuries:   sportsDataClient,
		HeadToHead: sportsDataClient,
		Prices:     oddsClient,
	}

	return evaluator.NewOrchestrator(cfg, providers, adv, appLog), providers
}
