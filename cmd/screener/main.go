package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tomszy91/sanctions-screening/internal/config"
	"github.com/tomszy91/sanctions-screening/internal/report"
	"github.com/tomszy91/sanctions-screening/internal/roster"
	"github.com/tomszy91/sanctions-screening/internal/screening"
	"github.com/tomszy91/sanctions-screening/internal/watchlist"
	"github.com/tomszy91/sanctions-screening/pkg/logger"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (default: config.yaml in . or ./configs)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	zapLogger, err := logger.New(logLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	sugar.Info("Starting sanctions screening")

	cfg, err := config.Load(configPath)
	if err != nil {
		sugar.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := watchlist.NewFetcher(watchlist.FetcherConfig{
		Timeout:    time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.HTTP.MaxRetries,
		RetryDelay: time.Duration(cfg.HTTP.RetryDelaySeconds) * time.Second,
		UserAgent:  "sanctions-screening/1.0",
	}, sugar)

	loader := watchlist.NewLoader(fetcher, sourceSpecs(cfg), cfg.Output.DataDir, sugar)

	entities, err := loader.LoadAll(ctx)
	if err != nil {
		sugar.Fatalw("Failed to load sanctions lists", "error", err)
	}
	if len(entities) == 0 {
		sugar.Fatal("No sanctions data loaded")
	}

	subjects, err := roster.Load(cfg.Input.CompaniesFile, sugar)
	if err != nil {
		sugar.Fatalw("Failed to load companies", "error", err)
	}

	algorithm, known := screening.ParseAlgorithm(cfg.Matching.Algorithm)
	if !known {
		// Unreachable after config validation; the engine would fall back
		// to ratio anyway.
		sugar.Warnw("Unknown matching algorithm, using ratio", "algorithm", cfg.Matching.Algorithm)
	}

	matcher := screening.NewMatcher(screening.Config{
		Threshold: cfg.Matching.Threshold,
		Algorithm: algorithm,
		Workers:   cfg.Matching.Workers,
	}, sugar)

	index := screening.NewWatchlistIndex(entities)

	results, stats, err := matcher.Screen(ctx, subjects, index)
	if err != nil {
		sugar.Fatalw("Screening aborted", "error", err)
	}

	reportPath, err := report.WriteCSV(results, cfg.Output.ReportDir, time.Now())
	if err != nil {
		sugar.Fatalw("Failed to write report", "error", err)
	}
	sugar.Infow("Results saved", "path", reportPath)

	report.WriteSummary(os.Stdout, stats, results)

	sugar.Info("Sanctions screening completed")
}

func sourceSpecs(cfg *config.Config) []watchlist.SourceSpec {
	return []watchlist.SourceSpec{
		{
			Name:    "un_consolidated",
			Source:  watchlist.SourceUN,
			URL:     cfg.Sources.UNConsolidated.URL,
			Enabled: cfg.Sources.UNConsolidated.Enabled,
		},
		{
			Name:    "eu_consolidated",
			Source:  watchlist.SourceEU,
			URL:     cfg.Sources.EUConsolidated.URL,
			Enabled: cfg.Sources.EUConsolidated.Enabled,
		},
		{
			Name:    "ofac_sdn",
			Source:  watchlist.SourceOFAC,
			URL:     cfg.Sources.OFACSDN.URL,
			Enabled: cfg.Sources.OFACSDN.Enabled,
		},
	}
}
