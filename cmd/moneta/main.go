// Command moneta runs the forecasting engine against a JSON data snapshot
// and prints the projection, simulation stats, and dashboard summary as
// JSON. It is a developer tool; the engine itself is consumed as a library.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"moneta/internal/common"
	"moneta/internal/interfaces"
	"moneta/internal/models"
	"moneta/internal/services/dashboard"
	"moneta/internal/services/forecast"
	"moneta/internal/services/wishlist"
	"moneta/internal/storage/memory"
)

type output struct {
	User       string                   `json:"user"`
	Projection []models.MonthProjection `json:"projection"`
	Stats      *models.SimulationStats  `json:"stats"`
	Dashboard  *models.DashboardSummary `json:"dashboard"`
	Purchase   *models.PurchaseResult   `json:"purchase,omitempty"`
}

func main() {
	configPath := flag.String("config", os.Getenv("MONETA_CONFIG"), "path to TOML config file")
	userID := flag.String("user", "default", "user to run the engine for")
	months := flag.Int("months", 0, "projection horizon in months (0 = config default)")
	snapshotPath := flag.String("data", "", "path to JSON data snapshot (overrides config)")
	purchaseWish := flag.String("purchase", "", "wish ID to purchase before summarizing")
	purchaseAmount := flag.String("amount", "", "amount override for -purchase (e.g. 49.99)")
	flag.Parse()

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(config.Logging.Level)
	common.PrintBanner(config, logger)

	path := config.Data.SnapshotPath
	if *snapshotPath != "" {
		path = *snapshotPath
	}

	store, err := memory.LoadSnapshot(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("Failed to load data snapshot")
	}

	horizon := config.Forecast.HorizonMonths
	if *months > 0 {
		horizon = *months
	}

	forecastSvc := forecast.NewService(store, logger)
	dashboardSvc := dashboard.NewService(store, logger, config.Dashboard.RecentPerType)
	wishSvc := wishlist.NewService(store, logger)

	ctx := context.Background()
	out := output{User: *userID}

	if *purchaseWish != "" {
		var opts interfaces.PurchaseOptions
		if *purchaseAmount != "" {
			amount, err := models.ParseCents(*purchaseAmount)
			if err != nil {
				logger.Fatal().Err(err).Str("amount", *purchaseAmount).Msg("Invalid purchase amount")
			}
			opts.AmountOverride = &amount
		}
		result, err := wishSvc.Purchase(ctx, *purchaseWish, *userID, opts)
		if err != nil {
			logger.Fatal().Err(err).Str("wish_id", *purchaseWish).Msg("Wish purchase failed")
		}
		out.Purchase = result
	}

	out.Projection, err = forecastSvc.Project(ctx, *userID, horizon)
	if err != nil {
		logger.Fatal().Err(err).Msg("Projection failed")
	}

	out.Stats, err = forecastSvc.Stats(ctx, *userID)
	if err != nil {
		logger.Fatal().Err(err).Msg("Stats failed")
	}

	out.Dashboard, err = dashboardSvc.Summary(ctx, *userID)
	if err != nil {
		logger.Fatal().Err(err).Msg("Dashboard summary failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatal().Err(err).Msg("Failed to encode output")
	}
}
