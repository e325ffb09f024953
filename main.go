package main

import (
	"context"
	"log"

	"climatelens/adapters/file"
	"climatelens/adapters/forecast"
	"climatelens/adapters/postgres"
	"climatelens/app"
	"climatelens/internal"
	"climatelens/internal/config"
	"climatelens/internal/dataset"
	"climatelens/ports"
	"climatelens/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(appConfig.Server.GinMode)

	logger := internal.NewDefaultLogger()

	geoSrc, weatherSrc, cleanup, err := buildSources(appConfig)
	if err != nil {
		log.Fatalf("Failed to configure data source: %v", err)
	}
	defer cleanup()

	store, err := dataset.Build(context.Background(), geoSrc, weatherSrc)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	logger.Info("[Main] Dataset %s loaded: %d cities, %d records", store.ID(), store.CityCount(), store.RecordCount())

	forecaster := buildForecaster(appConfig, logger)
	dashboardService := app.NewDashboardService(store, forecaster, appConfig.Forecast.HorizonDays, logger)

	server := ui.NewServer(store, dashboardService, logger)
	if err := server.Run(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// buildSources wires the configured data source: CSV/Excel files or a
// read-only PostgreSQL database.
func buildSources(appConfig *config.Config) (ports.GeoSource, ports.WeatherSource, func(), error) {
	if appConfig.Data.Source == "postgres" {
		db, err := sqlx.Connect("postgres", appConfig.Data.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		src := postgres.NewSource(db)
		return src, src, func() { db.Close() }, nil
	}

	src := file.NewSource(appConfig.Data.CitiesFile, appConfig.Data.CountriesFile, appConfig.Data.WeatherFile)
	return src, src, func() {}, nil
}

// buildForecaster prefers the external forecasting service and falls back to
// the in-process seasonal model.
func buildForecaster(appConfig *config.Config, logger *internal.Logger) ports.Forecaster {
	if appConfig.Forecast.ServiceURL != "" {
		logger.Info("[Main] Using forecast service at %s", appConfig.Forecast.ServiceURL)
		return forecast.NewServiceClient(appConfig.Forecast.ServiceURL)
	}
	logger.Info("[Main] No forecast service configured, using in-process seasonal model")
	return forecast.NewSeasonal()
}
