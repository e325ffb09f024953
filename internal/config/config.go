package config

import (
	"os"
	"strconv"

	"climatelens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Forecast ForecastConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds data source settings
type DataConfig struct {
	Source        string // "file" or "postgres"
	CitiesFile    string
	CountriesFile string
	WeatherFile   string
	DatabaseURL   string
}

// ForecastConfig holds forecasting settings
type ForecastConfig struct {
	ServiceURL  string // empty means the in-process seasonal model is used
	HorizonDays int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		Data:     loadDataConfig(),
		Forecast: loadForecastConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Source:        getEnvOrDefault("DATA_SOURCE", "file"),
		CitiesFile:    getEnvOrDefault("CITIES_FILE", "data/cities.csv"),
		CountriesFile: getEnvOrDefault("COUNTRIES_FILE", "data/countries.csv"),
		WeatherFile:   getEnvOrDefault("WEATHER_FILE", "data/daily_weather.csv"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}
}

func loadForecastConfig() ForecastConfig {
	return ForecastConfig{
		ServiceURL:  os.Getenv("FORECAST_SERVICE_URL"),
		HorizonDays: getEnvIntOrDefault("FORECAST_HORIZON_DAYS", 365),
	}
}

func validateConfig(config *Config) error {
	switch config.Data.Source {
	case "file":
		if config.Data.CitiesFile == "" || config.Data.CountriesFile == "" || config.Data.WeatherFile == "" {
			return errors.ConfigInvalid("file data source requires CITIES_FILE, COUNTRIES_FILE and WEATHER_FILE")
		}
	case "postgres":
		if config.Data.DatabaseURL == "" {
			return errors.ConfigInvalid("postgres data source requires DATABASE_URL")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be \"file\" or \"postgres\"")
	}

	if config.Forecast.HorizonDays <= 0 {
		return errors.ConfigInvalid("FORECAST_HORIZON_DAYS must be positive")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
