package postgres

import (
	"context"
	"fmt"

	"climatelens/domain/geo"
	"climatelens/domain/weather"

	"github.com/jmoiron/sqlx"
)

// Source reads the city and daily-weather tables from PostgreSQL. It is a
// read-only alternative to the file source; nothing is ever written back.
type Source struct {
	db *sqlx.DB
}

// NewSource creates a PostgreSQL-backed data source.
func NewSource(db *sqlx.DB) *Source {
	return &Source{db: db}
}

// LoadCities retrieves the city table joined with each country's continent.
func (s *Source) LoadCities(ctx context.Context) ([]geo.City, error) {
	query := `SELECT
		c.city_name,
		COALESCE(c.latitude, 0) AS latitude,
		COALESCE(c.longitude, 0) AS longitude,
		COALESCE(c.iso3, '') AS iso3,
		COALESCE(co.continent, '') AS continent
	FROM cities c
	LEFT JOIN countries co ON co.iso3 = c.iso3
	WHERE c.city_name IS NOT NULL AND c.city_name <> ''`

	var cities []geo.City
	if err := s.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("failed to load cities: %w", err)
	}
	return cities, nil
}

// LoadDailyWeather retrieves the cleaned daily temperature rows. Rows with
// missing dates or temperatures are filtered in the query, matching the
// coercion the file source performs.
func (s *Source) LoadDailyWeather(ctx context.Context) ([]weather.DailyRecord, error) {
	query := `SELECT date, city_name, avg_temp_c
	FROM daily_weather
	WHERE date IS NOT NULL
	  AND avg_temp_c IS NOT NULL
	  AND city_name IS NOT NULL AND city_name <> ''
	ORDER BY date`

	var records []weather.DailyRecord
	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to load daily weather: %w", err)
	}
	return records, nil
}
