package ports

import (
	"context"

	"climatelens/domain/geo"
	"climatelens/domain/weather"
)

// GeoSource supplies the city metadata table, already joined with each
// country's continent.
type GeoSource interface {
	LoadCities(ctx context.Context) ([]geo.City, error)
}

// WeatherSource supplies the cleaned daily temperature table. Rows with
// unparseable dates or non-finite temperatures are dropped by the source,
// not surfaced as errors.
type WeatherSource interface {
	LoadDailyWeather(ctx context.Context) ([]weather.DailyRecord, error)
}
