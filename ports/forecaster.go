package ports

import (
	"context"

	"climatelens/domain/weather"
)

// Forecaster predicts the continuation of a (date, value) series. The model
// is opaque to callers: the output covers the input range plus horizonDays
// of daily continuation, and nothing beyond that contract may be assumed.
// Callers must validate that the input has at least two distinct dates
// before invoking.
type Forecaster interface {
	Forecast(ctx context.Context, series []weather.TimePoint, horizonDays int) ([]weather.TimePoint, error)
}
