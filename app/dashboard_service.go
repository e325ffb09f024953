package app

import (
	"context"
	"time"

	"climatelens/domain/weather"
	"climatelens/internal"
	"climatelens/internal/analysis"
	"climatelens/internal/dataset"
	"climatelens/internal/errors"
	"climatelens/ports"
)

// Selection is one dashboard filter state: a continent, a city belonging to
// it, and a display unit.
type Selection struct {
	Continent string
	City      string
	Unit      weather.Unit
}

// ForecastResult is the delegated forecast attached to a snapshot.
// Unavailable is a degraded, non-fatal state (degenerate input or adapter
// failure), never an error.
type ForecastResult struct {
	Points      []weather.TimePoint `json:"points,omitempty"`
	HorizonDays int                 `json:"horizon_days"`
	Unavailable bool                `json:"unavailable"`
	Reason      string              `json:"reason,omitempty"`
}

// Snapshot is everything the presentation layer needs for one selection.
// All derived values are recomputed from the immutable store on every call.
type Snapshot struct {
	Selection Selection              `json:"-"`
	Continent string                 `json:"continent"`
	City      string                 `json:"city"`
	Unit      weather.Unit           `json:"unit"`
	Summary   analysis.Summary       `json:"summary"`
	Trend     string                 `json:"trend,omitempty"`
	Monthly   []weather.RollingPoint `json:"monthly"`
	Anomalies analysis.AnomalyReport `json:"anomalies"`
	Extremes  analysis.ExtremeReport `json:"extremes"`
	Forecast  ForecastResult         `json:"forecast"`
}

// DashboardService recomputes all derived entities for a selection. It holds
// only immutable collaborators and is safe for concurrent use.
type DashboardService struct {
	store      *dataset.Store
	forecaster ports.Forecaster
	horizon    int
	logger     *internal.Logger
}

// NewDashboardService creates the dashboard orchestration service.
func NewDashboardService(store *dataset.Store, forecaster ports.Forecaster, horizonDays int, logger *internal.Logger) *DashboardService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DashboardService{
		store:      store,
		forecaster: forecaster,
		horizon:    horizonDays,
		logger:     logger,
	}
}

// Snapshot validates the selection and runs the full pipeline: unit
// conversion, summary statistics, monthly aggregation with anomaly
// detection, extreme-event classification, trend direction and the delegated
// forecast. A city with no data degrades to empty outputs.
func (s *DashboardService) Snapshot(ctx context.Context, sel Selection) (*Snapshot, error) {
	if err := s.validate(sel); err != nil {
		return nil, err
	}

	series := s.store.Series(sel.City)
	temps := series.Temperatures(sel.Unit)

	monthly := analysis.MonthlyMeans(series, sel.Unit)
	anomalies := analysis.DetectAnomalies(monthly)

	snap := &Snapshot{
		Selection: sel,
		Continent: sel.Continent,
		City:      sel.City,
		Unit:      sel.Unit,
		Summary:   analysis.Summarize(temps),
		Trend:     analysis.TrendDirection(temps),
		Monthly:   anomalies.Points,
		Anomalies: anomalies,
		Extremes:  analysis.ClassifyExtremes(temps),
		Forecast:  s.forecast(ctx, series, sel.Unit),
	}
	return snap, nil
}

// ForecastSeries runs just the delegated forecast for a city.
func (s *DashboardService) ForecastSeries(ctx context.Context, city string, unit weather.Unit) (ForecastResult, error) {
	if _, ok := s.store.City(city); !ok {
		return ForecastResult{}, errors.NotFound("city " + city)
	}
	return s.forecast(ctx, s.store.Series(city), unit), nil
}

// CountryMeans aggregates the whole dataset into per-country means for the
// world choropleth.
func (s *DashboardService) CountryMeans(unit weather.Unit) []analysis.CountryMean {
	return analysis.CountryMeans(s.store.SeriesByCity(), s.store.ISOByCity(), unit)
}

// YearlyCountryMeans aggregates the whole dataset into per-(year, country)
// means for the animated choropleth.
func (s *DashboardService) YearlyCountryMeans(unit weather.Unit) []analysis.YearlyCountryMean {
	return analysis.YearlyCountryMeans(s.store.SeriesByCity(), s.store.ISOByCity(), unit)
}

func (s *DashboardService) validate(sel Selection) error {
	if sel.City == "" {
		return errors.InvalidInput("city is required")
	}
	city, ok := s.store.City(sel.City)
	if !ok {
		return errors.NotFound("city " + sel.City)
	}
	if sel.Continent != "" && city.Continent != sel.Continent {
		return errors.InvalidInput("city " + sel.City + " does not belong to continent " + sel.Continent)
	}
	switch sel.Unit {
	case weather.UnitCelsius, weather.UnitFahrenheit:
	default:
		return errors.InvalidInput("unit must be celsius or fahrenheit")
	}
	return nil
}

// forecast guards the external forecaster: degenerate input is skipped and
// adapter errors are surfaced as an unavailable state, never propagated.
func (s *DashboardService) forecast(ctx context.Context, series weather.Series, unit weather.Unit) ForecastResult {
	result := ForecastResult{HorizonDays: s.horizon}

	if s.forecaster == nil {
		result.Unavailable = true
		result.Reason = "no forecaster configured"
		return result
	}
	if series.DistinctDates() < 2 {
		result.Unavailable = true
		result.Reason = "insufficient history for forecasting"
		return result
	}

	input := make([]weather.TimePoint, len(series))
	for i, r := range series {
		input[i] = weather.TimePoint{Date: r.Date, Value: weather.Convert(r.TempC, unit)}
	}

	start := time.Now()
	points, err := s.forecaster.Forecast(ctx, input, s.horizon)
	if err != nil {
		s.logger.Warn("[Dashboard] Forecast unavailable: %v", err)
		result.Unavailable = true
		result.Reason = "forecast unavailable"
		return result
	}

	s.logger.Debug("[Dashboard] Forecast of %d points computed in %s", len(points), time.Since(start))
	result.Points = points
	return result
}
