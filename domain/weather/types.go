package weather

import (
	"fmt"
	"strings"
	"time"
)

// Unit is a display temperature unit.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit parses a unit string from a selection input.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "celsius", "c":
		return UnitCelsius, nil
	case "fahrenheit", "f":
		return UnitFahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// DailyRecord is one cleaned daily observation. Temperature is always stored
// in Celsius; conversion happens once, at the start of each computation.
type DailyRecord struct {
	Date  time.Time `json:"date" db:"date"`
	City  string    `json:"city" db:"city_name"`
	TempC float64   `json:"temperature_celsius" db:"avg_temp_c"`
}

// Series is a city-scoped sequence of daily records ordered by
// non-decreasing date. Duplicate dates are permitted and are averaged
// together by the monthly aggregator.
type Series []DailyRecord

// Temperatures returns the series values converted to the requested unit,
// in series order.
func (s Series) Temperatures(unit Unit) []float64 {
	temps := make([]float64, len(s))
	for i, r := range s {
		temps[i] = Convert(r.TempC, unit)
	}
	return temps
}

// DistinctDates counts the distinct observation dates in the series.
func (s Series) DistinctDates() int {
	seen := make(map[time.Time]struct{}, len(s))
	for _, r := range s {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}

// MonthOf truncates a date to the first of its calendar month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyPoint is the mean temperature of one calendar month present in a
// series. Months with no observations produce no point.
type MonthlyPoint struct {
	Month    time.Time `json:"month"`
	MeanTemp float64   `json:"mean_temperature"`
}

// RollingPoint extends a MonthlyPoint with its trailing rolling-mean
// baseline. RollingMean and Deviation are nil for the first 11 points of a
// series (insufficient window).
type RollingPoint struct {
	MonthlyPoint
	RollingMean *float64 `json:"rolling_mean,omitempty"`
	Deviation   *float64 `json:"deviation,omitempty"`
	Anomaly     bool     `json:"anomaly"`
}

// TimePoint is one (date, value) pair of a forecast input or output series.
type TimePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ExtremeKind classifies a day against the percentile thresholds.
type ExtremeKind string

const (
	ExtremeNone     ExtremeKind = "normal"
	ExtremeHeatwave ExtremeKind = "heatwave"
	ExtremeColdwave ExtremeKind = "coldwave"
)
