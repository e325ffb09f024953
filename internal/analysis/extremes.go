package analysis

import (
	"math"

	"climatelens/domain/weather"
)

// Percentiles bounding the extreme-event thresholds.
const (
	HeatPercentile = 95
	ColdPercentile = 5
)

// ExtremeReport summarizes extreme-event classification for one series.
// Thresholds are rounded to 2 decimal places for display.
type ExtremeReport struct {
	HeatThreshold float64 `json:"heat_threshold"`
	ColdThreshold float64 `json:"cold_threshold"`
	HeatwaveDays  int     `json:"heatwave_count"`
	ColdwaveDays  int     `json:"coldwave_count"`
}

// ClassifyExtremes computes the 95th/5th percentile thresholds over the
// (already unit-converted) temperatures and counts days strictly above or
// below them. An empty series yields an empty report; when all values are
// identical both thresholds equal that value and the strict comparison flags
// nothing.
func ClassifyExtremes(temps []float64) ExtremeReport {
	heat, ok := percentileLinear(temps, HeatPercentile)
	if !ok {
		return ExtremeReport{}
	}
	cold, _ := percentileLinear(temps, ColdPercentile)

	report := ExtremeReport{
		HeatThreshold: round2(heat),
		ColdThreshold: round2(cold),
	}
	for _, t := range temps {
		switch classifyAgainst(t, heat, cold) {
		case weather.ExtremeHeatwave:
			report.HeatwaveDays++
		case weather.ExtremeColdwave:
			report.ColdwaveDays++
		}
	}
	return report
}

// ClassifyDay tags a single temperature against precomputed thresholds.
func ClassifyDay(temp, heatThreshold, coldThreshold float64) weather.ExtremeKind {
	return classifyAgainst(temp, heatThreshold, coldThreshold)
}

func classifyAgainst(temp, heat, cold float64) weather.ExtremeKind {
	// heat >= cold for any monotonic percentile function, so a day cannot
	// be both.
	if temp > heat {
		return weather.ExtremeHeatwave
	}
	if temp < cold {
		return weather.ExtremeColdwave
	}
	return weather.ExtremeNone
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
