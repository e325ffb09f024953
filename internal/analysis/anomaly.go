package analysis

import (
	"math"

	"climatelens/domain/weather"

	"github.com/montanaflynn/stats"
)

// RollingWindow is the trailing window length, in months, used as the local
// baseline for anomaly detection.
const RollingWindow = 12

// AnomalyReport carries the rolling-mean sequence and the threshold that
// separated anomalies from ordinary deviations.
type AnomalyReport struct {
	Points       []weather.RollingPoint `json:"points"`
	Threshold    float64                `json:"threshold"`
	AnomalyCount int                    `json:"anomaly_count"`
}

// Anomalies returns only the flagged points.
func (r AnomalyReport) Anomalies() []weather.RollingPoint {
	var out []weather.RollingPoint
	for _, p := range r.Points {
		if p.Anomaly {
			out = append(out, p)
		}
	}
	return out
}

// DetectAnomalies computes a trailing 12-month rolling mean over the monthly
// series (window includes the current point) and flags months whose
// deviation from that baseline exceeds twice the sample standard deviation
// of all defined deviations. Comparisons are strict. Fewer than 12 months of
// history yields zero anomalies; with a single defined deviation the
// threshold is 0, so any nonzero deviation is flagged.
func DetectAnomalies(points []weather.MonthlyPoint) AnomalyReport {
	report := AnomalyReport{Points: make([]weather.RollingPoint, len(points))}

	var deviations []float64
	for i, p := range points {
		report.Points[i] = weather.RollingPoint{MonthlyPoint: p}
		if i < RollingWindow-1 {
			continue
		}

		window := make([]float64, RollingWindow)
		for j := 0; j < RollingWindow; j++ {
			window[j] = points[i-RollingWindow+1+j].MeanTemp
		}
		rolling, err := stats.Mean(window)
		if err != nil {
			continue
		}

		deviation := p.MeanTemp - rolling
		report.Points[i].RollingMean = &rolling
		report.Points[i].Deviation = &deviation
		deviations = append(deviations, deviation)
	}

	report.Threshold = deviationThreshold(deviations)
	for i := range report.Points {
		d := report.Points[i].Deviation
		if d != nil && math.Abs(*d) > report.Threshold {
			report.Points[i].Anomaly = true
			report.AnomalyCount++
		}
	}

	return report
}

// deviationThreshold is 2x the sample standard deviation of the defined
// deviations. The sample deviation is undefined below two values; the
// threshold degrades to 0 there so a lone nonzero deviation still flags.
func deviationThreshold(deviations []float64) float64 {
	if len(deviations) < 2 {
		return 0
	}
	sd, err := stats.StandardDeviationSample(deviations)
	if err != nil {
		return 0
	}
	return 2 * sd
}
