package analysis

import (
	"math"
	"testing"
	"time"

	"climatelens/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlySeq(values ...float64) []weather.MonthlyPoint {
	points := make([]weather.MonthlyPoint, len(values))
	month := time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		points[i] = weather.MonthlyPoint{Month: month.AddDate(0, i, 0), MeanTemp: v}
	}
	return points
}

func TestDetectAnomaliesShortHistoryYieldsNone(t *testing.T) {
	report := DetectAnomalies(monthlySeq(10, 11, 12, 13, 14))
	assert.Zero(t, report.AnomalyCount)
	assert.Empty(t, report.Anomalies())
	for _, p := range report.Points {
		assert.Nil(t, p.RollingMean)
		assert.Nil(t, p.Deviation)
	}
}

func TestDetectAnomaliesBaselineUndefinedForFirstEleven(t *testing.T) {
	values := make([]float64, 15)
	for i := range values {
		values[i] = 10
	}
	report := DetectAnomalies(monthlySeq(values...))
	for i, p := range report.Points {
		if i < RollingWindow-1 {
			assert.Nil(t, p.RollingMean, "index %d", i)
		} else {
			require.NotNil(t, p.RollingMean, "index %d", i)
			assert.InDelta(t, 10.0, *p.RollingMean, 1e-9)
		}
	}
}

// A single defined deviation gives a zero sample spread, so the threshold
// degrades to 0 and any nonzero deviation is flagged.
func TestDetectAnomaliesZeroVarianceThresholdFlagsSpike(t *testing.T) {
	values := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 100}
	report := DetectAnomalies(monthlySeq(values...))

	last := report.Points[len(report.Points)-1]
	require.NotNil(t, last.RollingMean)
	assert.InDelta(t, 17.5, *last.RollingMean, 1e-9)
	assert.InDelta(t, 82.5, *last.Deviation, 1e-9)
	assert.Zero(t, report.Threshold)
	assert.True(t, last.Anomaly)
	assert.Equal(t, 1, report.AnomalyCount)
}

// With 13 points the window is defined at the last two indexes, so the
// spike's own deviation inflates the sample spread above itself and the
// strict comparison leaves it unflagged.
func TestDetectAnomaliesThirteenPointWindowSemantics(t *testing.T) {
	values := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 100}
	report := DetectAnomalies(monthlySeq(values...))

	require.NotNil(t, report.Points[11].Deviation)
	assert.InDelta(t, 0.0, *report.Points[11].Deviation, 1e-9)

	last := report.Points[12]
	require.NotNil(t, last.RollingMean)
	assert.InDelta(t, 17.5, *last.RollingMean, 1e-9)
	assert.InDelta(t, 82.5, *last.Deviation, 1e-9)

	// 2 x sample std of {0, 82.5} = 82.5 * 2 / sqrt(2)
	assert.InDelta(t, 82.5*math.Sqrt2, report.Threshold, 1e-6)
	assert.Zero(t, report.AnomalyCount)
}

func TestDetectAnomaliesAlternatingSeriesStaysQuiet(t *testing.T) {
	values := make([]float64, 24)
	for i := range values {
		if i%2 == 0 {
			values[i] = 10
		} else {
			values[i] = 12
		}
	}
	report := DetectAnomalies(monthlySeq(values...))

	for i := RollingWindow - 1; i < len(report.Points); i++ {
		require.NotNil(t, report.Points[i].RollingMean)
		assert.InDelta(t, 11.0, *report.Points[i].RollingMean, 1e-9)
		assert.LessOrEqual(t, math.Abs(*report.Points[i].Deviation), 1.0+1e-9)
	}
	assert.Greater(t, report.Threshold, 1.0)
	assert.Zero(t, report.AnomalyCount)
}

func TestDetectAnomaliesEmptyInput(t *testing.T) {
	report := DetectAnomalies(nil)
	assert.Empty(t, report.Points)
	assert.Zero(t, report.AnomalyCount)
	assert.Zero(t, report.Threshold)
}

func TestDetectAnomaliesIdempotent(t *testing.T) {
	values := []float64{10, 12, 9, 14, 11, 10, 13, 12, 10, 11, 9, 15, 30, 10, 11}
	first := DetectAnomalies(monthlySeq(values...))
	second := DetectAnomalies(monthlySeq(values...))
	assert.Equal(t, first, second)
}
