package forecast

import (
	"context"
	"fmt"
	"sort"
	"time"

	"climatelens/domain/weather"

	"gonum.org/v1/gonum/stat"
)

// Seasonal is a deterministic in-process forecaster: a least-squares linear
// trend plus a calendar-month seasonal component fitted on the residuals.
// It stands in for the external forecasting service when none is configured
// and gives tests a predictable substitute.
type Seasonal struct{}

// NewSeasonal creates the in-process forecaster.
func NewSeasonal() *Seasonal {
	return &Seasonal{}
}

// Forecast fits trend and seasonality on the input and returns fitted values
// over the input dates followed by a daily continuation of horizonDays. At
// least two distinct dates are required.
func (f *Seasonal) Forecast(ctx context.Context, series []weather.TimePoint, horizonDays int) ([]weather.TimePoint, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("forecast horizon must be positive, got %d", horizonDays)
	}

	points := make([]weather.TimePoint, len(series))
	copy(points, series)
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	if distinctDates(points) < 2 {
		return nil, fmt.Errorf("forecast input needs at least 2 distinct dates, got %d", distinctDates(points))
	}

	origin := points[0].Date
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date.Sub(origin).Hours() / 24
		ys[i] = p.Value
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	// Seasonal component: mean residual per calendar month.
	var (
		monthSum   [13]float64
		monthCount [13]int
	)
	for i, p := range points {
		residual := ys[i] - (alpha + beta*xs[i])
		m := int(p.Date.Month())
		monthSum[m] += residual
		monthCount[m]++
	}
	seasonal := func(t time.Time) float64 {
		m := int(t.Month())
		if monthCount[m] == 0 {
			return 0
		}
		return monthSum[m] / float64(monthCount[m])
	}

	predict := func(t time.Time) float64 {
		x := t.Sub(origin).Hours() / 24
		return alpha + beta*x + seasonal(t)
	}

	out := make([]weather.TimePoint, 0, len(points)+horizonDays)
	for _, p := range points {
		out = append(out, weather.TimePoint{Date: p.Date, Value: predict(p.Date)})
	}
	last := points[len(points)-1].Date
	for day := 1; day <= horizonDays; day++ {
		t := last.AddDate(0, 0, day)
		out = append(out, weather.TimePoint{Date: t, Value: predict(t)})
	}
	return out, nil
}

func distinctDates(points []weather.TimePoint) int {
	seen := make(map[time.Time]struct{}, len(points))
	for _, p := range points {
		seen[p.Date] = struct{}{}
	}
	return len(seen)
}
