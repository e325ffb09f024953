package analysis

import (
	"sort"
	"time"

	"climatelens/domain/weather"

	"github.com/montanaflynn/stats"
)

// MonthlyMeans groups a city's daily series into monthly means, one point
// per distinct calendar month present, ordered by month. Observations within
// a month (duplicates included) are averaged with equal weight; absent
// months produce no point.
func MonthlyMeans(series weather.Series, unit weather.Unit) []weather.MonthlyPoint {
	if len(series) == 0 {
		return nil
	}

	byMonth := make(map[time.Time][]float64)
	for _, r := range series {
		month := weather.MonthOf(r.Date)
		byMonth[month] = append(byMonth[month], weather.Convert(r.TempC, unit))
	}

	points := make([]weather.MonthlyPoint, 0, len(byMonth))
	for month, temps := range byMonth {
		mean, err := stats.Mean(temps)
		if err != nil {
			continue // unreachable: every bucket has at least one value
		}
		points = append(points, weather.MonthlyPoint{Month: month, MeanTemp: mean})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})

	return points
}
