package analysis

import (
	"testing"
	"time"

	"climatelens/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(y int, m time.Month, d int, temp float64) weather.DailyRecord {
	return weather.DailyRecord{Date: day(y, m, d), City: "X", TempC: temp}
}

func TestMonthlyMeansGroupsByCalendarMonth(t *testing.T) {
	series := weather.Series{
		record(2020, time.January, 1, 10),
		record(2020, time.January, 15, 20),
		record(2020, time.February, 3, 30),
	}

	points := MonthlyMeans(series, weather.UnitCelsius)
	require.Len(t, points, 2)
	assert.Equal(t, day(2020, time.January, 1), points[0].Month)
	assert.InDelta(t, 15.0, points[0].MeanTemp, 1e-9)
	assert.Equal(t, day(2020, time.February, 1), points[1].Month)
	assert.InDelta(t, 30.0, points[1].MeanTemp, 1e-9)
}

func TestMonthlyMeansOrdersAcrossYears(t *testing.T) {
	series := weather.Series{
		record(2021, time.January, 1, 5),
		record(2020, time.December, 1, 1),
		record(2020, time.January, 1, 3),
	}

	points := MonthlyMeans(series, weather.UnitCelsius)
	require.Len(t, points, 3)
	assert.Equal(t, day(2020, time.January, 1), points[0].Month)
	assert.Equal(t, day(2020, time.December, 1), points[1].Month)
	assert.Equal(t, day(2021, time.January, 1), points[2].Month)
}

func TestMonthlyMeansAveragesDuplicateDatesEqually(t *testing.T) {
	series := weather.Series{
		record(2020, time.March, 10, 10),
		record(2020, time.March, 10, 14),
		record(2020, time.March, 20, 18),
	}

	points := MonthlyMeans(series, weather.UnitCelsius)
	require.Len(t, points, 1)
	assert.InDelta(t, 14.0, points[0].MeanTemp, 1e-9)
}

func TestMonthlyMeansConvertsBeforeAveraging(t *testing.T) {
	series := weather.Series{
		record(2020, time.July, 1, 0),
		record(2020, time.July, 2, 100),
	}

	points := MonthlyMeans(series, weather.UnitFahrenheit)
	require.Len(t, points, 1)
	// mean(32, 212); affine transform makes the order immaterial, but the
	// conversion must happen exactly once.
	assert.InDelta(t, 122.0, points[0].MeanTemp, 1e-9)
}

func TestMonthlyMeansEmptySeries(t *testing.T) {
	assert.Empty(t, MonthlyMeans(nil, weather.UnitCelsius))
}
