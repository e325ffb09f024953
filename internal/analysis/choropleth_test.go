package analysis

import (
	"testing"
	"time"

	"climatelens/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choroplethFixture() (map[string]weather.Series, map[string]string) {
	seriesByCity := map[string]weather.Series{
		"Paris": {
			{Date: day(2020, time.January, 1), City: "Paris", TempC: 4},
			{Date: day(2021, time.January, 1), City: "Paris", TempC: 6},
		},
		"Lyon": {
			{Date: day(2020, time.June, 1), City: "Lyon", TempC: 20},
		},
		"Tokyo": {
			{Date: day(2020, time.April, 1), City: "Tokyo", TempC: 14},
		},
		"Atlantis": {
			{Date: day(2020, time.April, 1), City: "Atlantis", TempC: 99},
		},
	}
	isoByCity := map[string]string{
		"Paris": "FRA",
		"Lyon":  "FRA",
		"Tokyo": "JPN",
		// Atlantis has no country mapping and must be skipped.
	}
	return seriesByCity, isoByCity
}

func TestCountryMeansAggregatesAcrossCities(t *testing.T) {
	seriesByCity, isoByCity := choroplethFixture()

	means := CountryMeans(seriesByCity, isoByCity, weather.UnitCelsius)
	require.Len(t, means, 2)

	assert.Equal(t, "FRA", means[0].ISO3)
	assert.InDelta(t, 10.0, means[0].MeanTemp, 1e-9) // mean(4, 6, 20)
	assert.Equal(t, "JPN", means[1].ISO3)
	assert.InDelta(t, 14.0, means[1].MeanTemp, 1e-9)
}

func TestYearlyCountryMeansOrderedByYearThenCountry(t *testing.T) {
	seriesByCity, isoByCity := choroplethFixture()

	frames := YearlyCountryMeans(seriesByCity, isoByCity, weather.UnitCelsius)
	require.Len(t, frames, 3)

	assert.Equal(t, YearlyCountryMean{Year: 2020, ISO3: "FRA", MeanTemp: 12}, frames[0])
	assert.Equal(t, YearlyCountryMean{Year: 2020, ISO3: "JPN", MeanTemp: 14}, frames[1])
	assert.Equal(t, YearlyCountryMean{Year: 2021, ISO3: "FRA", MeanTemp: 6}, frames[2])
}

func TestCountryMeansConvertsUnits(t *testing.T) {
	seriesByCity := map[string]weather.Series{
		"Oslo": {{Date: day(2020, time.January, 1), City: "Oslo", TempC: 0}},
	}
	means := CountryMeans(seriesByCity, map[string]string{"Oslo": "NOR"}, weather.UnitFahrenheit)
	require.Len(t, means, 1)
	assert.InDelta(t, 32.0, means[0].MeanTemp, 1e-9)
}

func TestCountryMeansEmptyDataset(t *testing.T) {
	assert.Empty(t, CountryMeans(nil, nil, weather.UnitCelsius))
	assert.Empty(t, YearlyCountryMeans(nil, nil, weather.UnitCelsius))
}
