package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fixtureSource(t *testing.T) *Source {
	t.Helper()
	dir := t.TempDir()

	cities := writeFile(t, dir, "cities.csv",
		"city_name,latitude,longitude,iso3\n"+
			"Paris,48.85,2.35,FRA\n"+
			"Tokyo,35.68,139.69,JPN\n"+
			",0,0,XXX\n")
	countries := writeFile(t, dir, "countries.csv",
		"iso3,continent\n"+
			"FRA,Europe\n"+
			"JPN,Asia\n")
	weather := writeFile(t, dir, "daily_weather.csv",
		"date,city_name,avg_temp_c\n"+
			"2020-01-02,Paris,4.5\n"+
			"2020-01-01,Paris,3.0\n"+
			"not-a-date,Paris,5.0\n"+
			"2020-01-01,Paris,not-a-number\n"+
			"2020-01-01,,7.0\n"+
			"2020-01-01,Tokyo,9.25\n")

	return NewSource(cities, countries, weather)
}

func TestLoadCitiesJoinsContinent(t *testing.T) {
	src := fixtureSource(t)

	cities, err := src.LoadCities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 2) // nameless row dropped

	assert.Equal(t, "Paris", cities[0].Name)
	assert.Equal(t, "FRA", cities[0].ISO3)
	assert.Equal(t, "Europe", cities[0].Continent)
	assert.InDelta(t, 48.85, cities[0].Latitude, 1e-9)
	assert.Equal(t, "Asia", cities[1].Continent)
}

func TestLoadDailyWeatherDropsBadRows(t *testing.T) {
	src := fixtureSource(t)

	records, err := src.LoadDailyWeather(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Paris", records[0].City)
	assert.Equal(t, time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC), records[0].Date)
	assert.InDelta(t, 4.5, records[0].TempC, 1e-9)
	assert.Equal(t, "Tokyo", records[2].City)
}

func TestLoadCitiesAcceptsLatLngHeaderVariants(t *testing.T) {
	dir := t.TempDir()
	cities := writeFile(t, dir, "cities.csv",
		"city_name,lat,lng,iso3\nOslo,59.91,10.75,NOR\n")
	countries := writeFile(t, dir, "countries.csv",
		"iso3,continent\nNOR,Europe\n")
	weather := writeFile(t, dir, "daily_weather.csv",
		"date,city_name,avg_temp_c\n2020-01-01,Oslo,-3.5\n")

	src := NewSource(cities, countries, weather)
	got, err := src.LoadCities(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 59.91, got[0].Latitude, 1e-9)
	assert.InDelta(t, 10.75, got[0].Longitude, 1e-9)
}

func TestLoadCitiesUnknownCountryLeavesContinentEmpty(t *testing.T) {
	dir := t.TempDir()
	cities := writeFile(t, dir, "cities.csv",
		"city_name,latitude,longitude,iso3\nAtlantis,0,0,ATL\n")
	countries := writeFile(t, dir, "countries.csv",
		"iso3,continent\nFRA,Europe\n")
	weather := writeFile(t, dir, "daily_weather.csv",
		"date,city_name,avg_temp_c\n2020-01-01,Atlantis,20\n")

	src := NewSource(cities, countries, weather)
	got, err := src.LoadCities(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].HasContinent())
}

func TestMissingFileIsAnError(t *testing.T) {
	src := NewSource("missing.csv", "missing.csv", "missing.csv")
	_, err := src.LoadCities(context.Background())
	assert.Error(t, err)
	_, err = src.LoadDailyWeather(context.Background())
	assert.Error(t, err)
}

func TestMissingColumnsAreErrors(t *testing.T) {
	dir := t.TempDir()
	cities := writeFile(t, dir, "cities.csv", "name\nParis\n")
	countries := writeFile(t, dir, "countries.csv", "iso3,continent\nFRA,Europe\n")
	weather := writeFile(t, dir, "daily_weather.csv", "day,temp\n2020-01-01,4\n")

	src := NewSource(cities, countries, weather)
	_, err := src.LoadCities(context.Background())
	assert.Error(t, err)
	_, err = src.LoadDailyWeather(context.Background())
	assert.Error(t, err)
}
