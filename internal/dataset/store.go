package dataset

import (
	"context"
	"sort"
	"time"

	"climatelens/domain/core"
	"climatelens/domain/geo"
	"climatelens/domain/weather"
	"climatelens/internal/errors"
	"climatelens/ports"

	"golang.org/x/sync/errgroup"
)

// Store is the immutable process-wide dataset handle. It is built once at
// startup from the geo and weather sources and passed by reference to every
// computation; after Build returns nothing mutates it, so it is safe to
// share across request goroutines without locking.
type Store struct {
	id       core.ID
	loadedAt time.Time

	cityByName        map[string]geo.City
	seriesByCity      map[string]weather.Series
	isoByCity         map[string]string
	continents        []string
	citiesByContinent map[string][]string
	recordCount       int
}

// Build loads both source tables concurrently and assembles the indexes the
// dashboard selections are answered from. Each city's series is sorted by
// non-decreasing date; duplicate dates are kept.
func Build(ctx context.Context, geoSrc ports.GeoSource, weatherSrc ports.WeatherSource) (*Store, error) {
	var (
		cities  []geo.City
		records []weather.DailyRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cities, err = geoSrc.LoadCities(gctx)
		return errors.Wrap(err, "loading city metadata")
	})
	g.Go(func() error {
		var err error
		records, err = weatherSrc.LoadDailyWeather(gctx)
		return errors.Wrap(err, "loading daily weather")
	})
	if err := g.Wait(); err != nil {
		return nil, errors.WithCode(errors.CodeDataSourceError, err)
	}

	s := &Store{
		id:                core.NewID(),
		loadedAt:          time.Now(),
		cityByName:        make(map[string]geo.City, len(cities)),
		seriesByCity:      make(map[string]weather.Series),
		isoByCity:         make(map[string]string, len(cities)),
		citiesByContinent: make(map[string][]string),
		recordCount:       len(records),
	}

	for _, c := range cities {
		s.cityByName[c.Name] = c
		if c.ISO3 != "" {
			s.isoByCity[c.Name] = c.ISO3
		}
		if c.HasContinent() {
			s.citiesByContinent[c.Continent] = append(s.citiesByContinent[c.Continent], c.Name)
		}
	}

	for _, r := range records {
		s.seriesByCity[r.City] = append(s.seriesByCity[r.City], r)
	}
	for city := range s.seriesByCity {
		series := s.seriesByCity[city]
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
	}

	for continent := range s.citiesByContinent {
		sort.Strings(s.citiesByContinent[continent])
		s.continents = append(s.continents, continent)
	}
	sort.Strings(s.continents)

	return s, nil
}

// ID identifies this load of the dataset.
func (s *Store) ID() core.ID {
	return s.id
}

// LoadedAt reports when the dataset was built.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

// Continents lists the continents present in the city table, sorted.
func (s *Store) Continents() []string {
	return s.continents
}

// Cities lists the city names belonging to a continent, sorted. Cities
// without weather data are included; their selections degrade to empty
// outputs downstream.
func (s *Store) Cities(continent string) []string {
	return s.citiesByContinent[continent]
}

// City looks up a city's metadata by name.
func (s *Store) City(name string) (geo.City, bool) {
	c, ok := s.cityByName[name]
	return c, ok
}

// Series returns a city's date-ordered daily series. A city with no weather
// rows yields an empty series. Callers must not mutate the result.
func (s *Store) Series(city string) weather.Series {
	return s.seriesByCity[city]
}

// SeriesByCity exposes every city's series for whole-dataset aggregation.
// Read-only for callers.
func (s *Store) SeriesByCity() map[string]weather.Series {
	return s.seriesByCity
}

// ISOByCity exposes the city to ISO3 country mapping. Read-only for callers.
func (s *Store) ISOByCity() map[string]string {
	return s.isoByCity
}

// CityCount is the number of cities in the metadata table.
func (s *Store) CityCount() int {
	return len(s.cityByName)
}

// RecordCount is the number of daily weather rows loaded.
func (s *Store) RecordCount() int {
	return s.recordCount
}
