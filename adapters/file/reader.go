package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"climatelens/domain/geo"
	"climatelens/domain/weather"
)

// Source reads the city, country and daily-weather tables from CSV or Excel
// files and exposes them through the data source ports.
type Source struct {
	citiesPath    string
	countriesPath string
	weatherPath   string
}

// NewSource creates a file-backed data source. File type is decided per
// file by extension (".csv" or ".xlsx").
func NewSource(citiesPath, countriesPath, weatherPath string) *Source {
	return &Source{
		citiesPath:    citiesPath,
		countriesPath: countriesPath,
		weatherPath:   weatherPath,
	}
}

// LoadCities reads the city table and joins each row with its country's
// continent, mirroring the cleaned geo table the dashboard filters on.
func (s *Source) LoadCities(ctx context.Context) ([]geo.City, error) {
	continents, err := s.loadContinents()
	if err != nil {
		return nil, err
	}

	header, rows, err := readTable(s.citiesPath)
	if err != nil {
		return nil, err
	}

	nameCol := columnIndex(header, "city_name", "city")
	latCol := columnIndex(header, "lat", "latitude")
	lngCol := columnIndex(header, "lng", "longitude")
	isoCol := columnIndex(header, "iso3")
	if nameCol < 0 || isoCol < 0 {
		return nil, fmt.Errorf("cities table %s is missing city_name or iso3 column", s.citiesPath)
	}

	cities := make([]geo.City, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		name := cell(row, nameCol)
		iso := strings.ToUpper(cell(row, isoCol))
		if name == "" {
			dropped++
			continue
		}
		c := geo.City{
			Name:      name,
			ISO3:      iso,
			Continent: continents[iso],
		}
		if latCol >= 0 {
			c.Latitude, _ = strconv.ParseFloat(cell(row, latCol), 64)
		}
		if lngCol >= 0 {
			c.Longitude, _ = strconv.ParseFloat(cell(row, lngCol), 64)
		}
		cities = append(cities, c)
	}

	log.Printf("[FileSource] Loaded %d cities from %s (%d rows dropped)", len(cities), s.citiesPath, dropped)
	return cities, nil
}

// LoadDailyWeather reads the daily-weather table, coercing dates and
// temperatures and dropping rows that fail coercion or carry non-finite
// temperatures. Dropped rows are counted, not reported as errors.
func (s *Source) LoadDailyWeather(ctx context.Context) ([]weather.DailyRecord, error) {
	header, rows, err := readTable(s.weatherPath)
	if err != nil {
		return nil, err
	}

	dateCol := columnIndex(header, "date")
	tempCol := columnIndex(header, "avg_temp_c", "temperature")
	cityCol := columnIndex(header, "city_name", "city")
	if dateCol < 0 || tempCol < 0 || cityCol < 0 {
		return nil, fmt.Errorf("weather table %s is missing date, avg_temp_c or city_name column", s.weatherPath)
	}

	records := make([]weather.DailyRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		date, ok := parseDate(cell(row, dateCol))
		if !ok {
			dropped++
			continue
		}
		temp, err := strconv.ParseFloat(cell(row, tempCol), 64)
		if err != nil || math.IsNaN(temp) || math.IsInf(temp, 0) {
			dropped++
			continue
		}
		city := cell(row, cityCol)
		if city == "" {
			dropped++
			continue
		}
		records = append(records, weather.DailyRecord{Date: date, City: city, TempC: temp})
	}

	log.Printf("[FileSource] Loaded %d weather records from %s (%d rows dropped)", len(records), s.weatherPath, dropped)
	return records, nil
}

// loadContinents reads the country table into an iso3 -> continent map.
func (s *Source) loadContinents() (map[string]string, error) {
	header, rows, err := readTable(s.countriesPath)
	if err != nil {
		return nil, err
	}

	isoCol := columnIndex(header, "iso3")
	contCol := columnIndex(header, "continent")
	if isoCol < 0 || contCol < 0 {
		return nil, fmt.Errorf("countries table %s is missing iso3 or continent column", s.countriesPath)
	}

	continents := make(map[string]string, len(rows))
	for _, row := range rows {
		iso := strings.ToUpper(cell(row, isoCol))
		continent := cell(row, contCol)
		if iso == "" || continent == "" {
			continue
		}
		continents[iso] = continent
	}
	return continents, nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "01/02/2006"}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Truncate(24 * time.Hour), true
		}
	}
	return time.Time{}, false
}

// columnIndex finds the first of the candidate names in a normalized header.
func columnIndex(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// readTable reads a CSV or Excel file into a normalized header plus data
// rows. Header names are lowercased and trimmed.
func readTable(path string) ([]string, [][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("data file not found: %s", path)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readExcelRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("data file %s must have a header row and at least one data row", path)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return header, rows[1:], nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, dropped during coercion

	start := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[FileSource] %s read in %.2fms (%d rows)", path, float64(time.Since(start).Nanoseconds())/1e6, len(rows))
	return rows, nil
}
