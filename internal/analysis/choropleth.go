package analysis

import (
	"sort"

	"climatelens/domain/weather"

	"gonum.org/v1/gonum/stat"
)

// CountryMean is the mean temperature of every observation mapped to one
// ISO3 country, for the world choropleth.
type CountryMean struct {
	ISO3     string  `json:"iso3"`
	MeanTemp float64 `json:"mean_temperature"`
}

// YearlyCountryMean is one frame entry of the animated yearly choropleth.
type YearlyCountryMean struct {
	Year     int     `json:"year"`
	ISO3     string  `json:"iso3"`
	MeanTemp float64 `json:"mean_temperature"`
}

// CountryMeans aggregates all series into per-country mean temperatures.
// Cities with no ISO3 mapping are skipped. Output is ordered by ISO3.
func CountryMeans(seriesByCity map[string]weather.Series, isoByCity map[string]string, unit weather.Unit) []CountryMean {
	byCountry := make(map[string][]float64)
	for city, series := range seriesByCity {
		iso, ok := isoByCity[city]
		if !ok || iso == "" {
			continue
		}
		for _, r := range series {
			byCountry[iso] = append(byCountry[iso], weather.Convert(r.TempC, unit))
		}
	}

	out := make([]CountryMean, 0, len(byCountry))
	for iso, temps := range byCountry {
		out = append(out, CountryMean{ISO3: iso, MeanTemp: stat.Mean(temps, nil)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ISO3 < out[j].ISO3 })
	return out
}

// YearlyCountryMeans aggregates all series into per-(year, country) means,
// ordered by year then ISO3, one slice for the whole animation.
func YearlyCountryMeans(seriesByCity map[string]weather.Series, isoByCity map[string]string, unit weather.Unit) []YearlyCountryMean {
	type key struct {
		year int
		iso  string
	}
	byKey := make(map[key][]float64)
	for city, series := range seriesByCity {
		iso, ok := isoByCity[city]
		if !ok || iso == "" {
			continue
		}
		for _, r := range series {
			k := key{year: r.Date.Year(), iso: iso}
			byKey[k] = append(byKey[k], weather.Convert(r.TempC, unit))
		}
	}

	out := make([]YearlyCountryMean, 0, len(byKey))
	for k, temps := range byKey {
		out = append(out, YearlyCountryMean{Year: k.year, ISO3: k.iso, MeanTemp: stat.Mean(temps, nil)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].ISO3 < out[j].ISO3
	})
	return out
}
