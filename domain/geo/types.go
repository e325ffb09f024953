package geo

// City represents one row of the city metadata table, joined with its
// country's continent.
type City struct {
	Name      string  `json:"name" db:"city_name"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	ISO3      string  `json:"iso3" db:"iso3"`
	Continent string  `json:"continent" db:"continent"`
}

// HasContinent reports whether the continent join succeeded for this city.
// Cities without a continent are not selectable from the continent filter.
func (c City) HasContinent() bool {
	return c.Continent != ""
}
