package models

// CityColumns is the fixed column order of the city datasets.
var CityColumns = []string{
	"city", "city_ascii", "lat", "lng", "country", "iso2", "iso3",
	"admin_name", "capital", "population", "id",
}

// City is one row of a world cities dataset.
// Lat, Lng and Population are nil when the cell is empty.
type City struct {
	City       string   `json:"city" yaml:"city"`
	CityASCII  string   `json:"city_ascii" yaml:"city_ascii"`
	Lat        *float64 `json:"lat" yaml:"lat"`
	Lng        *float64 `json:"lng" yaml:"lng"`
	Country    string   `json:"country" yaml:"country"`
	ISO2       string   `json:"iso2" yaml:"iso2"`
	ISO3       string   `json:"iso3" yaml:"iso3"`
	AdminName  string   `json:"admin_name" yaml:"admin_name"`
	Capital    string   `json:"capital" yaml:"capital"`
	Population *float64 `json:"population" yaml:"population"`
	ID         string   `json:"id" yaml:"id"`
}

// HasCoordinates reports whether both lat and lng are set.
func (c City) HasCoordinates() bool {
	return c.Lat != nil && c.Lng != nil
}
