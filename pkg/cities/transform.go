package cities

import (
	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/nlpjobsfinder/jobs-finder/models"
)

// DefaultRegions is the tri-state area the datasets are cut down to.
var DefaultRegions = []string{"Kentucky", "Indiana", "Ohio"}

// GeohashPrecision is roughly a 150m cell, enough to tell neighbourhoods apart.
const GeohashPrecision = 7

// FilterByRegion returns the rows whose admin_name is one of regions, in
// their original order. rows is not modified.
func FilterByRegion(rows []models.City, regions []string) []models.City {
	wanted := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		wanted[r] = struct{}{}
	}

	out := []models.City{}
	for _, c := range rows {
		if _, ok := wanted[c.AdminName]; ok {
			out = append(out, c)
		}
	}
	return out
}

// RemoteLocations returns the placeholder rows for remote work arrangements.
func RemoteLocations() []models.City {
	names := []string{"Remote", "Virtual", "Work from Home", "Telework", "Hybrid"}
	ids := []string{"REMOTE001", "REMOTE002", "REMOTE003", "REMOTE004", "REMOTE005"}

	out := make([]models.City, len(names))
	for i, name := range names {
		out[i] = models.City{
			City:      name,
			CityASCII: name,
			Country:   "United States",
			ISO2:      "US",
			ISO3:      "USA",
			AdminName: "Virtual",
			Capital:   "",
			ID:        ids[i],
		}
	}
	return out
}

// AppendRemote returns a new slice holding rows followed by RemoteLocations.
func AppendRemote(rows []models.City) []models.City {
	remote := RemoteLocations()
	out := make([]models.City, 0, len(rows)+len(remote))
	out = append(out, rows...)
	return append(out, remote...)
}

// Geohash encodes the row's coordinates, or returns "" when it has none.
func Geohash(c models.City) string {
	if !c.HasCoordinates() {
		return ""
	}
	return geohash.EncodeWithPrecision(*c.Lat, *c.Lng, GeohashPrecision)
}
