package db

import (
	"testing"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/cities"
)

func ptr(f float64) *float64 { return &f }

func TestUpsertCities(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rows := []models.City{
		{ID: "1840030815", City: "Louisville", CityASCII: "Louisville", Lat: ptr(38.1663), Lng: ptr(-85.6485),
			Country: "United States", ISO2: "US", ISO3: "USA", AdminName: "Kentucky", Population: ptr(1026331)},
		{ID: "1840013196", City: "Lexington", CityASCII: "Lexington", Lat: ptr(38.0423), Lng: ptr(-84.4587),
			Country: "United States", ISO2: "US", ISO3: "USA", AdminName: "Kentucky", Population: ptr(322570)},
		{ID: "1840003760", City: "Columbus", CityASCII: "Columbus", Lat: ptr(39.9862), Lng: ptr(-82.9855),
			Country: "United States", ISO2: "US", ISO3: "USA", AdminName: "Ohio", Population: ptr(1585750)},
	}
	rows = cities.AppendRemote(rows)

	n, err := db.UpsertCities(rows)
	if err != nil {
		t.Fatalf("UpsertCities() error = %v", err)
	}
	if n != len(rows) {
		t.Errorf("UpsertCities() = %d, want %d", n, len(rows))
	}

	// Upserting again must not duplicate rows.
	if _, err := db.UpsertCities(rows[:1]); err != nil {
		t.Fatalf("UpsertCities() second call error = %v", err)
	}
	count, err := db.CountCities()
	if err != nil {
		t.Fatalf("CountCities() error = %v", err)
	}
	if count != len(rows) {
		t.Errorf("CountCities() = %d, want %d", count, len(rows))
	}

	ky, err := db.ListCitiesByRegion("Kentucky", 0)
	if err != nil {
		t.Fatalf("ListCitiesByRegion() error = %v", err)
	}
	if len(ky) != 2 {
		t.Fatalf("ListCitiesByRegion(Kentucky) returned %d rows, want 2", len(ky))
	}
	if ky[0].City.City != "Louisville" {
		t.Errorf("largest Kentucky city = %q, want Louisville", ky[0].City.City)
	}
	if ky[0].Geohash != cities.Geohash(rows[0]) {
		t.Errorf("Geohash = %q, want %q", ky[0].Geohash, cities.Geohash(rows[0]))
	}

	virtual, err := db.ListCitiesByRegion("Virtual", 0)
	if err != nil {
		t.Fatalf("ListCitiesByRegion(Virtual) error = %v", err)
	}
	if len(virtual) != 5 {
		t.Fatalf("ListCitiesByRegion(Virtual) returned %d rows, want 5", len(virtual))
	}
	for _, c := range virtual {
		if c.Lat != nil || c.Population != nil || c.Geohash != "" {
			t.Errorf("remote row %s should have no coordinates, got %+v", c.ID, c)
		}
	}

	all, err := db.ListCitiesByRegion("", 2)
	if err != nil {
		t.Fatalf("ListCitiesByRegion(all) error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("ListCitiesByRegion(all, 2) returned %d rows", len(all))
	}
}

func TestUpsertCities_MissingID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.UpsertCities([]models.City{{City: "Nowhere"}}); err == nil {
		t.Error("UpsertCities() expected error for row without id")
	}
}
