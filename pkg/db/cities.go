package db

import (
	"database/sql"
	"fmt"

	"github.com/nlpjobsfinder/jobs-finder/models"
	"github.com/nlpjobsfinder/jobs-finder/pkg/cities"
)

// UpsertCities inserts or replaces city rows by id, storing a geohash for rows
// with coordinates. Returns the number of rows written.
func (db *DB) UpsertCities(rows []models.City) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO cities (id, city, city_ascii, lat, lng, country, iso2, iso3, admin_name, capital, population, geohash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			city = excluded.city,
			city_ascii = excluded.city_ascii,
			lat = excluded.lat,
			lng = excluded.lng,
			country = excluded.country,
			iso2 = excluded.iso2,
			iso3 = excluded.iso3,
			admin_name = excluded.admin_name,
			capital = excluded.capital,
			population = excluded.population,
			geohash = excluded.geohash,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare city upsert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rows {
		if c.ID == "" {
			return 0, fmt.Errorf("city %q has no id", c.City)
		}
		_, err := stmt.Exec(c.ID, c.City, c.CityASCII, nullFloat(c.Lat), nullFloat(c.Lng),
			c.Country, c.ISO2, c.ISO3, c.AdminName, c.Capital, nullFloat(c.Population), cities.Geohash(c))
		if err != nil {
			return 0, fmt.Errorf("failed to upsert city %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cities: %w", err)
	}
	return len(rows), nil
}

// StoredCity is a city row together with its computed geohash.
type StoredCity struct {
	models.City
	Geohash string
}

// ListCitiesByRegion returns the cities of one admin region ordered by
// population, largest first. An empty region lists every city.
func (db *DB) ListCitiesByRegion(region string, limit int) ([]StoredCity, error) {
	query := `
		SELECT id, city, city_ascii, lat, lng, country, iso2, iso3, admin_name, capital, population, geohash
		FROM cities
		WHERE (? = '' OR admin_name = ?)
		ORDER BY population IS NULL, population DESC, city
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query, region, region)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	var out []StoredCity
	for rows.Next() {
		var c StoredCity
		var cityASCII, country, iso2, iso3, admin, capital, hash sql.NullString
		var lat, lng, pop sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.City.City, &cityASCII, &lat, &lng, &country, &iso2, &iso3,
			&admin, &capital, &pop, &hash); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		c.CityASCII = cityASCII.String
		c.Country = country.String
		c.ISO2 = iso2.String
		c.ISO3 = iso3.String
		c.AdminName = admin.String
		c.Capital = capital.String
		c.Lat = floatPtr(lat)
		c.Lng = floatPtr(lng)
		c.Population = floatPtr(pop)
		c.Geohash = hash.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// CountCities returns the number of stored cities.
func (db *DB) CountCities() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM cities").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cities: %w", err)
	}
	return n, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
